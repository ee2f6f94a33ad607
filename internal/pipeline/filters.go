package pipeline

import (
	"log"
	"strings"
	"time"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

// arrivedLowerCutoff dates at or before this are junk placeholder values
var arrivedLowerCutoff = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// neverScheduledCutoff Storage Ends at or before this marks "never scheduled"
var neverScheduledCutoff = time.Date(2000, 1, 31, 0, 0, 0, 0, time.UTC)

// ApplyTemporalFilters drops records violating the validity windows: an
// Arrived @ Warehouse date must fall strictly between 2000-01-01 and the
// first day of the processing month, and a Storage Ends date must be either
// the never-scheduled sentinel or no older than the previous month. Each
// predicate logs the rows it removes.
func ApplyTemporalFilters(rs *model.RecordSet, now time.Time) {
	if rs.HasColumn(model.ColArrived) {
		upper := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		removed := filterRecords(rs, func(rec *model.Record) bool {
			v := rec.Get(model.ColArrived)
			if v.Kind != model.KindDate {
				return true
			}
			return v.Date.After(arrivedLowerCutoff) && v.Date.Before(upper)
		})
		if removed > 0 {
			log.Printf("  Filtered out %d rows based on '%s' date condition", removed, model.ColArrived)
		}
	}

	if rs.HasColumn(model.ColStorageEnds) {
		firstPrevMonth := model.PreviousMonthWindow(now).First
		removed := filterRecords(rs, func(rec *model.Record) bool {
			v := rec.Get(model.ColStorageEnds)
			if v.Kind != model.KindDate {
				return true
			}
			return !v.Date.After(neverScheduledCutoff) || !v.Date.Before(firstPrevMonth)
		})
		if removed > 0 {
			log.Printf("  Filtered out %d rows based on '%s' date condition", removed, model.ColStorageEnds)
		}
	}
}

// ApplyLocationFilter retains only records whose location status is one of
// the accepted values. A record set without the column is left untouched.
func ApplyLocationFilter(rs *model.RecordSet) {
	if !rs.HasColumn(model.ColLocation) {
		return
	}
	removed := filterRecords(rs, func(rec *model.Record) bool {
		v := rec.Get(model.ColLocation)
		if v.Kind != model.KindString {
			return false
		}
		loc := strings.ToLower(strings.TrimSpace(v.Str))
		for _, valid := range model.ValidLocations {
			if loc == valid {
				return true
			}
		}
		return false
	})
	if removed > 0 {
		log.Printf("  Filtered out %d rows based on '%s' value condition", removed, model.ColLocation)
	}
}

// filterRecords keeps records matching the predicate, returning the number removed
func filterRecords(rs *model.RecordSet, keep func(*model.Record) bool) int {
	kept := rs.Records[:0]
	for _, rec := range rs.Records {
		if keep(rec) {
			kept = append(kept, rec)
		}
	}
	removed := len(rs.Records) - len(kept)
	rs.Records = kept
	return removed
}
