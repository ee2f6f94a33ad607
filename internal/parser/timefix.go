package parser

import (
	"log"
	"regexp"
	"strings"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

// timePattern H:MM, HH:MM[:SS], optional AM/PM suffix
var timePattern = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}(?::\d{2})?(?:\s?[AP]M)?$`)

// RectifyTimeColumns recovers mislabeled time-of-day columns. A column
// whose name mentions time and whose values look like times is renamed to
// Scheduled Time; failing that, the column immediately following Scheduled
// Date is inspected. No match anywhere is a silent no-op.
func RectifyTimeColumns(rs *model.RecordSet) {
	if !rs.HasColumn(model.ColScheduledTime) {
		for _, col := range rs.Columns {
			if col == model.ColScheduledTime {
				continue
			}
			if strings.Contains(strings.ToLower(col), "time") && columnLooksLikeTime(rs, col) {
				log.Printf("  Identified time column: %s -> %s", col, model.ColScheduledTime)
				rs.RenameColumn(col, model.ColScheduledTime)
				break
			}
		}
	}

	if rs.HasColumn(model.ColScheduledDate) && !rs.HasColumn(model.ColScheduledTime) {
		log.Printf("  Warning: Found %s but missing %s in %s", model.ColScheduledDate, model.ColScheduledTime, rs.File)
		rectifyAdjacentTimeColumn(rs)
	}
}

// rectifyAdjacentTimeColumn inspects the column positionally following
// Scheduled Date
func rectifyAdjacentTimeColumn(rs *model.RecordSet) {
	idx, ok := rs.ColumnIndex(model.ColScheduledDate)
	if !ok || idx+1 >= len(rs.Columns) {
		return
	}
	next := rs.Columns[idx+1]
	if columnLooksLikeTime(rs, next) {
		log.Printf("  Identified adjacent time column: %s -> %s", next, model.ColScheduledTime)
		rs.RenameColumn(next, model.ColScheduledTime)
	}
}

// columnLooksLikeTime reports whether any value in the column matches the
// time-of-day pattern
func columnLooksLikeTime(rs *model.RecordSet, col string) bool {
	for _, rec := range rs.Records {
		v := rec.Get(col)
		if v.Kind == model.KindString && timePattern.MatchString(strings.TrimSpace(v.Str)) {
			return true
		}
	}
	return false
}
