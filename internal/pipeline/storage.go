package pipeline

import (
	"time"

	"github.com/TeamsTransport/CaseInventory/internal/model"
	"github.com/TeamsTransport/CaseInventory/internal/parser"
)

// ResolveRecordSet applies the storage-period clamp to one file's records.
// Storage Starts takes the Arrived @ Warehouse date when it falls inside the
// reference window, otherwise the window's first day; Storage Ends takes the
// Scheduled Date under the same rule against the window's last day. The rule
// reads only the source date and the fixed window, so re-applying it within
// one run changes nothing.
func ResolveRecordSet(rs *model.RecordSet, w model.ReferenceWindow) {
	if rs.HasColumn(model.ColArrived) && rs.HasColumn(model.ColStorageStarts) {
		clampRecords(rs.Records, model.ColArrived, model.ColStorageStarts, w, w.First)
	}
	if rs.HasColumn(model.ColScheduledDate) && rs.HasColumn(model.ColStorageEnds) {
		clampRecords(rs.Records, model.ColScheduledDate, model.ColStorageEnds, w, w.Last)
	}
}

// ResolveTable re-applies the clamp on the consolidated table before output.
// The target columns are created when missing so the output always carries
// the resolved period.
func ResolveTable(t *model.Table, w model.ReferenceWindow) {
	if t.HasColumn(model.ColArrived) {
		ensureColumn(t, model.ColStorageStarts)
		clampRecords(t.Records, model.ColArrived, model.ColStorageStarts, w, w.First)
	}
	if t.HasColumn(model.ColScheduledDate) {
		ensureColumn(t, model.ColStorageEnds)
		clampRecords(t.Records, model.ColScheduledDate, model.ColStorageEnds, w, w.Last)
	}
}

func clampRecords(records []*model.Record, srcCol, dstCol string, w model.ReferenceWindow, fallback time.Time) {
	for _, rec := range records {
		if t, ok := sourceDate(rec, srcCol); ok && w.Contains(t) {
			rec.Set(dstCol, model.DateValue(t))
		} else {
			rec.Set(dstCol, model.DateValue(fallback))
		}
	}
}

// sourceDate reads a date from the clamp's source column, coercing string
// values that escaped the per-file pass (Scheduled Date is not one of the
// coerced columns)
func sourceDate(rec *model.Record, col string) (time.Time, bool) {
	v := rec.Get(col)
	switch v.Kind {
	case model.KindDate:
		return v.Date, true
	case model.KindString:
		if t, ok := parser.ParseDate(v.Str); ok {
			rec.Set(col, model.DateValue(t))
			return t, true
		}
	}
	return time.Time{}, false
}

// ensureColumn inserts name into the table schema at its canonical position
func ensureColumn(t *model.Table, name string) {
	if t.HasColumn(name) {
		return
	}
	ordered := make([]string, 0, len(t.Columns)+1)
	present := map[string]bool{name: true}
	for _, c := range t.Columns {
		present[c] = true
	}
	for _, c := range model.ColumnOrder {
		if present[c] {
			ordered = append(ordered, c)
		}
	}
	t.Columns = ordered
	for _, rec := range t.Records {
		if _, ok := rec.Values[name]; !ok {
			rec.Values[name] = model.MissingValue()
		}
	}
}
