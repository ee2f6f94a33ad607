package pipeline

import (
	"regexp"
	"strings"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

var dedupSuffix = regexp.MustCompile(`^(.+)_(\d+)$`)

// baseColumnName collapses a per-file dedup suffix (Foo_1, Foo_2) back to
// its base name, but only when the base is a known canonical column;
// synthetic Unnamed_<i> names keep their suffix.
func baseColumnName(col string) string {
	m := dedupSuffix.FindStringSubmatch(col)
	if m != nil && model.IsCanonicalColumn(m[1]) {
		return m[1]
	}
	return col
}

// Consolidate merges the per-file record sets into one table with the fixed
// canonical column order. A column survives only when at least one source
// file contributed a non-missing value for it; suffixed duplicate columns
// alias onto their base with first-occurrence-wins on conflict.
func Consolidate(sets []*model.RecordSet) *model.Table {
	for _, rs := range sets {
		pruneAllMissingColumns(rs)
	}

	// union of collapsed names across files, discovery order
	seen := map[string]bool{}
	for _, rs := range sets {
		for _, col := range rs.Columns {
			seen[baseColumnName(col)] = true
		}
	}

	// visible schema is the canonical order restricted to columns present
	var cols []string
	colSet := map[string]bool{}
	for _, c := range model.ColumnOrder {
		if seen[c] {
			cols = append(cols, c)
			colSet[c] = true
		}
	}

	t := &model.Table{Columns: cols}
	for _, rs := range sets {
		for _, rec := range rs.Records {
			out := model.NewRecord(rec.SheetRow)
			for _, col := range rs.Columns {
				base := baseColumnName(col)
				if !colSet[base] {
					continue
				}
				v := rec.Get(col)
				cur, exists := out.Values[base]
				if !exists || (cur.IsMissing() && !v.IsMissing()) {
					out.Values[base] = v
				}
			}
			// widen to the full schema so no key is ever absent
			for _, c := range cols {
				if _, ok := out.Values[c]; !ok {
					out.Values[c] = model.MissingValue()
				}
			}
			t.Records = append(t.Records, out)
		}
	}

	return t
}

// pruneAllMissingColumns drops columns that are entirely missing within one
// file's record set
func pruneAllMissingColumns(rs *model.RecordSet) {
	var keep []string
	for _, col := range rs.Columns {
		empty := true
		for _, rec := range rs.Records {
			if !rec.Get(col).IsMissing() {
				empty = false
				break
			}
		}
		if empty {
			for _, rec := range rs.Records {
				delete(rec.Values, col)
			}
		} else {
			keep = append(keep, col)
		}
	}
	rs.Columns = keep
}

// FormatForDisplay normalizes presentation values on the consolidated
// table. Scheduled Time strings lose fractional seconds, collapse HH:MM:SS
// to HH:MM, and get a bare uppercase AM/PM form.
func FormatForDisplay(t *model.Table) {
	if !t.HasColumn(model.ColScheduledTime) {
		return
	}
	fractional := regexp.MustCompile(`\.\d+$`)
	for _, rec := range t.Records {
		v := rec.Get(model.ColScheduledTime)
		if v.Kind != model.KindString {
			continue
		}
		s := fractional.ReplaceAllString(strings.TrimSpace(v.Str), "")
		if len(s) >= 8 && strings.Count(s, ":") >= 2 {
			s = s[:5]
		}
		s = strings.ReplaceAll(strings.ToUpper(s), " ", "")
		rec.Set(model.ColScheduledTime, model.StringValue(s))
	}
}
