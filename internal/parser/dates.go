package parser

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

// isoDateLayout strict primary parse
const isoDateLayout = "2006-01-02"

// localeDateLayouts second-pass layouts for two-digit-year source strings
var localeDateLayouts = []string{"01-02-06", "1-2-06"}

// genericDateLayouts fallback layouts tried against raw cell contents
var genericDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"01-02-2006",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// CoerceDates converts the date-bearing columns to the date kind. Strings
// get a strict ISO parse first; unresolved cells are re-read raw from the
// source sheet (bypassing the cached rows) and run through generic parsing.
// Arrived @ Warehouse and Storage Ends get one more pass for two-digit-year
// strings. Parsing never fails the file: leftovers degrade to null with a
// logged warning.
func CoerceDates(rs *model.RecordSet, f *excelize.File) {
	for _, col := range model.CoercedDateColumns {
		colIdx, ok := rs.ColumnIndex(col)
		if !ok {
			continue
		}
		for _, rec := range rs.Records {
			v := rec.Get(col)
			if v.Kind == model.KindDate {
				continue
			}
			if v.Kind == model.KindString {
				if t, err := time.Parse(isoDateLayout, strings.TrimSpace(v.Str)); err == nil {
					rec.Set(col, model.DateValue(t))
					continue
				}
			}
			if t, ok := rawCellDate(f, colIdx+1, rec.SheetRow); ok {
				rec.Set(col, model.DateValue(t))
			}
		}
	}

	// recover locale-formatted strings in the two columns that carry them
	for _, col := range []string{model.ColArrived, model.ColStorageEnds} {
		if !rs.HasColumn(col) {
			continue
		}
		for _, rec := range rs.Records {
			v := rec.Get(col)
			if v.Kind != model.KindString {
				continue
			}
			if t, ok := parseAnyLayout(v.Str, localeDateLayouts); ok {
				rec.Set(col, model.DateValue(t))
			}
		}
	}

	// anything still unparsed degrades to null
	for _, col := range model.CoercedDateColumns {
		if !rs.HasColumn(col) {
			continue
		}
		for _, rec := range rs.Records {
			v := rec.Get(col)
			if v.Kind == model.KindString || v.Kind == model.KindNumber {
				log.Printf("  Warning: could not parse %s value %q in %s", col, v.String(), rs.File)
				rec.Set(col, model.MissingValue())
			}
		}
	}
}

// rawCellDate re-reads the raw cell at the original coordinate and attempts
// a generic date parse. Numeric raw values are treated as Excel date serials.
func rawCellDate(f *excelize.File, colIdx, rowIdx int) (time.Time, bool) {
	cell, err := excelize.CoordinatesToCellName(colIdx, rowIdx)
	if err != nil {
		return time.Time{}, false
	}
	raw, err := f.GetCellValue(SheetInventory, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return time.Time{}, false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		// 59 skips the Lotus leap-year ghost; the upper bound rejects
		// plain numbers that are not plausible dates
		if serial > 59 && serial < 200000 {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	return parseAnyLayout(raw, genericDateLayouts)
}

// ParseDate attempts a generic date parse against the known layouts
func ParseDate(s string) (time.Time, bool) {
	return parseAnyLayout(s, genericDateLayouts)
}

func parseAnyLayout(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
