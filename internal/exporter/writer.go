package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

// MasterSheet name of the consolidated sheet
const MasterSheet = "Master"

// Store sheets carry a banner block (title, reference code, spacer) above
// the header row.
const (
	storeHeaderRow   = 4
	storeDataStart   = 5
	masterHeaderRow  = 1
	masterDataStart  = 2
	dateNumberFormat = "mm-dd-yy"
	currencyFormat   = `"$"#,##0.00`
)

// Partition one store's slice of the consolidated table
type Partition struct {
	Store   string
	Records []*model.Record
}

// PartitionByStore groups table rows by Destination Store in first-appearance
// order. Rows without a store stay in the master table but join no partition.
func PartitionByStore(t *model.Table) []Partition {
	var parts []Partition
	index := map[string]int{}
	for _, rec := range t.Records {
		v := rec.Get(model.ColDestinationStore)
		if v.Kind != model.KindString || strings.TrimSpace(v.Str) == "" {
			continue
		}
		store := v.Str
		i, ok := index[store]
		if !ok {
			i = len(parts)
			index[store] = i
			parts = append(parts, Partition{Store: store})
		}
		parts[i].Records = append(parts[i].Records, rec)
	}
	return parts
}

// Writer emits the consolidated workbook: the Master sheet plus one sheet
// per destination store, with live formula columns on every data row
type Writer struct {
	window        model.ReferenceWindow
	referenceCode string
}

// NewWriter creates a writer for the run's reference window. The reference
// code is the second banner line on every store sheet.
func NewWriter(window model.ReferenceWindow, referenceCode string) *Writer {
	return &Writer{window: window, referenceCode: referenceCode}
}

type sheetStyles struct {
	header   int
	date     int
	currency int
}

// Write saves the workbook to path
func (w *Writer) Write(t *model.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MasterSheet); err != nil {
		return fmt.Errorf("failed to rename master sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return fmt.Errorf("failed to create styles: %w", err)
	}

	cols := w.visibleColumns(t)

	if err := w.writeSheet(f, MasterSheet, cols, t.Records, masterHeaderRow, styles, false); err != nil {
		return err
	}

	namer := NewSheetNamer()
	namer.Reserve(MasterSheet)
	for _, p := range PartitionByStore(t) {
		sheet := namer.Name(p.Store, w.window)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
		if err := w.writeSheet(f, sheet, cols, p.Records, storeHeaderRow, styles, true); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// visibleColumns is the canonical order restricted to columns present, minus
// the processing-only columns, with the two derived formula columns always
// included
func (w *Writer) visibleColumns(t *model.Table) []string {
	hidden := map[string]bool{}
	for _, c := range model.HiddenColumns {
		hidden[c] = true
	}
	var cols []string
	for _, c := range model.ColumnOrder {
		if hidden[c] {
			continue
		}
		if t.HasColumn(c) || c == model.ColDaysInStorage || c == model.ColExtendedPrice {
			cols = append(cols, c)
		}
	}
	return cols
}

func (w *Writer) writeSheet(f *excelize.File, sheet string, cols []string, records []*model.Record, headerRow int, styles sheetStyles, banner bool) error {
	if banner {
		f.SetCellValue(sheet, "A1", w.window.BannerTitle())
		f.SetCellValue(sheet, "A2", w.referenceCode)
	}

	for j, col := range cols {
		cell, err := excelize.CoordinatesToCellName(j+1, headerRow)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, col)
	}
	if err := f.SetRowStyle(sheet, headerRow, headerRow, styles.header); err != nil {
		return err
	}

	dataStart := headerRow + 1
	for i, rec := range records {
		if err := w.writeRow(f, sheet, cols, rec, dataStart+i, styles); err != nil {
			return err
		}
	}
	if err := w.writeFormulas(f, sheet, cols, dataStart, len(records), styles); err != nil {
		return err
	}

	f.SetColWidth(sheet, "A", "A", 30)
	if len(cols) > 1 {
		last, _ := excelize.ColumnNumberToName(len(cols))
		f.SetColWidth(sheet, "B", last, 15)
	}
	return nil
}

func (w *Writer) writeRow(f *excelize.File, sheet string, cols []string, rec *model.Record, row int, styles sheetStyles) error {
	for j, col := range cols {
		v := rec.Get(col)
		if v.IsMissing() {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(j+1, row)
		if err != nil {
			return err
		}
		switch v.Kind {
		case model.KindDate:
			f.SetCellValue(sheet, cell, v.Date)
			f.SetCellStyle(sheet, cell, cell, styles.date)
		case model.KindNumber:
			f.SetCellValue(sheet, cell, v.Num)
			if col == model.ColStorageCharge || col == model.ColExtendedPrice {
				f.SetCellStyle(sheet, cell, cell, styles.currency)
			}
		default:
			f.SetCellValue(sheet, cell, v.Str)
		}
	}
	return nil
}

// writeFormulas emits the two derived columns as live same-row formulas
func (w *Writer) writeFormulas(f *excelize.File, sheet string, cols []string, dataStart, count int, styles sheetStyles) error {
	letter := map[string]string{}
	for j, col := range cols {
		l, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		letter[col] = l
	}

	daysL, hasDays := letter[model.ColDaysInStorage]
	startL, hasStart := letter[model.ColStorageStarts]
	endL, hasEnd := letter[model.ColStorageEnds]
	chargeL, hasCharge := letter[model.ColStorageCharge]
	sqftL, hasSqft := letter[model.ColSquareFootage]
	extL, hasExt := letter[model.ColExtendedPrice]

	writeDays := hasDays && hasStart && hasEnd
	writeExt := hasExt && hasCharge && hasSqft && hasDays

	for r := dataStart; r < dataStart+count; r++ {
		if writeDays {
			if err := f.SetCellFormula(sheet, fmt.Sprintf("%s%d", daysL, r),
				fmt.Sprintf("(%s%d-%s%d)+1", endL, r, startL, r)); err != nil {
				return err
			}
		}
		if writeExt {
			cell := fmt.Sprintf("%s%d", extL, r)
			if err := f.SetCellFormula(sheet, cell,
				fmt.Sprintf("(((%s%d*%s%d)/30)*%s%d)+60", chargeL, r, sqftL, r, daysL, r)); err != nil {
				return err
			}
			f.SetCellStyle(sheet, cell, cell, styles.currency)
		}
	}
	return nil
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "bottom", WrapText: true},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	dateFmt := dateNumberFormat
	date, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return sheetStyles{}, err
	}
	curFmt := currencyFormat
	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &curFmt})
	if err != nil {
		return sheetStyles{}, err
	}
	return sheetStyles{header: header, date: date, currency: currency}, nil
}
