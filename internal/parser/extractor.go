package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

// Fixed layout of a source workbook.
const (
	SheetCostEstimate = "Cost Estimate"
	SheetInventory    = "Inventory"

	cellPONumber  = "I5"
	cellStoreName = "I10"
	cellCity      = "I12"
	cellAttention = "C13"

	headerRowIndex    = 7 // 1-based, primary header row
	subheaderRowIndex = 8
	DataStartRow      = 9

	sentinelWidth = 5
)

// Extractor reads one source file's metadata and tabular body
type Extractor struct {
	file *excelize.File
	path string
}

// NewExtractor creates an extractor over an open workbook
func NewExtractor(f *excelize.File, path string) *Extractor {
	return &Extractor{file: f, path: path}
}

// Extract produces the file's record set with header metadata broadcast
// onto every row. Typed errors mark the per-file skip conditions.
func (e *Extractor) Extract() (*model.RecordSet, error) {
	for _, sheet := range []string{SheetCostEstimate, SheetInventory} {
		idx, err := e.file.GetSheetIndex(sheet)
		if err != nil || idx < 0 {
			return nil, &MissingSheetError{Sheet: sheet}
		}
	}

	meta, err := e.extractHeaderInfo()
	if err != nil {
		return nil, err
	}

	rows, err := e.file.GetRows(SheetInventory)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", SheetInventory, err)
	}

	headers := e.extractHeaders(rows)

	rs := &model.RecordSet{File: e.path, Columns: headers}
	for i := DataStartRow - 1; i < len(rows); i++ {
		row := rows[i]
		if isSentinelRow(row) {
			break
		}
		rec := model.NewRecord(i + 1)
		for j, col := range headers {
			rec.Set(col, cellValue(col, cellAt(row, j)))
		}
		rs.Records = append(rs.Records, rec)
	}

	if len(rs.Records) == 0 {
		return nil, &EmptyDataError{}
	}

	// broadcast header metadata onto every row
	for col, v := range meta {
		rs.Broadcast(col, v)
	}

	return rs, nil
}

// extractHeaderInfo reads the fixed metadata cells from the Cost Estimate sheet
func (e *Extractor) extractHeaderInfo() (map[string]model.Value, error) {
	po := e.readCell(SheetCostEstimate, cellPONumber)
	if po == "" {
		return nil, &MissingRequiredFieldError{Field: model.ColPONumber}
	}

	store := e.readCell(SheetCostEstimate, cellStoreName)
	city := e.readCell(SheetCostEstimate, cellCity)
	fullStore := store
	if store != "" && city != "" {
		fullStore = store + " " + city
	} else if store == "" {
		fullStore = city
	}

	meta := map[string]model.Value{
		model.ColPONumber: model.StringValue(po),
	}
	if fullStore != "" {
		meta[model.ColDestinationStore] = model.StringValue(fullStore)
	} else {
		meta[model.ColDestinationStore] = model.MissingValue()
	}
	if attn := e.readCell(SheetCostEstimate, cellAttention); attn != "" {
		meta[model.ColAttention] = model.StringValue(attn)
	} else {
		meta[model.ColAttention] = model.MissingValue()
	}
	return meta, nil
}

// extractHeaders normalizes the two fixed header rows above the data block
func (e *Extractor) extractHeaders(rows [][]string) []string {
	var primary, subheader []string
	if len(rows) >= headerRowIndex {
		primary = rows[headerRowIndex-1]
	}
	if len(rows) >= subheaderRowIndex {
		subheader = rows[subheaderRowIndex-1]
	}
	// pad the primary row out to the widest data row so trailing
	// unnamed columns still get placeholders
	width := len(primary)
	for i := DataStartRow - 1; i < len(rows); i++ {
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	for len(primary) < width {
		primary = append(primary, "")
	}
	return NormalizeHeaders(primary, subheader)
}

func (e *Extractor) readCell(sheet, cell string) string {
	v, err := e.file.GetCellValue(sheet, cell)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

// isSentinelRow reports end-of-table: the first cells all empty
func isSentinelRow(row []string) bool {
	for j := 0; j < sentinelWidth; j++ {
		if strings.TrimSpace(cellAt(row, j)) != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// cellValue types a raw cell by column vocabulary; identifier columns stay
// strings so leading zeros survive
func cellValue(col, raw string) model.Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.MissingValue()
	}
	if model.IsNumericColumn(col) {
		if f, ok := parseNumber(raw); ok {
			return model.NumberValue(f)
		}
	}
	return model.StringValue(raw)
}

// parseNumber safe float conversion, tolerating thousands separators and
// currency markers
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
