package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/TeamsTransport/CaseInventory/internal/model"
)

// writeSourceFile builds one well-formed source workbook on disk
func writeSourceFile(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Cost Estimate"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if _, err := f.NewSheet("Inventory"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	f.SetCellValue("Cost Estimate", "I5", "PO123")
	f.SetCellValue("Cost Estimate", "I10", "Store #45")
	f.SetCellValue("Cost Estimate", "I12", "Springfield")
	f.SetCellValue("Cost Estimate", "C13", "Johanne")

	header := []interface{}{
		"Shipper Order #", "Case #", "Serial #", "Arrived @ Warehouse",
		"Scheduled APPT", nil, "Trailer or Warehouse",
		"Square Footage of Case", "Storage Charge", "Storage Starts", "Storage Ends",
	}
	subheader := []interface{}{nil, nil, nil, nil, "Date", "Time", nil, nil, nil, nil, nil}
	data := []interface{}{
		"SO1", "C100", "S200", "2026-07-10",
		"2026-08-15", "9:30 AM", "Warehouse",
		100, 2.5, nil, nil,
	}
	for row, values := range map[int][]interface{}{7: header, 8: subheader, 9: data} {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		v := values
		if err := f.SetSheetRow("Inventory", cell, &v); err != nil {
			t.Fatalf("set row %d: %v", row, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

// writeBrokenFile builds a workbook without the Inventory sheet
func writeBrokenFile(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Cost Estimate"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestDriver_EndToEnd(t *testing.T) {
	t.Parallel()

	folder := filepath.Join(t.TempDir(), "Alberta")
	if err := os.MkdirAll(folder, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeSourceFile(t, filepath.Join(folder, "Store45.xlsx"))
	writeBrokenFile(t, filepath.Join(folder, "Broken.xlsx"))
	writeBrokenFile(t, filepath.Join(folder, "ConsolidatedInventory_old.xlsx"))

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	driver := NewDriver(now)
	result, err := driver.ProcessFolders([]string{folder})
	if err != nil {
		t.Fatalf("process folders: %v", err)
	}

	if result.ProcessedFiles != 1 {
		t.Fatalf("processed files: %d", result.ProcessedFiles)
	}
	if result.SkippedFiles != 2 {
		t.Fatalf("skipped files: %d", result.SkippedFiles)
	}
	if len(result.Table.Records) != 1 {
		t.Fatalf("expected 1 consolidated record, got %d", len(result.Table.Records))
	}

	rec := result.Table.Records[0]
	if got := rec.Get(model.ColDestinationStore).Str; got != "Store #45 Springfield" {
		t.Fatalf("destination store: %q", got)
	}
	// arrived inside the July window is kept as Storage Starts
	if got := rec.Get(model.ColStorageStarts).Date; !got.Equal(time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("storage starts: %v", got)
	}
	// scheduled date outside the window clamps Storage Ends to the last day
	if got := rec.Get(model.ColStorageEnds).Date; !got.Equal(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("storage ends: %v", got)
	}
}

func TestDriver_AllFilesSkippedIsFatal(t *testing.T) {
	t.Parallel()

	folder := filepath.Join(t.TempDir(), "Empty")
	if err := os.MkdirAll(folder, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeBrokenFile(t, filepath.Join(folder, "Broken.xlsx"))

	driver := NewDriver(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	_, err := driver.ProcessFolders([]string{folder})
	if err != ErrNoDataProcessed {
		t.Fatalf("expected ErrNoDataProcessed, got %v", err)
	}
}

func TestDriver_MissingFolderIsSkipped(t *testing.T) {
	t.Parallel()

	folder := filepath.Join(t.TempDir(), "Alberta")
	if err := os.MkdirAll(folder, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeSourceFile(t, filepath.Join(folder, "Store45.xlsx"))

	driver := NewDriver(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	result, err := driver.ProcessFolders([]string{
		filepath.Join(folder, "does-not-exist"),
		folder,
	})
	if err != nil {
		t.Fatalf("process folders: %v", err)
	}
	if result.ProcessedFiles != 1 {
		t.Fatalf("processed files: %d", result.ProcessedFiles)
	}
}
