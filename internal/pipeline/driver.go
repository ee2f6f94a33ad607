package pipeline

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/TeamsTransport/CaseInventory/internal/model"
	"github.com/TeamsTransport/CaseInventory/internal/parser"
)

// ErrNoDataProcessed every file in every folder was skipped; fatal
var ErrNoDataProcessed = errors.New("no data was processed; check your files and try again")

// FileOutcome per-file processing result for the run record
type FileOutcome struct {
	Folder string
	Name   string
	Status string // processed | skipped
	Reason string
}

// Result one consolidation run's output and accounting
type Result struct {
	Table          *model.Table
	Window         model.ReferenceWindow
	ProcessedFiles int
	SkippedFiles   int
	Files          []FileOutcome
}

// Driver orchestrates extraction, filtering, resolution and reconciliation
// over all folders. Folders and files are processed strictly sequentially;
// per-file failures are logged and skipped.
type Driver struct {
	now    time.Time
	window model.ReferenceWindow
}

// NewDriver creates a driver; the reference window is fixed from the
// processing date for the whole run
func NewDriver(now time.Time) *Driver {
	return &Driver{now: now, window: model.PreviousMonthWindow(now)}
}

// Window the run's reference window
func (d *Driver) Window() model.ReferenceWindow {
	return d.window
}

// ProcessFolders consolidates every source workbook under the given folders
func (d *Driver) ProcessFolders(folders []string) (*Result, error) {
	res := &Result{Window: d.window}
	var sets []*model.RecordSet

	for _, folder := range folders {
		entries, err := os.ReadDir(folder)
		if err != nil {
			log.Printf("Folder not found: %s", folder)
			continue
		}
		log.Printf("Processing folder: %s", folder)

		for _, ent := range entries {
			name := ent.Name()
			if ent.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".xlsx") || strings.HasPrefix(name, "~$") {
				continue
			}
			if strings.Contains(strings.ToLower(name), "consolidated") {
				log.Printf("  Skipping consolidated file: %s", name)
				res.SkippedFiles++
				res.Files = append(res.Files, FileOutcome{Folder: folder, Name: name, Status: "skipped", Reason: "prior consolidated output"})
				continue
			}

			rs, err := d.processFile(filepath.Join(folder, name))
			if err != nil {
				log.Printf("  Skipping %s: %v", name, err)
				res.SkippedFiles++
				res.Files = append(res.Files, FileOutcome{Folder: folder, Name: name, Status: "skipped", Reason: err.Error()})
				continue
			}
			sets = append(sets, rs)
			res.ProcessedFiles++
			res.Files = append(res.Files, FileOutcome{Folder: folder, Name: name, Status: "processed"})
		}
	}

	if len(sets) == 0 {
		return nil, ErrNoDataProcessed
	}

	table := Consolidate(sets)
	FormatForDisplay(table)
	// re-resolve on the consolidated table; idempotent under the fixed window
	ResolveTable(table, d.window)
	res.Table = table
	return res, nil
}

// processFile runs the full per-file stage chain
func (d *Driver) processFile(path string) (*model.RecordSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rs, err := parser.NewExtractor(f, filepath.Base(path)).Extract()
	if err != nil {
		return nil, err
	}

	parser.RectifyTimeColumns(rs)
	parser.CoerceDates(rs, f)
	ApplyTemporalFilters(rs, d.now)
	ApplyLocationFilter(rs)
	ResolveRecordSet(rs, d.window)

	if len(rs.Records) == 0 {
		return nil, &parser.EmptyDataError{}
	}
	return rs, nil
}
