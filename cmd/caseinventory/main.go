package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/TeamsTransport/CaseInventory/internal/config"
	"github.com/TeamsTransport/CaseInventory/internal/exporter"
	"github.com/TeamsTransport/CaseInventory/internal/pipeline"
	"github.com/TeamsTransport/CaseInventory/internal/store"
)

var (
	folders = flag.String("folders", "", "comma-separated source folders (overrides config)")
	outDir  = flag.String("out", "", "output directory (overrides config)")
	dbPath  = flag.String("db", "", "run-history database path (overrides config)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  CaseInventory - Inventory Consolidation")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if *folders != "" {
		cfg.Data.Folders = strings.Split(*folders, ",")
	}
	if *outDir != "" {
		cfg.Data.OutputDir = *outDir
	}
	if *dbPath != "" {
		cfg.Data.DBPath = *dbPath
	}
	if len(cfg.Data.Folders) == 0 {
		log.Fatal("No source folders configured; set data.folders in config.toml or pass -folders")
	}

	// run history is best effort; the consolidation must not depend on it
	var st *store.Store
	if st, err = store.New(cfg.Data.DBPath); err != nil {
		log.Printf("Run history unavailable: %v", err)
		st = nil
	} else {
		defer st.Close()
	}

	now := time.Now()
	runID := recordRunStart(st, now)

	driver := pipeline.NewDriver(now)
	result, err := driver.ProcessFolders(cfg.Data.Folders)
	if err != nil {
		recordRunFinish(st, runID, "failed", result, "")
		if errors.Is(err, pipeline.ErrNoDataProcessed) {
			log.Fatalf("Error: %v", err)
		}
		log.Fatalf("Consolidation failed: %v", err)
	}

	outputName := fmt.Sprintf("ConsolidatedInventory_%s.xlsx", now.Format("20060102_150405"))
	outputPath := filepath.Join(cfg.Data.OutputDir, outputName)

	writer := exporter.NewWriter(result.Window, cfg.Report.ReferenceCode)
	if err := writer.Write(result.Table, outputPath); err != nil {
		recordRunFinish(st, runID, "failed", result, "")
		log.Fatalf("Failed to write output workbook: %v", err)
	}

	recordRunFinish(st, runID, "completed", result, outputPath)

	fmt.Println("\nProcessing complete:")
	fmt.Printf("- Processed folders: %d\n", len(cfg.Data.Folders))
	fmt.Printf("- Successfully processed files: %d\n", result.ProcessedFiles)
	fmt.Printf("- Skipped files: %d\n", result.SkippedFiles)
	fmt.Printf("\nSaved consolidated data to: %s\n", outputPath)
	fmt.Printf("\nSummary:\n")
	fmt.Printf("Total rows: %d\n", len(result.Table.Records))
	fmt.Printf("Columns: %d\n", len(result.Table.Columns))
}

func recordRunStart(st *store.Store, now time.Time) string {
	if st == nil {
		return ""
	}
	id, err := st.CreateRun(now)
	if err != nil {
		log.Printf("Failed to record run: %v", err)
		return ""
	}
	return id
}

func recordRunFinish(st *store.Store, runID, status string, result *pipeline.Result, outputPath string) {
	if st == nil || runID == "" {
		return
	}
	processed, skipped, rows := 0, 0, 0
	if result != nil {
		processed = result.ProcessedFiles
		skipped = result.SkippedFiles
		if result.Table != nil {
			rows = len(result.Table.Records)
		}
		for _, fo := range result.Files {
			if err := st.RecordFile(runID, fo.Folder, fo.Name, fo.Status, fo.Reason); err != nil {
				log.Printf("Failed to record file outcome: %v", err)
			}
		}
	}
	if err := st.FinishRun(runID, status, processed, skipped, rows, outputPath); err != nil {
		log.Printf("Failed to finish run record: %v", err)
	}
}
