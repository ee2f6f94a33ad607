package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/TeamsTransport/CaseInventory/internal/config"
	"github.com/TeamsTransport/CaseInventory/internal/server"
	"github.com/TeamsTransport/CaseInventory/internal/store"
)

var (
	port    = flag.Int("port", 0, "listen port (overrides config)")
	dbPath  = flag.String("db", "", "run-history database path (overrides config)")
	devMode = flag.Bool("dev", false, "development mode")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Data.DBPath = *dbPath
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	st, err := store.New(cfg.Data.DBPath)
	if err != nil {
		log.Fatalf("Failed to open run-history database: %v", err)
	}
	defer st.Close()

	srv := server.New(st, cfg.Server.DevMode)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Report API listening on %s", addr)
	if err := srv.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
