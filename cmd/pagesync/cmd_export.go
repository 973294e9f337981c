package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/okvist/pagesync/internal/config"
	"github.com/okvist/pagesync/internal/export"
	"github.com/okvist/pagesync/internal/history"
)

// exportCmd dumps recompute history as pretty JSON on stdout.
func exportCmd() {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dbFlag := fs.String("db", "", "History database path")
	limitFlag := fs.Int("limit", 200, "Maximum entries to export")
	fs.Parse(os.Args[2:])

	dbPath := *dbFlag
	if dbPath == "" {
		cfg := config.Load()
		dbPath = cfg.HistoryDB
	}
	if dbPath == "" {
		dbPath = config.DefaultHistoryPath()
	}
	if dbPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no history database path")
		os.Exit(1)
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.List(*limitFlag, 0)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	out, err := export.JSON(entries)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
