package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okvist/pagesync/internal/app"
	"github.com/okvist/pagesync/internal/config"
	"github.com/okvist/pagesync/internal/devtools"
	"github.com/okvist/pagesync/internal/history"
	"github.com/okvist/pagesync/internal/page"
	"github.com/okvist/pagesync/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "check":
			checkCmd()
			return
		case "init":
			initCmd()
			return
		case "export":
			exportCmd()
			return
		case "version":
			fmt.Printf("pagesync %s (%s) built %s\n", version.Version, version.Commit, version.Date)
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `pagesync - sidebar/main-content layout synchronizer and inspector

Usage:
  pagesync [flags]                 Launch the inspector TUI
  pagesync <command> [flags]       Run a subcommand

Commands:
  check     Run the synchronizer headlessly against a page file
  init      Scaffold a page.yaml skeleton
  export    Export recompute history as JSON
  version   Print version information
  help      Show this help message

TUI Flags:
  --page <path>      Page skeleton file (default: built-in skeleton)
  --devtools <addr>  Serve a websocket event stream on addr

Run 'pagesync <command> --help' for more about a command.
`)
}

func loadDocument(path string) (*page.Document, error) {
	if path == "" {
		return page.DefaultDocument(), nil
	}
	return page.Load(path)
}

func tuiCmd() {
	fs := flag.NewFlagSet("pagesync", flag.ExitOnError)
	pageFlag := fs.String("page", "", "Path to a page skeleton file")
	devFlag := fs.String("devtools", "", "Address for the devtools event stream")
	fs.Parse(os.Args[1:])

	cfg := config.Load()

	doc, err := loadDocument(*pageFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// History is best-effort; the inspector works without it.
	var store *history.Store
	dbPath := cfg.HistoryDB
	if dbPath == "" {
		dbPath = config.DefaultHistoryPath()
	}
	if dbPath != "" {
		if s, err := history.NewStore(dbPath); err == nil {
			store = s
			defer store.Close()
		}
	}

	var dev *devtools.Server
	addr := *devFlag
	if addr == "" {
		addr = cfg.Devtools
	}
	if addr != "" {
		dev = devtools.NewServer()
		if err := dev.Listen(addr); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		defer dev.Close()
	}

	a := app.New(doc, cfg, store, dev)
	p := tea.NewProgram(a, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
