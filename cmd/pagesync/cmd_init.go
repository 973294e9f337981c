package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/okvist/pagesync/internal/page"
)

// initCmd scaffolds a page skeleton file.
func initCmd() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	outFlag := fs.String("o", "page.yaml", "Output path")
	forceFlag := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(os.Args[2:])

	if !*forceFlag {
		if _, err := os.Stat(*outFlag); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", *outFlag)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(*outFlag, []byte(page.Scaffold), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outFlag)
}
