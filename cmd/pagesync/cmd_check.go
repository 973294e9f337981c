package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/okvist/pagesync/internal/config"
	"github.com/okvist/pagesync/internal/event"
	"github.com/okvist/pagesync/internal/layout"
	"github.com/okvist/pagesync/internal/scripting"
)

// checkCmd drives the synchronizer headlessly: load, an optional series
// of viewport widths, and an optional sidebar collapse. Unlike the TUI,
// check fails loud: any unresolvable measurement is a non-zero exit.
func checkCmd() {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	pageFlag := fs.String("page", "", "Path to a page skeleton file")
	widthsFlag := fs.String("widths", "", "Comma-separated viewport widths to resize through")
	collapseFlag := fs.Bool("collapse", false, "Finish with a sidebar collapse transition")
	fs.Parse(os.Args[2:])

	doc, err := loadDocument(*pageFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	failed := false
	syncer := layout.New(doc, layout.WithObserver(func(r layout.Record) {
		if r.Resolved {
			fmt.Printf("%-13s %s = %.4gpx @ %dx%d\n",
				r.Trigger, r.Applied, r.ResolvedPx, r.Viewport.Width, r.Viewport.Height)
			return
		}
		failed = true
		fmt.Printf("%-13s %s (unresolvable)\n", r.Trigger, r.Applied)
	}))

	bus := event.NewBus()
	defer syncer.Attach(bus)()

	engine := scripting.NewEngine(config.Load().ScriptTimeout)

	bus.Publish(event.Event{Kind: event.Load, Viewport: doc.Viewport()})

	if *widthsFlag != "" {
		for _, raw := range strings.Split(*widthsFlag, ",") {
			w, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil || w <= 0 {
				fmt.Fprintf(os.Stderr, "Error: bad width %q\n", raw)
				os.Exit(1)
			}
			vp := doc.Viewport()
			vp.Width = w
			doc.SetViewport(vp)
			if res := engine.RunResize(doc); res.Err != nil {
				fmt.Fprintln(os.Stderr, "Error:", res.Err)
				os.Exit(1)
			}
			bus.Publish(event.Event{Kind: event.Resize, Viewport: vp})
		}
	}

	if *collapseFlag {
		if sb := doc.Sidebar(); sb != nil {
			// Headless check skips the animation and jumps to the
			// settled collapsed state.
			sb.SetDeclared("left", "-"+sb.Computed("width"))
			bus.Publish(event.Event{Kind: event.TransitionEnd, Target: sb.ID, Viewport: doc.Viewport()})
		}
	}

	if failed {
		os.Exit(1)
	}
}
