package page

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type pageFile struct {
	Viewport struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"viewport"`
	Sidebar string `yaml:"sidebar"`
	Main    string `yaml:"main"`
	// Duration string like "300ms"; yaml has no native duration type.
	Transition string `yaml:"transition"`
	Elements   []struct {
		ID     string            `yaml:"id"`
		Styles map[string]string `yaml:"styles"`
	} `yaml:"elements"`
	OnResize string `yaml:"onresize"`
}

// Load reads a page skeleton definition from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse parses a page skeleton definition.
func Parse(data []byte) (*Document, error) {
	var pf pageFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing page file: %w", err)
	}

	vp := Size{Width: pf.Viewport.Width, Height: pf.Viewport.Height}
	if vp.Width <= 0 {
		vp.Width = 1280
	}
	if vp.Height <= 0 {
		vp.Height = 800
	}

	d := NewDocument(vp)
	d.SidebarID = pf.Sidebar
	d.MainID = pf.Main
	if d.SidebarID == "" {
		d.SidebarID = "sidebar"
	}
	if d.MainID == "" {
		d.MainID = "main"
	}
	d.Transition = 300 * time.Millisecond
	if pf.Transition != "" {
		tr, err := time.ParseDuration(pf.Transition)
		if err != nil {
			return nil, fmt.Errorf("parsing page file: transition: %w", err)
		}
		if tr > 0 {
			d.Transition = tr
		}
	}
	d.OnResize = pf.OnResize

	for _, el := range pf.Elements {
		if el.ID == "" {
			return nil, fmt.Errorf("parsing page file: element without id")
		}
		d.Add(NewElement(el.ID, el.Styles))
	}
	return d, nil
}

// Scaffold is the page file written by `pagesync init`.
const Scaffold = `# pagesync page skeleton
viewport:
  width: 1280
  height: 800

sidebar: sidebar
main: main

# How long the sidebar's collapse/expand transition runs.
transition: 300ms

elements:
  - id: sidebar
    styles:
      width: "240px"
      left: "0px"
  - id: main
    styles:
      min-width: "600px"

# Optional responsive hook, run before every resize event. The hook can
# restyle elements based on the new viewport, like a media query would.
onresize: |
  if (viewport.width < 900) {
    page.get("sidebar").set("width", "64px");
  } else {
    page.get("sidebar").set("width", "240px");
  }
`
