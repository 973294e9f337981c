package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// configFile mirrors Config with durations as strings, since yaml has
// no native duration type.
type configFile struct {
	Theme         string `yaml:"theme"`
	HistoryDB     string `yaml:"history_db"`
	Transition    string `yaml:"transition"`
	ScriptTimeout string `yaml:"script_timeout"`
	Devtools      string `yaml:"devtools"`
}

// Load loads configuration from ~/.config/pagesync/config.yaml.
func Load() Config {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}

	path := filepath.Join(home, ".config", "pagesync", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	return parse(data, cfg)
}

// parse merges data over cfg, keeping cfg's values for keys the file
// omits or sets to something unusable.
func parse(data []byte, cfg Config) Config {
	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg
	}
	if f.Theme != "" {
		cfg.Theme = f.Theme
	}
	if f.HistoryDB != "" {
		cfg.HistoryDB = f.HistoryDB
	}
	if f.Devtools != "" {
		cfg.Devtools = f.Devtools
	}
	if d, err := time.ParseDuration(f.Transition); err == nil && d > 0 {
		cfg.Transition = d
	}
	if d, err := time.ParseDuration(f.ScriptTimeout); err == nil && d > 0 {
		cfg.ScriptTimeout = d
	}
	return cfg
}

// DefaultHistoryPath returns where history lives when the config does
// not name a path.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".local", "share", "pagesync")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ""
	}
	return filepath.Join(dir, "history.db")
}
