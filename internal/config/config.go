package config

import "time"

// Config holds the application configuration.
type Config struct {
	Theme         string
	HistoryDB     string
	Transition    time.Duration
	ScriptTimeout time.Duration
	Devtools      string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:         "slate",
		HistoryDB:     "",
		Transition:    300 * time.Millisecond,
		ScriptTimeout: 2 * time.Second,
		Devtools:      "",
	}
}
