package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme == "" {
		t.Error("default theme should be set")
	}
	if cfg.Transition != 300*time.Millisecond {
		t.Errorf("default transition: %v", cfg.Transition)
	}
	if cfg.Devtools != "" {
		t.Error("devtools should be off by default")
	}
}

func TestParseMergesOverDefaults(t *testing.T) {
	data := []byte("theme: mono\ntransition: 150ms\ndevtools: \"127.0.0.1:7119\"\n")

	cfg := parse(data, DefaultConfig())
	if cfg.Theme != "mono" {
		t.Errorf("theme: %q", cfg.Theme)
	}
	if cfg.Transition != 150*time.Millisecond {
		t.Errorf("transition: %v", cfg.Transition)
	}
	if cfg.Devtools != "127.0.0.1:7119" {
		t.Errorf("devtools: %q", cfg.Devtools)
	}
	// Untouched keys keep defaults.
	if cfg.ScriptTimeout != 2*time.Second {
		t.Errorf("script timeout: %v", cfg.ScriptTimeout)
	}
}

func TestParseBadInputKeepsDefaults(t *testing.T) {
	for _, data := range []string{
		"transition: soon\n",
		"{not yaml",
	} {
		cfg := parse([]byte(data), DefaultConfig())
		if cfg != DefaultConfig() {
			t.Errorf("parse(%q) should keep defaults, got %+v", data, cfg)
		}
	}
}
