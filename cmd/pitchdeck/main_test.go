package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/pitchdeck/config"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")

	var out, errOut bytes.Buffer
	cfg := config.Config{Version: "v1", Output: path, Thumbnail: true, LogLevel: slog.LevelInfo}
	if err := run(cfg, &out, &errOut); err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	if got, want := out.String(), "Presentation saved to: "+path+"\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if !strings.Contains(errOut.String(), "saved deck") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRun_V2Summary(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Version:  "v2",
		Output:   filepath.Join(dir, "deck_v2.pptx"),
		Outline:  filepath.Join(dir, "deck_v2.md"),
		LogLevel: slog.LevelError,
	}

	var out, errOut bytes.Buffer
	if err := run(cfg, &out, &errOut); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[1], "  - ") {
		t.Errorf("stdout = %q, want summary bullets", out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want nothing at error level", errOut.String())
	}
	if _, err := os.Stat(cfg.Outline); err != nil {
		t.Errorf("outline not written: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"unknown version", config.Config{Version: "v3", Output: filepath.Join(dir, "x.pptx")}},
		{"missing directory", config.Config{Version: "v1", Output: filepath.Join(dir, "nope", "x.pptx")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if err := run(tt.cfg, &out, &errOut); err == nil {
				t.Error("expected error")
			}
			if out.Len() != 0 {
				t.Errorf("stdout = %q, want nothing on failure", out.String())
			}
		})
	}
}
