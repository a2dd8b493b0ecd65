package config

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("pitchdeck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig() failed: %v", err)
	}
	want := Config{Version: "v1", Thumbnail: true, LogLevel: slog.LevelInfo}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseConfig_Env(t *testing.T) {
	t.Setenv("PITCHDECK_VERSION", "v2")
	t.Setenv("PITCHDECK_OUTPUT", "/tmp/deck.pptx")
	t.Setenv("PITCHDECK_PREVIEW_DIR", "/tmp/preview")
	t.Setenv("PITCHDECK_OUTLINE", "/tmp/deck.md")
	t.Setenv("PITCHDECK_THUMBNAIL", "false")
	t.Setenv("PITCHDECK_PROOF", "true")
	t.Setenv("PITCHDECK_LOG_LEVEL", "debug")

	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig() failed: %v", err)
	}
	want := Config{
		Version:    "v2",
		Output:     "/tmp/deck.pptx",
		PreviewDir: "/tmp/preview",
		Outline:    "/tmp/deck.md",
		Thumbnail:  false,
		Proof:      true,
		LogLevel:   slog.LevelDebug,
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PITCHDECK_VERSION", "v2")
	t.Setenv("PITCHDECK_OUTPUT", "/tmp/env.pptx")

	cfg, err := ParseConfig(newFlagSet(), []string{"-version", "v1", "-o", "/tmp/flag.pptx", "-log-level", "warn"})
	if err != nil {
		t.Fatalf("ParseConfig() failed: %v", err)
	}
	if cfg.Version != "v1" || cfg.Output != "/tmp/flag.pptx" || cfg.LogLevel != slog.LevelWarn {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	t.Run("bad env", func(t *testing.T) {
		t.Setenv("PITCHDECK_THUMBNAIL", "maybe")
		_, err := ParseConfig(newFlagSet(), nil)
		if err == nil || !strings.Contains(err.Error(), "parse env:") {
			t.Fatalf("expected parse env error, got %v", err)
		}
	})
	t.Run("bad level", func(t *testing.T) {
		t.Setenv("PITCHDECK_LOG_LEVEL", "loud")
		if _, err := ParseConfig(newFlagSet(), nil); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("unknown flag", func(t *testing.T) {
		if _, err := ParseConfig(newFlagSet(), []string{"-nope"}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: slog.LevelWarn}.Logger(&buf)

	logger.Info("hidden")
	logger.Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("log output = %q", out)
	}
}

// TestExitf_ExitsWithCode1 uses the subprocess pattern because os.Exit
// cannot be intercepted in-process.
func TestExitf_ExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitf_ExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "fatal: something broke") {
		t.Fatalf("expected output to contain %q, got %q", "fatal: something broke", string(out))
	}
}
