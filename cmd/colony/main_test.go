package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
		want    log.Level
	}{
		{"debug", "debug", false, log.DebugLevel},
		{"warn", "warn", false, log.WarnLevel},
		{"invalid", "loud", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagLogLevel, flagLogFile = tc.level, ""
			t.Cleanup(func() { flagLogLevel = "info" })

			logger, done, err := newLogger(io.Discard, "test")
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger failed: %v", err)
			}
			defer done()
			if logger.GetLevel() != tc.want {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tc.want)
			}
		})
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "colony.log")
	flagLogLevel, flagLogFile = "info", path
	t.Cleanup(func() { flagLogFile = "" })

	logger, done, err := newLogger(io.Discard, "test")
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info("session reset", "preset", "small")
	done()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "preset=small") {
		t.Errorf("log file = %q, want the preset field", data)
	}
}

func TestRuntimeConfig(t *testing.T) {
	flagFPS, flagSeed = 30, 99
	t.Cleanup(func() { flagFPS, flagSeed = 60, 0 })

	cfg := runtimeConfig(100, 40)
	if cfg.ScreenW != 100 || cfg.ScreenH != 40 || cfg.TickRate != 30 || cfg.Seed != 99 {
		t.Errorf("runtimeConfig = %+v", cfg)
	}
}
