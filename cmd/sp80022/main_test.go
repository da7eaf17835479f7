package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kestrelstat/sp80022/internal/config"
)

func TestSetupLogging(t *testing.T) {
	origLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(origLevel)

	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			setupLogging(tt.level)
			if zerolog.GlobalLevel() != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, zerolog.GlobalLevel())
			}
		})
	}
}

func TestLoadSequenceRandom(t *testing.T) {
	cfg := &config.Config{Mode: "random", RandomLen: 256}
	bits, err := loadSequence(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bits.Len() != 256 {
		t.Errorf("expected 256 bits, got %d", bits.Len())
	}
}

func TestLoadSequenceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.bin")
	if err := os.WriteFile(path, []byte{0xFF, 0x00, 0xAB}, 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	cfg := &config.Config{Mode: "file", InputPath: path}
	bits, err := loadSequence(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bits.Len() != 24 {
		t.Errorf("expected 24 bits, got %d", bits.Len())
	}
}

func TestLoadSequenceUnknownMode(t *testing.T) {
	cfg := &config.Config{Mode: "bogus"}
	if _, err := loadSequence(cfg); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestLoadSequenceMissingFile(t *testing.T) {
	cfg := &config.Config{Mode: "file", InputPath: "/nonexistent/path/does-not-exist"}
	if _, err := loadSequence(cfg); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPrintJSON(t *testing.T) {
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	type payload struct {
		Name string `json:"name"`
	}
	if err := printJSON(payload{Name: "monobit"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Close()

	var buf bytes.Buffer
	buf.ReadFrom(r)

	var decoded payload
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if decoded.Name != "monobit" {
		t.Errorf("expected name monobit, got %q", decoded.Name)
	}
}
