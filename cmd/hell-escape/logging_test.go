package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_OffDiscards(t *testing.T) {
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("Expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected io.Discard, got %v", log.Writer())
	}
}

func TestSetupLogging_WritesFile(t *testing.T) {
	defer os.RemoveAll(logDir)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file with debug")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("Expected logs kept off the terminal")
	}

	log.Printf("[test] hello")
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "[test] hello") {
		t.Errorf("Expected message in log, got %q", data)
	}
}

func TestSetupLogging_RotatesLargeFile(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected a log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("Expected one rotated file, got %d", rotated)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected a fresh log file, got %d bytes", info.Size())
	}
}
