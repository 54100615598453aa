package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tasksouls.log")
	logger, closer, err := New(Options{Level: "debug", Path: path})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("souls awarded", "amount", 55)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, "souls awarded") || !strings.Contains(out, "amount=55") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, closer, err := New(Options{Level: "not-a-level"})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	defer closer.Close()
	if logger.GetLevel() != log.InfoLevel {
		t.Fatalf("expected info fallback, got %v", logger.GetLevel())
	}
	logger.Info("dropped")
}
