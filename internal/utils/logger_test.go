package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetLoggerIsSingleton(t *testing.T) {
	if GetLogger() != GetLogger() {
		t.Error("GetLogger must return the same instance")
	}
}

func TestLoggerWritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "server.log")
	if err := InitLogger(logFile); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}

	logger := GetLogger()
	logger.Infof("thread %s seeded", "dm_Samira")
	logger.Errorf("save failed: %v", os.ErrPermission)

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(content)

	if !strings.Contains(out, "[INFO]") || !strings.Contains(out, "thread dm_Samira seeded") {
		t.Errorf("info line missing from log output: %q", out)
	}
	if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "save failed") {
		t.Errorf("error line missing from log output: %q", out)
	}
	// The call site must point at the caller, not the logger internals.
	if !strings.Contains(out, "logger_test.go:") {
		t.Errorf("log lines should carry the call site: %q", out)
	}
}

func TestInitLoggerReplacesFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	if err := InitLogger(first); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	if err := InitLogger(second); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}

	GetLogger().Warnf("rotated")

	content, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "[WARN] ") {
		t.Errorf("warning should land in the newest log file: %q", content)
	}
}
