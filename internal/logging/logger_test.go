package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Cleanup(func() { SetLogger(nil) })

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is set")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	t.Cleanup(func() { SetLogger(nil) })

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestInitializeWithOutput_File(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	path := filepath.Join(t.TempDir(), "consultacep.log")

	if err := InitializeWithOutput("info", path); err != nil {
		t.Fatalf("InitializeWithOutput() error = %v", err)
	}
	LogLookup("01310100", 3)
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "Lookup submitted") || !strings.Contains(out, "01310100") {
		t.Errorf("log file missing lookup entry: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("file output should not carry color codes")
	}
}

func TestGetLogger_FallbackNop(t *testing.T) {
	SetLogger(nil)
	if GetLogger() == nil {
		t.Fatal("GetLogger() returned nil")
	}
}

func TestLogOutcome(t *testing.T) {
	logs := observe(t)

	LogOutcome("01310100", 1, "success", "none", nil)
	LogOutcome("99999999", 2, "failed", "not_found", errors.New("CEP não encontrado"))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0].Level != zapcore.InfoLevel || entries[0].Message != "Lookup finished" {
		t.Errorf("first entry = %v %q", entries[0].Level, entries[0].Message)
	}
	if _, ok := entries[0].ContextMap()["kind"]; ok {
		t.Error("successful outcome should not log a kind")
	}

	second := entries[1]
	if second.Level != zapcore.WarnLevel {
		t.Errorf("failed outcome level = %v, want warn", second.Level)
	}
	fields := second.ContextMap()
	if fields["kind"] != "not_found" || fields["cep"] != "99999999" {
		t.Errorf("failed outcome fields = %v", fields)
	}
	if fields["generation"] != uint64(2) {
		t.Errorf("generation = %v, want 2", fields["generation"])
	}
}

func TestLogHTTPRequest(t *testing.T) {
	logs := observe(t)

	LogHTTPRequest("127.0.0.1:5000", "GET", "/cep/01310100", 200, "req-1")

	entries := logs.FilterMessage("HTTP request served").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status_code"] != int64(200) || fields["path"] != "/cep/01310100" {
		t.Errorf("fields = %v", fields)
	}
}
