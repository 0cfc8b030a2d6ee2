package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func jsonLogger(buf *bytes.Buffer, level string) *Logger {
	return NewWithWriter(&Config{Level: level, Format: "json"}, "test-svc", buf)
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("service = %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	l := New(&Config{Level: "nonsense", Format: "json"}, "test")
	if l == nil {
		t.Fatal("expected logger even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "debug")

	l.Info("hello", Fields("status", 200))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["service"] != "test-svc" {
		t.Errorf("service = %v", entry["service"])
	}
	if entry["status"] != float64(200) {
		t.Errorf("status = %v", entry["status"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "warn")

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("low-level events not filtered: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn event missing: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "debug").WithComponent("apiclient")

	l.Info("tagged")
	if !strings.Contains(buf.String(), `"component":"apiclient"`) {
		t.Errorf("component field missing: %q", buf.String())
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "debug").
		WithFields(map[string]interface{}{"op": "fetch"}).
		WithError(os.ErrNotExist)

	l.Error("boom")
	out := buf.String()
	if !strings.Contains(out, `"op":"fetch"`) {
		t.Errorf("field missing: %q", out)
	}
	if !strings.Contains(out, "file does not exist") {
		t.Errorf("error field missing: %q", out)
	}
}

func TestFieldsHelper(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("Fields = %v", m)
	}
	// odd trailing key is ignored
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("Fields = %v", m)
	}
}
