package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{" error ", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}
	for _, tc := range testCases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInit_JSON(t *testing.T) {
	var buf bytes.Buffer
	Init("warn", "json", &buf)
	defer Init("info", "text", &bytes.Buffer{})

	Logger.Info("hidden")
	Logger.WithField("year", "abc").Warn("fallback")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if got, want := entry["msg"], "fallback"; got != want {
		t.Errorf("msg = %v, want %v", got, want)
	}
	if got, want := entry["year"], "abc"; got != want {
		t.Errorf("year = %v, want %v", got, want)
	}
	if file, _ := entry["file"].(string); !strings.HasPrefix(file, "logging_test.go:") {
		t.Errorf("file = %q, want logging_test.go:<line>", file)
	}
}
