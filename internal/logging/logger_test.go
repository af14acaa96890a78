package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"aurgen/internal/logging"
)

func TestNewConsoleWritesMessageAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("wrote install script", "source", "/tmp/output_1.txt", "packages", 3)

	out := buf.String()
	for _, want := range []string{"INFO", "wrote install script", "source=/tmp/output_1.txt", "packages=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color disabled by default, got escape codes:\n%s", out)
	}
}

func TestNewConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line should be filtered:\n%s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line missing:\n%s", out)
	}
}

func TestNewConsoleColor(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf, Color: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Error("boom")

	if !strings.Contains(buf.String(), "\x1b[31m") {
		t.Errorf("expected red level label:\n%q", buf.String())
	}
}

func TestNewConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("skip", "reason", "output exists")

	if !strings.Contains(buf.String(), `reason="output exists"`) {
		t.Errorf("value not quoted:\n%s", buf.String())
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("wrote install script", "packages", 2)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("json output not parseable: %v\n%s", err, buf.String())
	}
	if line["msg"] != "wrote install script" {
		t.Errorf("msg = %v", line["msg"])
	}
	if line["level"] != "info" {
		t.Errorf("level = %v", line["level"])
	}
	if line["packages"] != float64(2) {
		t.Errorf("packages = %v", line["packages"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewNop(t *testing.T) {
	logger := logging.NewNop()
	logger.Info("discarded")
	logger.Error("discarded too")
}
