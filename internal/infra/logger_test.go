package infra

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info", FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info().Str("owner", "octocat").Msg("test message")

	output := buf.String()
	if !strings.Contains(output, `"level":"info"`) {
		t.Fatalf("expected info level in output, got: %s", output)
	}
	if !strings.Contains(output, `"owner":"octocat"`) {
		t.Fatalf("expected field in output, got: %s", output)
	}
	if !strings.Contains(output, `"message":"test message"`) {
		t.Fatalf("expected message in output, got: %s", output)
	}
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "error", FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info().Msg("dropped")
	logger.Error().Msg("kept")

	output := buf.String()
	if strings.Contains(output, "dropped") {
		t.Fatalf("expected info to be filtered, got: %s", output)
	}
	if !strings.Contains(output, "kept") {
		t.Fatalf("expected error message in output, got: %s", output)
	}
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", FormatConsole)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "ERR") {
		t.Fatalf("expected ERR in output, got: %s", output)
	}
	if !strings.Contains(output, "error message") {
		t.Fatalf("expected message in output, got: %s", output)
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	if _, err := NewLogger(&bytes.Buffer{}, "loud", FormatJSON); err == nil {
		t.Fatalf("expected error for bad level")
	}
	if _, err := NewLogger(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Fatalf("expected error for bad format")
	}
}
