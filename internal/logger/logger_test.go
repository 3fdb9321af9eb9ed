package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/mtgsim/goldfish/pkg/types"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected types.LogLevel
	}{
		{"META", types.META},
		{"TURN", types.TURN},
		{"LINE", types.LINE},
		{"CARD", types.CARD},
		{"invalid", types.CARD},
		{"", types.CARD},
	}

	for _, test := range tests {
		result := ParseLogLevel(test.input)
		if result != test.expected {
			t.Errorf("ParseLogLevel(%s) = %d; expected %d", test.input, result, test.expected)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	original := currentLogLevel
	defer func() { currentLogLevel = original }()

	SetLogLevel(types.META)
	if currentLogLevel != types.META {
		t.Errorf("expected META, got %d", currentLogLevel)
	}

	SetLogLevel(types.LINE)
	if currentLogLevel != types.LINE {
		t.Errorf("expected LINE, got %d", currentLogLevel)
	}
}

func TestLoggingFunctionsRespectLevel(t *testing.T) {
	var buf bytes.Buffer
	originalLogger := logger.logger
	logger.logger = log.New(&buf, "", 0)
	defer func() { logger.logger = originalLogger }()

	SetLogLevel(types.CARD)
	buf.Reset()

	LogMeta("meta message")
	LogTurn("turn message")
	LogLine("line message")
	LogCard("card message")

	output := buf.String()
	for _, expected := range []string{
		"META: meta message",
		"TURN: turn message",
		"LINE: line message",
		"CARD: card message",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected output to contain %q, got: %s", expected, output)
		}
	}

	SetLogLevel(types.TURN)
	buf.Reset()

	LogMeta("meta message 2")
	LogTurn("turn message 2")
	LogLine("line message 2")
	LogCard("card message 2")

	output = buf.String()
	if !strings.Contains(output, "META: meta message 2") {
		t.Errorf("expected META logged at TURN level")
	}
	if !strings.Contains(output, "TURN: turn message 2") {
		t.Errorf("expected TURN logged at TURN level")
	}
	if strings.Contains(output, "LINE: line message 2") {
		t.Errorf("expected LINE not logged at TURN level")
	}
	if strings.Contains(output, "CARD: card message 2") {
		t.Errorf("expected CARD not logged at TURN level")
	}
}

func TestLoggingWithFormatting(t *testing.T) {
	var buf bytes.Buffer
	originalLogger := logger.logger
	logger.logger = log.New(&buf, "", 0)
	defer func() { logger.logger = originalLogger }()

	SetLogLevel(types.CARD)
	buf.Reset()

	LogTurn("player %s has %d lands", "Alice", 4)
	LogCard("drawing card: %s", "Primeval Titan")

	output := buf.String()
	if !strings.Contains(output, "TURN: player Alice has 4 lands") {
		t.Errorf("expected formatted TURN message, got: %s", output)
	}
	if !strings.Contains(output, "CARD: drawing card: Primeval Titan") {
		t.Errorf("expected formatted CARD message, got: %s", output)
	}
}
