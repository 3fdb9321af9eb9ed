// Package logger provides leveled logging for the goldfish search engine.
package logger

import (
	"log"
	"os"

	"github.com/mtgsim/goldfish/pkg/types"
)

var currentLogLevel = types.META

var logger = &Logger{
	logger: log.New(os.Stdout, "", log.Ltime),
}

// Logger wraps the standard logger with goldfish-specific level gating.
type Logger struct {
	logger *log.Logger
}

// SetLogLevel sets the current logging level.
func SetLogLevel(level types.LogLevel) {
	currentLogLevel = level
}

// LogMeta logs simulation-level messages (one per trial).
func LogMeta(message string, args ...interface{}) {
	if currentLogLevel >= types.META {
		logger.logger.Printf("META: "+message, args...)
	}
}

// LogTurn logs turn-driver transitions (frontier size, turn advance).
func LogTurn(message string, args ...interface{}) {
	if currentLogLevel >= types.TURN {
		logger.logger.Printf("TURN: "+message, args...)
	}
}

// LogLine mirrors a transcript line as it is appended to a state's notes.
func LogLine(message string, args ...interface{}) {
	if currentLogLevel >= types.LINE {
		logger.logger.Printf("LINE: "+message, args...)
	}
}

// LogCard logs handler-level detail (a single card's effect resolving).
func LogCard(message string, args ...interface{}) {
	if currentLogLevel >= types.CARD {
		logger.logger.Printf("CARD: "+message, args...)
	}
}

// ParseLogLevel parses a string into a LogLevel, defaulting to CARD (the
// most verbose level) for an unrecognized name.
func ParseLogLevel(level string) types.LogLevel {
	switch level {
	case "META":
		return types.META
	case "TURN":
		return types.TURN
	case "LINE":
		return types.LINE
	case "CARD":
		return types.CARD
	default:
		return types.CARD
	}
}

// FatalCatalogMiss aborts the process because a card absent from the
// catalog was cast, played, cycled, or sacrificed. This is a configuration
// error: correctness depends on complete card data, so it must never be
// silently swallowed.
func FatalCatalogMiss(action, card string) {
	log.Fatalf("catalog miss: no entry for %q (attempted %s)", card, action)
}

// FatalMissingHandler aborts the process because a card with no registered
// cast_/sacrifice_ handler was about to resolve. Missing play_* and cycle_*
// handlers are instead a logged no-op (LogCard is used there, not this).
func FatalMissingHandler(kind, slug string) {
	log.Fatalf("no %s handler registered for slug %q", kind, slug)
}
