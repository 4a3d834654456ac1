// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"context"
	"fmt"
	"log/slog"
)

// DebugMessage is a message delivered by the driver's debug output.
type DebugMessage struct {
	Source   Enum
	Type     Enum
	ID       uint
	Severity Enum
	Message  string
}

func (m DebugMessage) String() string {
	return fmt.Sprintf("\n[OpenGL Debug Message] (%d)\nSource:   %s\nType:     %s\nSeverity: %s\nMessage:  %s\n\n",
		m.ID,
		DebugSourceString(m.Source),
		DebugTypeString(m.Type),
		DebugSeverityString(m.Severity),
		m.Message)
}

func DebugSourceString(source Enum) string {
	switch source {
	case DEBUG_SOURCE_API:
		return "API"
	case DEBUG_SOURCE_WINDOW_SYSTEM:
		return "WINDOW_SYSTEM"
	case DEBUG_SOURCE_SHADER_COMPILER:
		return "SHADER_COMPILER"
	case DEBUG_SOURCE_THIRD_PARTY:
		return "THIRD_PARTY"
	case DEBUG_SOURCE_APPLICATION:
		return "APPLICATION"
	case DEBUG_SOURCE_OTHER:
		return "OTHER"
	default:
		return "??"
	}
}

func DebugTypeString(typ Enum) string {
	switch typ {
	case DEBUG_TYPE_ERROR:
		return "ERROR"
	case DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "DEPRECATED_BEHAVIOR"
	case DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "UNDEFINED_BEHAVIOR"
	case DEBUG_TYPE_PORTABILITY:
		return "PORTABILITY"
	case DEBUG_TYPE_PERFORMANCE:
		return "PERFORMANCE"
	case DEBUG_TYPE_MARKER:
		return "MARKER"
	case DEBUG_TYPE_PUSH_GROUP:
		return "PUSH_GROUP"
	case DEBUG_TYPE_POP_GROUP:
		return "POP_GROUP"
	case DEBUG_TYPE_OTHER:
		return "OTHER"
	default:
		return "??"
	}
}

func DebugSeverityString(severity Enum) string {
	switch severity {
	case DEBUG_SEVERITY_HIGH:
		return "HIGH"
	case DEBUG_SEVERITY_MEDIUM:
		return "MEDIUM"
	case DEBUG_SEVERITY_LOW:
		return "LOW"
	case DEBUG_SEVERITY_NOTIFICATION:
		return "NOTIFICATION"
	default:
		return "??"
	}
}

// EnableDebugOutput turns on synchronous debug output and delivers every
// message to handler on the thread that caused it.
func EnableDebugOutput(f Functions, handler func(DebugMessage)) {
	f.Enable(DEBUG_OUTPUT)
	f.Enable(DEBUG_OUTPUT_SYNCHRONOUS)
	f.DebugMessageCallback(handler)
}

// InsertDebugMessage injects an application message into the debug
// stream.
func InsertDebugMessage(f Functions, id uint, severity Enum, msg string) {
	f.DebugMessageInsert(DebugMessage{
		Source:   DEBUG_SOURCE_APPLICATION,
		Type:     DEBUG_TYPE_MARKER,
		ID:       id,
		Severity: severity,
		Message:  msg,
	})
}

// LogDebugMessages returns a debug handler that writes to l.
func LogDebugMessages(l *slog.Logger) func(DebugMessage) {
	return func(m DebugMessage) {
		l.Log(context.Background(), debugLevel(m.Severity), m.Message,
			"id", m.ID,
			"source", DebugSourceString(m.Source),
			"type", DebugTypeString(m.Type),
		)
	}
}

func debugLevel(severity Enum) slog.Level {
	switch severity {
	case DEBUG_SEVERITY_HIGH:
		return slog.LevelError
	case DEBUG_SEVERITY_MEDIUM:
		return slog.LevelWarn
	case DEBUG_SEVERITY_LOW:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
