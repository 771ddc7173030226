// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level="+tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInit_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("shop_id", "abc").Msg("created")

	out := buf.String()
	if !strings.Contains(out, `"shop_id":"abc"`) {
		t.Errorf("output missing structured field: %s", out)
	}
	if !strings.Contains(out, `"message":"created"`) {
		t.Errorf("output missing message: %s", out)
	}
}

func TestCtx_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)
	SetLogger(logger)
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-123")
	Ctx(ctx).Info().Msg("handled")

	if !strings.Contains(buf.String(), `"request_id":"req-123"`) {
		t.Errorf("output missing request_id: %s", buf.String())
	}
}

func TestCtx_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	Ctx(context.Background()).Info().Msg("handled")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("output has request_id without one in context: %s", buf.String())
	}
}

func TestLoggerFromContext_Fallback(t *testing.T) {
	var buf bytes.Buffer
	stored := NewTestLogger(&buf)

	ctx := ContextWithLogger(context.Background(), stored)
	got := LoggerFromContext(ctx)
	got.Info().Msg("via context")

	if !strings.Contains(buf.String(), "via context") {
		t.Error("stored logger was not returned from context")
	}

	// Without a stored logger the global one is returned; just verify it
	// does not panic.
	fallback := LoggerFromContext(context.Background())
	fallback.Debug().Msg("global")
}

func TestSlogHandler_WritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	slogger := slog.New(handler)

	slogger.Info("supervisor event", "service", "http-server", "attempt", int64(2))

	out := buf.String()
	if !strings.Contains(out, `"service":"http-server"`) {
		t.Errorf("output missing string attr: %s", out)
	}
	if !strings.Contains(out, `"attempt":2`) {
		t.Errorf("output missing int attr: %s", out)
	}
}

func TestSlogHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	slogger := slog.New(handler).WithGroup("suture").With("tree", "root")

	slogger.Warn("service failed")

	if !strings.Contains(buf.String(), `"suture.tree":"root"`) {
		t.Errorf("output missing grouped attr: %s", buf.String())
	}
}

func TestGenerateRequestID_Unique(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	if a == b {
		t.Error("GenerateRequestID returned duplicate IDs")
	}
	if len(a) != 36 {
		t.Errorf("request ID %q is not a UUID", a)
	}
}
