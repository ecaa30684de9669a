// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log formats accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// newLogger builds the command logger on w at the named level.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, usageErrorf("--log-level %q: want debug, info, warn or error", level)
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case logFormatText:
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case logFormatJSON:
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, usageErrorf("--log-format %q: want %s or %s", format, logFormatText, logFormatJSON)
	}
}

// loggerOrDiscard returns l, or a logger dropping everything when l is nil.
func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sizeAttr renders a shape for log records.
func sizeAttr(rows, cols int) slog.Attr {
	return slog.String("shape", fmt.Sprintf("%dx%d", rows, cols))
}
