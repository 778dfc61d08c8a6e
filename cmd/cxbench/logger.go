// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"
	"log/slog"
)

// nopHandler discards every record; Enabled is false so attributes are
// never formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newLogger returns a text logger on w at info level, debug when verbose,
// or a silent logger when quiet.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	if quiet {
		return slog.New(nopHandler{})
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
