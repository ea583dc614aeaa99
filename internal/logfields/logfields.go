package logfields

import "log/slog"

// Canonical log field names shared by the library and the CLI.
const (
	KeyComponent  = "component"
	KeySource     = "source"
	KeyOutput     = "output"
	KeyLine       = "line"
	KeyWarning    = "warning_kind"
	KeyCells      = "cells"
	KeyCodeCells  = "code_cells"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }
func Source(path string) slog.Attr { return slog.String(KeySource, path) }
func Output(path string) slog.Attr { return slog.String(KeyOutput, path) }
func Line(n int) slog.Attr { return slog.Int(KeyLine, n) }
func Warning(kind string) slog.Attr { return slog.String(KeyWarning, kind) }
func Cells(n int) slog.Attr { return slog.Int(KeyCells, n) }
func CodeCells(n int) slog.Attr { return slog.Int(KeyCodeCells, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
