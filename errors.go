package mdnotebook

import (
	"errors"
	"fmt"
	"strings"
)

// Failure categories. A *ConversionError wraps exactly one of them.
var (
	ErrSourceNotFound  = errors.New("source file not found")
	ErrRead            = errors.New("read failed")
	ErrWrite           = errors.New("write failed")
	ErrInvalidNotebook = errors.New("invalid notebook")
)

// ConversionError reports a failed conversion step and the file involved.
type ConversionError struct {
	Kind error
	Op   string
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" || e.Path != "" {
		msg = strings.TrimSpace(e.Op+" "+e.Path) + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the category and the cause to errors.Is / errors.As.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, op, path string, cause error) *ConversionError {
	return &ConversionError{Kind: kind, Op: op, Path: path, Err: cause}
}
