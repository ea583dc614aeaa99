// Package segmenter splits Markdown source into markdown and python code
// cells by tracking fenced code blocks line by line.
package segmenter

import (
	"fmt"
	"strings"

	"github.com/riverfjs/mdnotebook-go/internal/buffer"
	"github.com/riverfjs/mdnotebook-go/internal/types"
)

// Mode is the segmenter state.
type Mode int

const (
	// Outside is prose between fenced blocks.
	Outside Mode = iota
	// InPythonBlock is inside a ```python block.
	InPythonBlock
	// InOtherBlock is inside a fenced block of any other language.
	InOtherBlock
)

func (m Mode) String() string {
	switch m {
	case Outside:
		return "outside"
	case InPythonBlock:
		return "python"
	case InOtherBlock:
		return "other"
	default:
		return "unknown"
	}
}

// Result is the outcome of segmenting one document.
type Result struct {
	Cells    []types.Cell
	Warnings []types.Warning
}

// Segmenter is a single-use state machine. Feed every line in order, then
// call Finish exactly once.
type Segmenter struct {
	mode       Mode
	buf        *buffer.LineBuffer
	line       int
	blockStart int
	cells      []types.Cell
	warnings   []types.Warning
}

// New returns a Segmenter in the Outside state with an empty buffer.
func New() *Segmenter {
	return &Segmenter{
		mode:  Outside,
		buf:   buffer.New(),
		cells: make([]types.Cell, 0),
	}
}

// Mode returns the current state.
func (s *Segmenter) Mode() Mode {
	return s.mode
}

// Feed consumes one line, terminator included.
func (s *Segmenter) Feed(line string) {
	s.line++

	switch s.mode {
	case Outside:
		switch ClassifyOpen(line) {
		case PythonOpen:
			s.flushMarkdown(s.line - 1)
			s.blockStart = s.line
			s.mode = InPythonBlock
		case GenericOpen:
			s.flushMarkdown(s.line - 1)
			s.blockStart = s.line
			s.buf.Write(line, s.line)
			s.mode = InOtherBlock
		default:
			s.buf.Write(line, s.line)
		}

	case InPythonBlock:
		if IsClose(line) {
			s.flushCode(s.line)
			s.mode = Outside
			return
		}
		s.buf.Write(line, s.line)

	case InOtherBlock:
		s.buf.Write(line, s.line)
		if IsClose(line) {
			s.flushMarkdown(s.line)
			s.mode = Outside
		}
	}
}

// Finish applies end-of-input handling and returns the cells. An open block
// is flushed as its best-guess type and reported as a warning.
func (s *Segmenter) Finish() Result {
	switch s.mode {
	case InPythonBlock:
		s.warn(types.WarningUnterminatedFence, s.blockStart,
			fmt.Sprintf("input ended inside a python block opened at line %d; treating the rest as code", s.blockStart))
		s.flushCode(s.line)
	case InOtherBlock:
		s.warn(types.WarningUnterminatedFence, s.blockStart,
			fmt.Sprintf("input ended inside a fenced block opened at line %d; treating the rest as markdown", s.blockStart))
		s.flushMarkdown(s.line)
	default:
		s.flushMarkdown(s.line)
	}

	res := Result{Cells: s.cells, Warnings: s.warnings}
	s.mode = Outside
	s.cells = nil
	s.warnings = nil
	s.line = 0
	return res
}

func (s *Segmenter) flushMarkdown(endLine int) {
	if s.buf.Empty() {
		return
	}
	start := s.buf.StartLine()
	s.cells = append(s.cells, types.NewMarkdownCell(s.buf.Flush(), start, endLine))
}

func (s *Segmenter) flushCode(endLine int) {
	if s.buf.Empty() {
		return
	}
	s.cells = append(s.cells, types.NewCodeCell(s.buf.Flush(), s.blockStart, endLine))
}

func (s *Segmenter) warn(kind types.WarningKind, line int, msg string) {
	s.warnings = append(s.warnings, types.Warning{Kind: kind, Line: line, Message: msg})
}

// Segment runs a fresh Segmenter over lines.
func Segment(lines []string) Result {
	s := New()
	for _, line := range lines {
		s.Feed(line)
	}
	return s.Finish()
}

// SegmentText splits text into lines and segments it.
func SegmentText(text string) Result {
	return Segment(SplitLines(text))
}

// SplitLines splits text after every "\n", keeping the terminators. A final
// line without a terminator is kept; empty text yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
