package segmenter

import (
	"regexp"
	"strings"
)

// FenceKind classifies a single line against the fence grammar.
type FenceKind int

const (
	// NotFence is any line that is not a fence.
	NotFence FenceKind = iota
	// PythonOpen is ```python with only trailing whitespace, any case.
	PythonOpen
	// GenericOpen is ``` followed by anything, including nothing.
	GenericOpen
)

var (
	pythonOpenPattern  = regexp.MustCompile("(?i)^```python\\s*$")
	genericOpenPattern = regexp.MustCompile("^```.*$")
	closePattern       = regexp.MustCompile("^```\\s*$")
)

// trimLine drops the line terminator so the anchors apply to line content.
func trimLine(line string) string {
	return strings.TrimSuffix(line, "\n")
}

// ClassifyOpen reports which opening fence, if any, line is.
// A bare ``` line is a GenericOpen.
func ClassifyOpen(line string) FenceKind {
	l := trimLine(line)
	// python first: the generic pattern matches it too
	if pythonOpenPattern.MatchString(l) {
		return PythonOpen
	}
	if genericOpenPattern.MatchString(l) {
		return GenericOpen
	}
	return NotFence
}

// IsClose reports whether line closes an open fenced block.
func IsClose(line string) bool {
	return closePattern.MatchString(trimLine(line))
}
