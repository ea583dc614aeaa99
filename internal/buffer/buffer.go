package buffer

import "strings"

// LineBuffer accumulates input lines for the cell under construction and
// remembers the line number where the pending span started.
type LineBuffer struct {
	parts     []string
	startLine int
}

// New creates a new LineBuffer.
func New() *LineBuffer {
	return &LineBuffer{
		parts: make([]string, 0),
	}
}

// Write appends a line (terminator included) read at lineNo.
func (lb *LineBuffer) Write(line string, lineNo int) {
	if len(lb.parts) == 0 {
		lb.startLine = lineNo
	}
	lb.parts = append(lb.parts, line)
}

// Len returns the number of buffered lines.
func (lb *LineBuffer) Len() int {
	return len(lb.parts)
}

// Empty reports whether no lines are pending.
func (lb *LineBuffer) Empty() bool {
	return len(lb.parts) == 0
}

// StartLine returns the line number of the first buffered line, or 0.
func (lb *LineBuffer) StartLine() int {
	if len(lb.parts) == 0 {
		return 0
	}
	return lb.startLine
}

// String returns the buffered lines concatenated as-is.
func (lb *LineBuffer) String() string {
	if len(lb.parts) == 0 {
		return ""
	}
	totalLen := 0
	for _, p := range lb.parts {
		totalLen += len(p)
	}
	var sb strings.Builder
	sb.Grow(totalLen)
	for _, p := range lb.parts {
		sb.WriteString(p)
	}
	return sb.String()
}

// Flush returns the buffered text with exactly one trailing line terminator
// removed, then resets the buffer.
func (lb *LineBuffer) Flush() string {
	text := TrimTerminator(lb.String())
	lb.Reset()
	return text
}

// Reset clears the buffer.
func (lb *LineBuffer) Reset() {
	lb.parts = lb.parts[:0]
	lb.startLine = 0
}

// TrimTerminator strips one trailing "\n" or "\r\n".
func TrimTerminator(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
