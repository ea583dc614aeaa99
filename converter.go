package mdnotebook

import (
	"strings"

	"github.com/riverfjs/mdnotebook-go/internal/segmenter"
)

// Segment splits Markdown into markdown and python code cells.
//
// ```python fences become code cells with the fences removed; every other
// fenced block is kept verbatim, fences included, in a markdown cell. Input
// that ends inside a fenced block is still converted and reported in the
// returned warnings. Segment never fails.
func Segment(markdown string) ([]Cell, []Warning) {
	res := segmenter.SegmentText(NormalizeNewlines(markdown))
	return res.Cells, res.Warnings
}

// SegmentLines is Segment over pre-split lines, each carrying its own
// terminator (the last one may lack it).
func SegmentLines(lines []string) ([]Cell, []Warning) {
	res := segmenter.Segment(lines)
	return res.Cells, res.Warnings
}

// NormalizeNewlines drops a leading byte order mark and translates "\r\n"
// and lone "\r" to "\n".
func NormalizeNewlines(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
