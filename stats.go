package mdnotebook

import "strings"

// Stats summarizes a converted document.
type Stats struct {
	Cells         int
	MarkdownCells int
	CodeCells     int
	// CodeLines counts source lines across code cells.
	CodeLines int
}

// Summarize counts cells by type and the lines of python they hold.
func Summarize(cells []Cell) Stats {
	var s Stats
	for _, c := range cells {
		s.Cells++
		switch c.Type {
		case CellCode:
			s.CodeCells++
			s.CodeLines += strings.Count(c.Source, "\n") + 1
		case CellMarkdown:
			s.MarkdownCells++
		}
	}
	return s
}
