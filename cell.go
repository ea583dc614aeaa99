package mdnotebook

import (
	"strings"

	"github.com/riverfjs/mdnotebook-go/internal/nbformat"
	"github.com/riverfjs/mdnotebook-go/internal/types"
)

// 导出类型别名
type (
	Cell        = types.Cell
	CellType    = types.CellType
	Warning     = types.Warning
	WarningKind = types.WarningKind
	Notebook    = nbformat.Notebook
)

const (
	CellMarkdown = types.CellMarkdown
	CellCode     = types.CellCode

	WarningUnterminatedFence = types.WarningUnterminatedFence
	WarningUnconvertedPython = types.WarningUnconvertedPython
)

// Join rebuilds document text from cells by placing one "\n" between
// consecutive cells. Python fences are gone for good, so the result is not
// the original document when code cells are present.
func Join(cells []Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.Source
	}
	return strings.Join(parts, "\n")
}
