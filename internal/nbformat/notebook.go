// Package nbformat builds and serializes Jupyter notebooks in the nbformat
// v4 JSON layout.
package nbformat

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// Major and Minor are the nbformat version stamp. Minor 5 introduced cell ids.
	Major = 4
	Minor = 5
)

// Cell types as written to cell_type.
const (
	TypeMarkdown = "markdown"
	TypeCode     = "code"
)

// Cell is one notebook cell. ExecutionCount and Outputs only appear on
// code cells; see MarshalJSON.
type Cell struct {
	CellType       string
	ID             string
	Metadata       map[string]any
	Source         Source
	ExecutionCount *int
	Outputs        []any
}

// Notebook is the top-level document. Fields are declared in key order so
// the JSON output matches nbformat's sorted keys.
type Notebook struct {
	Cells         []Cell         `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
}

// IDFunc returns a fresh cell id.
type IDFunc func() string

// RandomID returns the first 8 hex digits of a random UUID.
func RandomID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// SequentialIDs returns an IDFunc yielding "cell-0", "cell-1", ...
func SequentialIDs() IDFunc {
	n := 0
	return func() string {
		id := "cell-" + strconv.Itoa(n)
		n++
		return id
	}
}

// New returns an empty v4.5 notebook.
func New() *Notebook {
	return &Notebook{
		Cells:         make([]Cell, 0),
		Metadata:      make(map[string]any),
		NBFormat:      Major,
		NBFormatMinor: Minor,
	}
}

// NewMarkdownCell returns a markdown cell with the given source.
func NewMarkdownCell(id, source string) Cell {
	return Cell{
		CellType: TypeMarkdown,
		ID:       id,
		Metadata: make(map[string]any),
		Source:   Source(source),
	}
}

// NewCodeCell returns an unexecuted code cell with no outputs.
func NewCodeCell(id, source string) Cell {
	return Cell{
		CellType: TypeCode,
		ID:       id,
		Metadata: make(map[string]any),
		Source:   Source(source),
		Outputs:  make([]any, 0),
	}
}

// Append adds cells in order.
func (nb *Notebook) Append(cells ...Cell) {
	nb.Cells = append(nb.Cells, cells...)
}
