package nbformat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Source is cell text. It is written as a list of lines with their
// terminators, the way nbformat stores multiline strings, and read back
// from either a list or a plain string.
type Source string

// Lines splits the source after every "\n". Empty source has no lines.
func (s Source) Lines() []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(string(s), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// MarshalJSON implements json.Marshaler.
func (s Source) MarshalJSON() ([]byte, error) {
	return marshal(s.Lines())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Source) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = Source(text)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("source must be a string or a list of strings: %w", err)
	}
	*s = Source(strings.Join(lines, ""))
	return nil
}

type markdownCellJSON struct {
	CellType string         `json:"cell_type"`
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
	Source   Source         `json:"source"`
}

type codeCellJSON struct {
	CellType       string         `json:"cell_type"`
	ExecutionCount *int           `json:"execution_count"`
	ID             string         `json:"id"`
	Metadata       map[string]any `json:"metadata"`
	Outputs        []any          `json:"outputs"`
	Source         Source         `json:"source"`
}

// MarshalJSON writes execution_count and outputs for code cells only.
func (c Cell) MarshalJSON() ([]byte, error) {
	metadata := c.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	if c.CellType == TypeCode {
		outputs := c.Outputs
		if outputs == nil {
			outputs = []any{}
		}
		return marshal(codeCellJSON{
			CellType:       c.CellType,
			ExecutionCount: c.ExecutionCount,
			ID:             c.ID,
			Metadata:       metadata,
			Outputs:        outputs,
			Source:         c.Source,
		})
	}
	return marshal(markdownCellJSON{
		CellType: c.CellType,
		ID:       c.ID,
		Metadata: metadata,
		Source:   c.Source,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw codeCellJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Cell{
		CellType:       raw.CellType,
		ID:             raw.ID,
		Metadata:       raw.Metadata,
		Source:         raw.Source,
		ExecutionCount: raw.ExecutionCount,
		Outputs:        raw.Outputs,
	}
	return nil
}

// marshal encodes v without HTML escaping; nbformat writes "<" and "&" as-is.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write serializes nb to w with the given indent width, followed by a newline.
func Write(w io.Writer, nb *Notebook, indent int) error {
	if indent < 0 {
		indent = 0
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(nb); err != nil {
		return fmt.Errorf("encode notebook: %w", err)
	}
	return nil
}

// Read decodes a notebook from r.
func Read(r io.Reader) (*Notebook, error) {
	var nb Notebook
	if err := json.NewDecoder(r).Decode(&nb); err != nil {
		return nil, fmt.Errorf("decode notebook: %w", err)
	}
	if nb.Metadata == nil {
		nb.Metadata = make(map[string]any)
	}
	return &nb, nil
}
