package segmenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/mdnotebook-go/internal/types"
)

func md(s string) types.Cell   { return types.Cell{Type: types.CellMarkdown, Source: s} }
func code(s string) types.Cell { return types.Cell{Type: types.CellCode, Source: s} }

// stripSpans drops line numbers so tests can compare type and source only.
func stripSpans(cells []types.Cell) []types.Cell {
	out := make([]types.Cell, len(cells))
	for i, c := range cells {
		out[i] = types.Cell{Type: c.Type, Source: c.Source}
	}
	return out
}

func joinCells(cells []types.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.Source
	}
	return strings.Join(parts, "\n")
}

func TestSegmentText_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     []types.Cell
		warnings int
	}{
		{
			name:  "single heading",
			input: "# Title\n",
			want:  []types.Cell{md("# Title")},
		},
		{
			name:  "prose around python block",
			input: "Intro\n```python\nprint(1)\n```\nOutro\n",
			want:  []types.Cell{md("Intro"), code("print(1)"), md("Outro")},
		},
		{
			name:  "non-python fence stays markdown",
			input: "```bash\nls\n```\n",
			want:  []types.Cell{md("```bash\nls\n```")},
		},
		{
			name:     "unterminated python block",
			input:    "```python\nx=1\n",
			want:     []types.Cell{code("x=1")},
			warnings: 1,
		},
		{
			name:  "empty input",
			input: "",
			want:  []types.Cell{},
		},
		{
			name:  "python fence with trailing spaces",
			input: "```python   \ny = 2\n```\n",
			want:  []types.Cell{code("y = 2")},
		},
		{
			name:  "python tag is case-insensitive",
			input: "```PyThOn\nz\n```\n",
			want:  []types.Cell{code("z")},
		},
		{
			name:  "python with extra info is a generic fence",
			input: "```python title=x\nz\n```\n",
			want:  []types.Cell{md("```python title=x\nz\n```")},
		},
		{
			name:  "bare fence opens a generic block",
			input: "```\nplain\n```\n",
			want:  []types.Cell{md("```\nplain\n```")},
		},
		{
			name:     "unterminated generic block",
			input:    "text\n```go\nfunc f() {}\n",
			want:     []types.Cell{md("text"), md("```go\nfunc f() {}")},
			warnings: 1,
		},
		{
			name:  "empty python block produces no cell",
			input: "a\n```python\n```\nb\n",
			want:  []types.Cell{md("a"), md("b")},
		},
		{
			name:  "consecutive python blocks",
			input: "```python\na\n```\n```python\nb\n```\n",
			want:  []types.Cell{code("a"), code("b")},
		},
		{
			name:  "only one trailing terminator is trimmed",
			input: "para\n\n```python\nx\n\n```\n",
			want:  []types.Cell{md("para\n"), code("x\n")},
		},
		{
			name:  "final line without terminator",
			input: "Intro\n```python\nprint(1)\n```",
			want:  []types.Cell{md("Intro"), code("print(1)")},
		},
		{
			name:  "crlf fences",
			input: "```python\r\nx\r\n```\r\n",
			want:  []types.Cell{code("x")},
		},
		{
			name:  "python fence inside other block is content",
			input: "```md\n```python\n```\nafter\n",
			want:  []types.Cell{md("```md\n```python\n```"), md("after")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := SegmentText(tt.input)
			assert.Equal(t, tt.want, stripSpans(res.Cells))
			assert.Len(t, res.Warnings, tt.warnings)
		})
	}
}

func TestSegmentText_UnterminatedWarning(t *testing.T) {
	res := SegmentText("intro\n```python\nx=1\n")
	require.Len(t, res.Warnings, 1)

	w := res.Warnings[0]
	assert.Equal(t, types.WarningUnterminatedFence, w.Kind)
	assert.Equal(t, 2, w.Line)
	assert.Contains(t, w.Message, "line 2")
}

func TestSegmentText_EmptyUnterminatedPythonBlockWarns(t *testing.T) {
	res := SegmentText("```python\n")
	assert.Empty(t, res.Cells)
	assert.Len(t, res.Warnings, 1)
}

func TestSegmentText_LineSpans(t *testing.T) {
	res := SegmentText("Intro\nmore\n```python\nprint(1)\n```\n```sh\nls\n```\nOutro\n")
	require.Len(t, res.Cells, 4)

	spans := [][2]int{}
	for _, c := range res.Cells {
		spans = append(spans, [2]int{c.StartLine, c.EndLine})
	}
	assert.Equal(t, [][2]int{{1, 2}, {3, 5}, {6, 8}, {9, 9}}, spans)
}

func TestSegmentText_NoFencesIsOneMarkdownCell(t *testing.T) {
	inputs := []string{
		"a",
		"a\n",
		"a\nb\n",
		"a\n\n\n",
		"  ``` not a fence\n",
		"~~~python\nx\n~~~\n",
		"\n",
	}
	for _, in := range inputs {
		res := SegmentText(in)
		require.Len(t, res.Cells, 1, "input %q", in)
		assert.Equal(t, types.CellMarkdown, res.Cells[0].Type)
		assert.Equal(t, strings.TrimSuffix(in, "\n"), res.Cells[0].Source)
	}
}

func TestSegmentText_ReconstructsDocument(t *testing.T) {
	inputs := []string{
		"Intro\n```python\nprint(1)\n```\nOutro\n",
		"# T\n\n```bash\nls\n```\n\ntext\n```python\nimport os\n\nos.getcwd()\n```\n",
		"```python\nx\n```\n```python\ny\n```",
		"a\n```python\n```\nb\n",
		"a\n```python\n\n```\nb\n",
	}

	for _, in := range inputs {
		res := SegmentText(in)

		var kept []string
		s := New()
		for _, line := range SplitLines(in) {
			before := s.Mode()
			s.Feed(line)
			after := s.Mode()
			pythonFence := (before == Outside && after == InPythonBlock) ||
				(before == InPythonBlock && after == Outside)
			if !pythonFence {
				kept = append(kept, line)
			}
		}

		want := strings.TrimSuffix(strings.Join(kept, ""), "\n")
		assert.Equal(t, want, joinCells(res.Cells), "input %q", in)
	}
}

func TestSegmentText_RoundTripIsLossy(t *testing.T) {
	original := SegmentText("Intro\n```python\nprint(1)\n```\nOutro\n")
	require.Len(t, original.Cells, 3)

	// code cells lose their fences, so the rebuilt text is plain prose
	again := SegmentText(joinCells(original.Cells))
	assert.NotEqual(t, stripSpans(original.Cells), stripSpans(again.Cells))
	assert.Equal(t, []types.Cell{md("Intro\nprint(1)\nOutro")}, stripSpans(again.Cells))
}

func TestSegmenter_FinishResets(t *testing.T) {
	s := New()
	s.Feed("```python\n")
	assert.Equal(t, InPythonBlock, s.Mode())
	s.Feed("x\n")
	first := s.Finish()
	assert.Len(t, first.Cells, 1)
	assert.Equal(t, Outside, s.Mode())

	s.Feed("next\n")
	second := s.Finish()
	assert.Equal(t, []types.Cell{{Type: types.CellMarkdown, Source: "next", StartLine: 1, EndLine: 1}}, second.Cells)
	assert.Empty(t, second.Warnings)
}

func TestClassifyOpen(t *testing.T) {
	tests := []struct {
		line string
		want FenceKind
	}{
		{"```python\n", PythonOpen},
		{"```python \t\n", PythonOpen},
		{"```Python", PythonOpen},
		{"```python3\n", GenericOpen},
		{"```\n", GenericOpen},
		{"```js\n", GenericOpen},
		{"````\n", GenericOpen},
		{" ```python\n", NotFence},
		{"text\n", NotFence},
		{"``\n", NotFence},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyOpen(tt.line), "line %q", tt.line)
	}
}

func TestIsClose(t *testing.T) {
	assert.True(t, IsClose("```\n"))
	assert.True(t, IsClose("```   \n"))
	assert.True(t, IsClose("```"))
	assert.True(t, IsClose("```\r\n"))
	assert.False(t, IsClose("````\n"))
	assert.False(t, IsClose("```python\n"))
	assert.False(t, IsClose(" ```\n"))
}
