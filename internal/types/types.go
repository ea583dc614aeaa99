package types

// CellType 表示 notebook cell 的类型
type CellType int

const (
	// CellMarkdown is prose, including any non-python fenced block verbatim.
	CellMarkdown CellType = iota
	// CellCode is python source with its fences removed.
	CellCode
)

// String returns the nbformat cell_type name.
func (ct CellType) String() string {
	switch ct {
	case CellMarkdown:
		return "markdown"
	case CellCode:
		return "code"
	default:
		return "unknown"
	}
}

// Cell 表示一个已分段的 notebook 单元
type Cell struct {
	Type   CellType `json:"type"`
	Source string   `json:"source"`
	// StartLine and EndLine are 1-based input lines, fence lines included.
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`
}

// NewMarkdownCell returns a markdown cell.
func NewMarkdownCell(source string, start, end int) Cell {
	return Cell{Type: CellMarkdown, Source: source, StartLine: start, EndLine: end}
}

// NewCodeCell returns a code cell.
func NewCodeCell(source string, start, end int) Cell {
	return Cell{Type: CellCode, Source: source, StartLine: start, EndLine: end}
}

// WarningKind classifies a recoverable anomaly.
type WarningKind string

const (
	// WarningUnterminatedFence: input ended inside a fenced block.
	WarningUnterminatedFence WarningKind = "unterminated_fence"
	// WarningUnconvertedPython: a python block the line grammar does not recognize.
	WarningUnconvertedPython WarningKind = "unconverted_python"
)

// Warning 可恢复的异常，不中断转换
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Line    int         `json:"line"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return w.Message
}

// KernelSpec 对应 notebook metadata.kernelspec
type KernelSpec struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Language    string `yaml:"language"`
}

// Config 转换配置
type Config struct {
	// Kernel is written to metadata.kernelspec when Name is set.
	Kernel KernelSpec `yaml:"kernel"`
	// LanguageInfo writes metadata.language_info derived from Kernel.Language.
	LanguageInfo bool `yaml:"language_info"`
	// Title is written to metadata.title; it wins over ExtractTitle.
	Title string `yaml:"title"`
	// ExtractTitle stores the first level-1 heading in metadata.title.
	ExtractTitle bool `yaml:"extract_title"`
	// Audit reports python blocks the fence grammar cannot convert.
	Audit bool `yaml:"audit"`
	// Indent is the JSON indent width; nbformat uses 1.
	Indent int `yaml:"indent"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Audit:  true,
		Indent: 1,
	}
}
