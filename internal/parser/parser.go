package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/mdnotebook-go/internal/segmenter"
	"github.com/riverfjs/mdnotebook-go/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
		extension.DefinitionList,
		extension.Footnote,
	),
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}

// Title returns the plain text of the first level-1 heading, or "".
func Title(markdown string) string {
	source := []byte(markdown)
	doc := ParseAST(source)

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(inlineText(h, source))
		return ast.WalkStop, nil
	})
	return title
}

func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(v.Value)
		default:
			sb.WriteString(inlineText(c, source))
		}
	}
	return sb.String()
}

// FencedBlock is a fenced code block as CommonMark sees it.
type FencedBlock struct {
	Language string
	// Line is the 1-based line of the opening fence.
	Line int
	// Opening is the opening fence line as written, indentation included.
	Opening string
}

// FencedBlocks lists every fenced code block that carries an info string.
func FencedBlocks(markdown string) []FencedBlock {
	source := []byte(markdown)
	doc := ParseAST(source)

	blocks := make([]FencedBlock, 0)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fb.Info == nil {
			return ast.WalkContinue, nil
		}
		pos := fb.Info.Segment.Start
		lineStart := bytes.LastIndexByte(source[:pos], '\n') + 1
		lineEnd := len(source)
		if i := bytes.IndexByte(source[pos:], '\n'); i >= 0 {
			lineEnd = pos + i
		}
		blocks = append(blocks, FencedBlock{
			Language: string(fb.Language(source)),
			Line:     bytes.Count(source[:lineStart], []byte("\n")) + 1,
			Opening:  string(source[lineStart:lineEnd]),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// Audit reports python-tagged blocks whose opening line the segmenter does
// not treat as a python fence: tilde fences, indented or nested fences, and
// fences with extra attributes. Such blocks end up in markdown cells.
func Audit(markdown string) []types.Warning {
	warnings := make([]types.Warning, 0)
	for _, b := range FencedBlocks(markdown) {
		if !strings.EqualFold(b.Language, "python") {
			continue
		}
		if segmenter.ClassifyOpen(b.Opening) == segmenter.PythonOpen {
			continue
		}
		warnings = append(warnings, types.Warning{
			Kind: types.WarningUnconvertedPython,
			Line: b.Line,
			Message: fmt.Sprintf("python block at line %d is not a top-level ```python fence; it stays in a markdown cell",
				b.Line),
		})
	}
	return warnings
}
