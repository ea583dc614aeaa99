package mdnotebook

import (
	"context"
	"io"
	"sort"

	"github.com/riverfjs/mdnotebook-go/internal/logfields"
	"github.com/riverfjs/mdnotebook-go/internal/nbformat"
	"github.com/riverfjs/mdnotebook-go/internal/parser"
	"github.com/riverfjs/mdnotebook-go/internal/segmenter"
	"github.com/riverfjs/mdnotebook-go/internal/util"
)

// Result is an assembled notebook together with the cells it was built from.
type Result struct {
	Notebook *Notebook
	Cells    []Cell
	Warnings []Warning
	Stats    Stats

	indent int
}

// Encode writes the notebook as nbformat JSON.
func (r *Result) Encode(w io.Writer) error {
	return nbformat.Write(w, r.Notebook, r.indent)
}

// Build 完整管道：markdown → notebook
//
// 步骤：
// 1. normalize line endings and segment into cells
// 2. audit python blocks the fence grammar cannot see (Config.Audit)
// 3. assemble an nbformat v4.5 notebook, one notebook cell per cell
// 4. fill metadata (kernelspec, language_info, title) from Config
// 5. validate the notebook structure
func Build(ctx context.Context, markdown string, opts ...Option) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options := applyOptions(opts...)
	cfg := options.Config

	text := NormalizeNewlines(markdown)
	seg := segmenter.SegmentText(text)

	warnings := seg.Warnings
	if cfg.Audit {
		warnings = append(warnings, parser.Audit(text)...)
		sort.SliceStable(warnings, func(i, j int) bool {
			return warnings[i].Line < warnings[j].Line
		})
	}
	for _, w := range warnings {
		Logger.Warn(w.Message, logfields.Warning(string(w.Kind)), logfields.Line(w.Line))
	}

	nb := nbformat.New()
	for _, c := range seg.Cells {
		id := options.NewCellID()
		switch c.Type {
		case CellCode:
			nb.Append(nbformat.NewCodeCell(id, c.Source))
		default:
			nb.Append(nbformat.NewMarkdownCell(id, c.Source))
		}
	}
	applyMetadata(nb, cfg, text)

	if err := nbformat.Validate(nb); err != nil {
		return nil, newError(ErrInvalidNotebook, "assemble", "", err)
	}

	return &Result{
		Notebook: nb,
		Cells:    seg.Cells,
		Warnings: warnings,
		Stats:    Summarize(seg.Cells),
		indent:   cfg.Indent,
	}, nil
}

// applyMetadata leaves metadata empty unless the config asks for fields.
func applyMetadata(nb *Notebook, cfg *Config, text string) {
	if cfg.Kernel.Name != "" {
		display := cfg.Kernel.DisplayName
		if display == "" {
			display = cfg.Kernel.Name
		}
		language := cfg.Kernel.Language
		if language == "" {
			language = "python"
		}
		nb.Metadata["kernelspec"] = map[string]any{
			"name":         cfg.Kernel.Name,
			"display_name": display,
			"language":     language,
		}
	}
	if cfg.LanguageInfo {
		nb.Metadata["language_info"] = util.LanguageInfo(cfg.Kernel.Language)
	}

	title := cfg.Title
	if title == "" && cfg.ExtractTitle {
		title = parser.Title(text)
	}
	if title != "" {
		nb.Metadata["title"] = title
	}
}
