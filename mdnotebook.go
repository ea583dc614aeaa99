// Package mdnotebook 将 Markdown 转换为 Jupyter notebook
//
// 这个包把夹杂 fenced code block 的 Markdown 文档拆分为 markdown cell 与
// python code cell，并写出 nbformat v4 notebook。
//
// 核心功能：
//   - ```python 代码块 → code cell（去掉 fence）
//   - 其他语言的代码块原样保留在 markdown cell 中
//   - 未闭合的代码块照常输出，并返回 Warning
//   - 可选的 kernelspec / language_info / title metadata
//
// 主要 API：
//   - Segment(): 同步拆分，返回 ([]Cell, []Warning)
//   - Build(): 拆分并组装 notebook
//   - ConvertFile(): 读取 .md，写出同名 .ipynb
//
// 示例：
//
//	cells, warnings := mdnotebook.Segment(markdown)
//
//	out, err := mdnotebook.ConvertFile(ctx, "guide.md")
//	if errors.Is(err, mdnotebook.ErrSourceNotFound) {
//	    // ...
//	}
package mdnotebook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/riverfjs/mdnotebook-go/internal/logfields"
	"github.com/riverfjs/mdnotebook-go/internal/nbformat"
	"github.com/riverfjs/mdnotebook-go/internal/util"
)

// NotebookExt is the extension given to converted files.
const NotebookExt = ".ipynb"

// OutputPath returns path with its extension replaced by ".ipynb".
func OutputPath(path string) string {
	return util.ReplaceExt(path, NotebookExt)
}

// ConvertFile converts the Markdown file at path and writes the notebook next
// to it (or to WithOutputPath). It returns the notebook path.
//
// Nothing is written unless the whole conversion succeeds: the notebook is
// written to a temporary sibling file and renamed into place.
func ConvertFile(ctx context.Context, path string, opts ...Option) (string, error) {
	out, _, err := ConvertFileWithResult(ctx, path, opts...)
	return out, err
}

// ConvertFileWithResult is ConvertFile that also returns the assembled
// notebook, its cells and any warnings.
func ConvertFileWithResult(ctx context.Context, path string, opts ...Option) (string, *Result, error) {
	start := time.Now()
	options := applyOptions(opts...)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, newError(ErrSourceNotFound, "stat", path, err)
		}
		return "", nil, newError(ErrRead, "stat", path, err)
	}

	outPath := options.OutputPath
	if outPath == "" {
		outPath = OutputPath(path)
	}
	Logger.Debug("Converting", logfields.Source(path), logfields.Output(outPath))

	markdown, err := readSource(path)
	if err != nil {
		return "", nil, newError(ErrRead, "read", path, err)
	}

	res, err := Build(ctx, markdown, opts...)
	if err != nil {
		return "", nil, err
	}

	if err := ctx.Err(); err != nil {
		return "", nil, err
	}
	if err := writeNotebook(outPath, res.Notebook, options.Config.Indent); err != nil {
		return "", nil, newError(ErrWrite, "write", outPath, err)
	}

	Logger.Info("Saved notebook",
		logfields.Source(path),
		logfields.Output(outPath),
		logfields.Cells(res.Stats.Cells),
		logfields.CodeCells(res.Stats.CodeCells),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000),
	)
	return outPath, res, nil
}

// readSource reads the whole file as UTF-8. A UTF-8 BOM is dropped and
// UTF-16 input with a BOM is transcoded.
func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(data), nil
}

// writeNotebook writes to a temporary file in the target directory and
// renames it over path. The temporary file is removed on failure.
func writeNotebook(path string, nb *Notebook, indent int) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err = nbformat.Write(tmp, nb, indent); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace notebook: %w", err)
	}
	return nil
}
