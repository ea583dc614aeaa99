package util

import (
	"strings"
)

// DefaultLanguageToExt maps kernel language names to file extensions.
var DefaultLanguageToExt = map[string]string{
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"java":       "java",
	"c++":        "cpp",
	"c":          "c",
	"bash":       "sh",
	"shell":      "sh",
	"go":         "go",
	"ruby":       "rb",
	"rust":       "rs",
	"perl":       "pl",
	"scala":      "scala",
	"r":          "r",
	"julia":      "jl",
	"sql":        "sql",
}

// GetExt returns the file extension for a given language.
func GetExt(language string) string {
	ext, ok := DefaultLanguageToExt[strings.ToLower(language)]
	if !ok {
		return "txt"
	}
	return ext
}

// LanguageInfo returns notebook metadata.language_info for language.
func LanguageInfo(language string) map[string]any {
	name := strings.ToLower(strings.TrimSpace(language))
	if name == "" {
		name = "python"
	}
	return map[string]any{
		"name":           name,
		"file_extension": "." + GetExt(name),
	}
}

// ReplaceExt swaps the extension of path for ext (which includes the dot).
// Only the final path element is considered, so "dir.v2/readme" gains ext
// rather than losing ".v2/readme".
func ReplaceExt(path, ext string) string {
	slash := strings.LastIndexAny(path, `/\`)
	base := path[slash+1:]
	dot := strings.LastIndexByte(base, '.')
	// a leading dot marks a hidden file, not an extension
	if dot <= 0 || strings.Trim(base[:dot], ".") == "" {
		return path + ext
	}
	return path[:slash+1+dot] + ext
}
