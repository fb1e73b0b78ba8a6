// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace resolves the input/output directory convention shared
// by every conversion: source files live under an input directory, results
// are written under an output directory, and explicit filename arguments
// may be relative to the input directory or absolute.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dirs holds the resolved input and output directories for one run.
type Dirs struct {
	Input  string
	Output string
}

// Resolve creates the input and output directories if needed and returns
// them as a Dirs.
func Resolve(input, output string) (Dirs, error) {
	for _, dir := range []string{input, output} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Dirs{}, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return Dirs{Input: input, Output: output}, nil
}

// List returns the sorted paths of regular files under the input directory
// whose extension matches one of exts (case-insensitive, leading dot
// included, e.g. ".xlsx"). With no exts every file matches. Hidden files
// are skipped.
func (d Dirs) List(exts ...string) ([]string, error) {
	entries, err := os.ReadDir(d.Input)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", d.Input, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if len(exts) == 0 || HasExt(entry.Name(), exts...) {
			files = append(files, filepath.Join(d.Input, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Has reports whether the input directory contains at least one file with
// one of the given extensions.
func (d Dirs) Has(exts ...string) bool {
	files, err := d.List(exts...)
	return err == nil && len(files) > 0
}

// InputPath resolves a filename argument: absolute paths pass through,
// anything else is joined onto the input directory. A redundant leading
// "input/" component supplied by the user is stripped first.
func (d Dirs) InputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	name = strings.TrimPrefix(name, d.Input+string(filepath.Separator))
	return filepath.Join(d.Input, name)
}

// OutputName computes the output filename for an input path: the override
// basename when given, otherwise the input stem plus targetExt.
func OutputName(inputPath, override, targetExt string) string {
	if override != "" {
		return filepath.Base(override)
	}
	return Stem(inputPath) + targetExt
}

// OutputPath joins a filename onto the output directory.
func (d Dirs) OutputPath(name string) string {
	return filepath.Join(d.Output, name)
}

// Stem returns the base filename without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HasExt reports whether path has one of the given extensions,
// case-insensitively.
func HasExt(path string, exts ...string) bool {
	got := strings.ToLower(filepath.Ext(path))
	for _, ext := range exts {
		if got == strings.ToLower(ext) {
			return true
		}
	}
	return false
}
