// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup converts Markdown, HTML, R and notebook sources to
// PDF by driving the document tools installed on the host.
package markup

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

// MarkdownToPDF renders a Markdown file with pandoc using the xelatex
// engine, which handles unicode that pdflatex chokes on.
func MarkdownToPDF(pandoc tool.Runner, inPath, outPath string) error {
	args := []string{inPath, "-o", outPath, "--pdf-engine=xelatex"}
	if err := pandoc.Run(args, nil, io.Discard); err != nil {
		return fmt.Errorf("%s failed on %s: %w", pandoc.Name(), inPath, err)
	}
	return nil
}

// HTMLToPDF renders an HTML file with wkhtmltopdf when available,
// falling back to pandoc.
func HTMLToPDF(wkhtml, pandoc tool.Runner, inPath, outPath string) error {
	if wkhtml != nil {
		if err := wkhtml.Run([]string{inPath, outPath}, nil, io.Discard); err == nil {
			return nil
		}
	}
	if pandoc == nil {
		return fmt.Errorf("no HTML renderer available for %s", inPath)
	}
	return MarkdownToPDF(pandoc, inPath, outPath)
}

// NotebookToPDF converts a Jupyter notebook with nbconvert. jupyter
// resolves the output name relative to the output directory.
func NotebookToPDF(jupyter tool.Runner, inPath, outDir string) (string, error) {
	outName := workspace.Stem(inPath) + ".pdf"
	args := []string{"nbconvert", "--to", "pdf", "--output", outName, "--output-dir", outDir, inPath}
	if err := jupyter.Run(args, nil, io.Discard); err != nil {
		return "", fmt.Errorf("%s failed on %s: %w", jupyter.Name(), inPath, err)
	}
	return filepath.Join(outDir, outName), nil
}
