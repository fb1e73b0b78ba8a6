// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext converts PDFs to Markdown by extracting the embedded
// text layer. Scanned (image-only) PDFs have no text layer; those go
// through the OCR or Vision converters instead.
package pdftext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractMarkdown reads the text layer of the PDF at path and returns it
// as Markdown, one horizontal rule between pages.
func ExtractMarkdown(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	var parts []string

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			return "", fmt.Errorf("reading pdf page %d: %w", i, pageErr)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			parts = append(parts, Clean(trimmed))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text layer found in %s", path)
	}
	return strings.Join(parts, "\n\n---\n\n") + "\n", nil
}

var (
	blankRuns = regexp.MustCompile(`\n{3,}`)
	spaceRuns = regexp.MustCompile(`[ \t]{2,}`)
)

// Clean normalizes extracted page text: trailing whitespace is stripped,
// runs of blank lines collapse to one, and runs of spaces collapse to one.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = spaceRuns.ReplaceAllString(strings.TrimRight(line, " \t"), " ")
	}
	text = strings.Join(lines, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
