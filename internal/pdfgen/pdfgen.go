// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfgen builds PDF documents programmatically: plain text, SQL,
// Word content, and images all render through it.
package pdfgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Doc is a PDF document under construction. Content flows top to bottom
// with automatic page breaks.
type Doc struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// New creates a letter-size document with a centered title.
func New(title string) *Doc {
	p := fpdf.New("P", "mm", "Letter", "")
	p.SetMargins(20, 20, 20)
	p.SetAutoPageBreak(true, 20)
	p.AddPage()

	d := &Doc{pdf: p, tr: p.UnicodeTranslatorFromDescriptor("")}

	p.SetFont("Helvetica", "B", 16)
	p.CellFormat(0, 10, d.tr(title), "", 1, "C", false, 0, "")
	p.Ln(8)
	return d
}

// Paragraph appends body text, wrapped to the page width.
func (d *Doc) Paragraph(text string) {
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.MultiCell(0, 5.5, d.tr(text), "", "L", false)
	d.pdf.Ln(2)
}

// Spacer appends vertical whitespace for an empty source line.
func (d *Doc) Spacer() {
	d.pdf.Ln(3)
}

// CodeBlock appends monospaced lines on a light grey background.
func (d *Doc) CodeBlock(lines []string) {
	d.pdf.SetFont("Courier", "", 9)
	d.pdf.SetFillColor(230, 230, 230)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			d.pdf.Ln(3)
			continue
		}
		d.pdf.MultiCell(0, 4.5, d.tr(line), "", "L", true)
	}
	d.pdf.Ln(3)
}

// Table appends a grid table. The first row is styled as a header with a
// grey fill and white bold text. Columns share the usable width equally.
func (d *Doc) Table(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}

	pageW, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	colW := (pageW - left - right) / float64(cols)

	for i, row := range rows {
		if i == 0 {
			d.pdf.SetFont("Helvetica", "B", 10)
			d.pdf.SetFillColor(128, 128, 128)
			d.pdf.SetTextColor(245, 245, 245)
		} else {
			d.pdf.SetFont("Helvetica", "", 9)
			d.pdf.SetFillColor(255, 255, 255)
			d.pdf.SetTextColor(0, 0, 0)
		}
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(row) {
				cell = strings.ReplaceAll(row[c], "\n", " ")
			}
			d.pdf.CellFormat(colW, 7, d.tr(cell), "1", 0, "L", i == 0, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(4)
}

// Save writes the document to path and releases it.
func (d *Doc) Save(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF %s: %w", path, err)
	}
	return nil
}

// TxtToPDF renders a plain-text file as a PDF: a title line followed by
// one paragraph per source line, with empty lines becoming spacing.
func TxtToPDF(inPath, outPath, title string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	doc := New(title)
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			doc.Spacer()
			continue
		}
		doc.Paragraph(line)
	}
	return doc.Save(outPath)
}
