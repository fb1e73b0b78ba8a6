// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office converts Word and PowerPoint documents.
package office

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	docxlib "github.com/nguyenthenguyen/docx"

	"github.com/evanpersinger/File-Converter/internal/pdfgen"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

// block is a piece of document content in original order.
type block struct {
	text string     // set for paragraphs
	rows [][]string // set for tables
}

// DocxToPDF renders a .docx file as a PDF, preserving paragraph and
// table order.
func DocxToPDF(inPath, outPath string) error {
	r, err := docxlib.ReadDocxFile(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer r.Close()

	blocks, err := parseDocument(r.Editable().GetContent())
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inPath, err)
	}

	doc := pdfgen.New("Document: " + workspace.Stem(inPath))
	for _, b := range blocks {
		if b.rows != nil {
			doc.Table(b.rows)
			doc.Spacer()
			continue
		}
		if strings.TrimSpace(b.text) == "" {
			doc.Spacer()
			continue
		}
		doc.Paragraph(b.text)
	}
	return doc.Save(outPath)
}

// parseDocument walks the WordprocessingML body and returns paragraphs
// and tables in document order. Paragraphs inside tables belong to
// their cells and are not emitted separately.
func parseDocument(content string) ([]block, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var blocks []block
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "tbl":
			rows, err := parseTable(dec, start)
			if err != nil {
				return nil, err
			}
			if len(rows) > 0 {
				blocks = append(blocks, block{rows: rows})
			}
		case "p":
			text, err := parseParagraph(dec, start)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, block{text: text})
		}
	}
	return blocks, nil
}

// parseParagraph consumes a w:p element and returns its text content.
func parseParagraph(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var sb strings.Builder
	var inText bool
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
			if t.Name == start.Name {
				return sb.String(), nil
			}
		}
	}
}

// parseTable consumes a w:tbl element and returns its cell text by row.
func parseTable(dec *xml.Decoder, start xml.StartElement) ([][]string, error) {
	var rows [][]string
	var row []string
	var cell strings.Builder
	var inCell, inText bool
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tr":
				row = nil
			case "tc":
				inCell = true
				cell.Reset()
			case "t":
				inText = true
			}
		case xml.CharData:
			if inCell && inText {
				cell.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tc":
				inCell = false
				row = append(row, strings.TrimSpace(cell.String()))
			case "tr":
				if len(row) > 0 {
					rows = append(rows, row)
				}
			}
			if t.Name == start.Name {
				return rows, nil
			}
		}
	}
}
