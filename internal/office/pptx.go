// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package office

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

var slideNameRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// shape is one text shape on a slide: its concatenated runs plus the
// largest font size seen, used to spot titles.
type shape struct {
	lines   []string
	maxSize int
}

// PptxToMarkdown extracts slide text into a Markdown document: one
// "## Slide N" section per slide, large-type shapes rendered as
// subheadings, slides separated by horizontal rules.
func PptxToMarkdown(inPath, outPath string) error {
	zr, err := zip.OpenReader(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer zr.Close()

	type slideFile struct {
		num int
		f   *zip.File
	}
	var slides []slideFile
	for _, f := range zr.File {
		m := slideNameRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		slides = append(slides, slideFile{num: n, f: f})
	}
	if len(slides) == 0 {
		return fmt.Errorf("%s contains no slides", inPath)
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var sb strings.Builder
	sb.WriteString("# " + workspace.Stem(inPath) + "\n")
	for i, s := range slides {
		rc, err := s.f.Open()
		if err != nil {
			return fmt.Errorf("reading slide %d: %w", s.num, err)
		}
		shapes, perr := parseSlide(rc)
		rc.Close()
		if perr != nil {
			return fmt.Errorf("parsing slide %d: %w", s.num, perr)
		}

		if i > 0 {
			sb.WriteString("\n---\n")
		}
		fmt.Fprintf(&sb, "\n## Slide %d\n", s.num)
		for _, sh := range shapes {
			text := strings.TrimSpace(strings.Join(sh.lines, "\n"))
			if text == "" {
				continue
			}
			// Font sizes are in hundredths of a point; 20pt and up
			// reads as a title.
			if sh.maxSize >= 2000 && !strings.Contains(text, "\n") {
				fmt.Fprintf(&sb, "\n### %s\n", text)
				continue
			}
			sb.WriteString("\n")
			for _, line := range sh.lines {
				if strings.TrimSpace(line) == "" {
					continue
				}
				fmt.Fprintf(&sb, "- %s\n", strings.TrimSpace(line))
			}
		}
	}

	return os.WriteFile(outPath, []byte(sb.String()), 0o644)
}

// parseSlide walks one slide's DrawingML and collects text shapes. Each
// a:p paragraph becomes a line; run sizes come from a:rPr sz attributes.
func parseSlide(r io.Reader) ([]shape, error) {
	dec := xml.NewDecoder(r)
	var shapes []shape
	var cur shape
	var line strings.Builder
	var inShape, inText bool
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				inShape = true
				cur = shape{}
			case "rPr":
				if !inShape {
					continue
				}
				for _, a := range t.Attr {
					if a.Name.Local == "sz" {
						if sz, err := strconv.Atoi(a.Value); err == nil && sz > cur.maxSize {
							cur.maxSize = sz
						}
					}
				}
			case "t":
				inText = inShape
			}
		case xml.CharData:
			if inText {
				line.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inShape {
					cur.lines = append(cur.lines, line.String())
					line.Reset()
				}
			case "sp":
				inShape = false
				shapes = append(shapes, cur)
			}
		}
	}
	return shapes, nil
}

// PptxToPDF converts a presentation to PDF with LibreOffice, which
// writes <stem>.pdf into the output directory itself.
func PptxToPDF(soffice tool.Runner, inPath, outDir string) (string, error) {
	args := []string{"--headless", "--convert-to", "pdf", "--outdir", outDir, inPath}
	if err := soffice.Run(args, nil, io.Discard); err != nil {
		return "", fmt.Errorf("%s failed on %s: %w", soffice.Name(), inPath, err)
	}
	out := filepath.Join(outDir, workspace.Stem(inPath)+".pdf")
	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("%s produced no output for %s", soffice.Name(), inPath)
	}
	return out, nil
}
