// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

// RmdToPDF knits an R Markdown file with rmarkdown::render. When no R
// installation is found the caller may pass a pandoc Runner as a
// fallback; the result loses code execution but keeps the prose.
func RmdToPDF(rscript, pandoc tool.Runner, inPath, outDir string) (string, error) {
	outName := workspace.Stem(inPath) + ".pdf"
	outPath := filepath.Join(outDir, outName)

	if rscript != nil {
		expr := fmt.Sprintf(
			`rmarkdown::render(%q, output_format="pdf_document", output_file=%q, output_dir=%q)`,
			inPath, outName, outDir)
		if err := rscript.Run([]string{"-e", expr}, nil, io.Discard); err == nil {
			return outPath, nil
		}
	}
	if pandoc == nil {
		return "", fmt.Errorf("no renderer available for %s", inPath)
	}
	if err := MarkdownToPDF(pandoc, inPath, outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

var (
	separatorRe = regexp.MustCompile(`^[#\-=\s]+$`)
	headingRe   = regexp.MustCompile(`^##+\s*(.+)$`)
	sectionRe   = regexp.MustCompile(`^(ANALYSIS|SECTION|PART|STEP)\b[:\s]*(.*)$`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

// RToRmd rewrites a plain R script as an R Markdown document: comments
// become prose and headings, code becomes executable chunks.
func RToRmd(src string) string {
	var sb strings.Builder
	sb.WriteString("---\ntitle: \"R Analysis\"\noutput: pdf_document\n---\n\n")

	lines := strings.Split(src, "\n")
	inChunk := false
	blanks := 0

	closeChunk := func() {
		if inChunk {
			sb.WriteString("```\n\n")
			inChunk = false
		}
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			blanks++
			continue
		}
		// Flush buffered blank lines: a run of two or more inside a
		// chunk ends it, a single one stays in the chunk.
		if blanks > 0 && inChunk {
			if blanks >= 2 {
				closeChunk()
			} else {
				sb.WriteString("\n")
			}
		}
		blanks = 0

		if strings.HasPrefix(trimmed, "#") {
			comment := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			if comment == "" || separatorRe.MatchString(trimmed) {
				continue
			}
			closeChunk()

			if m := sectionRe.FindStringSubmatch(comment); m != nil {
				title := strings.TrimSpace(m[1] + " " + m[2])
				sb.WriteString("## " + title + "\n\n")
				continue
			}
			if strings.HasPrefix(trimmed, "##") {
				sb.WriteString("## " + comment + "\n\n")
				continue
			}
			// A short comment near the top is usually the author or
			// script name.
			if i < 5 && len(comment) < 30 {
				sb.WriteString("**" + comment + "**\n\n")
				continue
			}
			sb.WriteString(comment + "\n\n")
			continue
		}

		if !inChunk {
			sb.WriteString("```{r}\n")
			inChunk = true
		}
		sb.WriteString(line + "\n")
	}
	closeChunk()

	out := blankRunRe.ReplaceAllString(sb.String(), "\n\n")
	return strings.TrimRight(out, "\n") + "\n"
}
