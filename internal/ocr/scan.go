// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/pkg/types"
)

// scanPSMs are tried in order of how often they win on scanned
// documents: uniform block, sparse text, columns, fully automatic.
var scanPSMs = []string{"6", "11", "4", "3"}

// scanModes returns the segmentation modes to try: the configured one
// when set, otherwise the standard sweep.
func scanModes(cfg types.OCRConfig) []string {
	if cfg.PSM != "" {
		return []string{cfg.PSM}
	}
	return scanPSMs
}

// ScanImage extracts document text from a scanned page. It runs
// tesseract under several segmentation modes, keeps the best result,
// and appends table content recovered from word positions when the
// page contains one. A configured PSM replaces the mode sweep.
func ScanImage(tesseract tool.Runner, imagePath string, cfg types.OCRConfig) (string, error) {
	best, err := extractBestPSM(tesseract, imagePath, cfg)
	if err != nil {
		return "", err
	}

	table := extractTable(tesseract, imagePath, cfg)
	if table != "" && !TextsSimilar(best, table, 0.8) {
		best = best + "\n\n--- Table Content ---\n\n" + table
	}
	if strings.TrimSpace(best) == "" {
		return "", fmt.Errorf("no readable text in %s", imagePath)
	}
	return best, nil
}

// extractBestPSM runs tesseract once per segmentation mode, dedupes
// near-identical results, and returns the longest cleaned extraction.
func extractBestPSM(tesseract tool.Runner, imagePath string, cfg types.OCRConfig) (string, error) {
	var best string
	var lastErr error
	for _, psm := range scanModes(cfg) {
		c := cfg
		c.PSM = psm
		raw, err := ImageToText(tesseract, imagePath, c)
		if err != nil {
			lastErr = err
			continue
		}
		text := CleanText(raw)
		if text == "" {
			continue
		}
		if best == "" {
			best = text
			continue
		}
		// Near-identical results across modes: keep the longer one.
		if TextsSimilar(best, text, 0.9) {
			if len(text) > len(best) {
				best = text
			}
			continue
		}
		if len(text) > len(best) {
			best = text
		}
	}
	if best == "" {
		if lastErr != nil {
			return "", lastErr
		}
		return "", fmt.Errorf("no readable text in %s", imagePath)
	}
	return best, nil
}

// extractTable asks tesseract for word positions (tsv output) and
// reconstructs tabular content from horizontal gaps. Returns "" when
// the page has no table-like structure.
func extractTable(tesseract tool.Runner, imagePath string, cfg types.OCRConfig) string {
	lang := cfg.Lang
	if lang == "" {
		lang = "eng"
	}
	psm := cfg.PSM
	if psm == "" {
		psm = "6"
	}
	var out strings.Builder
	args := []string{imagePath, "stdout", "--oem", "3", "--psm", psm, "-l", lang, "tsv"}
	if err := tesseract.Run(args, nil, &out); err != nil {
		return ""
	}
	return extractTSVTable(out.String())
}

// tsvWord is one recognized word with its position on the page.
type tsvWord struct {
	block, par, line int
	left, width      int
	text             string
}

// extractTSVTable groups tesseract tsv words into lines, splits each
// line into cells wherever the horizontal gap between words is large,
// and renders lines with multiple cells as a Markdown pipe table.
// Returns "" unless at least two lines look tabular.
func extractTSVTable(tsv string) string {
	words := parseTSV(tsv)
	if len(words) == 0 {
		return ""
	}

	type lineKey struct{ block, par, line int }
	grouped := make(map[lineKey][]tsvWord)
	var order []lineKey
	for _, w := range words {
		k := lineKey{w.block, w.par, w.line}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], w)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.block != b.block {
			return a.block < b.block
		}
		if a.par != b.par {
			return a.par < b.par
		}
		return a.line < b.line
	})

	var rows [][]string
	tabular := 0
	for _, k := range order {
		line := grouped[k]
		sort.Slice(line, func(i, j int) bool { return line[i].left < line[j].left })
		cells := splitCells(line)
		if len(cells) > 1 {
			tabular++
		}
		rows = append(rows, cells)
	}
	if tabular < 2 {
		return ""
	}

	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}

	var sb strings.Builder
	for i, r := range rows {
		for len(r) < cols {
			r = append(r, "")
		}
		sb.WriteString("| " + strings.Join(r, " | ") + " |\n")
		if i == 0 {
			sb.WriteString("|" + strings.Repeat(" --- |", cols) + "\n")
		}
	}
	return strings.TrimSpace(sb.String())
}

// splitCells breaks a sorted line of words into cells at gaps wider
// than twice the average word width.
func splitCells(line []tsvWord) []string {
	if len(line) == 0 {
		return nil
	}
	total := 0
	for _, w := range line {
		total += w.width
	}
	gapThreshold := 2 * total / len(line)
	if gapThreshold < 40 {
		gapThreshold = 40
	}

	var cells []string
	cur := []string{line[0].text}
	prevRight := line[0].left + line[0].width
	for _, w := range line[1:] {
		if w.left-prevRight > gapThreshold {
			cells = append(cells, strings.Join(cur, " "))
			cur = nil
		}
		cur = append(cur, w.text)
		prevRight = w.left + w.width
	}
	cells = append(cells, strings.Join(cur, " "))
	return cells
}

// parseTSV keeps word-level rows (level 5) with non-empty text.
func parseTSV(tsv string) []tsvWord {
	var words []tsvWord
	for i, line := range strings.Split(tsv, "\n") {
		if i == 0 { // header
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 12 {
			continue
		}
		level, _ := strconv.Atoi(f[0])
		if level != 5 {
			continue
		}
		text := strings.TrimSpace(f[11])
		if text == "" {
			continue
		}
		block, _ := strconv.Atoi(f[2])
		par, _ := strconv.Atoi(f[3])
		ln, _ := strconv.Atoi(f[4])
		left, _ := strconv.Atoi(f[6])
		width, _ := strconv.Atoi(f[8])
		words = append(words, tsvWord{block: block, par: par, line: ln, left: left, width: width, text: text})
	}
	return words
}
