// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"regexp"
	"strings"
	"unicode"
)

// ocrFixes repair character confusions tesseract makes on scanned
// pages: l read as 1, O read as 0, stray copyright marks, and so on.
var ocrFixes = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`©`), ""},
	{regexp.MustCompile(`\bIc\b`), "1c"},
	{regexp.MustCompile(`\bIa\b`), "1a"},
	{regexp.MustCompile(`\bIb\b`), "1b"},
	{regexp.MustCompile(`\bla\b`), "1a"},
	{regexp.MustCompile(`\blc\b`), "1c"},
	{regexp.MustCompile(`\blb\b`), "1b"},
	{regexp.MustCompile(`\bl([0-9])\b`), "1$1"},
	{regexp.MustCompile(`\bO([0-9])\b`), "0$1"},
	{regexp.MustCompile(`\bI0\b`), "10"},
	{regexp.MustCompile(`\bI1\b`), "11"},
	{regexp.MustCompile(`\bOo\b`), ""},
	{regexp.MustCompile(`\bOs6\b`), "6"},
}

var (
	blankRunsRe = regexp.MustCompile(`\n{3,}`)
	spaceRunsRe = regexp.MustCompile(`[ \t]{2,}`)
	contPunctRe = regexp.MustCompile(`[,;:—–-]$`)
	wordSplitRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// FixCommonErrors applies the OCR confusion fixes to raw tesseract
// output.
func FixCommonErrors(text string) string {
	for _, f := range ocrFixes {
		text = f.re.ReplaceAllString(text, f.repl)
	}
	return text
}

// CleanText normalizes OCR output: fixes character confusions, rejoins
// sentences that tesseract split across lines, drops single-character
// artifact lines, and collapses runs of blank lines and spaces.
func CleanText(text string) string {
	text = FixCommonErrors(text)

	lines := strings.Split(text, "\n")
	var out []string
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t")
		trimmed := strings.TrimSpace(line)

		if isArtifactLine(trimmed) {
			continue
		}

		// Rejoin a hard-wrapped sentence with the next line when the
		// break is clearly mid-sentence.
		for i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next == "" || isArtifactLine(next) {
				break
			}
			if !joinsWithNext(trimmed, next) {
				break
			}
			trimmed = trimmed + " " + next
			i++
		}

		out = append(out, trimmed)
	}

	joined := strings.Join(out, "\n")
	joined = blankRunsRe.ReplaceAllString(joined, "\n\n")
	joined = spaceRunsRe.ReplaceAllString(joined, " ")
	return strings.TrimSpace(joined)
}

// isArtifactLine reports whether a line is OCR noise: a lone
// non-alphanumeric character or two.
func isArtifactLine(line string) bool {
	if line == "" {
		return false
	}
	if len(line) > 2 {
		return false
	}
	for _, r := range line {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// joinsWithNext reports whether two consecutive OCR lines are one
// sentence split by the page layout.
func joinsWithNext(line, next string) bool {
	if line == "" {
		return false
	}
	nr := []rune(next)
	if len(nr) == 0 {
		return false
	}
	// Next line starts lowercase: almost certainly a continuation.
	if unicode.IsLower(nr[0]) {
		return true
	}
	// Line ends with continuation punctuation and the next line does
	// not open a new sentence.
	if contPunctRe.MatchString(line) && !unicode.IsUpper(nr[0]) {
		return true
	}
	return false
}

// TextsSimilar reports whether two OCR extractions are substantially
// the same content, by containment or word overlap above threshold.
func TextsSimilar(a, b string, threshold float64) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	if na == "" || nb == "" {
		return false
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	wa := wordSet(na)
	wb := wordSet(nb)
	if len(wa) == 0 || len(wb) == 0 {
		return false
	}
	common := 0
	for w := range wa {
		if wb[w] {
			common++
		}
	}
	smaller := len(wa)
	if len(wb) < smaller {
		smaller = len(wb)
	}
	return float64(common)/float64(smaller) >= threshold
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range wordSplitRe.Split(s, -1) {
		if len(w) > 2 {
			set[w] = true
		}
	}
	return set
}
