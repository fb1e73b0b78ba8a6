// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/evanpersinger/File-Converter/pkg/types"
)

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func tsvWordLine(block, par, line, wordNum, left, width int, text string) string {
	return fmt.Sprintf("5\t1\t%d\t%d\t%d\t%d\t%d\t100\t%d\t20\t90\t%s",
		block, par, line, wordNum, left, width, text)
}

func TestExtractTSVTable(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		tsvWordLine(1, 1, 1, 1, 0, 50, "Name"),
		tsvWordLine(1, 1, 1, 2, 400, 50, "Amount"),
		tsvWordLine(1, 1, 2, 1, 0, 50, "Widgets"),
		tsvWordLine(1, 1, 2, 2, 400, 30, "12"),
	}, "\n")

	got := extractTSVTable(tsv)
	if got == "" {
		t.Fatal("expected a table, got empty string")
	}
	if !strings.Contains(got, "| Name | Amount |") {
		t.Errorf("header row missing:\n%s", got)
	}
	if !strings.Contains(got, "| --- | --- |") {
		t.Errorf("separator row missing:\n%s", got)
	}
	if !strings.Contains(got, "| Widgets | 12 |") {
		t.Errorf("data row missing:\n%s", got)
	}
}

func TestExtractTSVTableProse(t *testing.T) {
	// Words close together on each line: prose, not a table.
	tsv := strings.Join([]string{
		tsvHeader,
		tsvWordLine(1, 1, 1, 1, 0, 50, "plain"),
		tsvWordLine(1, 1, 1, 2, 55, 50, "running"),
		tsvWordLine(1, 1, 1, 3, 110, 50, "text"),
		tsvWordLine(1, 1, 2, 1, 0, 50, "more"),
		tsvWordLine(1, 1, 2, 2, 55, 50, "words"),
	}, "\n")

	if got := extractTSVTable(tsv); got != "" {
		t.Errorf("prose should not become a table:\n%s", got)
	}
}

func TestExtractTSVTableEmpty(t *testing.T) {
	if got := extractTSVTable(tsvHeader); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}

// psmRunner returns canned output per --psm value and records calls.
type psmRunner struct {
	byPSM map[string]string
	tsv   string
	calls []string
}

func (r *psmRunner) Name() string { return "tesseract" }

func (r *psmRunner) Run(args []string, stdin io.Reader, stdout io.Writer) error {
	var psm string
	for i, a := range args {
		if a == "--psm" && i+1 < len(args) {
			psm = args[i+1]
		}
	}
	r.calls = append(r.calls, psm)
	if args[len(args)-1] == "tsv" {
		_, err := io.WriteString(stdout, r.tsv)
		return err
	}
	out, ok := r.byPSM[psm]
	if !ok {
		return fmt.Errorf("no text found")
	}
	_, err := io.WriteString(stdout, out)
	return err
}

func TestExtractBestPSMPicksLongest(t *testing.T) {
	r := &psmRunner{byPSM: map[string]string{
		"6":  "short result here",
		"11": "a considerably longer extraction with many more recognized words in it",
	}}
	got, err := extractBestPSM(r, "page.png", types.OCRConfig{})
	if err != nil {
		t.Fatalf("extractBestPSM: %v", err)
	}
	if !strings.Contains(got, "considerably longer") {
		t.Errorf("expected the longer extraction, got %q", got)
	}
	if len(r.calls) != len(scanPSMs) {
		t.Errorf("expected %d tesseract runs, got %d", len(scanPSMs), len(r.calls))
	}
}

func TestScanImageHonorsConfiguredPSM(t *testing.T) {
	r := &psmRunner{byPSM: map[string]string{
		"11": "sparse text extraction result from the requested mode",
	}}
	got, err := ScanImage(r, "page.png", types.OCRConfig{PSM: "11"})
	if err != nil {
		t.Fatalf("ScanImage: %v", err)
	}
	if !strings.Contains(got, "sparse text extraction") {
		t.Errorf("unexpected result %q", got)
	}
	// One text run plus one tsv run, both with the configured mode.
	if len(r.calls) != 2 {
		t.Fatalf("expected 2 tesseract runs, got %d: %v", len(r.calls), r.calls)
	}
	for _, psm := range r.calls {
		if psm != "11" {
			t.Errorf("tesseract ran with --psm %s, want 11", psm)
		}
	}
}

func TestExtractBestPSMAllFail(t *testing.T) {
	r := &psmRunner{byPSM: map[string]string{}}
	if _, err := extractBestPSM(r, "page.png", types.OCRConfig{}); err == nil {
		t.Fatal("expected error when every mode fails")
	}
}

func TestScanImageAppendsTable(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		tsvWordLine(1, 1, 1, 1, 0, 50, "Item"),
		tsvWordLine(1, 1, 1, 2, 400, 50, "Qty"),
		tsvWordLine(1, 1, 2, 1, 0, 50, "Bolts"),
		tsvWordLine(1, 1, 2, 2, 400, 30, "40"),
	}, "\n")
	r := &psmRunner{
		byPSM: map[string]string{"6": "Invoice for the March delivery of fasteners."},
		tsv:   tsv,
	}
	got, err := ScanImage(r, "page.png", types.OCRConfig{})
	if err != nil {
		t.Fatalf("ScanImage: %v", err)
	}
	if !strings.Contains(got, "--- Table Content ---") {
		t.Errorf("table section missing:\n%s", got)
	}
	if !strings.Contains(got, "| Bolts | 40 |") {
		t.Errorf("table rows missing:\n%s", got)
	}
}
