// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

type fakeRunner struct {
	name  string
	args  [][]string
	fail  bool
	calls int
}

func (f *fakeRunner) Name() string { return f.name }

func (f *fakeRunner) Run(args []string, stdin io.Reader, stdout io.Writer) error {
	f.calls++
	f.args = append(f.args, args)
	if f.fail {
		return fmt.Errorf("exit status 1")
	}
	return nil
}

func TestMarkdownToPDF(t *testing.T) {
	pandoc := &fakeRunner{name: "pandoc"}
	if err := MarkdownToPDF(pandoc, "notes.md", "out/notes.pdf"); err != nil {
		t.Fatalf("MarkdownToPDF: %v", err)
	}
	want := []string{"notes.md", "-o", "out/notes.pdf", "--pdf-engine=xelatex"}
	if len(pandoc.args) != 1 {
		t.Fatalf("expected one pandoc call, got %d", len(pandoc.args))
	}
	got := pandoc.args[0]
	if len(got) != len(want) {
		t.Fatalf("args = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMarkdownToPDFError(t *testing.T) {
	pandoc := &fakeRunner{name: "pandoc", fail: true}
	err := MarkdownToPDF(pandoc, "notes.md", "notes.pdf")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "pandoc") {
		t.Errorf("error should name the tool: %v", err)
	}
}

func TestHTMLToPDFPrefersWkhtmltopdf(t *testing.T) {
	wk := &fakeRunner{name: "wkhtmltopdf"}
	pandoc := &fakeRunner{name: "pandoc"}
	if err := HTMLToPDF(wk, pandoc, "page.html", "page.pdf"); err != nil {
		t.Fatalf("HTMLToPDF: %v", err)
	}
	if wk.calls != 1 || pandoc.calls != 0 {
		t.Errorf("wkhtmltopdf calls=%d pandoc calls=%d", wk.calls, pandoc.calls)
	}
}

func TestHTMLToPDFFallsBackToPandoc(t *testing.T) {
	wk := &fakeRunner{name: "wkhtmltopdf", fail: true}
	pandoc := &fakeRunner{name: "pandoc"}
	if err := HTMLToPDF(wk, pandoc, "page.html", "page.pdf"); err != nil {
		t.Fatalf("HTMLToPDF: %v", err)
	}
	if pandoc.calls != 1 {
		t.Errorf("pandoc calls = %d", pandoc.calls)
	}
}

func TestHTMLToPDFNoRenderer(t *testing.T) {
	if err := HTMLToPDF(nil, nil, "page.html", "page.pdf"); err == nil {
		t.Fatal("expected error when no renderer is available")
	}
}

func TestNotebookToPDF(t *testing.T) {
	jupyter := &fakeRunner{name: "jupyter"}
	out, err := NotebookToPDF(jupyter, "analysis.ipynb", "output")
	if err != nil {
		t.Fatalf("NotebookToPDF: %v", err)
	}
	if out != filepath.Join("output", "analysis.pdf") {
		t.Errorf("out = %q", out)
	}
	args := jupyter.args[0]
	if args[0] != "nbconvert" || args[1] != "--to" || args[2] != "pdf" {
		t.Errorf("args = %v", args)
	}
}

func TestRmdToPDFUsesRscript(t *testing.T) {
	rscript := &fakeRunner{name: "Rscript"}
	out, err := RmdToPDF(rscript, nil, "report.Rmd", "output")
	if err != nil {
		t.Fatalf("RmdToPDF: %v", err)
	}
	if out != filepath.Join("output", "report.pdf") {
		t.Errorf("out = %q", out)
	}
	args := rscript.args[0]
	if args[0] != "-e" || !strings.Contains(args[1], "rmarkdown::render") {
		t.Errorf("args = %v", args)
	}
}

func TestRmdToPDFFallsBack(t *testing.T) {
	rscript := &fakeRunner{name: "Rscript", fail: true}
	pandoc := &fakeRunner{name: "pandoc"}
	if _, err := RmdToPDF(rscript, pandoc, "report.Rmd", "output"); err != nil {
		t.Fatalf("RmdToPDF: %v", err)
	}
	if pandoc.calls != 1 {
		t.Errorf("pandoc calls = %d", pandoc.calls)
	}
}
