// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tool locates and runs the external conversion binaries the CLI
// delegates to (pandoc, wkhtmltopdf, LibreOffice, Tesseract, Jupyter,
// Rscript, pdftoppm). The binaries are consumed as opaque converters;
// their correctness is out of scope.
package tool

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner executes an external conversion binary. Converters depend on this
// interface so tests can supply a fake.
type Runner interface {
	// Name returns the resolved binary name.
	Name() string

	// Run executes the binary with args, piping stdin and stdout.
	// Stderr is captured and folded into the returned error.
	Run(args []string, stdin io.Reader, stdout io.Writer) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// Tool is a resolved external binary.
type Tool struct {
	bin  string
	exec executor
}

func (t *Tool) Name() string { return t.bin }

// Run executes the tool with args. On failure the captured stderr is
// included in the error.
func (t *Tool) Run(args []string, stdin io.Reader, stdout io.Writer) error {
	var stderr bytes.Buffer
	if err := t.exec.Run(t.bin, args, stdin, stdout, &stderr); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", t.bin, err, msg)
		}
		return fmt.Errorf("%s: %w", t.bin, err)
	}
	return nil
}

// Output runs the tool and returns its stdout as a string.
func (t *Tool) Output(args ...string) (string, error) {
	var out bytes.Buffer
	if err := t.Run(args, nil, &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Find returns a Tool for the first candidate binary found on PATH.
// Candidates beyond the first cover platform aliases (e.g. soffice for
// libreoffice, or a macOS app-bundle path).
func Find(candidates ...string) (*Tool, error) {
	return find(defaultExec, candidates...)
}

func find(exec executor, candidates ...string) (*Tool, error) {
	for _, bin := range candidates {
		if _, err := exec.LookPath(bin); err == nil {
			return &Tool{bin: bin, exec: exec}, nil
		}
	}
	return nil, fmt.Errorf("none of %s found on PATH", strings.Join(candidates, ", "))
}

// LibreOffice candidates, in preference order. The absolute path covers the
// macOS app bundle when no symlink has been installed.
var libreOfficeCandidates = []string{
	"libreoffice",
	"soffice",
	"/Applications/LibreOffice.app/Contents/MacOS/soffice",
}

// FindLibreOffice resolves the LibreOffice binary across platforms.
func FindLibreOffice() (*Tool, error) {
	return find(defaultExec, libreOfficeCandidates...)
}
