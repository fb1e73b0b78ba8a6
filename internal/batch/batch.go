// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs a conversion over a list of files, printing per-file
// status lines and a final summary. Failures are recorded and processing
// continues with the next file.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Status is the outcome of one file's conversion.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// ErrSkip marks a file that needs no conversion. A ConvertFunc wraps or
// returns it to have the file counted as skipped rather than failed.
var ErrSkip = errors.New("skipped")

// ConvertFunc converts a single input file and returns the name of the
// file it wrote under the output directory.
type ConvertFunc func(inputPath string) (outputName string, err error)

// Result records the outcome for one file.
type Result struct {
	File   string `json:"file" yaml:"file"`
	Status Status `json:"status" yaml:"status"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary holds the outcome of a batch run.
type Summary struct {
	Converted int      `json:"converted" yaml:"converted"`
	Skipped   int      `json:"skipped" yaml:"skipped"`
	Failed    int      `json:"failed" yaml:"failed"`
	Results   []Result `json:"results" yaml:"results"`
}

// Total returns the total number of files processed.
func (s Summary) Total() int {
	return s.Converted + s.Skipped + s.Failed
}

// HasFailures reports whether any file failed conversion.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run converts each file in order, printing a per-file status line to w
// and a summary after the last file. A failed file never aborts the batch.
func Run(files []string, w io.Writer, fn ConvertFunc) Summary {
	var summary Summary

	for _, f := range files {
		base := filepath.Base(f)
		out, err := fn(f)

		switch {
		case err == nil:
			fmt.Fprintf(w, "converted: %s -> %s\n", base, out)
			summary.Converted++
			summary.Results = append(summary.Results, Result{File: base, Status: StatusConverted, Output: out})
		case errors.Is(err, ErrSkip):
			fmt.Fprintf(w, "skipped: %s (%v)\n", base, err)
			summary.Skipped++
			summary.Results = append(summary.Results, Result{File: base, Status: StatusSkipped, Error: err.Error()})
		default:
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			summary.Failed++
			summary.Results = append(summary.Results, Result{File: base, Status: StatusFailed, Error: err.Error()})
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		summary.Converted, summary.Skipped, summary.Failed, summary.Total())
	return summary
}

// WriteReport marshals the summary to a YAML file at path.
func (s Summary) WriteReport(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
