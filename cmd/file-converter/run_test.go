package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// setWorkspaceConfig points the workspace settings at temp directories
// for the duration of one test.
func setWorkspaceConfig(t *testing.T, input, output string) {
	t.Helper()
	viper.Set("input-dir", input)
	viper.Set("output-dir", output)
	t.Cleanup(func() {
		viper.Set("input-dir", "")
		viper.Set("output-dir", "")
	})
}

func TestResolveDirsFromConfig(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")
	setWorkspaceConfig(t, in, out)

	dirs, err := resolveDirs(&cobra.Command{})
	if err != nil {
		t.Fatalf("resolveDirs: %v", err)
	}
	if dirs.Input != in || dirs.Output != out {
		t.Errorf("dirs = %q/%q, want %q/%q", dirs.Input, dirs.Output, in, out)
	}
	if _, err := os.Stat(in); err != nil {
		t.Errorf("input directory not created: %v", err)
	}
}

func TestResolveDirsFlagOverride(t *testing.T) {
	dir := t.TempDir()
	setWorkspaceConfig(t, filepath.Join(dir, "cfg-in"), filepath.Join(dir, "cfg-out"))

	cmd := &cobra.Command{}
	cmd.Flags().String("input-dir", "", "")
	cmd.Flags().String("output-dir", "", "")
	flagIn := filepath.Join(dir, "flag-in")
	cmd.Flags().Set("input-dir", flagIn)

	dirs, err := resolveDirs(cmd)
	if err != nil {
		t.Fatalf("resolveDirs: %v", err)
	}
	if dirs.Input != flagIn {
		t.Errorf("Input = %q, want flag value %q", dirs.Input, flagIn)
	}
	if dirs.Output != filepath.Join(dir, "cfg-out") {
		t.Errorf("Output = %q, want config value", dirs.Output)
	}
}

func TestXlsx2csvBatchIgnoresLegacyXLS(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	setWorkspaceConfig(t, in, filepath.Join(dir, "out"))
	if err := os.MkdirAll(in, 0o755); err != nil {
		t.Fatal(err)
	}
	// Legacy binary workbooks cannot be read; they must not be picked
	// up by the batch at all.
	if err := os.WriteFile(filepath.Join(in, "ledger.xls"), []byte("not ooxml"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	xlsx2csvCmd.SetOut(&buf)
	if err := xlsx2csvCmd.RunE(xlsx2csvCmd, nil); err != nil {
		t.Fatalf("xlsx2csv: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "No xlsx files found") {
		t.Errorf("expected empty-batch message, got:\n%s", got)
	}
	if strings.Contains(got, "failed:") {
		t.Errorf("legacy workbook was converted instead of ignored:\n%s", got)
	}
}
