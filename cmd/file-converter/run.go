package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evanpersinger/File-Converter/internal/batch"
	"github.com/evanpersinger/File-Converter/internal/workspace"
	"github.com/evanpersinger/File-Converter/pkg/types"
)

// conversion describes a one-file-in, one-file-out subcommand: which
// extensions it consumes, what it produces, and the function that does
// the work.
type conversion struct {
	srcExts   []string
	targetExt string
	// label names the target format in user-facing messages, e.g. "CSV".
	label   string
	convert func(dirs workspace.Dirs, inPath, outPath string) error
}

// resolveDirs reads the input/output directory settings (flag, then
// config/env, then default) and creates both directories.
func resolveDirs(cmd *cobra.Command) (workspace.Dirs, error) {
	var ws types.WorkspaceConfig
	if err := viper.Unmarshal(&ws); err != nil {
		return workspace.Dirs{}, fmt.Errorf("reading configuration: %w", err)
	}
	// Flags override the config file and environment.
	if v, _ := cmd.Flags().GetString("input-dir"); v != "" {
		ws.InputDir = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		ws.OutputDir = v
	}
	return workspace.Resolve(ws.InputDir, ws.OutputDir)
}

// addOutputFlag registers the single-file output name override.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "output filename (single-file mode only)")
}

// runConversion implements the shared subcommand behavior: with a
// filename argument it converts that one file, with no arguments it
// converts every matching file in the input directory.
func runConversion(cmd *cobra.Command, args []string, c conversion) error {
	dirs, err := resolveDirs(cmd)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		// An explicit output name comes from the second argument or the
		// --output flag; the argument wins.
		override, _ := cmd.Flags().GetString("output")
		if len(args) > 1 {
			override = args[1]
		}
		return convertOne(cmd, dirs, args[0], override, c)
	}

	files, err := dirs.List(c.srcExts...)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s files found in input folder\n", extList(c.srcExts))
		return nil
	}

	summary := batch.Run(files, cmd.OutOrStdout(), func(inPath string) (string, error) {
		if workspace.HasExt(inPath, c.targetExt) {
			return "", batch.ErrSkip
		}
		outName := workspace.OutputName(inPath, "", c.targetExt)
		if err := c.convert(dirs, inPath, dirs.OutputPath(outName)); err != nil {
			return "", err
		}
		return outName, nil
	})

	if report, _ := rootCmd.PersistentFlags().GetString("report"); report != "" {
		if err := summary.WriteReport(report); err != nil {
			return err
		}
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d conversions failed", summary.Failed)
	}
	return nil
}

// convertOne handles single-file mode, including the override output
// name and the already-converted guard.
func convertOne(cmd *cobra.Command, dirs workspace.Dirs, name, override string, c conversion) error {
	inPath := dirs.InputPath(name)
	if _, err := os.Stat(inPath); err != nil {
		return fmt.Errorf("input file not found: %s", name)
	}
	if workspace.HasExt(inPath, c.targetExt) {
		fmt.Fprintf(cmd.OutOrStdout(), "That file is already in %s format\n", c.label)
		return nil
	}

	outName := workspace.OutputName(inPath, override, c.targetExt)
	if err := c.convert(dirs, inPath, dirs.OutputPath(outName)); err != nil {
		return fmt.Errorf("converting %s: %w", name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "converted: %s -> %s\n", inPath, outName)
	return nil
}

// extList renders source extensions for messages: ".xlsx" -> "xlsx".
func extList(exts []string) string {
	out := ""
	for i, e := range exts {
		if i > 0 {
			out += "/"
		}
		out += e[1:]
	}
	return out
}
