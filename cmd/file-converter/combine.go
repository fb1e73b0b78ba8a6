package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evanpersinger/File-Converter/internal/combine"
)

var combineCmd = &cobra.Command{
	Use:   "combine <file> <file> [files...]",
	Short: "Merge files of the same kind into one",
	Long: `combine merges two or more same-kind files from the input directory:
images are stacked vertically, PDFs are concatenated, text files are
joined with separators naming each source. Files are ordered naturally,
so page2 comes before page10.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs, err := resolveDirs(cmd)
		if err != nil {
			return err
		}

		paths := make([]string, len(args))
		for i, a := range args {
			p := dirs.InputPath(a)
			if _, err := os.Stat(p); err != nil {
				return fmt.Errorf("input file not found: %s", a)
			}
			paths[i] = p
		}

		outName, _ := cmd.Flags().GetString("output")
		if outName == "" {
			outName = combine.DefaultOutputName(paths)
		}
		outPath := dirs.OutputPath(outName)

		if err := combine.Files(paths, outPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "combined %d files -> %s\n", len(paths), outName)
		return nil
	},
}

func init() {
	combineCmd.Flags().StringP("output", "o", "", "output filename (default: combined.<ext>)")

	rootCmd.AddCommand(combineCmd)
}
