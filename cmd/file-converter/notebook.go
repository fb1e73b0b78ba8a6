package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanpersinger/File-Converter/internal/markup"
	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

var ipynb2pdfCmd = &cobra.Command{
	Use:   "ipynb2pdf [file [output]]",
	Short: "Convert Jupyter notebooks to PDF with nbconvert",
	Long: `ipynb2pdf renders a notebook, including cell outputs, with
jupyter nbconvert. Requires jupyter and a LaTeX distribution.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		jupyter, err := tool.Find("jupyter")
		if err != nil {
			return fmt.Errorf("jupyter not found (install jupyter with nbconvert): %w", err)
		}
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".ipynb"},
			targetExt: ".pdf",
			label:     "PDF",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				got, err := markup.NotebookToPDF(jupyter, inPath, dirs.Output)
				if err != nil {
					return err
				}
				return renameIfNeeded(got, outPath)
			},
		})
	},
}

func init() {
	addOutputFlag(ipynb2pdfCmd)

	rootCmd.AddCommand(ipynb2pdfCmd)
}
