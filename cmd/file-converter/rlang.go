package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/evanpersinger/File-Converter/internal/markup"
	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

var r2rmdCmd = &cobra.Command{
	Use:   "r2rmd [file [output]]",
	Short: "Convert R scripts to R Markdown documents",
	Long: `r2rmd rewrites a plain R script as an R Markdown document: comments
become prose and headings, code becomes executable chunks. The result
can then be knit to PDF with rmd2pdf.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".r"},
			targetExt: ".Rmd",
			label:     "R Markdown",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				src, err := os.ReadFile(inPath)
				if err != nil {
					return err
				}
				return os.WriteFile(outPath, []byte(markup.RToRmd(string(src))), 0o644)
			},
		})
	},
}

var rmd2pdfCmd = &cobra.Command{
	Use:   "rmd2pdf [file [output]]",
	Short: "Knit R Markdown documents to PDF",
	Long: `rmd2pdf renders an R Markdown file with rmarkdown::render, executing
its code chunks. Without an R installation it falls back to pandoc,
which keeps the prose but skips execution.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rscript, _ := tool.Find("Rscript")
		pandoc, _ := tool.Find("pandoc")
		if rscript == nil && pandoc == nil {
			return fmt.Errorf("no renderer found: install R or pandoc")
		}
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".rmd"},
			targetExt: ".pdf",
			label:     "PDF",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				got, err := markup.RmdToPDF(runnerOrNil(rscript), runnerOrNil(pandoc), inPath, dirs.Output)
				if err != nil {
					return err
				}
				// rmarkdown picks the output name itself; honor an
				// explicit override by renaming.
				return renameIfNeeded(got, outPath)
			},
		})
	},
}

// renameIfNeeded is used by commands whose external tool fixes the
// output filename.
func renameIfNeeded(got, want string) error {
	if got == want {
		return nil
	}
	if filepath.Clean(got) == filepath.Clean(want) {
		return nil
	}
	return os.Rename(got, want)
}

func init() {
	addOutputFlag(r2rmdCmd)
	addOutputFlag(rmd2pdfCmd)

	rootCmd.AddCommand(r2rmdCmd)
	rootCmd.AddCommand(rmd2pdfCmd)
}
