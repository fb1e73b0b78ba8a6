package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanpersinger/File-Converter/internal/markup"
	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

var md2pdfCmd = &cobra.Command{
	Use:   "md2pdf [file [output]]",
	Short: "Convert Markdown files to PDF with pandoc",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pandoc, err := tool.Find("pandoc")
		if err != nil {
			return fmt.Errorf("pandoc not found (install pandoc and a LaTeX distribution): %w", err)
		}
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".md", ".markdown"},
			targetExt: ".pdf",
			label:     "PDF",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				return markup.MarkdownToPDF(pandoc, inPath, outPath)
			},
		})
	},
}

var html2pdfCmd = &cobra.Command{
	Use:   "html2pdf [file [output]]",
	Short: "Convert HTML files to PDF",
	Long: `html2pdf renders HTML with wkhtmltopdf when it is installed, falling
back to pandoc otherwise.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wkhtml, _ := tool.Find("wkhtmltopdf")
		pandoc, _ := tool.Find("pandoc")
		if wkhtml == nil && pandoc == nil {
			return fmt.Errorf("no HTML renderer found: install wkhtmltopdf or pandoc")
		}
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".html", ".htm"},
			targetExt: ".pdf",
			label:     "PDF",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				return markup.HTMLToPDF(runnerOrNil(wkhtml), runnerOrNil(pandoc), inPath, outPath)
			},
		})
	},
}

// runnerOrNil converts a possibly-nil *tool.Tool to a tool.Runner
// without producing a non-nil interface around a nil pointer.
func runnerOrNil(t *tool.Tool) tool.Runner {
	if t == nil {
		return nil
	}
	return t
}

func init() {
	addOutputFlag(md2pdfCmd)
	addOutputFlag(html2pdfCmd)

	rootCmd.AddCommand(md2pdfCmd)
	rootCmd.AddCommand(html2pdfCmd)
}
