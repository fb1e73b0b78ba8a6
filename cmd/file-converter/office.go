package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanpersinger/File-Converter/internal/office"
	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

var docx2pdfCmd = &cobra.Command{
	Use:   "docx2pdf [file [output]]",
	Short: "Convert Word documents to PDF",
	Long: `docx2pdf renders a Word document as a PDF, preserving paragraph and
table order. No external office suite is required.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".docx"},
			targetExt: ".pdf",
			label:     "PDF",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				return office.DocxToPDF(inPath, outPath)
			},
		})
	},
}

var pptx2mdCmd = &cobra.Command{
	Use:   "pptx2md [file [output]]",
	Short: "Extract PowerPoint slide text to Markdown",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".pptx"},
			targetExt: ".md",
			label:     "Markdown",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				return office.PptxToMarkdown(inPath, outPath)
			},
		})
	},
}

var pptx2pdfCmd = &cobra.Command{
	Use:   "pptx2pdf [file [output]]",
	Short: "Convert PowerPoint presentations to PDF with LibreOffice",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		soffice, err := tool.FindLibreOffice()
		if err != nil {
			return fmt.Errorf("LibreOffice not found: %w", err)
		}
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".pptx", ".ppt"},
			targetExt: ".pdf",
			label:     "PDF",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				got, err := office.PptxToPDF(soffice, inPath, dirs.Output)
				if err != nil {
					return err
				}
				return renameIfNeeded(got, outPath)
			},
		})
	},
}

func init() {
	addOutputFlag(docx2pdfCmd)
	addOutputFlag(pptx2mdCmd)
	addOutputFlag(pptx2pdfCmd)

	rootCmd.AddCommand(docx2pdfCmd)
	rootCmd.AddCommand(pptx2mdCmd)
	rootCmd.AddCommand(pptx2pdfCmd)
}
