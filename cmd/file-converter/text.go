package main

import (
	"github.com/spf13/cobra"

	"github.com/evanpersinger/File-Converter/internal/pdfgen"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

var txt2pdfCmd = &cobra.Command{
	Use:   "txt2pdf [file [output]]",
	Short: "Convert plain text files to PDF",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".txt"},
			targetExt: ".pdf",
			label:     "PDF",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				return pdfgen.TxtToPDF(inPath, outPath, "Text File: "+workspace.Stem(inPath))
			},
		})
	},
}

var sql2pdfCmd = &cobra.Command{
	Use:   "sql2pdf [file [output]]",
	Short: "Convert SQL files to formatted PDF",
	Long: `sql2pdf renders SQL statements as a PDF code listing with keywords
uppercased and major clauses on their own lines.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".sql"},
			targetExt: ".pdf",
			label:     "PDF",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				return pdfgen.SQLToPDF(inPath, outPath, "SQL File: "+workspace.Stem(inPath))
			},
		})
	},
}

func init() {
	addOutputFlag(txt2pdfCmd)
	addOutputFlag(sql2pdfCmd)

	rootCmd.AddCommand(txt2pdfCmd)
	rootCmd.AddCommand(sql2pdfCmd)
}
