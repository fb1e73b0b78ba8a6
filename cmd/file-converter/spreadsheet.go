package main

import (
	"github.com/spf13/cobra"

	"github.com/evanpersinger/File-Converter/internal/spreadsheet"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

var xlsx2csvCmd = &cobra.Command{
	Use:   "xlsx2csv [file [output]]",
	Short: "Convert Excel workbooks to CSV",
	Long: `xlsx2csv writes the first sheet of an Excel workbook as a CSV file.
With no argument every workbook in the input directory is converted.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, conversion{
			// excelize reads OOXML only; legacy .xls is not supported.
			srcExts:   []string{".xlsx"},
			targetExt: ".csv",
			label:     "CSV",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				return spreadsheet.XLSXToCSV(inPath, outPath)
			},
		})
	},
}

var csv2xlsxCmd = &cobra.Command{
	Use:   "csv2xlsx [file [output]]",
	Short: "Convert CSV files to Excel workbooks",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".csv"},
			targetExt: ".xlsx",
			label:     "Excel",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				return spreadsheet.CSVToXLSX(inPath, outPath)
			},
		})
	},
}

func init() {
	addOutputFlag(xlsx2csvCmd)
	addOutputFlag(csv2xlsxCmd)

	rootCmd.AddCommand(xlsx2csvCmd)
	rootCmd.AddCommand(csv2xlsxCmd)
}
