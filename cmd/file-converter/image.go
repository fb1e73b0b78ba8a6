package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evanpersinger/File-Converter/internal/ocr"
	"github.com/evanpersinger/File-Converter/internal/pdfgen"
	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/internal/workspace"
	"github.com/evanpersinger/File-Converter/pkg/types"
)

// imageExts are the raster formats the image commands accept.
var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif", ".webp"}

var img2pdfCmd = &cobra.Command{
	Use:   "img2pdf [file [output]]",
	Short: "Wrap images in single-page PDFs",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, conversion{
			// fpdf reads png, jpg and gif natively.
			srcExts:   []string{".png", ".jpg", ".jpeg", ".gif"},
			targetExt: ".pdf",
			label:     "PDF",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				return pdfgen.ImageToPDF(inPath, outPath)
			},
		})
	},
}

var ocrCmd = &cobra.Command{
	Use:   "ocr [file [output]]",
	Short: "Extract text from images with tesseract",
	Long: `ocr runs tesseract on an image and writes cleaned plain text: common
character confusions are repaired and hard-wrapped sentences rejoined.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tesseract, err := tool.Find("tesseract")
		if err != nil {
			return fmt.Errorf("tesseract not found: %w", err)
		}
		cfg := ocrConfig(cmd)
		return runConversion(cmd, args, conversion{
			srcExts:   imageExts,
			targetExt: ".txt",
			label:     "text",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				text, err := ocr.ExtractText(tesseract, inPath, cfg)
				if err != nil {
					return err
				}
				return os.WriteFile(outPath, []byte(text+"\n"), 0o644)
			},
		})
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [file [output]]",
	Short: "Extract text and tables from scanned documents",
	Long: `scan is ocr for full document pages: it tries several tesseract
segmentation modes, keeps the best extraction, and reconstructs tables
from word positions when the page contains one.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tesseract, err := tool.Find("tesseract")
		if err != nil {
			return fmt.Errorf("tesseract not found: %w", err)
		}
		cfg := ocrConfig(cmd)
		return runConversion(cmd, args, conversion{
			srcExts:   imageExts,
			targetExt: ".txt",
			label:     "text",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				text, err := ocr.ScanImage(tesseract, inPath, cfg)
				if err != nil {
					return err
				}
				return os.WriteFile(outPath, []byte(text+"\n"), 0o644)
			},
		})
	},
}

var img2mdCmd = &cobra.Command{
	Use:   "img2md [file [output]]",
	Short: "Convert images to Markdown via OCR",
	Long: `img2md runs tesseract on an image and writes the cleaned text as a
Markdown document with the filename as its heading.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tesseract, err := tool.Find("tesseract")
		if err != nil {
			return fmt.Errorf("tesseract not found: %w", err)
		}
		cfg := ocrConfig(cmd)
		return runConversion(cmd, args, conversion{
			srcExts:   imageExts,
			targetExt: ".md",
			label:     "Markdown",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				text, err := ocr.ExtractText(tesseract, inPath, cfg)
				if err != nil {
					return err
				}
				md := "# " + workspace.Stem(inPath) + "\n\n" + text + "\n"
				return os.WriteFile(outPath, []byte(md), 0o644)
			},
		})
	},
}

// ocrConfig reads the language and segmentation mode settings.
func ocrConfig(cmd *cobra.Command) types.OCRConfig {
	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = viper.GetString("ocr-lang")
	}
	psm, _ := cmd.Flags().GetString("psm")
	return types.OCRConfig{Lang: lang, PSM: psm}
}

func init() {
	for _, c := range []*cobra.Command{img2pdfCmd, ocrCmd, scanCmd, img2mdCmd} {
		addOutputFlag(c)
		rootCmd.AddCommand(c)
	}
	ocrCmd.Flags().String("lang", "", "tesseract language (default: eng)")
	ocrCmd.Flags().String("psm", "", "tesseract page segmentation mode (default: 6)")
	scanCmd.Flags().String("lang", "", "tesseract language (default: eng)")
	scanCmd.Flags().String("psm", "", "tesseract page segmentation mode (default: try several)")
	img2mdCmd.Flags().String("lang", "", "tesseract language (default: eng)")
	img2mdCmd.Flags().String("psm", "", "tesseract page segmentation mode (default: 6)")
}
