package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evanpersinger/File-Converter/internal/pdftext"
	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/internal/vision"
	"github.com/evanpersinger/File-Converter/internal/workspace"
	"github.com/evanpersinger/File-Converter/pkg/types"
)

var pdf2mdCmd = &cobra.Command{
	Use:   "pdf2md [file [output]]",
	Short: "Convert PDF files to Markdown using the embedded text layer",
	Long: `pdf2md extracts the text layer of a PDF and writes it as Markdown with
page separators. Scanned PDFs without a text layer are reported as
failures; use the vision or ocr commands for those.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, conversion{
			srcExts:   []string{".pdf"},
			targetExt: ".md",
			label:     "Markdown",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				text, err := pdftext.ExtractMarkdown(inPath)
				if err != nil {
					return err
				}
				header := "# " + workspace.Stem(inPath) + "\n\n"
				return os.WriteFile(outPath, []byte(header+text), 0o644)
			},
		})
	},
}

var visionCmd = &cobra.Command{
	Use:   "vision [file [output]]",
	Short: "Convert PDF files to Markdown with a multimodal model",
	Long: `vision rasterizes each PDF page with pdftoppm and has a multimodal
model transcribe it, preserving headings, lists and tables. Works on
scanned documents where pdf2md cannot. Requires an OpenAI API key in
.secrets/openai-api-key or the FILE_CONVERTER_OPENAI_API_KEY
environment variable.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := visionClient(cmd)
		if err != nil {
			return err
		}
		pdftoppm, err := tool.Find("pdftoppm")
		if err != nil {
			return fmt.Errorf("pdftoppm not found (install poppler): %w", err)
		}

		return runConversion(cmd, args, conversion{
			srcExts:   []string{".pdf"},
			targetExt: ".md",
			label:     "Markdown",
			convert: func(dirs workspace.Dirs, inPath, outPath string) error {
				md, err := client.ConvertPDF(cmd.Context(), pdftoppm, inPath)
				if err != nil {
					return err
				}
				return os.WriteFile(outPath, []byte(md+"\n"), 0o644)
			},
		})
	},
}

// visionClient builds a vision client from flags, config and secrets.
func visionClient(cmd *cobra.Command) (*vision.Client, error) {
	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("vision-model")
	}
	dpi, _ := cmd.Flags().GetInt("dpi")

	key := secretDefault("openai-api-key", viper.GetString("openai-api-key"))
	if key == "" {
		key = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}

	return vision.New(types.VisionConfig{
		AIConfig: types.AIConfig{Model: model, APIKey: key},
		DPI:      dpi,
	})
}

func init() {
	addOutputFlag(pdf2mdCmd)
	addOutputFlag(visionCmd)
	visionCmd.Flags().String("model", "", "multimodal model identifier (default: gpt-4o-mini)")
	visionCmd.Flags().Int("dpi", 0, "rasterization resolution (default: 150)")

	rootCmd.AddCommand(pdf2mdCmd)
	rootCmd.AddCommand(visionCmd)
}
