// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"fmt"
	"os"

	"github.com/openai/openai-go"

	"github.com/evanpersinger/File-Converter/internal/markup"
	"github.com/evanpersinger/File-Converter/internal/office"
	"github.com/evanpersinger/File-Converter/internal/pdfgen"
	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/internal/workspace"
)

// ToolDef describes one callable tool: its schema for the model and a
// Call that returns a plain-text result or error description.
type ToolDef struct {
	Name        string
	Description string
	Parameters  openai.FunctionParameters
	Call        func(args map[string]any) string
}

// Deps holds what the tools need at call time. A nil Runner means the
// corresponding host tool was not found; its tools report that instead
// of failing silently.
type Deps struct {
	Dirs    workspace.Dirs
	Pandoc  tool.Runner
	Wkhtml  tool.Runner
	Jupyter tool.Runner
}

// fileParam is the shared single-argument schema: a filename in the
// input directory.
func fileParam(desc string) openai.FunctionParameters {
	return openai.FunctionParameters{
		"type": "object",
		"properties": map[string]any{
			"filename": map[string]any{
				"type":        "string",
				"description": desc,
			},
		},
		"required": []string{"filename"},
	}
}

// stringArg fetches a string argument, empty when missing or mistyped.
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// BuildRegistry assembles the tool set exposed to the model.
func BuildRegistry(deps Deps) []ToolDef {
	resolve := func(args map[string]any) (in, out string, err error) {
		name := stringArg(args, "filename")
		if name == "" {
			return "", "", fmt.Errorf("missing filename argument")
		}
		in = deps.Dirs.InputPath(name)
		if _, err := os.Stat(in); err != nil {
			return "", "", fmt.Errorf("file not found: %s", name)
		}
		return in, deps.Dirs.OutputPath(workspace.OutputName(in, "", ".pdf")), nil
	}

	return []ToolDef{
		{
			Name:        "read_file",
			Description: "Read a text file from the input directory and return its contents.",
			Parameters:  fileParam("Name of the file to read, relative to the input directory."),
			Call: func(args map[string]any) string {
				name := stringArg(args, "filename")
				if name == "" {
					return "error: missing filename argument"
				}
				data, err := os.ReadFile(deps.Dirs.InputPath(name))
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				const limit = 8000
				if len(data) > limit {
					return string(data[:limit]) + "\n...[truncated]"
				}
				return string(data)
			},
		},
		{
			Name:        "convert_md_to_pdf",
			Description: "Convert a Markdown file from the input directory to a PDF in the output directory.",
			Parameters:  fileParam("Name of the .md file to convert."),
			Call: func(args map[string]any) string {
				in, out, err := resolve(args)
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				if deps.Pandoc == nil {
					return "error: pandoc is not installed"
				}
				if err := markup.MarkdownToPDF(deps.Pandoc, in, out); err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				return "converted to " + out
			},
		},
		{
			Name:        "convert_html_to_pdf",
			Description: "Convert an HTML file from the input directory to a PDF in the output directory.",
			Parameters:  fileParam("Name of the .html file to convert."),
			Call: func(args map[string]any) string {
				in, out, err := resolve(args)
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				if err := markup.HTMLToPDF(deps.Wkhtml, deps.Pandoc, in, out); err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				return "converted to " + out
			},
		},
		{
			Name:        "convert_docx_to_pdf",
			Description: "Convert a Word document from the input directory to a PDF in the output directory.",
			Parameters:  fileParam("Name of the .docx file to convert."),
			Call: func(args map[string]any) string {
				in, out, err := resolve(args)
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				if err := office.DocxToPDF(in, out); err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				return "converted to " + out
			},
		},
		{
			Name:        "convert_txt_to_pdf",
			Description: "Convert a plain text file from the input directory to a PDF in the output directory.",
			Parameters:  fileParam("Name of the .txt file to convert."),
			Call: func(args map[string]any) string {
				in, out, err := resolve(args)
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				if err := pdfgen.TxtToPDF(in, out, "Text File: "+workspace.Stem(in)); err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				return "converted to " + out
			},
		},
		{
			Name:        "convert_notebook_to_pdf",
			Description: "Convert a Jupyter notebook from the input directory to a PDF in the output directory.",
			Parameters:  fileParam("Name of the .ipynb file to convert."),
			Call: func(args map[string]any) string {
				name := stringArg(args, "filename")
				if name == "" {
					return "error: missing filename argument"
				}
				in := deps.Dirs.InputPath(name)
				if _, err := os.Stat(in); err != nil {
					return fmt.Sprintf("error: file not found: %s", name)
				}
				if deps.Jupyter == nil {
					return "error: jupyter is not installed"
				}
				out, err := markup.NotebookToPDF(deps.Jupyter, in, deps.Dirs.Output)
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				return "converted to " + out
			},
		},
		{
			Name:        "list_input_files",
			Description: "List the files currently in the input directory.",
			Parameters: openai.FunctionParameters{
				"type":       "object",
				"properties": map[string]any{},
			},
			Call: func(args map[string]any) string {
				files, err := deps.Dirs.List()
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				if len(files) == 0 {
					return "the input directory is empty"
				}
				out := ""
				for _, f := range files {
					out += f + "\n"
				}
				return out
			},
		},
	}
}
