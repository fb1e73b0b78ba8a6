// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vision transcribes PDF pages to Markdown with a multimodal
// model. Pages are rasterized with pdftoppm and sent one at a time.
package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/evanpersinger/File-Converter/internal/httputil"
	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/pkg/types"
)

const (
	defaultModel = "gpt-4o-mini"
	defaultDPI   = 150

	pagePrompt = "Transcribe this document page to Markdown. Preserve headings, " +
		"lists and tables. Reproduce the text exactly; do not summarize, " +
		"and do not wrap the result in a code fence."
)

// Client transcribes documents with a multimodal chat model.
type Client struct {
	ai  openai.Client
	cfg types.VisionConfig
}

// New builds a vision client. API calls retry on transient failures.
func New(cfg types.VisionConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no OpenAI API key configured")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.DPI == 0 {
		cfg.DPI = defaultDPI
	}

	ai := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{
			Transport: &httputil.RetryTransport{MaxRetries: cfg.MaxRetries},
		}),
	)
	return &Client{ai: ai, cfg: cfg}, nil
}

// ConvertPDF rasterizes the PDF and transcribes each page, returning
// the pages joined as one Markdown document.
func (c *Client) ConvertPDF(ctx context.Context, pdftoppm tool.Runner, pdfPath string) (string, error) {
	tmp, err := os.MkdirTemp("", "vision-pages-")
	if err != nil {
		return "", fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	prefix := filepath.Join(tmp, "page")
	args := []string{"-png", "-r", strconv.Itoa(c.cfg.DPI), pdfPath, prefix}
	if err := pdftoppm.Run(args, nil, os.Stderr); err != nil {
		return "", fmt.Errorf("rasterizing %s: %w", pdfPath, err)
	}

	pages, err := filepath.Glob(prefix + "*.png")
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("%s produced no pages", pdfPath)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pageNumber(pages[i]) < pageNumber(pages[j])
	})

	var parts []string
	for i, page := range pages {
		text, err := c.transcribePage(ctx, page)
		if err != nil {
			return "", fmt.Errorf("transcribing page %d: %w", i+1, err)
		}
		parts = append(parts, strings.TrimSpace(text))
	}
	return strings.Join(parts, "\n\n"), nil
}

// transcribePage sends one page image to the model.
func (c *Client) transcribePage(ctx context.Context, imagePath string) (string, error) {
	dataURL, err := encodeDataURL(imagePath)
	if err != nil {
		return "", err
	}

	resp, err := c.ai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(pagePrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL,
				}),
			}),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// encodeDataURL reads an image file into a base64 data URL.
func encodeDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	mime := "image/png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".gif":
		mime = "image/gif"
	case ".webp":
		mime = "image/webp"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// pageNumber extracts the trailing page index pdftoppm appends to the
// prefix, e.g. page-3.png.
func pageNumber(path string) int {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	i := len(stem)
	for i > 0 && stem[i-1] >= '0' && stem[i-1] <= '9' {
		i--
	}
	n, _ := strconv.Atoi(stem[i:])
	return n
}
