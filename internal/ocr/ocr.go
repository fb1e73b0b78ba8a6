// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr extracts text from images with tesseract and cleans up
// its output.
package ocr

import (
	"fmt"
	"strings"

	"github.com/evanpersinger/File-Converter/internal/tool"
	"github.com/evanpersinger/File-Converter/pkg/types"
)

// ImageToText runs tesseract on one image and returns the raw text for
// the given page segmentation mode.
func ImageToText(tesseract tool.Runner, imagePath string, cfg types.OCRConfig) (string, error) {
	lang := cfg.Lang
	if lang == "" {
		lang = "eng"
	}
	psm := cfg.PSM
	if psm == "" {
		psm = "6"
	}

	var out strings.Builder
	args := []string{imagePath, "stdout", "--oem", "3", "--psm", psm, "-l", lang}
	if err := tesseract.Run(args, nil, &out); err != nil {
		return "", fmt.Errorf("tesseract failed on %s: %w", imagePath, err)
	}
	return out.String(), nil
}

// ExtractText runs tesseract and returns cleaned text, erroring when
// the image yields nothing readable.
func ExtractText(tesseract tool.Runner, imagePath string, cfg types.OCRConfig) (string, error) {
	raw, err := ImageToText(tesseract, imagePath, cfg)
	if err != nil {
		return "", err
	}
	text := CleanText(raw)
	if text == "" {
		return "", fmt.Errorf("no readable text in %s", imagePath)
	}
	return text, nil
}
