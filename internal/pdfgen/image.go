// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfgen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

// ImageToPDF wraps a single image in a one-page PDF. The page is sized
// to the image so nothing is scaled or cropped.
func ImageToPDF(inPath, outPath string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(inPath)), ".")
	if ext == "jpg" {
		ext = "jpeg"
	}
	opts := fpdf.ImageOptions{ImageType: ext, ReadDpi: true}

	pdf := fpdf.New("P", "pt", "A4", "")
	info := pdf.RegisterImageOptions(inPath, opts)
	if pdf.Err() {
		return fmt.Errorf("reading image %s: %s", inPath, pdf.Error())
	}
	w, h := info.Extent()

	// The page gets the image's exact dimensions. Orientation stays "P":
	// fpdf treats the SizeType as portrait and would swap Wd/Ht for "L",
	// clipping wide images.
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
	pdf.ImageOptions(inPath, 0, 0, w, h, false, opts, 0, "")

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
