// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfgen

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestImageToPDFWideImage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "banner.png")
	out := filepath.Join(dir, "banner.pdf")
	writeTestPNG(t, in, 800, 200)

	if err := ImageToPDF(in, out); err != nil {
		t.Fatalf("ImageToPDF: %v", err)
	}
	dims, err := api.PageDimsFile(out)
	if err != nil {
		t.Fatalf("reading page dims: %v", err)
	}
	if len(dims) != 1 {
		t.Fatalf("expected 1 page, got %d", len(dims))
	}
	// A wide image must get a page wider than it is tall, in the same
	// aspect ratio, or the right side is clipped.
	if dims[0].Width <= dims[0].Height {
		t.Errorf("page %gx%g is not landscape for an 800x200 image", dims[0].Width, dims[0].Height)
	}
	ratio := dims[0].Width / dims[0].Height
	if ratio < 3.9 || ratio > 4.1 {
		t.Errorf("page aspect ratio = %g, want ~4", ratio)
	}
}

func TestImageToPDFTallImage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "strip.png")
	out := filepath.Join(dir, "strip.pdf")
	writeTestPNG(t, in, 200, 800)

	if err := ImageToPDF(in, out); err != nil {
		t.Fatalf("ImageToPDF: %v", err)
	}
	dims, err := api.PageDimsFile(out)
	if err != nil {
		t.Fatalf("reading page dims: %v", err)
	}
	if dims[0].Height <= dims[0].Width {
		t.Errorf("page %gx%g is not portrait for a 200x800 image", dims[0].Width, dims[0].Height)
	}
}
