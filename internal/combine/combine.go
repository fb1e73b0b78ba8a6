// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package combine merges same-kind files: images are stacked
// vertically, PDFs are concatenated, text files are joined with
// separators.
package combine

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/evanpersinger/File-Converter/pkg/types"
)

// Files merges the given files, which must all be of one kind, into
// outPath. The input order is natural sort order of the base names, so
// page2 sorts before page10.
func Files(paths []string, outPath string) error {
	if len(paths) < 2 {
		return fmt.Errorf("need at least 2 files to combine, got %d", len(paths))
	}

	kind := types.DetectKind(paths[0])
	for _, p := range paths[1:] {
		if types.DetectKind(p) != kind {
			return fmt.Errorf("cannot mix %s and %s inputs", kind, types.DetectKind(p))
		}
	}

	sorted := append([]string(nil), paths...)
	sort.Slice(sorted, func(i, j int) bool {
		return naturalLess(filepath.Base(sorted[i]), filepath.Base(sorted[j]))
	})

	switch kind {
	case types.KindImage:
		return combineImages(sorted, outPath)
	case types.KindPDF:
		return combinePDFs(sorted, outPath)
	default:
		return combineText(sorted, outPath)
	}
}

// DefaultOutputName is "combined" with the extension of the first
// input in natural order.
func DefaultOutputName(paths []string) string {
	sorted := append([]string(nil), paths...)
	sort.Slice(sorted, func(i, j int) bool {
		return naturalLess(filepath.Base(sorted[i]), filepath.Base(sorted[j]))
	})
	return "combined" + strings.ToLower(filepath.Ext(sorted[0]))
}

// combinePDFs concatenates the inputs with pdfcpu.
func combinePDFs(paths []string, outPath string) error {
	if err := api.MergeCreateFile(paths, outPath, false, nil); err != nil {
		return fmt.Errorf("merging PDFs: %w", err)
	}
	return nil
}

// combineImages stacks the inputs vertically on a white canvas as wide
// as the widest input, each image centered horizontally.
func combineImages(paths []string, outPath string) error {
	var imgs []image.Image
	width, height := 0, 0
	for _, p := range paths {
		img, err := decodeImage(p)
		if err != nil {
			return err
		}
		b := img.Bounds()
		if b.Dx() > width {
			width = b.Dx()
		}
		height += b.Dy()
		imgs = append(imgs, img)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	y := 0
	for _, img := range imgs {
		b := img.Bounds()
		x := (width - b.Dx()) / 2
		dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
		// Over, not Src: transparent regions keep the white canvas.
		draw.Draw(canvas, dst, img, b.Min, draw.Over)
		y += b.Dy()
	}

	return encodeImage(canvas, outPath)
}

// combineText concatenates the inputs with a banner naming each file.
func combineText(paths []string, outPath string) error {
	var sb strings.Builder
	rule := strings.Repeat("=", 60)
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s\nFile: %s\n%s\n\n", rule, filepath.Base(p), rule)
		sb.Write(data)
		if !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteString("\n")
		}
	}
	return os.WriteFile(outPath, []byte(sb.String()), 0o644)
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func encodeImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	case ".gif":
		err = gif.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// naturalLess orders strings so that embedded numbers compare by
// value: page2 before page10.
func naturalLess(a, b string) bool {
	ar, br := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))
	i, j := 0, 0
	for i < len(ar) && j < len(br) {
		if unicode.IsDigit(ar[i]) && unicode.IsDigit(br[j]) {
			is, js := i, j
			for i < len(ar) && unicode.IsDigit(ar[i]) {
				i++
			}
			for j < len(br) && unicode.IsDigit(br[j]) {
				j++
			}
			na := strings.TrimLeft(string(ar[is:i]), "0")
			nb := strings.TrimLeft(string(br[js:j]), "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			continue
		}
		if ar[i] != br[j] {
			return ar[i] < br[j]
		}
		i++
		j++
	}
	return len(ar)-i < len(br)-j
}
