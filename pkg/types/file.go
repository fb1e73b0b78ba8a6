// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"strings"
)

// FileKind classifies a file by its extension for format-sensitive
// operations such as combining.
type FileKind string

const (
	KindImage FileKind = "image"
	KindPDF   FileKind = "pdf"
	KindText  FileKind = "text"
)

// imageExts is the set of extensions treated as images.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".webp": true,
}

// DetectKind returns the FileKind for a path based on its extension.
// Anything that is neither an image nor a PDF is treated as text.
func DetectKind(path string) FileKind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case imageExts[ext]:
		return KindImage
	case ext == ".pdf":
		return KindPDF
	default:
		return KindText
	}
}
