// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestDetectKind(t *testing.T) {
	tests := []struct {
		path string
		want FileKind
	}{
		{"photo.jpg", KindImage},
		{"photo.JPEG", KindImage},
		{"diagram.png", KindImage},
		{"scan.webp", KindImage},
		{"report.pdf", KindPDF},
		{"report.PDF", KindPDF},
		{"notes.txt", KindText},
		{"query.sql", KindText},
		{"noext", KindText},
		{"input/nested/page.gif", KindImage},
	}

	for _, tt := range tests {
		if got := DetectKind(tt.path); got != tt.want {
			t.Errorf("DetectKind(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
