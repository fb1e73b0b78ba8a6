// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses blank line runs",
			in:   "first\n\n\n\nsecond",
			want: "first\n\nsecond",
		},
		{
			name: "collapses space runs",
			in:   "columns   separated    widely",
			want: "columns separated widely",
		},
		{
			name: "strips trailing whitespace",
			in:   "line one   \nline two\t",
			want: "line one\nline two",
		},
		{
			name: "trims surrounding blank lines",
			in:   "\n\nbody\n\n",
			want: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestExtractMarkdownMissingFile(t *testing.T) {
	_, err := ExtractMarkdown(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}
