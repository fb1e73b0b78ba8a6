// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evanpersinger/File-Converter/pkg/types"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(types.VisionConfig{})
	if err == nil {
		t.Fatal("expected error without an API key")
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New(types.VisionConfig{AIConfig: types.AIConfig{APIKey: "sk-test"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.cfg.Model != defaultModel {
		t.Errorf("model = %q", c.cfg.Model)
	}
	if c.cfg.DPI != defaultDPI {
		t.Errorf("dpi = %d", c.cfg.DPI)
	}
}

func TestPageNumber(t *testing.T) {
	cases := []struct {
		path string
		want int
	}{
		{"/tmp/x/page-1.png", 1},
		{"/tmp/x/page-10.png", 10},
		{"/tmp/x/page-003.png", 3},
		{"/tmp/x/page.png", 0},
	}
	for _, c := range cases {
		if got := pageNumber(c.path); got != c.want {
			t.Errorf("pageNumber(%q) = %d, want %d", c.path, got, c.want)
		}
	}
}

func TestEncodeDataURL(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "pic.jpg")
	if err := os.WriteFile(p, []byte{0xff, 0xd8, 0xff}, 0o644); err != nil {
		t.Fatal(err)
	}
	url, err := encodeDataURL(p)
	if err != nil {
		t.Fatalf("encodeDataURL: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/jpeg;base64,") {
		t.Errorf("url = %q", url)
	}
}

func TestEncodeDataURLMissingFile(t *testing.T) {
	if _, err := encodeDataURL("/no/such/file.png"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
