// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatSQLUppercasesKeywords(t *testing.T) {
	got := FormatSQL("select id from users where id = 1")
	if !strings.Contains(got, "SELECT") {
		t.Errorf("expected SELECT in %q", got)
	}
	if !strings.Contains(got, "\nFROM") {
		t.Errorf("expected FROM on its own line in %q", got)
	}
	if !strings.Contains(got, "\nWHERE") {
		t.Errorf("expected WHERE on its own line in %q", got)
	}
}

func TestFormatSQLMultiWordClauses(t *testing.T) {
	got := FormatSQL("select * from a left join b on a.id = b.id order by a.id")
	if !strings.Contains(got, "\nLEFT JOIN") {
		t.Errorf("expected LEFT JOIN kept together, got %q", got)
	}
	if strings.Contains(got, "LEFT\nJOIN") {
		t.Errorf("LEFT JOIN was split across lines: %q", got)
	}
	if !strings.Contains(got, "\nORDER BY") {
		t.Errorf("expected ORDER BY on its own line, got %q", got)
	}
}

func TestFormatSQLSkipsComments(t *testing.T) {
	got := FormatSQL("-- select everything\nselect 1")
	if !strings.Contains(got, "-- select everything") {
		t.Errorf("comment line was modified: %q", got)
	}
	if !strings.Contains(got, "SELECT 1") {
		t.Errorf("statement line not formatted: %q", got)
	}
}

func TestSQLToPDF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "schema.sql")
	out := filepath.Join(dir, "schema.pdf")
	sql := "create table users (id integer primary key, name text);\nselect * from users;"
	if err := os.WriteFile(in, []byte(sql), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := SQLToPDF(in, out, "SQL File: schema"); err != nil {
		t.Fatalf("SQLToPDF: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output PDF is empty")
	}
}

func TestTxtToPDF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "notes.txt")
	out := filepath.Join(dir, "notes.pdf")
	if err := os.WriteFile(in, []byte("first paragraph\n\nsecond paragraph\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := TxtToPDF(in, out, "Text File: notes"); err != nil {
		t.Fatalf("TxtToPDF: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output not written: %v", err)
	}
}
