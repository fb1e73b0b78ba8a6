// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdfgen

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// sqlKeywords are uppercased during formatting.
var sqlKeywords = []string{
	"select", "from", "where", "insert", "into", "values", "update", "set",
	"delete", "create", "drop", "alter", "table", "index", "view",
	"procedure", "function", "trigger", "join", "left", "right", "inner",
	"outer", "on", "group", "by", "order", "having", "union", "distinct",
	"as", "and", "or", "not", "in", "exists", "between", "like", "is",
	"null", "true", "false", "case", "when", "then", "else", "end",
	"begin", "commit", "rollback", "transaction", "grant", "revoke",
	"primary", "key", "foreign", "references", "unique", "check",
	"default", "limit", "offset",
}

var keywordRe = regexp.MustCompile(`(?i)\b(` + strings.Join(sqlKeywords, "|") + `)\b`)

// clauseRe matches a major clause preceded by inline whitespace. Multi-word
// clauses come first so e.g. LEFT JOIN is never split by the bare JOIN
// alternative.
var clauseRe = regexp.MustCompile(`[ \t]+\b(GROUP[ \t]+BY|ORDER[ \t]+BY|LEFT[ \t]+JOIN|RIGHT[ \t]+JOIN|INNER[ \t]+JOIN|OUTER[ \t]+JOIN|FROM|WHERE|HAVING|LIMIT|UNION|VALUES|JOIN)\b`)

// FormatSQL uppercases SQL keywords and moves major clauses onto their
// own lines. Comment lines are left untouched.
func FormatSQL(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "--") || strings.HasPrefix(trimmed, "/*") {
			continue
		}
		line = keywordRe.ReplaceAllStringFunc(line, strings.ToUpper)
		line = clauseRe.ReplaceAllStringFunc(line, func(m string) string {
			return "\n" + strings.Join(strings.Fields(m), " ")
		})
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// SQLToPDF renders a SQL file as a PDF with a title and the formatted
// statements in a monospaced code block.
func SQLToPDF(inPath, outPath, title string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	formatted := FormatSQL(string(data))

	doc := New(title)
	doc.CodeBlock(strings.Split(formatted, "\n"))
	return doc.Save(outPath)
}
