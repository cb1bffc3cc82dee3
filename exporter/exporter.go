// Package exporter renders a finished draft as a standalone HTML page so it
// can be pasted into an application portal or opened in a browser.
package exporter

import (
	"bytes"
	"fmt"
	"html"
	"os"

	"github.com/yuin/goldmark"
)

// RenderFragment converts draft text (plain prose, or light markdown if the
// model produced any) into an HTML fragment.
func RenderFragment(essay string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(essay), &buf); err != nil {
		return "", fmt.Errorf("render essay: %w", err)
	}
	return buf.String(), nil
}

// Render produces a complete standalone page for the draft.
func Render(title, essay string) (string, error) {
	fragment, err := RenderFragment(essay)
	if err != nil {
		return "", err
	}
	if title == "" {
		title = "Essay draft"
	}
	var buf bytes.Buffer
	buf.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(title))
	buf.WriteString("<style>body{max-width:42rem;margin:2rem auto;font:16px/1.6 Georgia,serif;padding:0 1rem}</style>\n")
	buf.WriteString("</head>\n<body>\n")
	buf.WriteString(fragment)
	buf.WriteString("</body>\n</html>\n")
	return buf.String(), nil
}

// WriteFile renders the draft and writes the page to path.
func WriteFile(path, title, essay string) error {
	page, err := Render(title, essay)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}
