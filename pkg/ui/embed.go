// Package ui provides the embedded page template for the gallery server.
package ui

import (
	_ "embed"
	"html/template"
	"io"
)

// IndexHTML is the gallery page template. It is executed with a
// screen.State value.
//
//go:embed index.html
var IndexHTML string

// Page is the parsed gallery page.
var Page = template.Must(template.New("index").Parse(IndexHTML))

// RenderPage writes the gallery page for data to w.
func RenderPage(w io.Writer, data any) error {
	return Page.Execute(w, data)
}
