package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// renderMarkdown converts narrative markdown to HTML. The input is
// static copy compiled into the binary, never user input, so the
// output is safe to mark as template.HTML.
func renderMarkdown(src string) template.HTML {
	// Parser instances are single-use.
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(src))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.Render(doc, renderer))
}
