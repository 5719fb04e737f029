package site

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// newMarkdown builds the renderer for authored descriptions. Raw HTML in the
// source is dropped because the content document comes from outside.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
	)
}

// renderMarkdown converts a description to HTML. Conversion failures fall
// back to the escaped plain text.
func (s *Site) renderMarkdown(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(src), &buf); err != nil {
		s.logger.Warn().Err(err).Msg("rendering description")
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}
