// Package viewer turns a presentation record into the HTML fragment that
// embeds it in the modal.
package viewer

import (
	"bytes"
	"html/template"

	"github.com/ziadkadry99/deckshelf/internal/content"
)

// Embed is the closed set of ways a presentation can be shown: Prezi,
// SlidesGPT or Unsupported.
type Embed interface {
	embed()
}

// Prezi embeds a Prezi presentation with the vendor fullscreen attributes.
type Prezi struct {
	URL string
}

// SlidesGPT embeds a SlidesGPT deck.
type SlidesGPT struct {
	URL string
}

// Unsupported is shown for unknown or missing types and for embeddable
// types without a usable URL.
type Unsupported struct {
	Title string
}

func (Prezi) embed()       {}
func (SlidesGPT) embed()   {}
func (Unsupported) embed() {}

// Classify maps a presentation onto its embed kind. The type tag is matched
// case-insensitively and the URL is trimmed before it reaches the iframe.
func Classify(p content.Presentation) Embed {
	kind := content.NormalizeType(p.Type)
	if !content.IsEmbeddable(kind) {
		return Unsupported{Title: p.Title}
	}
	src, ok := content.EmbedURL(p.PresentationURL)
	if !ok {
		return Unsupported{Title: p.Title}
	}
	if kind == content.TypePrezi {
		return Prezi{URL: src}
	}
	return SlidesGPT{URL: src}
}

// Kind returns a short name for the embed variant, for logs.
func Kind(e Embed) string {
	switch e.(type) {
	case Prezi:
		return content.TypePrezi
	case SlidesGPT:
		return content.TypeSlidesGPT
	default:
		return "unsupported"
	}
}

var fragments = template.Must(template.New("viewer").Parse(`
{{- define "prezi" -}}
<iframe src="{{.URL}}" id="iframe_container" frameborder="0" webkitallowfullscreen="" mozallowfullscreen="" allowfullscreen="" allow="autoplay; fullscreen" height="600" width="100%"></iframe>
{{- end -}}
{{- define "slidesgpt" -}}
<iframe src="{{.URL}}" frameborder="0" allowfullscreen="" height="600" width="100%"></iframe>
{{- end -}}
{{- define "unsupported" -}}
<div class="presentation-placeholder">
  <h3>{{.Title}}</h3>
  <p>Presentation type not supported</p>
</div>
{{- end -}}
`))

// Render returns the modal body for a presentation. It never fails: anything
// that cannot be embedded becomes the placeholder.
func Render(p content.Presentation) template.HTML {
	return RenderEmbed(Classify(p))
}

// RenderEmbed renders an already classified embed.
func RenderEmbed(e Embed) template.HTML {
	var name string
	switch e.(type) {
	case Prezi:
		name = "prezi"
	case SlidesGPT:
		name = "slidesgpt"
	case Unsupported:
		name = "unsupported"
	default:
		e, name = Unsupported{}, "unsupported"
	}

	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, e); err != nil {
		// The templates are static and their inputs are plain strings.
		return template.HTML(`<div class="presentation-placeholder"><p>Presentation type not supported</p></div>`)
	}
	return template.HTML(buf.String())
}
