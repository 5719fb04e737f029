package content

import (
	"fmt"
	"net/url"
	"strings"
)

// Embed kinds understood by the viewer.
const (
	TypePrezi     = "prezi"
	TypeSlidesGPT = "slidesgpt"
)

// NormalizeType lowercases and trims a presentation type tag.
func NormalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// IsEmbeddable reports whether the type tag names a known iframe viewer.
func IsEmbeddable(t string) bool {
	switch NormalizeType(t) {
	case TypePrezi, TypeSlidesGPT:
		return true
	}
	return false
}

// EmbedURL returns s trimmed of surrounding whitespace and whether it can be
// used as an iframe source. Empty values and schemes other than http(s) are
// rejected; site-relative and scheme-relative URLs are accepted.
func EmbedURL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https":
		return s, true
	}
	return "", false
}

// IsEmbedURL reports whether s is usable as an iframe source.
func IsEmbedURL(s string) bool {
	_, ok := EmbedURL(s)
	return ok
}

// Issue describes one violation of the document's invariants.
type Issue struct {
	FolderID       string
	PresentationID string
	Message        string
}

func (i Issue) String() string {
	switch {
	case i.PresentationID != "":
		return fmt.Sprintf("folder %q, presentation %q: %s", i.FolderID, i.PresentationID, i.Message)
	case i.FolderID != "":
		return fmt.Sprintf("folder %q: %s", i.FolderID, i.Message)
	default:
		return i.Message
	}
}

// Validate checks identifier uniqueness and embed URLs. Issues never stop
// rendering; they are reported so authors can fix the document.
func Validate(doc *Document) []Issue {
	if doc == nil {
		return nil
	}

	var issues []Issue
	seenFolders := make(map[string]bool, len(doc.Folders))
	for fi, f := range doc.Folders {
		if f.ID == "" {
			issues = append(issues, Issue{Message: fmt.Sprintf("folder #%d has no id", fi+1)})
		} else if seenFolders[f.ID] {
			issues = append(issues, Issue{FolderID: f.ID, Message: "duplicate folder id"})
		}
		seenFolders[f.ID] = true

		seenPres := make(map[string]bool, len(f.Presentations))
		for pi, p := range f.Presentations {
			if p.ID == "" {
				issues = append(issues, Issue{FolderID: f.ID, Message: fmt.Sprintf("presentation #%d has no id", pi+1)})
			} else if seenPres[p.ID] {
				issues = append(issues, Issue{FolderID: f.ID, PresentationID: p.ID, Message: "duplicate presentation id"})
			}
			seenPres[p.ID] = true

			if IsEmbeddable(p.Type) && !IsEmbedURL(p.PresentationURL) {
				issues = append(issues, Issue{
					FolderID:       f.ID,
					PresentationID: p.ID,
					Message:        fmt.Sprintf("type %q needs an http(s) or relative presentationUrl, got %q", p.Type, p.PresentationURL),
				})
			}
		}
	}
	return issues
}
