package site

import (
	"html/template"
	"net/url"

	"github.com/ziadkadry99/deckshelf/internal/content"
	"github.com/ziadkadry99/deckshelf/internal/modal"
	"github.com/ziadkadry99/deckshelf/internal/theme"
)

// pageData holds the data passed to the page templates.
type pageData struct {
	SiteTitle     string
	PageTitle     string
	Theme         theme.State
	Path          string
	Folders       []folderCard
	Presentations []presentationCard
	Modal         modalView
}

type folderCard struct {
	ID          string
	Title       string
	Icon        string
	Description template.HTML
	Href        string
}

type presentationCard struct {
	ID          string
	Title       string
	Thumbnail   string
	Description template.HTML
	PresentHref string
}

type modalView struct {
	Open         bool
	Title        string
	Body         template.HTML
	CloseHref    string
	BackdropHref string
	EscapeHref   string
}

// presentationsPath is the listing page linked from folder cards.
const presentationsPath = "/presentations.html"

// presentationsURL builds a link to the presentations view. Empty values are
// left out.
func presentationsURL(category, present string, dismiss modal.Dismissal) string {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if present != "" {
		q.Set("present", present)
	}
	if dismiss != "" {
		q.Set("dismiss", string(dismiss))
	}
	if len(q) == 0 {
		return presentationsPath
	}
	return presentationsPath + "?" + q.Encode()
}

func (s *Site) folderCards(doc *content.Document) []folderCard {
	cards := make([]folderCard, 0, len(doc.Folders))
	for _, f := range doc.Folders {
		cards = append(cards, folderCard{
			ID:          f.ID,
			Title:       f.Title,
			Icon:        f.Icon,
			Description: s.renderMarkdown(f.Description),
			Href:        presentationsURL(f.ID, "", ""),
		})
	}
	return cards
}

func (s *Site) presentationCards(f *content.Folder) []presentationCard {
	cards := make([]presentationCard, 0, len(f.Presentations))
	for _, p := range f.Presentations {
		cards = append(cards, presentationCard{
			ID:          p.ID,
			Title:       p.Title,
			Thumbnail:   p.Thumbnail,
			Description: s.renderMarkdown(p.Description),
			PresentHref: presentationsURL(f.ID, p.ID, ""),
		})
	}
	return cards
}

// newModalView projects the controller onto the template. Dismissal links
// keep the selection so the server can replay it before closing.
func newModalView(c *modal.Controller, category string) modalView {
	v := modalView{Open: c.IsOpen(), Body: c.Body()}
	p, ok := c.Active()
	if !ok {
		return v
	}
	v.Title = p.Title
	v.CloseHref = presentationsURL(category, p.ID, modal.DismissClose)
	v.BackdropHref = presentationsURL(category, p.ID, modal.DismissBackdrop)
	v.EscapeHref = presentationsURL(category, p.ID, modal.DismissEscape)
	return v
}
