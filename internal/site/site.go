// Package site renders the folder and presentation pages and handles the
// theme toggle.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/deckshelf/internal/content"
	"github.com/ziadkadry99/deckshelf/internal/modal"
	"github.com/ziadkadry99/deckshelf/internal/theme"
	"github.com/ziadkadry99/deckshelf/internal/viewer"
)

// DefaultTitle is used when no site title is configured.
const DefaultTitle = "Presentations"

// Site serves the presentations website.
type Site struct {
	loader *content.Loader
	themes theme.Store
	logger zerolog.Logger
	title  string
	tmpl   *template.Template
	md     goldmark.Markdown
}

// New creates a Site. Every page request loads the content document once
// through loader.
func New(loader *content.Loader, themes theme.Store, logger zerolog.Logger, title string) (*Site, error) {
	tmpl, err := template.New("pages").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return &Site{
		loader: loader,
		themes: themes,
		logger: logger.With().Str("component", "site").Logger(),
		title:  title,
		tmpl:   tmpl,
		md:     newMarkdown(),
	}, nil
}

// RegisterRoutes mounts the site's pages and assets on the given router.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleFolders)
	r.Get("/index.html", s.handleFolders)
	r.Get("/presentations", s.handlePresentations)
	r.Get(presentationsPath, s.handlePresentations)
	r.Post("/theme", s.handleToggleTheme)
	r.Get("/data/content.json", s.handleRawContent)
	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/static/script.js", serveAsset("text/javascript; charset=utf-8", jsContent))
}

// newPage starts the page data with the visitor's theme applied.
func (s *Site) newPage(r *http.Request) pageData {
	return pageData{
		SiteTitle: s.title,
		PageTitle: s.title,
		Theme:     s.themes.Load(r),
		Path:      r.URL.RequestURI(),
	}
}

func (s *Site) handleFolders(w http.ResponseWriter, r *http.Request) {
	data := s.newPage(r)

	if doc := s.loader.Load(r.Context()); doc != nil {
		data.Folders = s.folderCards(doc)
	}

	s.render(w, "folders", data)
}

func (s *Site) handlePresentations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	data := s.newPage(r)
	ctrl := modal.New()

	if doc := s.loader.Load(r.Context()); doc != nil && category != "" {
		if folder, ok := doc.Folder(category); ok {
			data.PageTitle = folder.Title
			data.Presentations = s.presentationCards(folder)

			if id := q.Get("present"); id != "" {
				if p, ok := folder.Presentation(id); ok {
					ctrl.Open(*p)
					s.logger.Debug().
						Str("folder", folder.ID).
						Str("presentation", p.ID).
						Str("embed", viewer.Kind(viewer.Classify(*p))).
						Msg("presenting")
				}
			}
		} else {
			s.logger.Debug().Str("category", category).Msg("no folder matches category")
		}
	}

	if d, ok := modal.ParseDismissal(q.Get("dismiss")); ok {
		ctrl.Dismiss(d)
		present := ""
		if p, ok := ctrl.Active(); ok {
			present = p.ID
		}
		http.Redirect(w, r, presentationsURL(category, present, ""), http.StatusSeeOther)
		return
	}

	data.Modal = newModalView(ctrl, category)
	s.render(w, "presentations", data)
}

func (s *Site) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := theme.Toggle(s.themes.Load(r))
	if err := s.themes.Save(w, r, next); err != nil {
		s.logger.Error().Err(err).Msg("saving theme preference")
	}
	http.Redirect(w, r, safeRedirect(r.FormValue("redirect")), http.StatusSeeOther)
}

func (s *Site) handleRawContent(w http.ResponseWriter, r *http.Request) {
	if !s.loader.IsLocal() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, s.loader.Source())
}

// render executes a page template into a buffer first so a failure can still
// become a clean 500.
func (s *Site) render(w http.ResponseWriter, name string, data pageData) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error().Err(err).Str("page", name).Msg("rendering page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// safeRedirect only allows paths on this site.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}
