package site

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/deckshelf/internal/content"
	"github.com/ziadkadry99/deckshelf/internal/theme"
)

const testContent = `{
  "folders": [
    {
      "id": "a",
      "title": "Alpha",
      "description": "Decks about **alpha** things <script>alert(1)</script>",
      "icon": "rocket_launch",
      "presentations": [
        {"id": "p1", "title": "One", "description": "first", "thumbnail": "https://img.example.com/1.png", "type": "prezi", "presentationUrl": "https://prezi.com/p/embed/one/"},
        {"id": "p2", "title": "Two", "description": "second", "thumbnail": "https://img.example.com/2.png", "type": "keynote", "presentationUrl": ""}
      ]
    },
    {"id": "b", "title": "Beta", "description": "Second folder", "icon": "school", "presentations": []}
  ]
}`

func setupSite(t *testing.T, source string) chi.Router {
	t.Helper()
	loader := content.NewLoader(source, zerolog.Nop())
	s, err := New(loader, theme.NewCookieStore(), zerolog.Nop(), "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := chi.NewRouter()
	s.RegisterRoutes(r)
	return r
}

func writeContent(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte(testContent), 0o644); err != nil {
		t.Fatalf("writing content: %v", err)
	}
	return path
}

func get(t *testing.T, r http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFoldersPage(t *testing.T) {
	r := setupSite(t, writeContent(t))

	for _, path := range []string{"/", "/index.html"} {
		w := get(t, r, path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		body := w.Body.String()

		if n := strings.Count(body, `class="folder-card"`); n != 2 {
			t.Errorf("%s: folder cards = %d, want 2", path, n)
		}
		if !strings.Contains(body, `<a href="/presentations.html?category=a" class="folder-link">Alpha</a>`) {
			t.Errorf("%s: missing link to folder a", path)
		}
		if !strings.Contains(body, `<span class="material-icons">rocket_launch</span>`) {
			t.Errorf("%s: missing folder icon", path)
		}
		if strings.Contains(body, `id="presentationsContainer"`) {
			t.Errorf("%s: folder page should not have a presentations container", path)
		}
	}
}

func TestDescriptionsRenderMarkdownWithoutRawHTML(t *testing.T) {
	r := setupSite(t, writeContent(t))
	body := get(t, r, "/").Body.String()

	if !strings.Contains(body, "<strong>alpha</strong>") {
		t.Errorf("expected markdown emphasis in description")
	}
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Errorf("raw HTML in descriptions must not be rendered")
	}
}

func TestFolderDescriptionLinksAreNotNested(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	doc := `{"folders":[{"id":"a","title":"Alpha","description":"See [the handbook](https://handbook.example.com/).","icon":"school","presentations":[]}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing content: %v", err)
	}
	r := setupSite(t, path)
	body := get(t, r, "/").Body.String()

	start := strings.Index(body, `<div class="folder-card">`)
	if start < 0 {
		t.Fatal("missing folder card")
	}
	card := body[start:]
	if end := strings.Index(card, "</main>"); end >= 0 {
		card = card[:end]
	}

	if !strings.Contains(card, `<a href="https://handbook.example.com/">the handbook</a>`) {
		t.Fatalf("expected description link, got %s", card)
	}
	// Every anchor must close before the next one opens.
	depth := 0
	for i := 0; i < len(card); i++ {
		switch {
		case strings.HasPrefix(card[i:], "<a "):
			depth++
			if depth > 1 {
				t.Fatalf("nested anchor in folder card: %s", card)
			}
		case strings.HasPrefix(card[i:], "</a>"):
			depth--
		}
	}
}

func TestPresentationsWithoutCategoryStaysEmpty(t *testing.T) {
	r := setupSite(t, writeContent(t))

	w := get(t, r, "/presentations.html")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `id="presentationsContainer"`) {
		t.Fatal("presentations page should have its container")
	}
	if n := strings.Count(body, `class="presentation-card"`); n != 0 {
		t.Errorf("presentation cards = %d, want 0", n)
	}
	if !strings.Contains(body, `<h1 class="page-title">Presentations</h1>`) {
		t.Errorf("expected default page title")
	}
}

func TestPresentationsForCategory(t *testing.T) {
	r := setupSite(t, writeContent(t))

	w := get(t, r, "/presentations.html?category=a")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()

	if n := strings.Count(body, `class="presentation-card"`); n != 2 {
		t.Fatalf("presentation cards = %d, want 2", n)
	}
	if !strings.Contains(body, `<h1 class="page-title">Alpha</h1>`) {
		t.Errorf("page title should be the folder title")
	}
	for _, id := range []string{"p1", "p2"} {
		if !strings.Contains(body, `data-id="`+id+`"`) {
			t.Errorf("missing Present affordance for %s", id)
		}
		if !strings.Contains(body, `category=a&amp;present=`+id) {
			t.Errorf("Present affordance for %s should link to its own presentation", id)
		}
	}
	if n := strings.Count(body, `>Present</a>`); n != 2 {
		t.Errorf("Present affordances = %d, want 2", n)
	}
	if !strings.Contains(body, `<img src="https://img.example.com/1.png" alt="One"`) {
		t.Errorf("missing thumbnail for p1")
	}
	if strings.Contains(body, `class="modal open"`) {
		t.Errorf("modal should start closed")
	}
}

func TestPresentationsAlias(t *testing.T) {
	r := setupSite(t, writeContent(t))
	body := get(t, r, "/presentations?category=a").Body.String()
	if n := strings.Count(body, `class="presentation-card"`); n != 2 {
		t.Errorf("presentation cards = %d, want 2", n)
	}
}

func TestUnknownCategoryRendersNothing(t *testing.T) {
	r := setupSite(t, writeContent(t))

	w := get(t, r, "/presentations.html?category=zzz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, `class="presentation-card"`) {
		t.Error("unknown category should render no cards")
	}
	if !strings.Contains(body, `<h1 class="page-title">Presentations</h1>`) {
		t.Error("unknown category should keep the default title")
	}
}

func TestFailedLoadRendersEmptyPages(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	r := setupSite(t, failing.URL+"/data/content.json")

	w := get(t, r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), `class="folder-card"`) {
		t.Error("folder grid should stay empty when content fails to load")
	}

	w = get(t, r, "/presentations.html?category=a&present=p1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, `class="presentation-card"`) {
		t.Error("presentations container should stay empty when content fails to load")
	}
	if strings.Contains(body, `class="modal open"`) {
		t.Error("modal should not open without content")
	}
}

func TestPresentOpensModal(t *testing.T) {
	r := setupSite(t, writeContent(t))

	body := get(t, r, "/presentations.html?category=a&present=p1").Body.String()
	if !strings.Contains(body, `class="modal open"`) {
		t.Fatal("modal should be open")
	}
	if !strings.Contains(body, `<iframe src="https://prezi.com/p/embed/one/"`) {
		t.Errorf("modal should embed the presentation")
	}
	if !strings.Contains(body, `data-escape-href="/presentations.html?category=a&amp;dismiss=escape&amp;present=p1"`) {
		t.Errorf("modal should carry its escape link")
	}
}

func TestPresentUnsupportedShowsPlaceholder(t *testing.T) {
	r := setupSite(t, writeContent(t))

	body := get(t, r, "/presentations.html?category=a&present=p2").Body.String()
	if !strings.Contains(body, `class="presentation-placeholder"`) {
		t.Fatal("expected placeholder for unsupported type")
	}
	if strings.Contains(body, "<iframe") {
		t.Error("placeholder must not embed an iframe")
	}
}

func TestPresentUnknownIDKeepsModalClosed(t *testing.T) {
	r := setupSite(t, writeContent(t))

	body := get(t, r, "/presentations.html?category=a&present=nope").Body.String()
	if strings.Contains(body, `class="modal open"`) {
		t.Error("unknown presentation should not open the modal")
	}
	if n := strings.Count(body, `class="presentation-card"`); n != 2 {
		t.Errorf("presentation cards = %d, want 2", n)
	}
}

func TestDismissClosesModal(t *testing.T) {
	r := setupSite(t, writeContent(t))

	for _, d := range []string{"escape", "close", "backdrop"} {
		t.Run(d, func(t *testing.T) {
			w := get(t, r, "/presentations.html?category=a&present=p1&dismiss="+d)
			if w.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d", w.Code)
			}
			loc := w.Header().Get("Location")
			if loc != "/presentations.html?category=a" {
				t.Fatalf("Location = %q", loc)
			}

			body := get(t, r, loc).Body.String()
			if strings.Contains(body, `class="modal open"`) {
				t.Error("modal should be hidden after dismissal")
			}
			if !strings.Contains(body, `<div id="modalContent" class="modal-content"></div>`) {
				t.Error("modal content should be empty after dismissal")
			}
		})
	}
}

func TestDismissWhenClosedIsNoop(t *testing.T) {
	r := setupSite(t, writeContent(t))

	w := get(t, r, "/presentations.html?category=a&dismiss=escape")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/presentations.html?category=a" {
		t.Errorf("Location = %q", loc)
	}
}

func postTheme(t *testing.T, r http.Handler, redirect string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"redirect": {redirect}}
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func themeCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == theme.Key {
			return c
		}
	}
	t.Fatal("no theme cookie set")
	return nil
}

func TestThemeToggle(t *testing.T) {
	r := setupSite(t, writeContent(t))

	// No preference yet: no class, moon icon.
	body := get(t, r, "/").Body.String()
	if !strings.Contains(body, `<body class="">`) {
		t.Error("expected no mode class before any preference")
	}
	if !strings.Contains(body, `<span class="toggle-icon">🌙</span>`) {
		t.Error("expected moon icon before any preference")
	}

	w := postTheme(t, r, "/presentations.html?category=a")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/presentations.html?category=a" {
		t.Errorf("Location = %q", loc)
	}
	dark := themeCookie(t, w)
	if dark.Value != "dark-mode" {
		t.Fatalf("cookie = %q, want dark-mode", dark.Value)
	}

	body = get(t, r, "/", dark).Body.String()
	if !strings.Contains(body, `<body class="dark-mode">`) {
		t.Error("dark mode should be applied to the page root")
	}
	if !strings.Contains(body, `<span class="toggle-icon">☀️</span>`) {
		t.Error("expected sun icon in dark mode")
	}

	light := themeCookie(t, postTheme(t, r, "/", dark))
	if light.Value != "light-mode" {
		t.Errorf("cookie = %q, want light-mode", light.Value)
	}
	back := themeCookie(t, postTheme(t, r, "/", themeCookie(t, postTheme(t, r, "/", light))))
	if back.Value != light.Value {
		t.Errorf("two toggles should round-trip: got %q, want %q", back.Value, light.Value)
	}
}

func TestThemeRedirectStaysOnSite(t *testing.T) {
	r := setupSite(t, writeContent(t))
	for _, target := range []string{"https://evil.example.com/", "//evil.example.com", "/\\evil.example.com", ""} {
		w := postTheme(t, r, target)
		if loc := w.Header().Get("Location"); loc != "/" {
			t.Errorf("redirect %q: Location = %q, want /", target, loc)
		}
	}
}

func TestRawContent(t *testing.T) {
	r := setupSite(t, writeContent(t))

	w := get(t, r, "/data/content.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), `"presentationUrl"`) {
		t.Error("expected the raw document")
	}

	remote := setupSite(t, "https://content.example.com/content.json")
	if w := get(t, remote, "/data/content.json"); w.Code != http.StatusNotFound {
		t.Errorf("remote source: expected 404, got %d", w.Code)
	}
}

func TestStaticAssets(t *testing.T) {
	r := setupSite(t, writeContent(t))

	tests := []struct {
		path, contentType, snippet string
	}{
		{"/static/style.css", "text/css", ".folders-grid"},
		{"/static/script.js", "text/javascript", "Escape"},
	}
	for _, tt := range tests {
		w := get(t, r, tt.path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", tt.path, w.Code)
			continue
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), tt.contentType) {
			t.Errorf("%s: Content-Type = %q", tt.path, w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Body.String(), tt.snippet) {
			t.Errorf("%s: missing %q", tt.path, tt.snippet)
		}
	}
}

func TestSafeRedirect(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/", "/"},
		{"/presentations.html?category=a", "/presentations.html?category=a"},
		{"", "/"},
		{"relative", "/"},
		{"//host", "/"},
		{"https://host/", "/"},
	}
	for _, tt := range tests {
		if got := safeRedirect(tt.in); got != tt.want {
			t.Errorf("safeRedirect(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
