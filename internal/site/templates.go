package site

// pageTemplates holds the shared layout and the two page bodies. The folder
// listing owns .folders-grid; the presentation listing owns
// #presentationsContainer and the modal.
const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.PageTitle}}{{if ne .PageTitle .SiteTitle}} | {{.SiteTitle}}{{end}}</title>
  <link rel="stylesheet" href="https://fonts.googleapis.com/icon?family=Material+Icons">
  <link rel="stylesheet" href="/static/style.css">
</head>
<body class="{{.Theme.Class}}">
  <header class="site-header">
    <a href="/" class="site-title">{{.SiteTitle}}</a>
    <form method="post" action="/theme" class="theme-form">
      <input type="hidden" name="redirect" value="{{.Path}}">
      <button type="submit" id="themeToggle" class="theme-toggle" aria-label="{{.Theme.Label}}" title="{{.Theme.Label}}">
        <span class="toggle-icon">{{.Theme.Icon}}</span>
      </button>
    </form>
  </header>
{{end}}

{{define "foot"}}
  <script src="/static/script.js"></script>
</body>
</html>
{{end}}

{{define "folders"}}{{template "head" .}}
  <main class="container">
    <h1 class="page-title">{{.PageTitle}}</h1>
    <div class="folders-grid">
      {{- range .Folders}}
      <div class="folder-card">
        <div class="folder-icon">
          <span class="material-icons">{{.Icon}}</span>
        </div>
        <div class="folder-content">
          <h2><a href="{{.Href}}" class="folder-link">{{.Title}}</a></h2>
          <div class="folder-description">{{.Description}}</div>
        </div>
      </div>
      {{- end}}
    </div>
  </main>
{{template "foot" .}}{{end}}

{{define "presentations"}}{{template "head" .}}
  <main class="container">
    <a href="/" class="back-link">&larr; All folders</a>
    <h1 class="page-title">{{.PageTitle}}</h1>
    <div id="presentationsContainer" class="presentations-grid">
      {{- range .Presentations}}
      <div class="presentation-card">
        <div class="presentation-thumbnail">
          <img src="{{.Thumbnail}}" alt="{{.Title}}" loading="lazy">
        </div>
        <div class="presentation-content">
          <h2>{{.Title}}</h2>
          {{.Description}}
          <a href="{{.PresentHref}}" class="present-btn" data-id="{{.ID}}">Present</a>
        </div>
      </div>
      {{- end}}
    </div>
  </main>

  <div id="presentationModal" class="modal{{if .Modal.Open}} open{{end}}" data-escape-href="{{.Modal.EscapeHref}}"{{if not .Modal.Open}} hidden{{end}}>
    <a class="modal-backdrop" href="{{.Modal.BackdropHref}}" aria-label="Close presentation"></a>
    <div class="modal-dialog" role="dialog" aria-modal="true" aria-label="{{.Modal.Title}}">
      <a class="close-modal" href="{{.Modal.CloseHref}}" aria-label="Close">&times;</a>
      <div id="modalContent" class="modal-content">{{.Modal.Body}}</div>
    </div>
  </div>
{{template "foot" .}}{{end}}
`

// cssContent is the stylesheet shared by both pages.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --card-bg: #ffffff;
  --overlay: rgba(0,0,0,0.6);
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

body.dark-mode {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-hover: #89b4fa;
  --card-bg: #1f2030;
  --overlay: rgba(0,0,0,0.8);
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
  transition: background 0.2s, color 0.2s;
}

a { color: var(--accent); text-decoration: none; }
a:hover { color: var(--accent-hover); }

/* ============ Header ============ */
.site-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 16px 32px;
  border-bottom: 1px solid var(--border);
}

.site-title {
  font-size: 1.25rem;
  font-weight: 600;
  color: var(--text);
}

.theme-toggle {
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--text);
  cursor: pointer;
  padding: 6px 10px;
  font-size: 1.1rem;
  transition: background 0.2s;
}

.theme-toggle:hover {
  background: var(--bg-secondary);
}

/* ============ Layout ============ */
.container {
  max-width: 1100px;
  margin: 0 auto;
  padding: 32px;
}

.page-title {
  font-size: 2rem;
  margin-bottom: 24px;
}

.back-link {
  display: inline-block;
  margin-bottom: 12px;
  font-size: 0.9rem;
}

/* ============ Folder cards ============ */
.folders-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
  gap: 20px;
}

.folder-card {
  position: relative;
  display: flex;
  gap: 16px;
  padding: 20px;
  background: var(--card-bg);
  border: 1px solid var(--border);
  border-radius: 10px;
  box-shadow: var(--shadow);
  color: var(--text);
  transition: transform 0.15s, box-shadow 0.15s;
}

.folder-card:hover {
  transform: translateY(-2px);
  box-shadow: var(--shadow-lg);
  color: var(--text);
}

.folder-icon .material-icons {
  font-size: 40px;
  color: var(--accent);
}

.folder-content h2 {
  font-size: 1.15rem;
  margin-bottom: 4px;
}

/* The title link covers the whole card; description links sit above it. */
.folder-link {
  color: var(--text);
}

.folder-link::after {
  content: "";
  position: absolute;
  inset: 0;
}

.folder-description {
  position: relative;
  z-index: 1;
}

.folder-content p {
  color: var(--text-secondary);
  font-size: 0.95rem;
}

/* ============ Presentation cards ============ */
.presentations-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
  gap: 24px;
}

.presentation-card {
  background: var(--card-bg);
  border: 1px solid var(--border);
  border-radius: 10px;
  overflow: hidden;
  box-shadow: var(--shadow);
  display: flex;
  flex-direction: column;
}

.presentation-thumbnail img {
  width: 100%;
  aspect-ratio: 16 / 9;
  object-fit: cover;
  display: block;
  background: var(--bg-secondary);
}

.presentation-content {
  padding: 16px 20px 20px;
  display: flex;
  flex-direction: column;
  gap: 8px;
  flex: 1;
}

.presentation-content h2 { font-size: 1.1rem; }
.presentation-content p { color: var(--text-secondary); font-size: 0.95rem; }

.present-btn {
  align-self: flex-start;
  margin-top: auto;
  padding: 8px 18px;
  border-radius: 6px;
  background: var(--accent);
  color: #ffffff;
  font-weight: 600;
}

.present-btn:hover {
  background: var(--accent-hover);
  color: #ffffff;
}

/* ============ Modal ============ */
.modal {
  display: none;
  position: fixed;
  inset: 0;
  z-index: 100;
}

.modal.open { display: block; }

.modal-backdrop {
  position: absolute;
  inset: 0;
  background: var(--overlay);
}

.modal-dialog {
  position: relative;
  width: min(1100px, 94vw);
  margin: 5vh auto 0;
  background: var(--card-bg);
  border-radius: 10px;
  padding: 40px 16px 16px;
  box-shadow: var(--shadow-lg);
}

.close-modal {
  position: absolute;
  top: 6px;
  right: 14px;
  font-size: 1.8rem;
  line-height: 1;
  color: var(--text-muted);
}

.close-modal:hover { color: var(--text); }

.presentation-placeholder {
  padding: 64px 16px;
  text-align: center;
  color: var(--text-secondary);
}

.presentation-placeholder h3 {
  color: var(--text);
  margin-bottom: 8px;
}

@media (max-width: 600px) {
  .container { padding: 20px 16px; }
  .site-header { padding: 12px 16px; }
}
`

// jsContent closes an open modal on Escape by following the modal's
// escape link, so the server applies the transition.
const jsContent = `(function() {
  "use strict";

  var modal = document.getElementById("presentationModal");
  if (!modal) return;

  document.addEventListener("keydown", function(event) {
    if (event.key !== "Escape" || !modal.classList.contains("open")) return;
    var href = modal.getAttribute("data-escape-href");
    if (href) window.location.assign(href);
  });
})();
`
