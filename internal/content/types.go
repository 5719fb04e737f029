// Package content loads the JSON document that describes folders and the
// presentations inside them.
package content

// Document is the top-level content document. It is read-only once loaded.
type Document struct {
	Folders []Folder `json:"folders"`
}

// Folder is a named grouping of presentations, addressed by ID in navigation.
type Folder struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Icon          string         `json:"icon"`
	Presentations []Presentation `json:"presentations"`
}

// Presentation is a single deck that can be shown in the modal viewer.
type Presentation struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Thumbnail       string `json:"thumbnail"`
	Type            string `json:"type"`
	PresentationURL string `json:"presentationUrl"`
}

// Folder returns the first folder with the given ID.
func (d *Document) Folder(id string) (*Folder, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Folders {
		if d.Folders[i].ID == id {
			return &d.Folders[i], true
		}
	}
	return nil, false
}

// Presentation returns the first presentation in the folder with the given ID.
func (f *Folder) Presentation(id string) (*Presentation, bool) {
	if f == nil {
		return nil, false
	}
	for i := range f.Presentations {
		if f.Presentations[i].ID == id {
			return &f.Presentations[i], true
		}
	}
	return nil, false
}

// PresentationCount returns the number of presentations across all folders.
func (d *Document) PresentationCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, f := range d.Folders {
		n += len(f.Presentations)
	}
	return n
}
