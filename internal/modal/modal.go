// Package modal holds the presentation overlay's two-state machine.
package modal

import (
	"html/template"

	"github.com/ziadkadry99/deckshelf/internal/content"
	"github.com/ziadkadry99/deckshelf/internal/viewer"
)

// State is the visibility of the overlay.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Target is the part of the overlay that received a click.
type Target int

const (
	TargetContent Target = iota
	TargetBackdrop
	TargetCloseButton
)

// EscapeKey is the key name that dismisses an open overlay.
const EscapeKey = "Escape"

// Dismissal is a user gesture that closes the overlay, in its wire form.
type Dismissal string

const (
	DismissClose    Dismissal = "close"
	DismissBackdrop Dismissal = "backdrop"
	DismissEscape   Dismissal = "escape"
)

// ParseDismissal recognizes the wire form of a dismissal gesture.
func ParseDismissal(s string) (Dismissal, bool) {
	switch d := Dismissal(s); d {
	case DismissClose, DismissBackdrop, DismissEscape:
		return d, true
	}
	return "", false
}

// Controller tracks the overlay. At most one presentation is active.
// The zero value is a closed overlay.
type Controller struct {
	state  State
	active *content.Presentation
	body   template.HTML
}

// New returns a closed controller.
func New() *Controller {
	return &Controller{}
}

// Open shows p, replacing any presentation already on screen.
func (c *Controller) Open(p content.Presentation) {
	c.active = &p
	c.body = viewer.Render(p)
	c.state = Open
}

// Close hides the overlay and clears its body. It reports whether a
// transition happened; closing a closed overlay does nothing.
func (c *Controller) Close() bool {
	if c.state == Closed {
		return false
	}
	c.state = Closed
	c.active = nil
	c.body = ""
	return true
}

// Click handles a click on part of the overlay. Clicks inside the content
// are ignored.
func (c *Controller) Click(t Target) bool {
	switch t {
	case TargetBackdrop, TargetCloseButton:
		return c.Close()
	}
	return false
}

// KeyDown handles a key press while the page has focus.
func (c *Controller) KeyDown(key string) bool {
	if key != EscapeKey {
		return false
	}
	return c.Close()
}

// Dismiss applies a dismissal gesture.
func (c *Controller) Dismiss(d Dismissal) bool {
	switch d {
	case DismissClose:
		return c.Click(TargetCloseButton)
	case DismissBackdrop:
		return c.Click(TargetBackdrop)
	case DismissEscape:
		return c.KeyDown(EscapeKey)
	}
	return false
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the overlay is visible.
func (c *Controller) IsOpen() bool { return c.state == Open }

// Body returns the injected viewer markup, empty when closed.
func (c *Controller) Body() template.HTML { return c.body }

// Active returns the presentation on screen.
func (c *Controller) Active() (content.Presentation, bool) {
	if c.active == nil {
		return content.Presentation{}, false
	}
	return *c.active, true
}
