// Package theme models the light/dark page theme and where a visitor's
// choice is remembered.
package theme

// Key is the name the preference is persisted under.
const Key = "theme"

// State is the page root's mode class. The zero value means no mode has been
// chosen yet.
type State string

const (
	None  State = ""
	Light State = "light-mode"
	Dark  State = "dark-mode"
)

// Parse turns a persisted value back into a State. Unknown values read as None.
func Parse(s string) State {
	switch State(s) {
	case Light:
		return Light
	case Dark:
		return Dark
	}
	return None
}

// Toggle returns the opposite mode. A page with no mode shows the light
// styles, so toggling it switches to dark. Only Light and Dark round-trip
// through two toggles; None never comes back once a mode has been chosen.
func Toggle(s State) State {
	if s == Dark {
		return Light
	}
	return Dark
}

// Class is the class applied to the page root.
func (s State) Class() string { return string(s) }

// Icon is the glyph on the toggle button: a sun while dark mode is active,
// a moon otherwise.
func (s State) Icon() string {
	if s == Dark {
		return "☀️"
	}
	return "🌙"
}

// Label describes what pressing the toggle does.
func (s State) Label() string {
	if s == Dark {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}
