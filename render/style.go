package render

// Style is a set of presentation rules for a pseudo-state such as hover or
// focus. Fields left empty inherit from the base style.
type Style struct {
	Foreground string
	Background string
	Bold       bool
	Underline  bool
	Reverse    bool
}

// StyleRegistry is implemented by rendering layers that keep per-instance
// pseudo-state styles in shared presentation state. The engine never calls
// it; renderers register styles keyed by Picker.ID and unregister them
// when the picker goes away.
type StyleRegistry interface {
	RegisterHoverStyle(id string, rules Style)
	Unregister(id string)
}
