package ui

// Base carries the size and focus state every panel needs. Embedding it
// gives a component the standard setters so the layout code can treat
// panels uniformly.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    checkpoints list.Model[run.Checkpoint]
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused marks the component focused or not.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize records the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns the rows left for list content once overhead such
// as borders and headers is subtracted.
func (b Base) ListHeight(overhead int) int {
	return b.height - overhead
}
