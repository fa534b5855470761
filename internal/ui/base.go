package ui

// Base stores the size a component was given. Embed it in models that
// render into a fixed area.
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int { return b.width }

// Height returns the component height.
func (b Base) Height() int { return b.height }

// Empty reports whether the component has no area to draw in.
func (b Base) Empty() bool {
	return b.width <= 0 || b.height <= 0
}
