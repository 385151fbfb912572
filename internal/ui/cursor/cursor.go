// Package cursor tracks a selection and viewport for vertically scrolled lists.
package cursor

// Cursor holds the selected row and the first visible row of a list rendered
// through a fixed-height viewport. List length and height are arguments to
// every method rather than fields because panels resize and journals grow
// while the cursor lives on.
type Cursor struct {
	pos    int
	top    int
	margin int
}

// New returns a Cursor that keeps margin rows between the selection and the
// viewport edges while scrolling.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected row index.
func (c Cursor) Pos() int {
	return c.pos
}

// Top returns the index of the first visible row.
func (c Cursor) Top() int {
	return c.top
}

// Move shifts the selection by delta rows, clamped to the list, and scrolls
// the viewport so the selection stays visible. No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.scrollIntoView(listLen, height)
}

// JumpStart selects the first row and scrolls to the top.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.top = 0
}

// JumpEnd selects the last row and scrolls it into view.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.scrollIntoView(listLen, height)
}

func (c *Cursor) scrollIntoView(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	// Selection drifted above the viewport, or into the top margin.
	if c.pos < c.top+c.margin {
		c.top = max(c.pos-c.margin, 0)
	}

	// Selection drifted below the viewport, or into the bottom margin.
	if c.pos >= c.top+height-c.margin {
		c.top = c.pos - height + c.margin + 1
	}

	c.top = clamp(c.top, max(listLen-height, 0))
}

// ClampToBounds pulls the selection back inside a list that shrank, such as a
// checkpoint set pruned on disk. The viewport top is clamped too so
// VisibleRange never points past the list. Reports whether the selection
// moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		moved := c.pos != 0 || c.top != 0
		c.pos = 0
		c.top = 0
		return moved
	}
	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	c.top = clamp(c.top, listLen-1)
	return c.pos != old
}

// VisibleRange returns the half-open index range [start, end) of rows that
// fit in the viewport.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = c.top
	end = min(c.top+height, listLen)
	return start, end
}

// HandleKey applies list navigation keys and reports whether the key was one.
// It understands j/down, k/up, g/home, G/end, and ctrl+d and ctrl+u for half
// pages. Callers use the return value to decide whether a selection-changed
// action should follow.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.JumpStart()
	case "G", "end":
		c.JumpEnd(listLen, height)
	case "ctrl+d":
		c.Move(height/2, listLen, height)
	case "ctrl+u":
		c.Move(-height/2, listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	return min(max(v, 0), maxVal)
}
