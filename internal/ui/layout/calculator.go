// Package layout computes panel dimensions from the terminal size.
package layout

// NarrowThreshold is the terminal width below which the layout switches to
// narrow mode. In narrow mode the checkpoint panel is displayed below the
// training panel instead of beside it.
const NarrowThreshold = 100

// ContentOpts is the chrome to subtract from the terminal height.
type ContentOpts struct {
	HeaderHeight int
	FooterHeight int // 0 if the hint line is hidden
}

// ContentHeight is the rows left for the panels once the header bar and
// the footer hint line are taken out.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return windowHeight - opts.HeaderHeight - opts.FooterHeight
}

// IsNarrowMode reports whether the terminal is too narrow for panels
// side by side.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// TrainPanelWidth gives the training panel two thirds of the row when
// the checkpoint panel sits beside it, the whole row otherwise.
func TrainPanelWidth(windowWidth int, narrowMode, checkpointsVisible bool) int {
	if checkpointsVisible && !narrowMode {
		return windowWidth * 2 / 3
	}
	return windowWidth
}

// CheckpointWidth is the checkpoint panel's share of the row: zero when
// hidden, the full row when stacked below the training panel, and the
// remainder next to it otherwise.
func CheckpointWidth(windowWidth int, narrowMode, checkpointsVisible bool) int {
	if !checkpointsVisible {
		return 0
	}
	if narrowMode {
		return windowWidth
	}
	return windowWidth - TrainPanelWidth(windowWidth, narrowMode, checkpointsVisible)
}

// TrainPanelHeight keeps the training panel at its compact height when
// the checkpoint list is stacked under it; with the row to itself the
// panel takes everything and the extra rows hold the loss chart.
func TrainPanelHeight(contentHeight, compactHeight int, narrowMode, checkpointsVisible bool) int {
	if narrowMode && checkpointsVisible {
		return min(compactHeight, contentHeight)
	}
	return contentHeight
}

// CheckpointHeight fills whatever the training panel left: the rows
// under it when stacked, the full content height side by side.
func CheckpointHeight(contentHeight, compactHeight int, narrowMode, checkpointsVisible bool) int {
	if !checkpointsVisible {
		return 0
	}
	if narrowMode {
		return contentHeight - TrainPanelHeight(contentHeight, compactHeight, narrowMode, checkpointsVisible)
	}
	return contentHeight
}
