// Package ui holds the sizing constants and building blocks shared by
// the panels.
package ui

const (
	// ScrollMargin is how many rows stay visible between the cursor and
	// a list edge while scrolling.
	ScrollMargin = 3

	// BorderSize is the cells a rounded border consumes on each axis.
	BorderSize = 2

	// PanelOverhead is the vertical space a bordered panel spends on
	// chrome: the border plus a header line and its separator.
	PanelOverhead = BorderSize + 2

	// MinProgressBarWidth is the narrowest rendering worth drawing for
	// progress and sparkline bars.
	MinProgressBarWidth = 5
)
