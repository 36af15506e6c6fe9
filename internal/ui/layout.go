package ui

import "time"

// Pane sizing.
const (
	// ListPaneWidePercent is the list share of the width in multi-pane mode
	// on very wide terminals.
	ListPaneWidePercent = 30

	// ListPanePercent is the list share of the width in multi-pane mode.
	ListPanePercent = 40

	// LayoutExtraWideWidth is the threshold for the narrower list pane.
	LayoutExtraWideWidth = 160

	// chromeLines is the header plus the command bar.
	chromeLines = 2
)

// Timing constants.
const (
	// StoreTimeout bounds every store call made from the UI.
	StoreTimeout = 3 * time.Second

	// NoticeTTL is how long a transient notice stays in the header.
	NoticeTTL = 4 * time.Second

	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = 500 * time.Millisecond
)
