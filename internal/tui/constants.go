package tui

import "time"

const (
	// Timeouts and Intervals
	FlashDuration  = 120 * time.Millisecond
	ReplayInterval = 350 * time.Millisecond

	// Keypad Dimensions
	GridColumns  = 4
	ButtonWidth  = 7
	ButtonHeight = 3
	ButtonGap    = 1 // blank columns between keys and blank rows between key rows

	// Display
	DisplayHeight = 3
	DisplayGap    = 1 // blank rows between display and keypad

	// Layout Offsets and Padding
	DefaultPaddingX = 2
	DefaultPaddingY = 1
	HelpGap         = 1
)
