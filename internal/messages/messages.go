package messages

// ButtonPressedMsg presses the keypad button with the given identifier.
// The identifier is used verbatim, so "AC" always clears everything even
// while the clear key is labelled "C".
type ButtonPressedMsg struct {
	ID string
}

// FlashExpiredMsg ends the highlight of a pressed key. Seq identifies the
// press that scheduled it; stale expiries are ignored.
type FlashExpiredMsg struct {
	Seq int
}

// ReplayStepMsg presses the next queued replay button.
type ReplayStepMsg struct{}
