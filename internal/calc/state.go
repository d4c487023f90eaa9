package calc

// Mode is the persistent mode of the engine.
type Mode uint8

const (
	ModeNormal Mode = iota
	// ModeError is entered on a failed evaluation and left only by Clear.
	ModeError
)

func (m Mode) String() string {
	if m == ModeError {
		return "error"
	}
	return "normal"
}

// Phase tells which operand the engine is working on in ModeNormal.
type Phase uint8

const (
	AwaitingOperand Phase = iota
	EnteringOperand
	ShowingResult
)

func (p Phase) String() string {
	switch p {
	case EnteringOperand:
		return "entering"
	case ShowingResult:
		return "result"
	}
	return "awaiting"
}

const (
	// ErrorText is shown while the engine is in ModeError.
	ErrorText = "Error"

	// errorInput is stored in CurrentInput in ModeError; it never parses.
	errorInput = "Error"

	clearedDisplay = "0"
)

// State is the calculator state. DisplayText is always derived from
// CurrentInput, except for the cleared "0" and ErrorText.
type State struct {
	CurrentInput    string
	PreviousInput   string
	PendingOperator Operator
	DisplayText     string

	mode  Mode
	phase Phase
}

func clearedState() State {
	return State{DisplayText: clearedDisplay}
}

func (s State) Mode() Mode { return s.mode }

func (s State) Phase() Phase { return s.phase }

// Cleared reports whether s is the start-up configuration.
func (s State) Cleared() bool {
	return s.CurrentInput == "" && s.PreviousInput == "" &&
		s.PendingOperator == NoOperator && s.DisplayText == clearedDisplay &&
		s.mode == ModeNormal
}
