// Package calc implements the calculator engine: the input state machine that
// turns keypad presses into a running calculation and display text.
package calc

import (
	"context"
	"errors"
	"log/slog"
)

// Engine owns a State and mutates it only through Press.
// An Engine is not safe for concurrent use; it is driven by one input loop.
type Engine struct {
	state  State
	log    *slog.Logger
	render func(State)
}

type Option func(*Engine)

// WithLogger sets the logger for press tracing. Presses are logged at Debug.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRenderFunc registers fn to be called with a copy of the state after every press.
func WithRenderFunc(fn func(State)) Option {
	return func(e *Engine) {
		e.render = fn
	}
}

// New returns an engine in the cleared configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		state: clearedState(),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Press applies one button and returns the new display text.
func (e *Engine) Press(b Button) string {
	if e.state.mode == ModeError && b.Kind != KindClear {
		e.log.Debug("press ignored", "button", b, "mode", e.state.mode)
		e.notify()
		return e.state.DisplayText
	}

	switch b.Kind {
	case KindClear:
		e.state = clearedState()
	case KindClearEntry:
		e.state.CurrentInput = ""
		e.state.DisplayText = clearedDisplay
		e.state.phase = AwaitingOperand
	case KindSign:
		e.transform(func(v float64) float64 { return -v })
	case KindPercent:
		e.transform(func(v float64) float64 { return v / 100 })
	case KindOperator:
		e.selectOperator(b.Op)
	case KindEquals:
		e.evaluate()
	case KindDigit:
		e.appendInput(string(rune(b.Digit)))
	case KindPoint:
		e.appendInput(".")
	default:
		e.log.Warn("unhandled button", "button", b)
	}

	e.log.Debug("press",
		"button", b,
		"current", e.state.CurrentInput,
		"previous", e.state.PreviousInput,
		"operator", e.state.PendingOperator,
		"display", e.state.DisplayText,
		"phase", e.state.phase,
	)
	e.notify()
	return e.state.DisplayText
}

// PressID decodes id and presses it. The state is untouched when id is unknown.
func (e *Engine) PressID(id string) (string, error) {
	b, err := ParseButton(id)
	if err != nil {
		return e.state.DisplayText, err
	}
	return e.Press(b), nil
}

func (e *Engine) Display() string { return e.state.DisplayText }

// State returns a copy of the current state.
func (e *Engine) State() State { return e.state }

// ClearLabel is the label for the clear key: "C" while there is an entry to
// clear, "AC" otherwise.
func (e *Engine) ClearLabel() string {
	if e.state.mode == ModeNormal && e.state.CurrentInput != "" {
		return "C"
	}
	return "AC"
}

// ClearButton is the button the clear key sends given its current label.
func (e *Engine) ClearButton() Button {
	if e.ClearLabel() == "C" {
		return ClearEntry
	}
	return Clear
}

func (e *Engine) transform(fn func(float64) float64) {
	v, ok := parseNumeral(e.state.CurrentInput)
	if !ok {
		return
	}
	e.state.CurrentInput = stringify(fn(v))
	e.state.DisplayText = Format(e.state.CurrentInput)
}

func (e *Engine) selectOperator(op Operator) {
	s := &e.state
	if _, ok := parseNumeral(s.CurrentInput); !ok {
		// A second operator before any digits re-targets the pending one.
		if s.CurrentInput == "" && s.PendingOperator != NoOperator {
			if _, ok := parseNumeral(s.PreviousInput); ok {
				s.PendingOperator = op
				e.log.Debug("operator replaced", "operator", op)
			}
		}
		return
	}

	s.PreviousInput = s.CurrentInput
	s.PendingOperator = op
	s.DisplayText = Format(s.CurrentInput)
	s.CurrentInput = ""
	s.phase = AwaitingOperand
}

func (e *Engine) evaluate() {
	s := &e.state
	if s.PendingOperator == NoOperator {
		return
	}
	a, ok := parseNumeral(s.PreviousInput)
	if !ok {
		return
	}
	b, ok := parseNumeral(s.CurrentInput)
	if !ok {
		return
	}

	r, err := s.PendingOperator.Apply(a, b)
	if err != nil {
		e.fail(err)
		return
	}

	s.CurrentInput = stringify(r)
	s.DisplayText = Format(s.CurrentInput)
	s.PendingOperator = NoOperator
	s.phase = ShowingResult
}

// fail enters ModeError. PendingOperator and PreviousInput are left as they are.
func (e *Engine) fail(err error) {
	e.state.CurrentInput = errorInput
	e.state.DisplayText = ErrorText
	e.state.mode = ModeError

	level := slog.LevelWarn
	if errors.Is(err, ErrDivisionByZero) {
		level = slog.LevelInfo
	}
	e.log.Log(context.Background(), level, "evaluation failed",
		"error", err,
		"previous", e.state.PreviousInput,
		"operator", e.state.PendingOperator,
	)
}

func (e *Engine) appendInput(ch string) {
	e.state.CurrentInput += ch
	e.state.DisplayText = Format(e.state.CurrentInput)
	e.state.phase = EnteringOperand
}

func (e *Engine) notify() {
	if e.render != nil {
		e.render(e.state)
	}
}
