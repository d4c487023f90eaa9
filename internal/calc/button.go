package calc

import (
	"fmt"
	"strings"
)

// Operator is a pending binary operation. The zero value means no operation is pending.
type Operator uint8

const (
	NoOperator Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// Symbol returns the keypad label of the operator.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	}
	return ""
}

func (o Operator) String() string {
	if o == NoOperator {
		return "none"
	}
	return o.Symbol()
}

// Apply evaluates a <op> b.
func (o Operator) Apply(a, b float64) (float64, error) {
	var r float64
	switch o {
	case Add:
		r = a + b
	case Subtract:
		r = a - b
	case Multiply:
		r = a * b
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		r = a / b
	default:
		return 0, fmt.Errorf("apply %v: no operator", o)
	}
	if !finite(r) {
		return 0, fmt.Errorf("%g %s %g: %w", a, o.Symbol(), b, ErrOverflow)
	}
	return r, nil
}

// Kind classifies a Button.
type Kind uint8

const (
	KindDigit Kind = iota + 1
	KindPoint
	KindOperator
	KindEquals
	KindClear
	KindClearEntry
	KindSign
	KindPercent
)

// Button is one keypad key, decoded once from its identifier.
// Digit is set only for KindDigit and Op only for KindOperator.
type Button struct {
	Kind  Kind
	Digit byte
	Op    Operator
}

var (
	Point      = Button{Kind: KindPoint}
	Equals     = Button{Kind: KindEquals}
	Clear      = Button{Kind: KindClear}
	ClearEntry = Button{Kind: KindClearEntry}
	Sign       = Button{Kind: KindSign}
	Percent    = Button{Kind: KindPercent}
)

// Digit returns the button for decimal digit d. It panics if d is not in 0-9.
func Digit(d int) Button {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("calc: digit %d out of range", d))
	}
	return Button{Kind: KindDigit, Digit: byte('0' + d)}
}

// Op returns the button for operator o.
func Op(o Operator) Button {
	return Button{Kind: KindOperator, Op: o}
}

// ButtonIDs lists the identifiers the keypad sends, in layout order.
var ButtonIDs = []string{
	"AC", "+/-", "%", "÷",
	"7", "8", "9", "x",
	"4", "5", "6", "-",
	"1", "2", "3", "+",
	"0", ".", "=",
}

// ParseButton decodes a keypad identifier. "C" (clear entry) and "×" are
// accepted in addition to ButtonIDs.
func ParseButton(id string) (Button, error) {
	switch id {
	case "AC":
		return Clear, nil
	case "C":
		return ClearEntry, nil
	case "+/-":
		return Sign, nil
	case "%":
		return Percent, nil
	case "÷":
		return Op(Divide), nil
	case "x", "×":
		return Op(Multiply), nil
	case "-":
		return Op(Subtract), nil
	case "+":
		return Op(Add), nil
	case "=":
		return Equals, nil
	case ".":
		return Point, nil
	}
	if len(id) == 1 && id[0] >= '0' && id[0] <= '9' {
		return Digit(int(id[0] - '0')), nil
	}
	return Button{}, fmt.Errorf("parse %q: %w", id, ErrUnknownButton)
}

// MustParseButton is like ParseButton but panics on an unknown identifier.
func MustParseButton(id string) Button {
	b, err := ParseButton(id)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseButtons decodes a sequence of identifiers, stopping at the first unknown one.
func ParseButtons(ids []string) ([]Button, error) {
	buttons := make([]Button, 0, len(ids))
	for _, id := range ids {
		b, err := ParseButton(strings.TrimSpace(id))
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, b)
	}
	return buttons, nil
}

// ID returns the canonical keypad identifier of the button.
func (b Button) ID() string {
	switch b.Kind {
	case KindDigit:
		return string(rune(b.Digit))
	case KindPoint:
		return "."
	case KindOperator:
		if b.Op == Multiply {
			return "x"
		}
		return b.Op.Symbol()
	case KindEquals:
		return "="
	case KindClear:
		return "AC"
	case KindClearEntry:
		return "C"
	case KindSign:
		return "+/-"
	case KindPercent:
		return "%"
	}
	return ""
}

// Label is the text printed on the key face.
func (b Button) Label() string {
	if b.Kind == KindOperator {
		return b.Op.Symbol()
	}
	return b.ID()
}

func (b Button) String() string {
	if id := b.ID(); id != "" {
		return id
	}
	return fmt.Sprintf("Button(%d)", b.Kind)
}
