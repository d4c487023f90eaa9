package calc

import "errors"

var (
	// ErrUnknownButton is returned when a button identifier is not on the keypad.
	ErrUnknownButton = errors.New("unknown button")

	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when an arithmetic result is not a finite number.
	ErrOverflow = errors.New("result out of range")
)
