package cep

import (
	"errors"
	"strings"
)

const (
	// MaxDigits is the number of digits in a complete CEP
	MaxDigits = 8

	// PrefixDigits is the number of digits shown before the hyphen
	PrefixDigits = 5

	// DisplayLen is the length of a complete CEP in display form (XXXXX-XXX)
	DisplayLen = MaxDigits + 1
)

// ErrIncomplete is returned by Parse when the input does not carry 8 digits
var ErrIncomplete = errors.New("CEP deve conter 8 dígitos")

// CEP is a normalized Brazilian postal code.
// It holds only the digit-only form; the zero value is the empty CEP.
type CEP struct {
	digits string
}

// Normalize strips every non-digit from raw and keeps at most the first
// 8 digits. Extra digits are dropped silently, not reported as an error.
func Normalize(raw string) CEP {
	var b strings.Builder
	b.Grow(MaxDigits)

	for i := 0; i < len(raw) && b.Len() < MaxDigits; i++ {
		c := raw[i]
		if c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	return CEP{digits: b.String()}
}

// Parse normalizes s and requires the result to be complete.
// It is the strict entry point for callers without a keystroke loop
// (command line arguments, HTTP paths).
func Parse(s string) (CEP, error) {
	c := Normalize(s)
	if !c.IsComplete() {
		return c, ErrIncomplete
	}
	return c, nil
}

// Digits returns the digit-only form (0 to 8 digits)
func (c CEP) Digits() string {
	return c.digits
}

// Len returns the number of digits
func (c CEP) Len() int {
	return len(c.digits)
}

// IsEmpty reports whether no digit has been entered
func (c CEP) IsEmpty() bool {
	return c.digits == ""
}

// IsComplete reports whether the CEP carries exactly 8 digits
func (c CEP) IsComplete() bool {
	return len(c.digits) == MaxDigits
}

// Display returns the masked form: up to 5 digits unchanged, otherwise the
// first 5 digits, a hyphen and the remaining digits.
func (c CEP) Display() string {
	if len(c.digits) <= PrefixDigits {
		return c.digits
	}
	return c.digits[:PrefixDigits] + "-" + c.digits[PrefixDigits:]
}

// String implements fmt.Stringer using the display form
func (c CEP) String() string {
	return c.Display()
}
