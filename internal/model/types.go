// Package model defines shared data structures.
package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrorText is how the division error is displayed.
const ErrorText = "Error"

// Config defines calculator UI settings.
type Config struct {
	Title       string
	ShowEmotion bool
	Locale      string
}

// Value is a calculator register. The zero value is empty; otherwise it holds
// either a finite numeric literal or the division error.
type Value struct {
	text   string
	failed bool
}

// ParseValue validates text as a finite numeric literal.
func ParseValue(text string) (Value, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q: %w", text, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, fmt.Errorf("number %q is not finite", text)
	}
	return Value{text: text}, nil
}

// MustParseValue is ParseValue for literals known to be valid.
func MustParseValue(text string) Value {
	v, err := ParseValue(text)
	if err != nil {
		panic(err)
	}
	return v
}

// FromFloat converts a computed result. Non-finite results become the error value.
func FromFloat(f float64) Value {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return ErrorValue()
	}
	if f == 0 {
		// Drops the sign of negative zero.
		return Value{text: "0"}
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return Value{text: strconv.FormatFloat(f, 'g', -1, 64)}
	}
	return Value{text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// ErrorValue returns the division error value.
func ErrorValue() Value {
	return Value{failed: true}
}

// Zero returns the "0" value.
func Zero() Value {
	return Value{text: "0"}
}

// IsEmpty reports whether the register holds nothing.
func (v Value) IsEmpty() bool {
	return !v.failed && v.text == ""
}

// IsError reports whether v is the division error.
func (v Value) IsError() bool {
	return v.failed
}

// Text returns the literal text, ErrorText for the error value and "" when empty.
func (v Value) Text() string {
	if v.failed {
		return ErrorText
	}
	return v.text
}

// Float returns the numeric value. ok is false for empty and error values.
func (v Value) Float() (f float64, ok bool) {
	if v.failed || v.text == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Digits counts the characters of the literal other than sign and decimal point.
func (v Value) Digits() int {
	if v.failed {
		return 0
	}
	return len(v.text) - strings.Count(v.text, ".") - strings.Count(v.text, "-")
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Text()
}
