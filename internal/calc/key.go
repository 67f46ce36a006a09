// Package calc implements the calculator state machine.
package calc

import (
	"fmt"
	"strings"
)

// Operation is a command or a pending binary operator.
type Operation int

// Operations.
const (
	OpNone Operation = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpEquals
	OpClear
	OpBackspace
)

// String implements fmt.Stringer.
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpEquals:
		return "equals"
	case OpClear:
		return "clear"
	case OpBackspace:
		return "backspace"
	default:
		return "none"
	}
}

// Symbol returns the operator as shown next to the previous value. It is
// the same glyph as the operator's button label.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// IsBinary reports whether o is one of the four arithmetic operators.
func (o Operation) IsBinary() bool {
	return o >= OpAdd && o <= OpDivide
}

// Key is one of the calculator buttons.
type Key string

// Buttons.
const (
	Key0         Key = "0"
	Key1         Key = "1"
	Key2         Key = "2"
	Key3         Key = "3"
	Key4         Key = "4"
	Key5         Key = "5"
	Key6         Key = "6"
	Key7         Key = "7"
	Key8         Key = "8"
	Key9         Key = "9"
	KeyDecimal   Key = "."
	KeyAdd       Key = "+"
	KeySubtract  Key = "-"
	KeyMultiply  Key = "*"
	KeyDivide    Key = "/"
	KeyEquals    Key = "="
	KeyClear     Key = "C"
	KeyBackspace Key = "BS"
)

var keyAliases = map[string]Key{
	"x":  KeyMultiply,
	"×":  KeyMultiply,
	"÷":  KeyDivide,
	"c":  KeyClear,
	"bs": KeyBackspace,
	"⌫":  KeyBackspace,
}

// ParseKey resolves a button name. Display symbols are accepted as aliases.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	k := Key(s)
	if k.IsEntry() || k.Operation() != OpNone {
		return k, nil
	}
	if alias, ok := keyAliases[strings.ToLower(s)]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("unknown key %q", s)
}

// IsEntry reports whether k is a digit or the decimal point.
func (k Key) IsEntry() bool {
	if k == KeyDecimal {
		return true
	}
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// Operation returns the operation bound to k, or OpNone for entry keys.
func (k Key) Operation() Operation {
	switch k {
	case KeyAdd:
		return OpAdd
	case KeySubtract:
		return OpSubtract
	case KeyMultiply:
		return OpMultiply
	case KeyDivide:
		return OpDivide
	case KeyEquals:
		return OpEquals
	case KeyClear:
		return OpClear
	case KeyBackspace:
		return OpBackspace
	default:
		return OpNone
	}
}
