package calc

import (
	"github.com/verte-zerg/emocalc/internal/emotion"
	"github.com/verte-zerg/emocalc/internal/model"
)

// MaxDigits caps how many digits the user can enter into one number.
const MaxDigits = 12

// State is the calculator register set. Transitions return a new State.
type State struct {
	Current  model.Value
	Previous model.Value
	Op       Operation
	IsResult bool
	Emotion  string
}

// Initial returns the cleared state.
func Initial() State {
	return State{
		Current: model.Zero(),
		Emotion: emotion.Neutral,
	}
}

// Press dispatches k to PressDigit or PressOperation.
func (s State) Press(k Key, emotionOn bool) State {
	if k.IsEntry() {
		return s.PressDigit(k, emotionOn)
	}
	return s.PressOperation(k.Operation(), emotionOn)
}

// Run applies keys in order starting from the initial state.
func Run(keys []Key, emotionOn bool) State {
	s := Initial()
	for _, k := range keys {
		s = s.Press(k, emotionOn)
	}
	return s
}

// PressDigit handles a digit or the decimal point.
func (s State) PressDigit(k Key, emotionOn bool) State {
	if !k.IsEntry() {
		return s
	}
	if s.IsResult {
		next := s
		next.Current = freshEntry(k)
		next.IsResult = false
		next.Emotion = emotionFor(next.Current, emotionOn)
		return next
	}
	if s.Current.Digits() >= MaxDigits {
		return s
	}
	var text string
	switch {
	case s.Current.IsError():
		text = freshEntry(k).Text()
	case s.Current.Text() == "0" && k != KeyDecimal:
		text = string(k)
	default:
		text = s.Current.Text() + string(k)
	}
	value, err := model.ParseValue(text)
	if err != nil {
		// A second decimal point; the keystroke is dropped.
		return s
	}
	next := s
	next.Current = value
	next.Emotion = emotionFor(value, emotionOn)
	return next
}

// PressOperation handles clear, backspace, equals and the binary operators.
func (s State) PressOperation(op Operation, emotionOn bool) State {
	switch op {
	case OpClear:
		return Initial()
	case OpBackspace:
		next := s
		next.Current = backspace(s.Current)
		next.Emotion = emotionFor(next.Current, emotionOn)
		return next
	case OpEquals:
		if !s.Op.IsBinary() || s.Previous.IsEmpty() {
			return s
		}
		result := Evaluate(s.Previous, s.Current, s.Op)
		return State{
			Current:  result,
			IsResult: true,
			Emotion:  emotionFor(result, emotionOn),
		}
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return State{
			Current:  model.Zero(),
			Previous: s.Current,
			Op:       op,
			Emotion:  s.Emotion,
		}
	default:
		return s
	}
}

// WithEmotion refreshes the cached emoji after emotion mode is toggled.
func (s State) WithEmotion(on bool) State {
	s.Emotion = emotionFor(s.Current, on)
	return s
}

// Evaluate computes prev op cur. Division by zero and error operands yield
// the error value.
func Evaluate(prev, cur model.Value, op Operation) model.Value {
	p, okPrev := prev.Float()
	c, okCur := cur.Float()
	if prev.IsError() || cur.IsError() {
		return model.ErrorValue()
	}
	if !okPrev || !okCur {
		return cur
	}
	switch op {
	case OpAdd:
		return model.FromFloat(p + c)
	case OpSubtract:
		return model.FromFloat(p - c)
	case OpMultiply:
		return model.FromFloat(p * c)
	case OpDivide:
		if c == 0 {
			return model.ErrorValue()
		}
		return model.FromFloat(p / c)
	default:
		return cur
	}
}

func freshEntry(k Key) model.Value {
	if k == KeyDecimal {
		return model.MustParseValue("0.")
	}
	return model.MustParseValue(string(k))
}

func backspace(v model.Value) model.Value {
	if v.IsError() {
		return model.Zero()
	}
	text := v.Text()
	if len(text) <= 1 {
		return model.Zero()
	}
	trimmed, err := model.ParseValue(text[:len(text)-1])
	if err != nil {
		return model.Zero()
	}
	return trimmed
}

func emotionFor(v model.Value, on bool) string {
	if !on {
		return emotion.Neutral
	}
	return emotion.For(v)
}
