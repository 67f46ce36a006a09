package calc

import (
	"math"
	"strconv"
	"testing"

	"github.com/verte-zerg/emocalc/internal/emotion"
	"github.com/verte-zerg/emocalc/internal/model"
)

func keys(t *testing.T, names ...string) []Key {
	t.Helper()
	out := make([]Key, 0, len(names))
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			t.Fatalf("parse key %q: %v", name, err)
		}
		out = append(out, k)
	}
	return out
}

func TestEnterDigits(t *testing.T) {
	s := Run(keys(t, "1", "2", "3"), false)
	if s.Current.Text() != "123" {
		t.Fatalf("expected 123, got %q", s.Current.Text())
	}
}

func TestLeadingZeroIsReplaced(t *testing.T) {
	s := Run(keys(t, "0", "0", "7"), false)
	if s.Current.Text() != "7" {
		t.Fatalf("expected 7, got %q", s.Current.Text())
	}
}

func TestDecimalPoint(t *testing.T) {
	s := Run(keys(t, ".", "5"), false)
	if s.Current.Text() != "0.5" {
		t.Fatalf("expected 0.5, got %q", s.Current.Text())
	}
	s = s.Press(KeyDecimal, false)
	if s.Current.Text() != "0.5" {
		t.Fatalf("expected second decimal point to be ignored, got %q", s.Current.Text())
	}
}

func TestAddScenario(t *testing.T) {
	s := Run(keys(t, "5", "+", "3", "="), false)
	if s.Current.Text() != "8" {
		t.Fatalf("expected 8, got %q", s.Current.Text())
	}
	if !s.IsResult {
		t.Fatalf("expected result flag")
	}
	if !s.Previous.IsEmpty() {
		t.Fatalf("expected empty previous value, got %q", s.Previous.Text())
	}
	if s.Op != OpNone {
		t.Fatalf("expected no pending operation, got %s", s.Op)
	}
}

func TestOperatorSelection(t *testing.T) {
	s := Run(keys(t, "1", "2", "×"), true)
	if s.Previous.Text() != "12" || s.Current.Text() != "0" || s.Op != OpMultiply || s.IsResult {
		t.Fatalf("unexpected state after operator: %+v", s)
	}
	if s.Emotion != emotion.SlightSmile {
		t.Fatalf("expected emotion to be carried over, got %s", s.Emotion)
	}
}

func TestDigitLengthCeiling(t *testing.T) {
	s := Initial()
	for i := 0; i < 20; i++ {
		s = s.Press(Key9, false)
	}
	if got := s.Current.Digits(); got != MaxDigits {
		t.Fatalf("expected %d digits, got %d", MaxDigits, got)
	}
	s = Run(keys(t, "1", "2", "3", "4", "5", "6", ".", "7", "8", "9", "0", "1", "2", "3"), false)
	if s.Current.Text() != "123456.789012" {
		t.Fatalf("expected decimal point to be ignored by the ceiling, got %q", s.Current.Text())
	}
}

func TestDigitAfterResultStartsFresh(t *testing.T) {
	s := Run(keys(t, "2", "*", "4", "=", "7"), true)
	if s.Current.Text() != "7" || s.IsResult {
		t.Fatalf("expected fresh entry 7, got %+v", s)
	}
	if s.Emotion != emotion.SlightSmile {
		t.Fatalf("expected emotion recomputed, got %s", s.Emotion)
	}
	s = Run(keys(t, "2", "*", "4", "=", "."), false)
	if s.Current.Text() != "0." {
		t.Fatalf("expected 0., got %q", s.Current.Text())
	}
}

func TestClearAlwaysResets(t *testing.T) {
	states := []State{
		Run(keys(t, "9", "/"), true),
		Run(keys(t, "5", "/", "0", "="), true),
		Run(keys(t, "1", "2", "."), false),
	}
	for _, s := range states {
		if got := s.Press(KeyClear, true); got != Initial() {
			t.Fatalf("expected initial state, got %+v", got)
		}
	}
}

func TestBackspace(t *testing.T) {
	s := Initial().Press(KeyBackspace, false)
	if s.Current.Text() != "0" {
		t.Fatalf("expected 0, got %q", s.Current.Text())
	}
	s = Run(keys(t, "4", "2", "BS"), false)
	if s.Current.Text() != "4" {
		t.Fatalf("expected 4, got %q", s.Current.Text())
	}
	s = Run(keys(t, "0", "-", "3", "=", "BS"), false)
	if s.Current.Text() != "0" {
		t.Fatalf("expected lone minus to fall back to 0, got %q", s.Current.Text())
	}
	s = Run(keys(t, "5", "/", "0", "=", "BS"), false)
	if s.Current.Text() != "0" {
		t.Fatalf("expected error to fall back to 0, got %q", s.Current.Text())
	}
}

func TestBackspaceKeepsPendingOperation(t *testing.T) {
	s := Run(keys(t, "8", "-", "1", "2", "BS"), false)
	if s.Previous.Text() != "8" || s.Op != OpSubtract || s.Current.Text() != "1" {
		t.Fatalf("unexpected state: %+v", s)
	}
}

func TestDivideByZero(t *testing.T) {
	got := Evaluate(model.MustParseValue("5"), model.MustParseValue("0"), OpDivide)
	if !got.IsError() || got.Text() != model.ErrorText {
		t.Fatalf("expected error value, got %q", got.Text())
	}

	s := Run(keys(t, "5", "/", "0", "="), true)
	if !s.Current.IsError() {
		t.Fatalf("expected error, got %q", s.Current.Text())
	}
	if s.Emotion != emotion.Neutral {
		t.Fatalf("expected neutral emotion for error, got %s", s.Emotion)
	}
	again := s.Press(KeyEquals, true)
	if again != s {
		t.Fatalf("expected equals without pending operation to be a no-op")
	}
}

func TestErrorOperandPropagates(t *testing.T) {
	s := Run(keys(t, "5", "/", "0", "=", "+", "1", "="), false)
	if !s.Current.IsError() {
		t.Fatalf("expected error to propagate, got %q", s.Current.Text())
	}
}

func TestEqualsWithoutOperationIsNoop(t *testing.T) {
	s := Run(keys(t, "4", "2"), false)
	if got := s.Press(KeyEquals, false); got != s {
		t.Fatalf("expected no-op, got %+v", got)
	}
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		prev, cur string
		op        Operation
		want      string
	}{
		{"5", "3", OpAdd, "8"},
		{"5", "8", OpSubtract, "-3"},
		{"1.5", "4", OpMultiply, "6"},
		{"1", "4", OpDivide, "0.25"},
		{"0.1", "0.2", OpAdd, "0.30000000000000004"},
	}
	for _, tc := range cases {
		got := Evaluate(model.MustParseValue(tc.prev), model.MustParseValue(tc.cur), tc.op)
		if got.Text() != tc.want {
			t.Fatalf("%s %s %s = %q, want %q", tc.prev, tc.op, tc.cur, got.Text(), tc.want)
		}
	}
	overflow := Evaluate(model.MustParseValue("1e308"), model.MustParseValue("10"), OpMultiply)
	if !overflow.IsError() {
		t.Fatalf("expected overflow to yield the error value, got %q", overflow.Text())
	}
}

func TestEmotionOffStaysNeutral(t *testing.T) {
	s := Run(keys(t, "9", "9", "9", "9", "9", "9", "9", "9"), false)
	if s.Emotion != emotion.Neutral {
		t.Fatalf("expected neutral emotion when mode is off, got %s", s.Emotion)
	}
	if on := s.WithEmotion(true); on.Emotion != emotion.MoneyMouth {
		t.Fatalf("expected money-mouth after toggling on, got %s", on.Emotion)
	}
	if off := s.WithEmotion(true).WithEmotion(false); off.Emotion != emotion.Neutral {
		t.Fatalf("expected neutral after toggling off, got %s", off.Emotion)
	}
}

func TestReachableStatesStayNumeric(t *testing.T) {
	all := []Key{Key0, Key1, Key5, Key9, KeyDecimal, KeyAdd, KeySubtract, KeyMultiply, KeyDivide, KeyEquals, KeyClear, KeyBackspace}
	s := Initial()
	// Deterministic pseudo-random walk over the buttons.
	seed := uint32(7)
	for i := 0; i < 5000; i++ {
		seed = seed*1664525 + 1013904223
		s = s.Press(all[int(seed>>16)%len(all)], i%2 == 0)
		if s.Current.IsError() {
			continue
		}
		f, err := strconv.ParseFloat(s.Current.Text(), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			t.Fatalf("step %d: current value %q is not a finite number", i, s.Current.Text())
		}
		if !s.IsResult && s.Current.Digits() > MaxDigits {
			t.Fatalf("step %d: %q exceeds the digit ceiling", i, s.Current.Text())
		}
	}
}

func TestParseKey(t *testing.T) {
	cases := map[string]Key{
		"7":  Key7,
		".":  KeyDecimal,
		"x":  KeyMultiply,
		"÷":  KeyDivide,
		"c":  KeyClear,
		"BS": KeyBackspace,
		"⌫":  KeyBackspace,
	}
	for in, want := range cases {
		got, err := ParseKey(in)
		if err != nil || got != want {
			t.Fatalf("ParseKey(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseKey("%"); err == nil {
		t.Fatalf("expected unknown key error")
	}
}
