// Package format renders calculator values for display.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/emocalc/internal/model"
)

// Policy controls how numbers are rendered.
type Policy struct {
	Grouping             string
	Decimal              string
	GroupSize            int
	MaxFractionDigits    int
	MaxSignificantDigits int
	ExponentDigits       int
	ExponentialCutover   float64
}

// DefaultPolicy returns the ko-KR display policy.
func DefaultPolicy() Policy {
	return Policy{
		Grouping:             ",",
		Decimal:              ".",
		GroupSize:            3,
		MaxFractionDigits:    6,
		MaxSignificantDigits: 12,
		ExponentDigits:       2,
		ExponentialCutover:   1e12,
	}
}

// Validate checks that the policy can render numbers unambiguously.
func (p Policy) Validate() error {
	if p.Decimal == "" {
		return fmt.Errorf("decimal separator must not be empty")
	}
	if p.Grouping == p.Decimal {
		return fmt.Errorf("grouping and decimal separators must differ (both %q)", p.Decimal)
	}
	if p.GroupSize <= 0 {
		return fmt.Errorf("group size must be > 0")
	}
	if p.MaxFractionDigits < 0 {
		return fmt.Errorf("max fraction digits must be >= 0")
	}
	if p.MaxSignificantDigits <= 0 {
		return fmt.Errorf("max significant digits must be > 0")
	}
	if p.ExponentDigits < 0 {
		return fmt.Errorf("exponent digits must be >= 0")
	}
	if p.ExponentialCutover <= 0 {
		return fmt.Errorf("exponential cutover must be > 0")
	}
	return nil
}

// Format renders v. The error value is shown verbatim and empty renders as "".
func (p Policy) Format(v model.Value) string {
	if v.IsError() || v.IsEmpty() {
		return v.Text()
	}
	f, ok := v.Float()
	if !ok {
		return v.Text()
	}
	return p.FormatNumber(f)
}

// FormatNumber renders f with grouping, or in exponential form at or above
// the cutover. Rounding works on the decimal digits of f so large values
// never pick up binary expansion noise.
func (p Policy) FormatNumber(f float64) string {
	if f >= p.ExponentialCutover {
		return strconv.FormatFloat(f, 'e', p.ExponentDigits, 64)
	}
	neg, intPart, fracPart := fixedDigits(f, p.MaxSignificantDigits)
	intPart, fracPart = roundFraction(intPart, fracPart, p.MaxFractionDigits)
	fracPart = strings.TrimRight(fracPart, "0")
	if strings.Trim(intPart, "0") == "" && fracPart == "" {
		// Rounding can leave "-0".
		neg = false
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(p.group(intPart))
	if fracPart != "" {
		b.WriteString(p.Decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}

// fixedDigits splits f, rounded to sig significant digits, into its sign and
// the integer and fraction digits of its fixed-point form. sig <= 0 keeps the
// shortest exact representation.
func fixedDigits(f float64, sig int) (neg bool, intPart, fracPart string) {
	prec := -1
	if sig > 0 {
		prec = sig - 1
	}
	text := strconv.FormatFloat(f, 'e', prec, 64)
	neg = strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")
	mantissa, expText, _ := strings.Cut(text, "e")
	exp, err := strconv.Atoi(expText)
	if err != nil {
		return neg, mantissa, ""
	}
	digits := strings.Replace(mantissa, ".", "", 1)

	// The decimal point sits after digit exp+1.
	point := exp + 1
	switch {
	case point <= 0:
		return neg, "0", strings.Repeat("0", -point) + digits
	case point >= len(digits):
		return neg, digits + strings.Repeat("0", point-len(digits)), ""
	default:
		return neg, digits[:point], digits[point:]
	}
}

// roundFraction rounds half up to at most n fraction digits.
func roundFraction(intPart, fracPart string, n int) (string, string) {
	if n < 0 || len(fracPart) <= n {
		return intPart, fracPart
	}
	up := fracPart[n] >= '5'
	digits := []byte(intPart + fracPart[:n])
	if up {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] < '9' {
				digits[i]++
				break
			}
			digits[i] = '0'
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}
	split := len(digits) - n
	return string(digits[:split]), string(digits[split:])
}

func (p Policy) group(digits string) string {
	size := p.GroupSize
	if size <= 0 || len(digits) <= size || p.Grouping == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % size
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += size {
		if b.Len() > 0 {
			b.WriteString(p.Grouping)
		}
		b.WriteString(digits[i : i+size])
	}
	return b.String()
}
