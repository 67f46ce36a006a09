package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const asciiDigits = "0123456789"

// ForLocale returns the default policy with separators taken from the locale
// identified by the BCP 47 tag. Locales that do not use ASCII digits keep the
// default separators.
func ForLocale(locale string) (Policy, error) {
	p := DefaultPolicy()
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return p, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to parse locale %q: %w", locale, err)
	}
	printer := message.NewPrinter(tag)
	// 1000 has a single group in every grouping style, including the
	// Indian 2-digit secondary groups.
	if sep, ok := between(printer.Sprintf("%v", 1000), "1", "000"); ok {
		p.Grouping = sep
	}
	if sep, ok := between(printer.Sprintf("%v", 1.5), "1", "5"); ok && sep != "" {
		p.Decimal = sep
	}
	if p.Grouping == p.Decimal || strings.ContainsAny(p.Grouping+p.Decimal, asciiDigits) {
		return DefaultPolicy(), nil
	}
	return p, nil
}

// between returns the text separating prefix from the first occurrence of
// stop that follows it.
func between(s, prefix, stop string) (string, bool) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", false
	}
	idx := strings.Index(rest, stop)
	if idx < 0 {
		return "", false
	}
	return rest[:idx], true
}
