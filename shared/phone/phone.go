package phone

import (
	"strings"
	"unicode"
)

// Normalize reduces a raw phone input to the canonical contact key: digits
// only, with a single leading "+" preserved when present. Spaces, dashes and
// parentheses are stripped. An empty result means the input carried no digits.
func Normalize(raw string) string {
	var b strings.Builder

	trimmed := strings.TrimSpace(raw)

	for i, r := range trimmed {
		if i == 0 && r == '+' {
			b.WriteRune(r)
			continue
		}

		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	normalized := b.String()
	if normalized == "+" {
		return ""
	}

	return normalized
}

// Valid reports whether the normalized form of raw is a plausible phone
// number (at least 7 digits, at most 15 per E.164).
func Valid(raw string) bool {
	normalized := strings.TrimPrefix(Normalize(raw), "+")

	return len(normalized) >= 7 && len(normalized) <= 15
}
