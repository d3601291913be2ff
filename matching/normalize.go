package matching

import "strings"

// Normalize converts a raw part number into its canonical lookup key.
// The key is lowercase, contains only [a-z0-9], and is the same for
// every spelling of the part number a supplier or user might type:
// "234-9005", "234 9005" and "2349005" all normalize to "2349005".
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	allDigits := true
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			allDigits = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			allDigits = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}

	normalized := b.String()
	if normalized == "" {
		return ""
	}

	// Purely numeric part numbers lose their leading zeros so that
	// "000123" and "123" compare equal. Zeros inside mixed codes like
	// "abc007" are significant and stay.
	if allDigits {
		trimmed := strings.TrimLeft(normalized, "0")
		if trimmed == "" {
			return "0"
		}
		return trimmed
	}
	return normalized
}
