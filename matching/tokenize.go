package matching

import "strings"

// Tokenize derives the set of search tokens for a raw part descriptor.
// The input is lowercased and split on whitespace; within each field,
// maximal runs of ASCII letters and maximal runs of ASCII digits each
// become a token, and the field with its separators stripped becomes a
// combined token. "Denso 234-9005" yields
// {"denso", "234", "9005", "2349005"}, so a catalog entry stored under
// any one of those spellings can still be found. For a single-field
// input the combined token equals the Normalize key, leading-zero
// collapsing aside.
func Tokenize(raw string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(raw) {
		tokenizeField(field, tokens)
	}
	return tokens
}

func tokenizeField(field string, tokens map[string]struct{}) {
	var run strings.Builder
	var combined strings.Builder
	runIsDigit := false

	flush := func() {
		if run.Len() > 0 {
			tokens[run.String()] = struct{}{}
			run.Reset()
		}
	}

	for _, r := range field {
		var c rune
		isDigit := false
		switch {
		case r >= 'a' && r <= 'z':
			c = r
		case r >= 'A' && r <= 'Z':
			c = r + ('a' - 'A')
		case r >= '0' && r <= '9':
			c = r
			isDigit = true
		default:
			flush()
			continue
		}

		// A letter run ends where a digit run begins and vice versa.
		if run.Len() > 0 && isDigit != runIsDigit {
			flush()
		}
		runIsDigit = isDigit
		run.WriteRune(c)
		combined.WriteRune(c)
	}
	flush()

	if combined.Len() > 0 {
		tokens[combined.String()] = struct{}{}
	}
}
