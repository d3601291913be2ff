package matching

import (
	"reflect"
	"testing"
)

func tokenSet(tokens ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected map[string]struct{}
	}{
		{
			name:     "brand and separated number",
			input:    "Denso 234-9005",
			expected: tokenSet("denso", "234", "9005", "2349005"),
		},
		{
			name:     "single word",
			input:    "caterpillar",
			expected: tokenSet("caterpillar"),
		},
		{
			name:     "digits only",
			input:    "2349005",
			expected: tokenSet("2349005"),
		},
		{
			name:     "letter digit boundary splits runs",
			input:    "1R0750",
			expected: tokenSet("1", "r", "0750", "1r0750"),
		},
		{
			name:     "duplicate runs collapse",
			input:    "AA-aa 11-11",
			expected: tokenSet("aa", "11", "aaaa", "1111"),
		},
		{
			name:     "empty input",
			input:    "",
			expected: tokenSet(),
		},
		{
			name:     "separators only",
			input:    " -/. ",
			expected: tokenSet(),
		},
		{
			name:     "non-ascii acts as separator",
			input:    "Škoda-X1",
			expected: tokenSet("koda", "x", "1", "kodax1"),
		},
	}

	for _, testCase := range testCases {
		if got := Tokenize(testCase.input); !reflect.DeepEqual(got, testCase.expected) {
			t.Errorf("%s, Tokenize(%q): expected %v, got %v",
				testCase.name, testCase.input, testCase.expected, got)
		}
	}
}

func TestTokenizeCombinedTokenMatchesNormalize(t *testing.T) {
	// For single-field inputs without the pure-numeric leading-zero
	// case the combined token must equal the canonical key.
	inputs := []string{"234-9005", "1R-0750", "abc007", "komatsu"}
	for _, input := range inputs {
		key := Normalize(input)
		if _, ok := Tokenize(input)[key]; !ok {
			t.Errorf("Tokenize(%q) missing combined token %q", input, key)
		}
	}
}
