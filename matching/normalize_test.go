package matching

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "brand and number with separator",
			input:    "Denso 234-9005",
			expected: "denso2349005",
		},
		{
			name:     "uppercase with punctuation",
			input:    "AB.C-12/34",
			expected: "abc1234",
		},
		{
			name:     "numeric leading zeros collapsed",
			input:    "000123",
			expected: "123",
		},
		{
			name:     "all zeros keeps single zero",
			input:    "0000",
			expected: "0",
		},
		{
			name:     "zeros inside mixed code preserved",
			input:    "abc007",
			expected: "abc007",
		},
		{
			name:     "leading zeros in mixed code preserved",
			input:    "007abc",
			expected: "007abc",
		},
		{
			name:     "separated digits still count as numeric",
			input:    "00-01 23",
			expected: "123",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "--- ///",
			expected: "",
		},
		{
			name:     "non-ascii letters stripped",
			input:    "Škoda 123",
			expected: "koda123",
		},
	}

	for _, testCase := range testCases {
		if got := Normalize(testCase.input); got != testCase.expected {
			t.Errorf("%s, Normalize(%q): expected %q, got %q",
				testCase.name, testCase.input, testCase.expected, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Denso 234-9005", "000123", "abc007", "CAT 1R-0750", ""}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestNormalizeOutputAlphabet(t *testing.T) {
	inputs := []string{"Denso 234-9005", "Škoda Ürgent!", "  A--B__C  ", "0x00FF"}
	for _, input := range inputs {
		for _, r := range Normalize(input) {
			if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
				t.Errorf("Normalize(%q) produced invalid rune %q", input, r)
			}
		}
	}
}
