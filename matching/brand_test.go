package matching

import "testing"

func TestCanonicalizeBrand(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "two lowercase words",
			input:    "john deere",
			expected: "John Deere",
		},
		{
			name:     "all caps",
			input:    "CATERPILLAR",
			expected: "Caterpillar",
		},
		{
			name:     "mixed case and extra whitespace",
			input:    "  deTROit   diesel ",
			expected: "Detroit Diesel",
		},
		{
			name:     "single word",
			input:    "bosch",
			expected: "Bosch",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
	}

	for _, testCase := range testCases {
		if got := CanonicalizeBrand(testCase.input); got != testCase.expected {
			t.Errorf("%s, CanonicalizeBrand(%q): expected %q, got %q",
				testCase.name, testCase.input, testCase.expected, got)
		}
	}
}

func TestSynonymSymmetry(t *testing.T) {
	m := BuildSynonymMap()
	for _, pair := range brandSynonymPairs {
		a, b := pair[0], pair[1]
		if _, ok := m.Resolve(a)[b]; !ok {
			t.Errorf("expected %q in synonyms of %q", b, a)
		}
		if _, ok := m.Resolve(b)[a]; !ok {
			t.Errorf("expected %q in synonyms of %q", a, b)
		}
	}
}

func TestSynonymTransitiveClosure(t *testing.T) {
	// "john deere"↔"deere" and "john deere"↔"jd" are declared, so
	// "deere" and "jd" must see each other directly.
	m := BuildSynonymMap()
	if _, ok := m.Resolve("deere")["jd"]; !ok {
		t.Errorf("expected jd in synonyms of deere, got %v", m.Resolve("deere"))
	}
	if _, ok := m.Resolve("jd")["deere"]; !ok {
		t.Errorf("expected deere in synonyms of jd, got %v", m.Resolve("jd"))
	}
}

func TestSynonymNoSelfInclusion(t *testing.T) {
	m := BuildSynonymMap()
	for name := range m {
		if _, ok := m[name][name]; ok {
			t.Errorf("brand %q contains itself in its synonym set", name)
		}
	}
}

func TestResolveUnknownBrand(t *testing.T) {
	m := BuildSynonymMap()
	if got := m.Resolve("acme"); len(got) != 0 {
		t.Errorf("expected empty set for unknown brand, got %v", got)
	}
}

func TestResolveReturnsIndependentSet(t *testing.T) {
	m := BuildSynonymMap()
	resolved := m.Resolve("caterpillar")
	resolved["bogus"] = struct{}{}
	delete(resolved, "cat")

	if _, ok := m.Resolve("caterpillar")["bogus"]; ok {
		t.Error("mutating a resolved set leaked into the synonym map")
	}
	if _, ok := m.Resolve("caterpillar")["cat"]; !ok {
		t.Error("deleting from a resolved set leaked into the synonym map")
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	m := BuildSynonymMap()
	if _, ok := m.Resolve("Caterpillar")["cat"]; !ok {
		t.Errorf("expected cat in synonyms of Caterpillar, got %v", m.Resolve("Caterpillar"))
	}
}

func TestBuildSynonymMapExtraPairs(t *testing.T) {
	m := BuildSynonymMap([2]string{"acme", "acme corp"})
	if _, ok := m.Resolve("acme")["acme corp"]; !ok {
		t.Errorf("expected acme corp in synonyms of acme, got %v", m.Resolve("acme"))
	}
}

func TestDefaultSynonymsMemoized(t *testing.T) {
	first := DefaultSynonyms()
	second := DefaultSynonyms()
	if len(first) == 0 {
		t.Fatal("default synonym map is empty")
	}
	// Maps are reference types; memoization must hand back the same value.
	if len(first) != len(second) {
		t.Errorf("DefaultSynonyms returned different maps: %d vs %d entries", len(first), len(second))
	}
}
