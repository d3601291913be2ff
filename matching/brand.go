package matching

import (
	"strings"
	"sync"
	"unicode"
)

// brandSynonymPairs is the hand-curated list of brand spellings that
// refer to the same manufacturer. Adding a pair here is a data change;
// the resolver computes the full equivalence classes from it.
var brandSynonymPairs = [][2]string{
	{"caterpillar", "cat"},
	{"john deere", "deere"},
	{"john deere", "jd"},
	{"komatsu", "koma"},
	{"cummins", "cmns"},
	{"detroit diesel", "detroit"},
	{"international", "navistar"},
	{"mercedes-benz", "mercedes"},
	{"mercedes-benz", "mb"},
	{"volkswagen", "vw"},
	{"general motors", "gm"},
	{"bosch", "robert bosch"},
}

// SynonymMap maps a lowercase brand name to the set of other lowercase
// spellings considered interchangeable with it. Immutable after build;
// safe for concurrent readers.
type SynonymMap map[string]map[string]struct{}

// Resolve returns the synonym set for a brand, matching case
// insensitively. Unknown brands resolve to an empty set. The brand's
// own name is never a member of its set; callers that want a single
// membership check must union it in themselves. The returned set is a
// copy, so writing to it cannot corrupt the shared map.
func (m SynonymMap) Resolve(brand string) map[string]struct{} {
	set := m[strings.ToLower(brand)]
	out := make(map[string]struct{}, len(set))
	for name := range set {
		out[name] = struct{}{}
	}
	return out
}

// BuildSynonymMap computes brand equivalence classes from the declared
// pair list plus any extra pairs. Equivalence is fully transitive: if
// a↔b and b↔c are declared, then c is in the set of a. Each key maps
// to every other member of its class.
func BuildSynonymMap(extraPairs ...[2]string) SynonymMap {
	parent := make(map[string]string)

	var find func(string) string
	find = func(x string) string {
		p, ok := parent[x]
		if !ok {
			parent[x] = x
			return x
		}
		if p == x {
			return x
		}
		root := find(p)
		parent[x] = root
		return root
	}
	union := func(a, b string) {
		parent[find(a)] = find(b)
	}

	for _, p := range brandSynonymPairs {
		union(strings.ToLower(p[0]), strings.ToLower(p[1]))
	}
	for _, p := range extraPairs {
		a := strings.ToLower(strings.TrimSpace(p[0]))
		b := strings.ToLower(strings.TrimSpace(p[1]))
		if a == "" || b == "" || a == b {
			continue
		}
		union(a, b)
	}

	classes := make(map[string][]string)
	for name := range parent {
		root := find(name)
		classes[root] = append(classes[root], name)
	}

	m := make(SynonymMap, len(parent))
	for _, members := range classes {
		for _, name := range members {
			set := make(map[string]struct{}, len(members)-1)
			for _, other := range members {
				if other != name {
					set[other] = struct{}{}
				}
			}
			m[name] = set
		}
	}
	return m
}

var (
	defaultSynonyms     SynonymMap
	defaultSynonymsOnce sync.Once
)

// DefaultSynonyms returns the process-wide synonym map built from the
// declared pair list. Built once, read-only afterwards.
func DefaultSynonyms() SynonymMap {
	defaultSynonymsOnce.Do(func() {
		defaultSynonyms = BuildSynonymMap()
	})
	return defaultSynonyms
}

// CanonicalizeBrand converts a free-text brand name to its display
// form: each word capitalized, single spaces, no surrounding
// whitespace. "john deere" becomes "John Deere".
func CanonicalizeBrand(raw string) string {
	words := strings.Fields(raw)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
