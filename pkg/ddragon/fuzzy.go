package ddragon

import (
	"sort"
	"strings"
	"unicode"
)

// Name matching for champions and locales. Scores combine token overlap with
// edit distance on the normalized strings, so "lee sin" and "LeeSin" match
// and small typos still resolve.

// bestMatch returns the candidate with the highest similarity to search.
// Candidates are ranked deterministically: ties break on lexical order.
func bestMatch(search string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	ordered := append([]string(nil), candidates...)
	sort.Strings(ordered)

	best := ""
	bestScore := -1.0
	for _, candidate := range ordered {
		if score := similarity(search, candidate); score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best, true
}

// similarity scores two names in [0, 1], ignoring case, token order and
// non-alphanumeric characters.
func similarity(a, b string) float64 {
	at, bt := tokens(a), tokens(b)
	if len(at) == 0 || len(bt) == 0 {
		return 0
	}

	overlap := tokenOverlap(at, bt)
	edit := editScore(strings.Join(at, ""), strings.Join(bt, ""))
	if overlap > edit {
		return overlap
	}
	return edit
}

func tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func tokenOverlap(a, b []string) float64 {
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}

	union := len(set)
	shared := 0
	for _, t := range b {
		if _, ok := set[t]; ok {
			shared++
			delete(set, t)
			continue
		}
		union++
	}
	return float64(shared) / float64(union)
}

// editScore converts Levenshtein distance to a similarity in [0, 1].
func editScore(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
