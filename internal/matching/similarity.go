package matching

import "strings"

// Similarity tiers. The ladder is deliberately coarse: exact > containment
// > domain synonym > partial word overlap > none. A discrete ladder keeps
// scoring deterministic and auditable where a continuous edit-distance
// metric would only add false precision.
const (
	scoreExact       = 1.0
	scoreContainment = 0.85
	scoreSynonym     = 0.75
	overlapFactor    = 0.5
)

// Similarity computes a 0.0-1.0 similarity between two normalized skill
// strings. The first matching rule wins; later rules are never reached
// once an earlier one fires.
func Similarity(a, b string) float64 {
	if a == b {
		return scoreExact
	}
	// The empty string would count as a substring of everything below, so
	// a single degenerate side scores zero here.
	if a == "" || b == "" {
		return 0
	}
	if isContainment(a, b) {
		return scoreContainment
	}
	if sameSynonymGroup(a, b) {
		return scoreSynonym
	}
	return wordOverlap(a, b)
}

// isContainment reports whether one string contains the other. A
// single-word input is additionally checked against the individual tokens
// of the other string, so "reactjs" still matches "react developer".
func isContainment(a, b string) bool {
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	if !strings.Contains(a, " ") && tokenContains(b, a) {
		return true
	}
	if !strings.Contains(b, " ") && tokenContains(a, b) {
		return true
	}
	return false
}

// tokenContains reports whether any whitespace token of s contains, or is
// contained by, the single-word term.
func tokenContains(s, term string) bool {
	for _, tok := range strings.Fields(s) {
		if strings.Contains(tok, term) || strings.Contains(term, tok) {
			return true
		}
	}
	return false
}

// wordOverlap scores the fallback tier: tokens longer than two characters
// from the first string that substring-match (either direction) a token of
// the second, normalized by the larger token count.
func wordOverlap(a, b string) float64 {
	tokensA := significantTokens(a)
	tokensB := significantTokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	overlap := 0
	for _, ta := range tokensA {
		for _, tb := range tokensB {
			if strings.Contains(ta, tb) || strings.Contains(tb, ta) {
				overlap++
				break
			}
		}
	}
	if overlap == 0 {
		return 0
	}

	maxTokens := len(tokensA)
	if len(tokensB) > maxTokens {
		maxTokens = len(tokensB)
	}
	return overlapFactor * float64(overlap) / float64(maxTokens)
}

// significantTokens splits on whitespace and keeps tokens longer than two
// characters.
func significantTokens(s string) []string {
	var tokens []string
	for _, tok := range strings.Fields(s) {
		if len(tok) > 2 {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// matchesTerm treats equality and containment in either direction as
// membership of a lookup-table term.
func matchesTerm(s, term string) bool {
	return s == term || strings.Contains(s, term) || strings.Contains(term, s)
}
