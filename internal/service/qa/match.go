package qa

import (
	"regexp"
	"strings"
)

var (
	nonLetterRE = regexp.MustCompile(`[^a-z]+`)
	// Maximal runs of capitalized words: "Michael", "Vikram Desai".
	candidateNameRE = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
)

// CapitalizedNameMatcher resolves which member a question is about by
// comparing normalized forms of capitalized chunks of the question against
// member names. It implements core.NameMatcher; a gazetteer-backed matcher
// could replace it without the pipeline noticing.
type CapitalizedNameMatcher struct{}

func NewCapitalizedNameMatcher() CapitalizedNameMatcher {
	return CapitalizedNameMatcher{}
}

// normalizeForMatch lowercases and collapses every run of non-letters to a
// single space, so "Amira's" and "Amira" compare equal.
func normalizeForMatch(s string) string {
	return strings.TrimSpace(nonLetterRE.ReplaceAllString(strings.ToLower(s), " "))
}

// CandidateNames extracts capitalized word sequences from the original
// (unnormalized) question, deduplicated case-insensitively in first-seen
// order.
func (CapitalizedNameMatcher) CandidateNames(question string) []string {
	parts := candidateNameRE.FindAllString(question, -1)
	seen := map[string]bool{}
	var out []string
	for _, p := range parts {
		key := strings.ToLower(p)
		if !seen[key] {
			seen[key] = true
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a member name is the one the question concerns:
// either the normalized member name occurs inside the normalized question,
// or some candidate name occurs inside the normalized member name.
// Messages without a usable member name never match.
func (CapitalizedNameMatcher) Matches(memberName, question string, candidates []string) bool {
	normName := normalizeForMatch(memberName)
	if normName == "" {
		return false
	}

	if strings.Contains(normalizeForMatch(question), normName) {
		return true
	}

	for _, c := range candidates {
		if norm := normalizeForMatch(c); norm != "" && strings.Contains(normName, norm) {
			return true
		}
	}
	return false
}
