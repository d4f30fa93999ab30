package core

import "context"

// MessageSource fetches the full member message set. Implementations are
// expected to normalize records before returning them.
type MessageSource interface {
	Fetch(ctx context.Context) ([]Message, error)
}

// Ranker orders documents by similarity to a query, best first, returning
// at most k entries. Implementations must be deterministic: equal scores
// keep original document order.
type Ranker interface {
	Rank(query string, docs []string, k int) []RankedDoc
}

// NameMatcher scopes questions to members. CandidateNames extracts
// proper-noun chunks from the question; Matches decides whether a member
// name is the one the question is about.
type NameMatcher interface {
	CandidateNames(question string) []string
	Matches(memberName, question string, candidates []string) bool
}
