package rank

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/november7co/memberqa/internal/core"
)

// TFIDF ranks documents by cosine similarity between smoothed TF-IDF
// vectors. It implements core.Ranker. The vector space is rebuilt on every
// call; the corpus is request-scoped so there is nothing worth caching.
type TFIDF struct{}

func NewTFIDF() *TFIDF {
	return &TFIDF{}
}

// Rank scores docs against query, highest similarity first, and returns at
// most k entries. Equal scores keep original document order (stable sort),
// so repeated calls over the same corpus are deterministic.
func (t *TFIDF) Rank(query string, docs []string, k int) []core.RankedDoc {
	if len(docs) == 0 || k <= 0 {
		return nil
	}

	tokenized := make([][]string, len(docs))
	df := map[string]int{}
	for i, doc := range docs {
		tokens := tokenize(doc)
		tokenized[i] = tokens
		seen := map[string]bool{}
		for _, tok := range tokens {
			if !seen[tok] {
				df[tok]++
				seen[tok] = true
			}
		}
	}

	// Smoothed idf, as in the usual TF-IDF formulation: terms present in
	// every document still carry weight, which matters for tiny corpora.
	total := len(docs)
	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		idf[term] = math.Log(float64(1+total)/float64(1+freq)) + 1
	}

	queryVec := vectorize(tokenize(query), idf)
	if len(queryVec) == 0 {
		// No query term survives tokenization; everything ties at zero
		// and the original order wins.
		out := make([]core.RankedDoc, 0, k)
		for i := 0; i < len(docs) && i < k; i++ {
			out = append(out, core.RankedDoc{Index: i})
		}
		return out
	}

	scored := make([]core.RankedDoc, len(docs))
	for i, tokens := range tokenized {
		scored[i] = core.RankedDoc{
			Index: i,
			Score: cosine(queryVec, vectorize(tokens, idf)),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

func vectorize(tokens []string, idf map[string]float64) map[string]float64 {
	if len(tokens) == 0 {
		return nil
	}
	tf := map[string]int{}
	for _, tok := range tokens {
		tf[tok]++
	}
	vec := make(map[string]float64, len(tf))
	for term, freq := range tf {
		w, ok := idf[term]
		if !ok {
			// Query-only terms have no document axis to project onto.
			continue
		}
		vec[term] = float64(freq) * w
	}
	return vec
}

// cosine accumulates in sorted term order: map iteration order would make
// scores vary at the last bit between runs, and ties must not flip.
func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for _, term := range sortedTerms(a) {
		wa := a[term]
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, term := range sortedTerms(b) {
		wb := b[term]
		normB += wb * wb
	}
	if dot == 0 || normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func sortedTerms(vec map[string]float64) []string {
	terms := make([]string, 0, len(vec))
	for term := range vec {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" {
			continue
		}
		if stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
