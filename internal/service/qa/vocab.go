package qa

import "strings"

// factKeywords mark countable facts worth narrowing the search space to.
var factKeywords = []string{
	"car", "cars",
	"child", "children", "kid", "kids",
	"pet", "pets",
	"dog", "dogs",
	"cat", "cats",
}

// preferenceKeywords mark contexts that actually talk about preferences.
var preferenceKeywords = []string{
	"favorite", "favourite",
	"love", "loves",
	"like", "likes",
	"prefer", "prefers",
	"preference", "preferences",
}

// containsAny reports whether any needle occurs in haystack. Matching is
// plain substring: "cars" in "carsharing" counts, same as the upstream
// data this vocabulary was tuned on.
func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
