package qa

import (
	"strings"

	"github.com/november7co/memberqa/internal/core"
)

var kindPhrases = []struct {
	kind    core.QuestionKind
	phrases []string
}{
	{core.KindNumeric, []string{"how many", "number of", "count of"}},
	{core.KindWhen, []string{"when", "what date", "what day"}},
	{core.KindWhere, []string{"where", "which city", "which country"}},
	{core.KindFavorite, []string{"favorite", "favourite", "what are", "list of"}},
}

// Classify maps a question to its kind. Rules are tested in a fixed
// precedence order, so "how many favorite..." is numeric, not favorite.
// The result is advisory context for filtering and the abstain policy;
// it never excludes messages by itself.
func Classify(question string) core.QuestionKind {
	ql := strings.ToLower(question)
	for _, rule := range kindPhrases {
		if containsAny(ql, rule.phrases) {
			return rule.kind
		}
	}
	return core.KindOther
}
