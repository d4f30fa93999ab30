package qa

import (
	"strings"

	"github.com/november7co/memberqa/internal/core"
)

// wantsCountableFact reports whether the question is after a countable
// fact, either by classification or by mentioning one of the fact nouns.
func wantsCountableFact(kind core.QuestionKind, question string) bool {
	if kind == core.KindNumeric {
		return true
	}
	return containsAny(strings.ToLower(question), factKeywords)
}

// filterCountable narrows messages to those mentioning a countable-fact
// noun. An empty narrowing is discarded by the caller: this filter is a
// ranking aid, never a reason to abstain on its own.
func filterCountable(messages []core.Message) []core.Message {
	var out []core.Message
	for _, m := range messages {
		if containsAny(strings.ToLower(m.Text), factKeywords) {
			out = append(out, m)
		}
	}
	return out
}
