package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/november7co/memberqa/internal/core"
	"github.com/november7co/memberqa/pkg/log"
)

const defaultTopK = 5

// Pipeline answers one question per call: fetch and normalize the message
// set, scope it to the member(s) the question names, optionally narrow to
// countable-fact messages, rank by similarity, and extract from the top-k
// contexts. It holds no state between calls, so concurrent questions are
// fully isolated.
type Pipeline struct {
	source  core.MessageSource
	ranker  core.Ranker
	matcher core.NameMatcher
	topK    int
}

func NewPipeline(source core.MessageSource, ranker core.Ranker, matcher core.NameMatcher, topK int) *Pipeline {
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Pipeline{
		source:  source,
		ranker:  ranker,
		matcher: matcher,
		topK:    topK,
	}
}

// Answer returns the final answer string for a question. A non-nil error
// means the upstream source failed; every other condition, including "we
// genuinely don't know", is absorbed into the returned answer.
func (p *Pipeline) Answer(ctx context.Context, question string) (string, error) {
	logger := log.FromCtx(ctx)

	messages, err := p.source.Fetch(ctx)
	if err != nil {
		return "", err
	}

	kind := Classify(question)
	logger.Debug().
		Str("kind", kind.String()).
		Int("messages", len(messages)).
		Msg("classified question")

	// Scope to the member(s) the question names. A named member we cannot
	// match is grounds to abstain: answering from someone else's messages
	// is worse than admitting ignorance.
	candidates := p.matcher.CandidateNames(question)
	var memberScoped []core.Message
	for _, m := range messages {
		if p.matcher.Matches(m.MemberName, question, candidates) {
			memberScoped = append(memberScoped, m)
		}
	}
	if len(candidates) > 0 && len(memberScoped) == 0 {
		logger.Debug().Strs("candidates", candidates).Msg("question names an unknown member")
		return core.AbstainAnswer, nil
	}

	searchSpace := messages
	if len(memberScoped) > 0 {
		searchSpace = memberScoped
	}

	// Countable-fact narrowing is only a ranking aid: an empty narrowing
	// falls back to the member-scoped space instead of abstaining.
	if wantsCountableFact(kind, question) {
		if narrowed := filterCountable(searchSpace); len(narrowed) > 0 {
			searchSpace = narrowed
		}
	}
	if len(searchSpace) == 0 {
		return core.AbstainAnswer, nil
	}

	ranked := p.ranker.Rank(question, buildDocs(searchSpace), p.topK)
	logger.Debug().Int("space", len(searchSpace)).Int("ranked", len(ranked)).Msg("ranked search space")

	var answers []string
	for _, r := range ranked {
		if answer, ok := Extract(question, kind, searchSpace[r.Index].Text); ok {
			answers = append(answers, answer)
		}
	}

	if len(answers) > 0 {
		return answers[0], nil
	}
	if kind.FactLike() {
		// Clearly fact-seeking, but nothing extractable in the top
		// contexts: be honest instead of echoing a random snippet.
		return core.AbstainAnswer, nil
	}
	if len(ranked) == 0 {
		return core.AbstainAnswer, nil
	}
	return searchSpace[ranked[0].Index].Text, nil
}

// buildDocs renders one ranking document per message, prefixed with the
// member name so questions that mention a member rank that member's
// messages higher.
func buildDocs(messages []core.Message) []string {
	docs := make([]string, len(messages))
	for i, m := range messages {
		docs[i] = strings.TrimSpace(fmt.Sprintf("%s: %s", m.MemberName, m.Text))
	}
	return docs
}
