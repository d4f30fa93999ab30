package qa

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/november7co/memberqa/internal/core"
)

const maxSnippetLen = 280

var (
	numberRE = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)

	// "to/in/at <Capitalized phrase>" — destinations and locations.
	locationRE = regexp.MustCompile(`\b(?:to|in|at)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`)

	// Absolute dates: ISO, slash/dash numeric, month name + day.
	absoluteDateRE = regexp.MustCompile(`(?i)\b(` +
		`\d{4}-\d{2}-\d{2}` +
		`|` +
		`\d{1,2}[/-]\d{1,2}(?:[/-]\d{2,4})?` +
		`|` +
		`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{1,2}(?:,\s*\d{2,4})?` +
		`)\b`)

	relativeDateRE = regexp.MustCompile(`(?i)\b(next|this|coming)\s+` +
		`(week|month|year|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	monthOnlyRE = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\b`)

	favoriteTailRE = regexp.MustCompile(`(?i)(?:favorite|favourite)\s+([^.!?]+)`)
)

// Extract tries to turn one ranked context into a short answer for the
// given question kind. ok is false when this context holds no extractable
// value; for fact-like kinds the orchestrator treats an all-false top-k as
// a reason to abstain. Each call sees exactly one context — there is no
// aggregation across contexts at this layer.
func Extract(question string, kind core.QuestionKind, context string) (answer string, ok bool) {
	ctx := strings.TrimSpace(context)

	switch kind {
	case core.KindNumeric:
		return extractNumeric(ctx)
	case core.KindWhen:
		return extractWhen(question, ctx)
	case core.KindWhere:
		return extractWhere(ctx)
	case core.KindFavorite:
		return extractFavorite(ctx)
	default:
		return extractSnippet(ctx)
	}
}

// extractNumeric pulls the first numeric literal out of the first sentence
// that mentions a countable-fact noun. A numeric question with no number
// anywhere is a hard failure, never a free-text fallback.
func extractNumeric(ctx string) (string, bool) {
	for _, sentence := range splitSentences(ctx) {
		if !containsAny(strings.ToLower(sentence), factKeywords) {
			continue
		}
		if num := numberRE.FindString(sentence); num != "" {
			return num, true
		}
	}
	return "", false
}

// extractWhen looks for a date in the context, most specific form first.
// When the question names a destination ("trip to London"), contexts that
// never mention it are rejected so we do not return some other trip's date.
func extractWhen(question, ctx string) (string, bool) {
	if dest := destinationOf(question); dest != "" {
		if !strings.Contains(strings.ToLower(ctx), strings.ToLower(dest)) {
			return "", false
		}
	}

	if m := absoluteDateRE.FindString(ctx); m != "" {
		return m, true
	}
	if m := relativeDateRE.FindString(ctx); m != "" {
		return m, true
	}
	if m := monthOnlyRE.FindString(ctx); m != "" {
		return m, true
	}
	return "", false
}

func extractWhere(ctx string) (string, bool) {
	if m := locationRE.FindStringSubmatch(ctx); m != nil {
		return m[1], true
	}
	return "", false
}

// extractFavorite requires preference language in the context; without it
// the context is not about preferences at all. Given that, it prefers the
// phrase following "favorite"/"favourite" up to the sentence boundary, and
// otherwise falls back to the first sentence.
func extractFavorite(ctx string) (string, bool) {
	if !containsAny(strings.ToLower(ctx), preferenceKeywords) {
		return "", false
	}

	if m := favoriteTailRE.FindStringSubmatch(ctx); m != nil {
		return strings.Trim(m[1], " ."), true
	}

	first := ctx
	if i := strings.IndexAny(ctx, ".!?"); i >= 0 {
		first = ctx[:i]
	}
	first = strings.TrimSpace(first)
	if first == "" {
		return "", false
	}
	return first, true
}

// extractSnippet handles open-ended questions: the context itself is the
// answer, truncated with an ellipsis marker when it runs long.
func extractSnippet(ctx string) (string, bool) {
	if ctx == "" {
		return "", false
	}
	runes := []rune(ctx)
	if len(runes) > maxSnippetLen {
		return string(runes[:maxSnippetLen-3]) + "...", true
	}
	return ctx, true
}

// destinationOf pulls a destination like "London" or "Dubai" out of a
// question phrase such as "trip to London".
func destinationOf(question string) string {
	if m := locationRE.FindStringSubmatch(question); m != nil {
		return m[1]
	}
	return ""
}

// splitSentences breaks text at sentence-ending punctuation followed by
// whitespace. Punctuation stays with its sentence, and decimals like "3.5"
// are not split.
func splitSentences(s string) []string {
	var out []string
	runes := []rune(s)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			if frag := strings.TrimSpace(string(runes[start : i+1])); frag != "" {
				out = append(out, frag)
			}
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
			start = i + 1
		}
	}
	if start < len(runes) {
		if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
			out = append(out, tail)
		}
	}
	return out
}
