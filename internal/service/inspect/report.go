// Package inspect builds an offline data-quality report over the upstream
// message collection: blank texts, timestamps that do not parse, duplicate
// message bodies, and members whose countable facts disagree with each
// other. It never touches the serving path.
package inspect

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

var digitRunRE = regexp.MustCompile(`\b\d+\b`)

// factTokens mirror the countable-fact vocabulary of the QA pipeline; a
// member whose fact-bearing messages carry different number sets probably
// has stale or contradictory data.
var factTokens = []string{"car", "cars", "children", "kids", "pets", "dogs", "cats"}

type Duplicate struct {
	Text  string
	Count int
}

type Conflict struct {
	Member string
	Values []string
}

type Report struct {
	TotalRaw        int
	BlankTexts      int
	BadTimestamps   int
	DuplicateBodies []Duplicate // descending by count
	Conflicts       []Conflict
}

type entry struct {
	memberName string
	text       string
	timestamp  any
}

// Build computes the report from raw upstream items. It works on the raw
// shape rather than normalized messages because the whole point is to
// count what normalization would throw away.
func Build(items []map[string]any) *Report {
	cleaned := make([]entry, 0, len(items))
	for _, item := range items {
		cleaned = append(cleaned, entry{
			memberName: firstString(item, "member_name", "user_name", "memberName"),
			text:       strings.TrimSpace(firstString(item, "text", "message")),
			timestamp:  item["timestamp"],
		})
	}

	r := &Report{TotalRaw: len(items)}

	for _, e := range cleaned {
		if e.text == "" {
			r.BlankTexts++
		}
		if e.timestamp != nil {
			if _, ok := parseTimestamp(e.timestamp); !ok {
				r.BadTimestamps++
			}
		}
	}

	counts := map[string]int{}
	for _, e := range cleaned {
		if e.text != "" {
			counts[e.text]++
		}
	}
	for text, count := range counts {
		if count > 1 {
			r.DuplicateBodies = append(r.DuplicateBodies, Duplicate{Text: text, Count: count})
		}
	}
	sort.Slice(r.DuplicateBodies, func(i, j int) bool {
		if r.DuplicateBodies[i].Count != r.DuplicateBodies[j].Count {
			return r.DuplicateBodies[i].Count > r.DuplicateBodies[j].Count
		}
		return r.DuplicateBodies[i].Text < r.DuplicateBodies[j].Text
	})

	r.Conflicts = findConflicts(cleaned)
	return r
}

// findConflicts groups messages by member and collects the distinct number
// sequences appearing in fact-bearing texts. More than one distinct
// sequence per member is a potential conflict.
func findConflicts(entries []entry) []Conflict {
	byMember := map[string][]entry{}
	for _, e := range entries {
		byMember[e.memberName] = append(byMember[e.memberName], e)
	}

	var conflicts []Conflict
	for member, msgs := range byMember {
		values := map[string]bool{}
		for _, m := range msgs {
			text := strings.ToLower(m.text)
			mentionsFact := false
			for _, tok := range factTokens {
				if strings.Contains(text, tok) {
					mentionsFact = true
					break
				}
			}
			if !mentionsFact {
				continue
			}
			if nums := digitRunRE.FindAllString(text, -1); len(nums) > 0 {
				values[strings.Join(nums, " ")] = true
			}
		}
		if len(values) > 1 {
			vals := make([]string, 0, len(values))
			for v := range values {
				vals = append(vals, v)
			}
			sort.Strings(vals)
			conflicts = append(conflicts, Conflict{Member: member, Values: vals})
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Member < conflicts[j].Member
	})
	return conflicts
}

// parseTimestamp accepts unix seconds and a few common layouts. Anything
// else counts as unparseable.
func parseTimestamp(ts any) (time.Time, bool) {
	switch v := ts.(type) {
	case float64:
		return time.Unix(int64(v), 0), true
	case int64:
		return time.Unix(v, 0), true
	case string:
		for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", "2006-01-02 15:04:05", time.RFC3339} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func firstString(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := item[key]; ok && v != nil {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%v", f)
			}
		}
	}
	return ""
}
