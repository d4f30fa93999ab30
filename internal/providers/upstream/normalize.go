package upstream

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inbucket/html2text"
	"github.com/november7co/memberqa/internal/core"
)

var textKeys = []string{"text", "message"}
var memberIDKeys = []string{"member_id", "user_id", "memberId"}
var memberNameKeys = []string{"member_name", "user_name", "memberName"}

// Normalize turns a raw upstream payload into the canonical message set.
// The payload may be a bare JSON array or an object wrapping one under
// "items". Entries whose text is empty after trimming are dropped; if
// nothing usable remains that is an upstream error, not an empty result.
func Normalize(payload []byte) ([]core.Message, error) {
	items, err := decodeItems(payload)
	if err != nil {
		return nil, err
	}

	messages := make([]core.Message, 0, len(items))
	for _, raw := range items {
		fields := map[string]any{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}

		text := strings.TrimSpace(coalesceString(fields, textKeys))
		text = stripMarkup(text)
		if text == "" {
			continue
		}

		messages = append(messages, core.Message{
			MemberID:   coalesceString(fields, memberIDKeys),
			MemberName: coalesceString(fields, memberNameKeys),
			Text:       text,
			Timestamp:  fields["timestamp"],
		})
	}

	if len(messages) == 0 {
		return nil, fmt.Errorf("%w: no usable message text in upstream payload", core.ErrUpstream)
	}
	return messages, nil
}

func decodeItems(payload []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err == nil {
		return items, nil
	}

	var wrapper struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(payload, &wrapper); err == nil && wrapper.Items != nil {
		return wrapper.Items, nil
	}

	return nil, fmt.Errorf("%w: unexpected upstream format: list expected", core.ErrUpstream)
}

// coalesceString returns the first present key, stringified. Upstream is
// loose about types, so numbers become their decimal form rather than
// being discarded.
func coalesceString(fields map[string]any, keys []string) string {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s
			}
		case float64:
			if s == float64(int64(s)) {
				return fmt.Sprintf("%d", int64(s))
			}
			return fmt.Sprintf("%v", s)
		case bool:
			return fmt.Sprintf("%v", s)
		}
	}
	return ""
}

// stripMarkup converts HTML-looking text bodies to plain text. Most
// upstream messages are already plain; the tag check keeps them untouched.
func stripMarkup(text string) string {
	if !strings.ContainsRune(text, '<') || !strings.ContainsRune(text, '>') {
		return text
	}
	plain, err := html2text.FromString(text, html2text.Options{OmitLinks: true})
	if err != nil {
		return text
	}
	return strings.TrimSpace(plain)
}
