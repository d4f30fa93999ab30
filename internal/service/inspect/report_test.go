package inspect

import (
	"strings"
	"testing"
)

func item(name, text string, ts any) map[string]any {
	m := map[string]any{"member_name": name, "text": text}
	if ts != nil {
		m["timestamp"] = ts
	}
	return m
}

func TestBuild_Counts(t *testing.T) {
	items := []map[string]any{
		item("A", "hello", "2025-01-02"),
		item("B", "   ", nil),
		item("C", "world", "not-a-date"),
		item("D", "", float64(1700000000)),
	}

	r := Build(items)

	if r.TotalRaw != 4 {
		t.Errorf("TotalRaw = %d, want 4", r.TotalRaw)
	}
	if r.BlankTexts != 2 {
		t.Errorf("BlankTexts = %d, want 2", r.BlankTexts)
	}
	if r.BadTimestamps != 1 {
		t.Errorf("BadTimestamps = %d, want 1", r.BadTimestamps)
	}
}

func TestBuild_Duplicates(t *testing.T) {
	items := []map[string]any{
		item("A", "repeat me", nil),
		item("B", "repeat me", nil),
		item("C", "repeat me", nil),
		item("D", "unique", nil),
		item("E", "also twice", nil),
		item("F", "also twice", nil),
	}

	r := Build(items)

	if len(r.DuplicateBodies) != 2 {
		t.Fatalf("expected 2 duplicate groups, got %d", len(r.DuplicateBodies))
	}
	if r.DuplicateBodies[0].Text != "repeat me" || r.DuplicateBodies[0].Count != 3 {
		t.Errorf("top duplicate = %+v", r.DuplicateBodies[0])
	}
}

func TestBuild_ConflictingFacts(t *testing.T) {
	items := []map[string]any{
		item("Vikram", "I have 2 cars.", nil),
		item("Vikram", "Actually we own 3 cars now.", nil),
		item("Layla", "My 1 cat is lazy.", nil),
		item("Layla", "My 1 cat sleeps all day.", nil),
		item("Noor", "Nice weather today.", nil),
	}

	r := Build(items)

	if len(r.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d: %v", len(r.Conflicts), r.Conflicts)
	}
	if r.Conflicts[0].Member != "Vikram" {
		t.Errorf("conflict member = %q, want Vikram", r.Conflicts[0].Member)
	}
	if len(r.Conflicts[0].Values) != 2 {
		t.Errorf("conflict values = %v, want 2 entries", r.Conflicts[0].Values)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		ts   any
		ok   bool
	}{
		{"unix seconds", float64(1700000000), true},
		{"date only", "2025-01-02", true},
		{"date time T", "2025-01-02T10:30:00", true},
		{"date time space", "2025-01-02 10:30:00", true},
		{"rfc3339", "2025-01-02T10:30:00Z", true},
		{"garbage", "yesterday-ish", false},
		{"wrong type", []string{"x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := parseTimestamp(tt.ts); ok != tt.ok {
				t.Errorf("parseTimestamp(%v) ok = %v, want %v", tt.ts, ok, tt.ok)
			}
		})
	}
}

func TestRender(t *testing.T) {
	r := Build([]map[string]any{
		item("A", "hello", nil),
		item("A", "hello", nil),
	})

	out := r.Render()
	for _, want := range []string{"total raw messages", "2", "Duplicate message bodies"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}
}
