package qa

import (
	"context"
	"errors"
	"testing"

	"github.com/november7co/memberqa/internal/core"
	"github.com/november7co/memberqa/internal/providers/rank"
)

type stubSource struct {
	messages []core.Message
	err      error
}

func (s *stubSource) Fetch(ctx context.Context) ([]core.Message, error) {
	return s.messages, s.err
}

func newTestPipeline(messages []core.Message) *Pipeline {
	return NewPipeline(
		&stubSource{messages: messages},
		rank.NewTFIDF(),
		NewCapitalizedNameMatcher(),
		5,
	)
}

var testMessages = []core.Message{
	{MemberName: "Vikram Desai", Text: "I just bought a second car, so now we have 2 cars."},
	{MemberName: "Vikram Desai", Text: "Busy week at work ahead."},
	{MemberName: "Layla Kawaguchi", Text: "So excited, we are traveling to Dubai next week!"},
	{MemberName: "Layla Kawaguchi", Text: "My favorite color is blue."},
	{MemberName: "Amira Haddad", Text: "The kids loved the park, all 3 of my children came along."},
}

func TestPipeline_NumericAnswer(t *testing.T) {
	p := newTestPipeline(testMessages)

	answer, err := p.Answer(context.Background(), "How many cars does Vikram Desai have?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "2" {
		t.Errorf("answer = %q, want %q", answer, "2")
	}
}

func TestPipeline_WhereAnswer(t *testing.T) {
	p := newTestPipeline(testMessages)

	answer, err := p.Answer(context.Background(), "Where is Layla Kawaguchi going?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Dubai" {
		t.Errorf("answer = %q, want %q", answer, "Dubai")
	}
}

func TestPipeline_FavoriteAnswer(t *testing.T) {
	p := newTestPipeline(testMessages)

	answer, err := p.Answer(context.Background(), "What is Layla Kawaguchi's favorite color?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "color is blue" {
		t.Errorf("answer = %q, want %q", answer, "color is blue")
	}
}

func TestPipeline_UnknownMemberFailsClosed(t *testing.T) {
	p := newTestPipeline(testMessages)

	answer, err := p.Answer(context.Background(), "How many cars does Zorblax have?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != core.AbstainAnswer {
		t.Errorf("answer = %q, want abstain", answer)
	}
}

func TestPipeline_FactKindWithoutEvidenceAbstains(t *testing.T) {
	messages := []core.Message{
		{MemberName: "Vikram Desai", Text: "Busy week at work ahead."},
		{MemberName: "Vikram Desai", Text: "Looking forward to the weekend."},
	}
	p := newTestPipeline(messages)

	answer, err := p.Answer(context.Background(), "How many cars does Vikram Desai have?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != core.AbstainAnswer {
		t.Errorf("answer = %q, want abstain", answer)
	}
}

func TestPipeline_OtherKindNeverAbstains(t *testing.T) {
	messages := []core.Message{
		{MemberName: "Vikram Desai", Text: "Busy week at work ahead."},
	}
	p := newTestPipeline(messages)

	answer, err := p.Answer(context.Background(), "tell me about work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer == core.AbstainAnswer {
		t.Error("open-ended question must not abstain")
	}
	if answer != "Busy week at work ahead." {
		t.Errorf("answer = %q", answer)
	}
}

func TestPipeline_NoCandidatesSearchesAllMembers(t *testing.T) {
	p := newTestPipeline(testMessages)

	// All lowercase: no candidate names, so the whole corpus is searched.
	answer, err := p.Answer(context.Background(), "how many children are there?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "3" {
		t.Errorf("answer = %q, want %q", answer, "3")
	}
}

func TestPipeline_UpstreamErrorPropagates(t *testing.T) {
	p := NewPipeline(
		&stubSource{err: core.ErrUpstream},
		rank.NewTFIDF(),
		NewCapitalizedNameMatcher(),
		5,
	)

	_, err := p.Answer(context.Background(), "How many cars?")
	if !errors.Is(err, core.ErrUpstream) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestPipeline_Idempotent(t *testing.T) {
	p := newTestPipeline(testMessages)

	first, err := p.Answer(context.Background(), "Where is Layla Kawaguchi going?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := p.Answer(context.Background(), "Where is Layla Kawaguchi going?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("answers differ between runs: %q vs %q", first, again)
		}
	}
}
