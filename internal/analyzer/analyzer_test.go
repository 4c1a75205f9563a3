package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DeyYed/DeyFinder/internal/llm"
)

type fakeAI struct {
	out    string
	err    error
	prompt string
}

func (f *fakeAI) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.out, f.err
}

func TestAnalyze_CoercesMissingFields(t *testing.T) {
	ai := &fakeAI{out: `Here is the analysis: {"summary":"Solid backend profile.","keywords":["Go","SQL"]}`}
	got, err := New(ai).Analyze(context.Background(), "resume text", "")
	if err != nil {
		t.Fatalf("Analyze returned unexpected error: %v", err)
	}
	if got.Summary != "Solid backend profile." {
		t.Errorf("summary = %q", got.Summary)
	}
	if len(got.Keywords) != 2 {
		t.Errorf("keywords = %v, want 2 entries", got.Keywords)
	}
	if got.Strengths == nil || got.NextSteps == nil || got.JobQueries == nil {
		t.Error("missing array fields must coerce to empty slices, not nil")
	}
	if len(got.Strengths)+len(got.NextSteps)+len(got.JobQueries) != 0 {
		t.Errorf("missing fields should be empty, got %+v", got)
	}
}

func TestAnalyze_CoercesJobQueries(t *testing.T) {
	ai := &fakeAI{out: `{"jobQueries":[
		{"title":"Backend Engineer","query":"backend engineer go"},
		{"title":"","query":"dropped"},
		{"title":"dropped too"},
		"not even an object"
	]}`}
	got, err := New(ai).Analyze(context.Background(), "resume text", "")
	if err != nil {
		t.Fatalf("Analyze returned unexpected error: %v", err)
	}
	if len(got.JobQueries) != 1 {
		t.Fatalf("jobQueries = %+v, want exactly the one complete entry", got.JobQueries)
	}
	if got.JobQueries[0].Query != "backend engineer go" {
		t.Errorf("query = %q", got.JobQueries[0].Query)
	}
}

func TestAnalyze_PropagatesAIError(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	_, err := New(&fakeAI{err: wantErr}).Analyze(context.Background(), "resume", "")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected AI error to propagate, got %v", err)
	}
}

func TestAnalyze_PropagatesMalformedResponse(t *testing.T) {
	_, err := New(&fakeAI{out: "no json anywhere"}).Analyze(context.Background(), "resume", "")
	if !errors.Is(err, llm.ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestAnalyze_NilClient(t *testing.T) {
	_, err := New(nil).Analyze(context.Background(), "resume", "")
	if !errors.Is(err, llm.ErrModelUnavailable) {
		t.Errorf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestAnalyze_EmbedsCustomPrompt(t *testing.T) {
	ai := &fakeAI{out: `{"summary":"ok"}`}
	if _, err := New(ai).Analyze(context.Background(), "resume text", "focus on fintech roles"); err != nil {
		t.Fatalf("Analyze returned unexpected error: %v", err)
	}
	if !strings.Contains(ai.prompt, "focus on fintech roles") {
		t.Error("custom guidance missing from prompt")
	}
	if !strings.Contains(ai.prompt, "resume text") {
		t.Error("resume text missing from prompt")
	}
}

func TestTruncateResume(t *testing.T) {
	long := strings.Repeat("x", maxResumeChars+500)
	got := truncateResume(long)
	if !strings.HasSuffix(got, "...[truncated]") {
		t.Error("truncated resume missing the ellipsis marker")
	}
	if len(got) >= len(long) {
		t.Error("resume was not truncated")
	}

	short := "short resume"
	if truncateResume(short) != short {
		t.Error("short resume must pass through unchanged")
	}
}
