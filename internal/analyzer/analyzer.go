package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/DeyYed/DeyFinder/internal/llm"
	"github.com/DeyYed/DeyFinder/internal/models"
)

// maxResumeChars caps the resume text embedded in the prompt. This is a
// context-window safeguard, not a content-quality decision.
const maxResumeChars = 8000

// Analyzer turns raw resume text into a typed AnalysisResult. Unlike the
// job engine it has no fallback: an AI or parse failure propagates, since
// there is no deterministic answer to "what does this resume say".
type Analyzer struct {
	ai llm.TextGenerator
}

func New(ai llm.TextGenerator) *Analyzer {
	return &Analyzer{ai: ai}
}

func (a *Analyzer) Analyze(ctx context.Context, resumeText, customPrompt string) (models.AnalysisResult, error) {
	if a.ai == nil {
		return models.AnalysisResult{}, llm.ErrModelUnavailable
	}

	resp, err := a.ai.Generate(ctx, buildAnalysisPrompt(truncateResume(resumeText), customPrompt))
	if err != nil {
		return models.AnalysisResult{}, err
	}
	obj, err := llm.ExtractJSONObject(resp)
	if err != nil {
		return models.AnalysisResult{}, err
	}
	return coerceAnalysis(obj), nil
}

func truncateResume(text string) string {
	if len(text) <= maxResumeChars {
		return text
	}
	return text[:maxResumeChars] + "\n...[truncated]"
}

func buildAnalysisPrompt(resumeText, customPrompt string) string {
	var sb strings.Builder
	sb.WriteString(`You are an expert career coach and resume analyst. Analyze the resume below.

### INSTRUCTIONS:
1. **Summarize** the candidate's profile in 2-3 sentences.
2. **Identify** concrete skills, strengths, and next steps.
3. **Propose** job searches the candidate should run today.
4. **Format** the output as valid JSON only. Do not wrap it in markdown code blocks.

### OUTPUT SCHEMA:
{
    "summary": "2-3 sentence profile summary",
    "keywords": ["skills", "and", "technologies", "from", "the", "resume"],
    "strengths": ["what makes this candidate stand out"],
    "nextSteps": ["specific, actionable career advice"],
    "jobQueries": [{"title": "Role name", "query": "search phrase for job boards"}]
}

### CONSTRAINT:
Base everything on the resume text. Do not hallucinate experience the candidate does not have.
`)
	if guidance := strings.TrimSpace(customPrompt); guidance != "" {
		fmt.Fprintf(&sb, "\n### ADDITIONAL GUIDANCE FROM THE CANDIDATE:\n%s\n", guidance)
	}
	fmt.Fprintf(&sb, "\n### RESUME TEXT:\n%s\n", resumeText)
	return sb.String()
}

// coerceAnalysis applies the named defaulting rules field by field: a
// missing or wrong-typed optional field becomes an empty container, never an
// error.
func coerceAnalysis(obj map[string]any) models.AnalysisResult {
	return models.AnalysisResult{
		Summary:    llm.StringField(obj, "summary", ""),
		Keywords:   llm.StringList(obj, "keywords"),
		Strengths:  llm.StringList(obj, "strengths"),
		NextSteps:  llm.StringList(obj, "nextSteps"),
		JobQueries: coerceJobQueries(obj),
	}
}

func coerceJobQueries(obj map[string]any) []models.JobQuery {
	out := []models.JobQuery{}
	for _, item := range llm.ObjectList(obj, "jobQueries") {
		q := models.JobQuery{
			Title: llm.StringField(item, "title", ""),
			Query: llm.StringField(item, "query", ""),
		}
		if q.Title == "" || q.Query == "" {
			continue
		}
		out = append(out, q)
	}
	return out
}
