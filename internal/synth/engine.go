package synth

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/DeyYed/DeyFinder/internal/llm"
	"github.com/DeyYed/DeyFinder/internal/models"
)

// Engine turns job queries into a validated posting list. It asks the AI for
// candidate postings when a client is wired in and falls back to a
// deterministic catalogue otherwise; its output is always a usable list and
// it never surfaces an AI failure to the caller.
type Engine struct {
	ai        llm.TextGenerator
	providers Registry
	now       func() time.Time
}

// NewEngine accepts a nil generator; that simply pins the engine to the
// fallback path.
func NewEngine(ai llm.TextGenerator) *Engine {
	return &Engine{ai: ai, providers: DefaultProviders(), now: time.Now}
}

// SynthesizeJobs is the engine's whole contract: queries plus optional
// location/remote preferences in, deduplicated validated postings out.
func (e *Engine) SynthesizeJobs(ctx context.Context, queries []models.JobQuery, location string, remote bool) []models.JobPosting {
	if len(queries) == 0 {
		return []models.JobPosting{}
	}
	if e.ai == nil {
		return e.fallbackPostings(queries, location, remote)
	}

	suggestions, err := e.requestSuggestions(ctx, queries, location, remote)
	if err != nil {
		log.Printf("job synthesis: AI path failed (%v), using fallback catalogue", err)
		return e.fallbackPostings(queries, location, remote)
	}

	postings := make([]models.JobPosting, 0, len(suggestions))
	for i, raw := range suggestions {
		p := e.assemblePosting(raw, i, queries, location, remote)
		if p.URL == "" {
			continue
		}
		postings = append(postings, p)
	}
	if len(postings) == 0 {
		log.Printf("job synthesis: AI returned no usable postings, using fallback catalogue")
		return e.fallbackPostings(queries, location, remote)
	}
	return dedupeByURL(postings)
}

func (e *Engine) requestSuggestions(ctx context.Context, queries []models.JobQuery, location string, remote bool) ([]map[string]any, error) {
	resp, err := e.ai.Generate(ctx, buildJobsPrompt(queries, location, remote))
	if err != nil {
		return nil, err
	}
	obj, err := llm.ExtractJSONObject(resp)
	if err != nil {
		return nil, err
	}
	return llm.ObjectList(obj, "jobs"), nil
}

// targetPostingCount scales the requested batch with the query count,
// clamped to a range the UI paginates comfortably.
func targetPostingCount(queryCount int) int {
	n := queryCount * 3
	if n < 12 {
		n = 12
	}
	if n > 20 {
		n = 20
	}
	return n
}

func buildJobsPrompt(queries []models.JobQuery, location string, remote bool) string {
	var sb strings.Builder
	sb.WriteString("You are a job market researcher. Suggest realistic current job openings for the searches below.\n\n")
	sb.WriteString("### SEARCHES:\n")
	for i, q := range queries {
		fmt.Fprintf(&sb, "%d. %s — search phrase: %s\n", i+1, q.Title, q.Query)
	}
	sb.WriteString("\n### PREFERENCES:\n")
	if location != "" {
		fmt.Fprintf(&sb, "- Preferred location: %s\n", location)
	}
	if remote {
		sb.WriteString("- Remote roles preferred\n")
	}
	fmt.Fprintf(&sb, "\n### INSTRUCTIONS:\nReturn %d postings as strictly minified JSON, no markdown fences, no commentary, matching exactly:\n", targetPostingCount(len(queries)))
	sb.WriteString(`{"jobs":[{"id":"string","title":"string","company":"real company name, never a placeholder","location":"string","salary":"string or empty","description":"1-2 sentences","postedAt":"string","link":"https URL to the posting or a job board search for it"}]}`)
	sb.WriteString("\nSpread postings across LinkedIn, Indeed, Glassdoor, JobStreet, Prosple and Jora. Do not invent employer-site URLs you are unsure of.")
	return sb.String()
}

func (e *Engine) assemblePosting(raw map[string]any, i int, queries []models.JobQuery, location string, remote bool) models.JobPosting {
	fq := queries[i%len(queries)]

	loc := llm.StringField(raw, "location", "")
	if loc == "" {
		if remote {
			loc = "Remote"
		} else {
			loc = location
		}
	}

	rawLink := llm.StringField(raw, "link", llm.StringField(raw, "url", ""))
	company := NormalizeCompanyName(llm.StringField(raw, "company", ""), rawLink, fq, i)
	link := e.ensureCompanyLink(rawLink, company, fq, location, remote, i)

	return models.JobPosting{
		ID:          llm.StringField(raw, "id", fmt.Sprintf("ai-%d-%d", e.now().UnixMilli(), i)),
		Title:       llm.StringField(raw, "title", fq.Title),
		Company:     company,
		Location:    loc,
		Salary:      llm.StringField(raw, "salary", ""),
		Description: llm.StringField(raw, "description", fmt.Sprintf("Opportunity surfaced for your %q search.", fq.Title)),
		PostedAt:    llm.StringField(raw, "postedAt", ""),
		URL:         link.URL,
		Source:      link.Source,
	}
}

type resolvedLink struct {
	URL    string
	Source string
}

// ensureCompanyLink validates or repairs an AI-suggested link. Known-board
// links that do not mention the company get rebuilt from scratch, so a
// right-board/wrong-query link never reaches the user. Unknown hosts are
// kept best-effort: with the company slug present they count as a direct
// employer link, without it they keep the URL but take the deterministic
// fallback's source label.
func (e *Engine) ensureCompanyLink(rawLink, company string, fq models.JobQuery, location string, remote bool, index int) resolvedLink {
	fallback := e.fallbackLink(fq, company, location, remote, index)

	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(rawLink)), "https://") {
		return fallback
	}
	u, err := url.Parse(strings.TrimSpace(rawLink))
	if err != nil || u.Hostname() == "" {
		return fallback
	}

	slug := Slug(company)
	hasSlug := slug != "" && strings.Contains(strings.ToLower(rawLink), slug)

	if p, ok := e.providers.ByHost(strings.ToLower(u.Hostname())); ok {
		if hasSlug {
			return resolvedLink{URL: rawLink, Source: p.Name}
		}
		return resolvedLink{URL: p.Build(fq.Query, company, location, remote), Source: p.Name}
	}

	if hasSlug {
		return resolvedLink{URL: rawLink, Source: "Company careers site"}
	}
	return resolvedLink{URL: rawLink, Source: fallback.Source}
}

func (e *Engine) fallbackLink(fq models.JobQuery, company, location string, remote bool, index int) resolvedLink {
	seed := HashString(fmt.Sprintf("%s|%s|%d", fq.Query, company, index))
	p := e.providers.Select(seed)
	return resolvedLink{URL: p.Build(fq.Query, company, location, remote), Source: p.Name}
}

// fallbackPostings is the fully deterministic catalogue: several rows per
// query, spread across companies and boards by the rolling hash, so the UI
// has pagination-worthy content even with no AI configured.
func (e *Engine) fallbackPostings(queries []models.JobQuery, location string, remote bool) []models.JobPosting {
	perQuery := len(e.providers)
	if perQuery < 5 {
		perQuery = 5
	}

	displayLoc := location
	framing := "On-site and hybrid"
	switch {
	case remote:
		displayLoc = "Remote"
		framing = "Remote-friendly"
	case displayLoc == "":
		displayLoc = "Flexible location"
		framing = "Flexible"
	}

	stamp := e.now().UnixMilli()
	out := make([]models.JobPosting, 0, len(queries)*perQuery)
	for qi, q := range queries {
		text := strings.ToLower(q.Title + " " + q.Query)
		for off := 0; off < perQuery; off++ {
			company := SampleCompany(text, qi+off)
			p := e.providers.Select(HashString(fmt.Sprintf("%s:%s:%d:%d", q.Title, q.Query, qi, off)))
			out = append(out, models.JobPosting{
				ID:          fmt.Sprintf("curated-%d-%d-%d", stamp, qi, off),
				Title:       fmt.Sprintf("%s at %s", q.Title, company),
				Company:     company,
				Location:    displayLoc,
				Description: fmt.Sprintf("%s roles matching %q at %s. Open the %s search to apply.", framing, q.Title, company, p.Name),
				URL:         p.Build(q.Query, company, location, remote),
				Source:      p.Name,
			})
		}
	}
	return dedupeByURL(out)
}

func dedupeByURL(postings []models.JobPosting) []models.JobPosting {
	seen := make(map[string]bool, len(postings))
	out := postings[:0]
	for _, p := range postings {
		key := strings.ToLower(p.URL)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
