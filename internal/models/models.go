package models

// JobQuery is one AI-suggested search phrase the user can run against job
// boards. Immutable once created; no identity beyond the title/query pair.
type JobQuery struct {
	Title string `json:"title" binding:"required"`
	Query string `json:"query" binding:"required"`
}

// JobPosting is one candidate opportunity surfaced to the user. IDs are
// unique within a single response batch only; they are regenerated per call.
type JobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description,omitempty"`
	PostedAt    string `json:"postedAt,omitempty"`
	URL         string `json:"url"`
	Source      string `json:"source"`
}

// AnalysisResult is the typed shape of a resume analysis. Array fields are
// never nil; missing or wrong-typed AI output coerces to empty containers.
type AnalysisResult struct {
	Summary    string     `json:"summary"`
	Keywords   []string   `json:"keywords"`
	Strengths  []string   `json:"strengths"`
	NextSteps  []string   `json:"nextSteps"`
	JobQueries []JobQuery `json:"jobQueries"`
}
