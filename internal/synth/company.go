package synth

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DeyYed/DeyFinder/internal/models"
)

// vaguePhrases are placeholder-ish employer names the model likes to emit
// when it does not actually know the company. Case-insensitive substring
// match.
var vaguePhrases = []string{
	"various companies",
	"multiple companies",
	"multiple employers",
	"confidential employer",
	"confidential company",
	"leading company",
	"top company",
	"reputable company",
	"hiring company",
	"company name",
	"not disclosed",
	"undisclosed",
}

var placeholderToken = regexp.MustCompile(`(?i)^(n/?a|tbd|tba|unknown|none|null|undefined|not specified|not available|-+)$`)

// IsGenericCompanyName reports whether a candidate employer name is a
// placeholder rather than a real company. Normalization never lets one of
// these through to the final posting list.
func IsGenericCompanyName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) <= 2 {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, phrase := range vaguePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	if placeholderToken.MatchString(trimmed) {
		return true
	}
	switch lower {
	case "company", "employer", "organisation", "organization":
		return true
	}
	return false
}

// aggregatorHosts are job-search boards rather than employer sites; their
// URLs never encode a company name we can trust.
var aggregatorHosts = []string{
	"linkedin.com",
	"indeed.com",
	"glassdoor.com",
	"jobstreet.com",
	"jobstreet.com.ph",
	"prosple.com",
	"jora.com",
	"monster.com",
	"ziprecruiter.com",
	"simplyhired.com",
	"careerbuilder.com",
	"kalibrr.com",
	"google.com",
}

var titleCaser = cases.Title(language.English)

// DeriveCompanyFromLink pulls an employer name out of a job link's URL
// structure. ATS hosts put the company in a predictable path segment or
// subdomain; aggregator hosts never yield one.
func DeriveCompanyFromLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	if host == "" {
		return ""
	}
	for _, agg := range aggregatorHosts {
		if hostMatches(host, agg) {
			return ""
		}
	}

	segs := pathSegments(u.Path)

	// Path-segment ATS hosts: the first segment is the employer account.
	switch {
	case hostMatches(host, "greenhouse.io"),
		hostMatches(host, "lever.co"),
		hostMatches(host, "ashbyhq.com"),
		host == "ats.rippling.com":
		if len(segs) > 0 {
			return humanizeSlug(segs[0])
		}
		return ""
	}

	// Subdomain ATS hosts: acme.wd3.myworkdayjobs.com, acme.bamboohr.com.
	for _, base := range []string{"myworkdayjobs.com", "workday.com", "bamboohr.com"} {
		if hostMatches(host, base) && host != base {
			return humanizeSlug(strings.SplitN(host, ".", 2)[0])
		}
	}

	// careers.acme.com / jobs.acme.com style employer sites.
	labels := strings.Split(host, ".")
	if len(labels) >= 3 && (labels[0] == "careers" || labels[0] == "jobs") {
		return humanizeSlug(labels[1])
	}

	return ""
}

func pathSegments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// humanizeSlug turns a URL token like "acme-corp" into "Acme Corp".
func humanizeSlug(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ", "%20", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return titleCaser.String(s)
}

// Slug is the alphanumeric-only lowercase rendering of a string, used for
// loose substring matching inside URLs.
func Slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CompanyBucket maps search keywords to plausible employers, used only when
// neither the model nor the link gives us a real name. Static configuration.
type CompanyBucket struct {
	Keywords  []string
	Companies []string
}

var companyBuckets = []CompanyBucket{
	{
		Keywords:  []string{"software", "developer", "engineer", "backend", "frontend", "full stack", "fullstack", "devops", "mobile"},
		Companies: []string{"Canva", "Atlassian", "Accenture", "Oracle NetSuite", "Samsung R&D", "Thoughtworks"},
	},
	{
		Keywords:  []string{"data", "analytics", "machine learning", "ml ", "scientist", "intelligence"},
		Companies: []string{"Thinking Machines Data Science", "Trend Micro", "IBM", "Sprout Solutions", "SAS", "Palantir"},
	},
	{
		Keywords:  []string{"design", "ux", "ui", "creative", "graphic", "illustrator"},
		Companies: []string{"Canva", "Figma", "Dentsu Creative", "Ogilvy", "Adobe", "InVision"},
	},
	{
		Keywords:  []string{"marketing", "content", "seo", "brand", "social media", "copywriter"},
		Companies: []string{"Shopee", "Globe Telecom", "Unilever", "Jollibee Foods", "Nestle", "P&G"},
	},
	{
		Keywords:  []string{"support", "customer", "service desk", "success", "helpdesk"},
		Companies: []string{"Concentrix", "TaskUs", "Teleperformance", "Alorica", "Sitel", "TTEC"},
	},
	{
		Keywords:  []string{"finance", "accounting", "accountant", "audit", "bookkeep", "payroll"},
		Companies: []string{"PwC", "Deloitte", "KPMG", "EY", "Sun Life", "Manulife"},
	},
	{
		Keywords:  []string{"hr", "recruit", "talent", "people operations"},
		Companies: []string{"Sprout Solutions", "Mercer", "Willis Towers Watson", "Randstad", "Adecco", "Manpower"},
	},
}

var defaultCompanies = []string{
	"Accenture", "Globe Telecom", "Ayala Corporation", "San Miguel Corporation", "PLDT", "Converge",
}

// SampleCompany deterministically picks an employer for the given search
// text: the first bucket with a keyword hit supplies the candidates,
// otherwise the default list does, and the rolling hash plus index picks the
// row. Same text and index, same company, always.
func SampleCompany(text string, index int) string {
	companies := defaultCompanies
	for _, b := range companyBuckets {
		if bucketMatches(b, text) {
			companies = b.Companies
			break
		}
	}
	i := int(HashString(text)) + index
	if i < 0 {
		i = -i
	}
	return companies[i%len(companies)]
}

func bucketMatches(b CompanyBucket, text string) bool {
	for _, kw := range b.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// NormalizeCompanyName is the three-tier company pipeline: trust a concrete
// model-supplied name, else read one out of the link, else sample a
// deterministic stand-in. The result is never a generic placeholder.
func NormalizeCompanyName(rawCompany, link string, query models.JobQuery, index int) string {
	if trimmed := strings.TrimSpace(rawCompany); !IsGenericCompanyName(trimmed) {
		return trimmed
	}
	if derived := DeriveCompanyFromLink(link); derived != "" && !IsGenericCompanyName(derived) {
		return derived
	}
	text := strings.ToLower(query.Title + " " + query.Query)
	return SampleCompany(text, index)
}
