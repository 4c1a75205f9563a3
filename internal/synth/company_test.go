package synth

import (
	"testing"

	"github.com/DeyYed/DeyFinder/internal/models"
)

func TestIsGenericCompanyName_Placeholders(t *testing.T) {
	generic := []string{
		"", "   ", "ab",
		"Various Companies", "confidential employer", "A Leading Company",
		"N/A", "na", "TBD", "unknown", "Not Specified", "---",
		"Company", "EMPLOYER", "organisation", "Organization",
	}
	for _, name := range generic {
		if !IsGenericCompanyName(name) {
			t.Errorf("IsGenericCompanyName(%q) = false, want true", name)
		}
	}
}

func TestIsGenericCompanyName_RealNames(t *testing.T) {
	real := []string{"Canva", "Globe Telecom", "PwC", "Oracle NetSuite", "IBM"}
	for _, name := range real {
		if IsGenericCompanyName(name) {
			t.Errorf("IsGenericCompanyName(%q) = true, want false", name)
		}
	}
}

func TestDeriveCompanyFromLink(t *testing.T) {
	cases := []struct {
		link, want string
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", "Acme"},
		{"https://jobs.lever.co/acme-corp/4242", "Acme Corp"},
		{"https://jobs.ashbyhq.com/nimbus", "Nimbus"},
		{"https://ats.rippling.com/brightwave/jobs", "Brightwave"},
		{"https://acme.wd3.myworkdayjobs.com/en-US/careers", "Acme"},
		{"https://acme.bamboohr.com/careers/55", "Acme"},
		{"https://careers.acme.com/openings/1", "Acme"},
		// aggregators never yield a company
		{"https://www.linkedin.com/jobs/view/acme-engineer", ""},
		{"https://ph.jobstreet.com/jobs?keywords=acme", ""},
		{"https://www.indeed.com/viewjob?jk=abc", ""},
		// junk
		{"not a url at all ://", ""},
		{"https://boards.greenhouse.io/", ""},
	}
	for _, c := range cases {
		if got := DeriveCompanyFromLink(c.link); got != c.want {
			t.Errorf("DeriveCompanyFromLink(%q) = %q, want %q", c.link, got, c.want)
		}
	}
}

func TestSampleCompany_Deterministic(t *testing.T) {
	text := "backend engineer backend engineer node"
	a := SampleCompany(text, 2)
	b := SampleCompany(text, 2)
	if a != b {
		t.Errorf("SampleCompany not deterministic: %q vs %q", a, b)
	}
	if IsGenericCompanyName(a) {
		t.Errorf("SampleCompany returned generic name %q", a)
	}
}

func TestSampleCompany_BucketSelection(t *testing.T) {
	// "engineer" should hit the software bucket, not the default list.
	got := SampleCompany("backend engineer golang", 0)
	software := companyBuckets[0].Companies
	found := false
	for _, c := range software {
		if c == got {
			found = true
		}
	}
	if !found {
		t.Errorf("SampleCompany(%q) = %q, want a software-bucket company %v", "backend engineer golang", got, software)
	}
}

func TestSampleCompany_DefaultListFallback(t *testing.T) {
	got := SampleCompany("zookeeper animal care", 0)
	found := false
	for _, c := range defaultCompanies {
		if c == got {
			found = true
		}
	}
	if !found {
		t.Errorf("SampleCompany with no bucket match = %q, want one of %v", got, defaultCompanies)
	}
}

func TestNormalizeCompanyName_Tiers(t *testing.T) {
	q := models.JobQuery{Title: "SRE", Query: "site reliability engineer"}

	// Tier 1: concrete model-supplied name wins verbatim.
	if got := NormalizeCompanyName("  Canva ", "https://example.com", q, 0); got != "Canva" {
		t.Errorf("tier 1: got %q, want Canva", got)
	}

	// Tier 2: generic name, derivable link.
	if got := NormalizeCompanyName("N/A", "https://boards.greenhouse.io/acme/jobs/123", q, 0); got != "Acme" {
		t.Errorf("tier 2: got %q, want Acme", got)
	}

	// Tier 3: generic name, aggregator link, deterministic sample.
	got := NormalizeCompanyName("", "https://www.linkedin.com/jobs/view/1", q, 3)
	if got == "" || IsGenericCompanyName(got) {
		t.Errorf("tier 3: got generic %q", got)
	}
	again := NormalizeCompanyName("", "https://www.linkedin.com/jobs/view/1", q, 3)
	if got != again {
		t.Errorf("tier 3 not deterministic: %q vs %q", got, again)
	}
}

func TestSlug(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Acme Corp", "acmecorp"},
		{"P&G", "pg"},
		{"  Oracle NetSuite ", "oraclenetsuite"},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.want {
			t.Errorf("Slug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
