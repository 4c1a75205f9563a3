package synth

import "net/url"

// Provider is one job-board integration: the hostnames we recognize it by
// and a deterministic search-URL builder. Providers are immutable
// configuration, set up once at process start and never mutated.
type Provider struct {
	Name  string
	Hosts []string
	Build func(query, company, location string, remote bool) string
}

// Registry is the fixed, ordered provider set the engine selects from.
type Registry []Provider

// Select picks providers[abs(seed) mod len]. Pure in the seed, so two seeds
// congruent mod the registry size land on the same board.
func (r Registry) Select(seed int32) Provider {
	i := int(seed)
	if i < 0 {
		i = -i
	}
	return r[i%len(r)]
}

// ByHost matches a hostname against every provider's recognized hosts,
// including subdomains (ph.jobstreet.com matches jobstreet.com).
func (r Registry) ByHost(host string) (Provider, bool) {
	for _, p := range r {
		for _, h := range p.Hosts {
			if hostMatches(host, h) {
				return p, true
			}
		}
	}
	return Provider{}, false
}

func hostMatches(host, base string) bool {
	if host == base {
		return true
	}
	return len(host) > len(base) && host[len(host)-len(base)-1] == '.' &&
		host[len(host)-len(base):] == base
}

// DefaultProviders returns the boards DeyFinder deep-links into. Order
// matters: Select indexes into this slice.
func DefaultProviders() Registry {
	return Registry{
		{
			Name:  "LinkedIn",
			Hosts: []string{"linkedin.com"},
			Build: func(query, company, location string, remote bool) string {
				v := url.Values{}
				v.Set("keywords", joinTerms(query, company))
				if location != "" {
					v.Set("location", location)
				}
				if remote {
					v.Set("f_WT", "2")
				}
				return "https://www.linkedin.com/jobs/search/?" + v.Encode()
			},
		},
		{
			Name:  "Indeed",
			Hosts: []string{"indeed.com"},
			Build: func(query, company, location string, remote bool) string {
				v := url.Values{}
				v.Set("q", joinTerms(query, company))
				switch {
				case remote:
					v.Set("l", "Remote")
				case location != "":
					v.Set("l", location)
				}
				return "https://www.indeed.com/jobs?" + v.Encode()
			},
		},
		{
			Name:  "Glassdoor",
			Hosts: []string{"glassdoor.com"},
			Build: func(query, company, location string, remote bool) string {
				v := url.Values{}
				v.Set("sc.keyword", joinTerms(query, company))
				if location != "" {
					v.Set("locKeyword", location)
				}
				return "https://www.glassdoor.com/Job/jobs.htm?" + v.Encode()
			},
		},
		{
			Name:  "JobStreet",
			Hosts: []string{"jobstreet.com", "jobstreet.com.ph"},
			Build: func(query, company, location string, remote bool) string {
				v := url.Values{}
				v.Set("keywords", joinTerms(query, company))
				if remote {
					v.Set("workarrangement", "Remote")
				} else if location != "" {
					v.Set("location", location)
				}
				return "https://ph.jobstreet.com/jobs?" + v.Encode()
			},
		},
		{
			Name:  "Prosple",
			Hosts: []string{"prosple.com"},
			Build: func(query, company, location string, remote bool) string {
				v := url.Values{}
				v.Set("keywords", joinTerms(query, company))
				if location != "" {
					v.Set("locations", location)
				}
				return "https://ph.prosple.com/search-jobs?" + v.Encode()
			},
		},
		{
			Name:  "Jora",
			Hosts: []string{"jora.com"},
			Build: func(query, company, location string, remote bool) string {
				v := url.Values{}
				v.Set("sp", "search")
				v.Set("q", joinTerms(query, company))
				switch {
				case remote:
					v.Set("l", "Work from home")
				case location != "":
					v.Set("l", location)
				}
				return "https://ph.jora.com/j?" + v.Encode()
			},
		},
	}
}

func joinTerms(query, company string) string {
	if company == "" {
		return query
	}
	return query + " " + company
}
