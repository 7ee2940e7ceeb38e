// Package archive flags likely paywalled articles and attaches an archive-service link for them.
// It only builds the link, it never checks that an archived copy exists.
package archive

import (
	"strings"

	"github.com/umputun/newsdigest/pkg/domain"
)

// DefaultBaseURL is the archive service prefix used when none is configured
const DefaultBaseURL = "https://archive.today/newest"

// DefaultPaywalledDomains lists outlets known to put most articles behind a paywall
var DefaultPaywalledDomains = []string{
	"ft.com",
	"economist.com",
	"telegraph.co.uk",
	"thetimes.co.uk",
	"wsj.com",
	"nytimes.com",
	"washingtonpost.com",
	"bloomberg.com",
	"newstatesman.com",
	"spectator.co.uk",
	"theathletic.com",
}

// Enricher classifies links and builds archive URLs
type Enricher struct {
	baseURL string
	domains []string
}

// New makes an enricher, empty arguments select the defaults
func New(baseURL string, domains []string) *Enricher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if len(domains) == 0 {
		domains = DefaultPaywalledDomains
	}
	return &Enricher{baseURL: strings.TrimRight(baseURL, "/"), domains: domains}
}

// IsPaywalled reports whether the link contains one of the paywalled domains
func (e *Enricher) IsPaywalled(link string) bool {
	if link == "" {
		return false
	}
	for _, d := range e.domains {
		if strings.Contains(link, d) {
			return true
		}
	}
	return false
}

// URL returns the archive link for the original URL, used verbatim
func (e *Enricher) URL(link string) string {
	return e.baseURL + "/" + link
}

// Enrich sets the paywall flag and archive link on the article
func (e *Enricher) Enrich(a domain.DigestArticle) domain.DigestArticle {
	a.Paywalled = e.IsPaywalled(a.OriginalURL)
	a.ArchiveURL = nil
	if a.Paywalled {
		u := e.URL(a.OriginalURL)
		a.ArchiveURL = &u
	}
	return a
}
