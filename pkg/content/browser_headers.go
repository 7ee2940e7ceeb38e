package content

import (
	"math/rand"
	"net/http"
)

var acceptLanguages = []string{
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9",
	"en-GB,en-US;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,fr;q=0.8",
	"en-IE,en;q=0.9,en-GB;q=0.8",
}

// addBrowserHeaders makes the request look like a page navigation, some news sites
// refuse requests without these
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // header variation only
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
}
