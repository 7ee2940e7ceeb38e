package news

import "github.com/umputun/newsdigest/pkg/domain"

// Registry maps category name to its ordered list of sources
type Registry map[string][]domain.Source

// Categories returns the number of categories with at least one source
func (r Registry) Categories() int {
	n := 0
	for _, sources := range r {
		if len(sources) > 0 {
			n++
		}
	}
	return n
}

// DefaultSources returns the built-in source registry
func DefaultSources() Registry {
	return Registry{
		"national": {
			{Name: "BBC News", URL: "https://feeds.bbci.co.uk/news/rss.xml", Leaning: domain.LeaningCentre},
			{Name: "The Guardian", URL: "https://www.theguardian.com/uk/rss", Leaning: domain.LeaningCentreLeft},
			{Name: "The Telegraph", URL: "https://www.telegraph.co.uk/rss.xml", Leaning: domain.LeaningCentreRight},
			{Name: "Reuters UK", URL: "https://www.reutersagency.com/feed/", Leaning: domain.LeaningCentre},
			{Name: "AP News", URL: "https://rsshub.app/apnews/topics/apf-topnews", Leaning: domain.LeaningCentre},
		},
		"international": {
			{Name: "BBC World", URL: "https://feeds.bbci.co.uk/news/world/rss.xml", Leaning: domain.LeaningCentre},
			{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml", Leaning: domain.LeaningCentreLeft},
			{Name: "Reuters World", URL: "https://www.reutersagency.com/feed/", Leaning: domain.LeaningCentre},
			{Name: "NPR World", URL: "https://feeds.npr.org/1004/rss.xml", Leaning: domain.LeaningCentreLeft},
			{Name: "The Economist", URL: "https://www.economist.com/international/rss.xml", Leaning: domain.LeaningCentre},
		},
		"sport": {
			{Name: "BBC Sport", URL: "https://feeds.bbci.co.uk/sport/rss.xml", Leaning: domain.LeaningCentre},
			{Name: "ESPN", URL: "https://www.espn.com/espn/rss/news", Leaning: domain.LeaningCentre},
			{Name: "The Guardian Sport", URL: "https://www.theguardian.com/uk/sport/rss", Leaning: domain.LeaningCentre},
		},
		"economy": {
			{Name: "Financial Times", URL: "https://www.ft.com/rss/home", Leaning: domain.LeaningCentreRight},
			{Name: "BBC Business", URL: "https://feeds.bbci.co.uk/news/business/rss.xml", Leaning: domain.LeaningCentre},
			{Name: "Bloomberg", URL: "https://feeds.bloomberg.com/markets/news.rss", Leaning: domain.LeaningCentre},
		},
		"technology": {
			{Name: "BBC Technology", URL: "https://feeds.bbci.co.uk/news/technology/rss.xml", Leaning: domain.LeaningCentre},
			{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index", Leaning: domain.LeaningCentre},
			{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Leaning: domain.LeaningCentreLeft},
		},
		"science": {
			{Name: "BBC Science", URL: "https://feeds.bbci.co.uk/news/science_and_environment/rss.xml", Leaning: domain.LeaningCentre},
			{Name: "Nature News", URL: "https://www.nature.com/nature.rss", Leaning: domain.LeaningCentre},
			{Name: "New Scientist", URL: "https://www.newscientist.com/feed/home/", Leaning: domain.LeaningCentre},
		},
		"opinion": {
			{Name: "Guardian Opinion", URL: "https://www.theguardian.com/uk/commentisfree/rss", Leaning: domain.LeaningCentreLeft},
			{Name: "The Spectator", URL: "https://www.spectator.co.uk/feed", Leaning: domain.LeaningRight},
			{Name: "New Statesman", URL: "https://www.newstatesman.com/feed", Leaning: domain.LeaningLeft},
		},
		"travel": {
			{Name: "Guardian Travel", URL: "https://www.theguardian.com/uk/travel/rss", Leaning: domain.LeaningCentre},
			{Name: "Lonely Planet", URL: "https://www.lonelyplanet.com/news/feed", Leaning: domain.LeaningCentre},
		},
		"culture": {
			{Name: "Guardian Culture", URL: "https://www.theguardian.com/uk/culture/rss", Leaning: domain.LeaningCentreLeft},
			{Name: "BBC Culture", URL: "https://feeds.bbci.co.uk/news/entertainment_and_arts/rss.xml", Leaning: domain.LeaningCentre},
		},
		"local": {
			{Name: "BBC England", URL: "https://feeds.bbci.co.uk/news/england/rss.xml", Leaning: domain.LeaningCentre},
		},
	}
}
