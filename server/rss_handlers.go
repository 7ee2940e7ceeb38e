package server

import (
	"fmt"
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdigest/pkg/domain"
	"github.com/umputun/newsdigest/pkg/feed"
)

// rssHandler serves a ready digest as RSS feed, articles by importance then curation position
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	view, err := s.digests.Digest(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), errorCode(err))
		return
	}
	if view.Status != domain.DigestReady {
		http.Error(w, fmt.Sprintf("digest %s is %s", id, view.Status), http.StatusNotFound)
		return
	}

	rss, err := feed.NewGenerator(s.config.GetBaseURL()).GenerateRSS(view.Digest, view.Articles)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed for %s: %v", id, err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
