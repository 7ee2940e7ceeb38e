package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/newsdigest/pkg/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, rest.JSON{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	})
}

// generateDigestHandler generates a digest for the owner's profile, it blocks until the digest
// is ready or failed
func (s *Server) generateDigestHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Owner string `json:"owner"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if req.Owner == "" {
		renderError(w, r, errors.New("owner is required"), http.StatusBadRequest)
		return
	}

	clearWriteDeadline(w)
	id, err := s.digests.GenerateFor(r.Context(), req.Owner)
	if err != nil {
		lgr.Printf("[WARN] failed to generate digest for %s: %v", req.Owner, err)
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, rest.JSON{"id": id})
}

// listDigestsHandler lists digests, filtered by owner and status
func (s *Server) listDigestsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.DigestFilter{Owner: q.Get("owner"), Status: domain.DigestStatus(q.Get("status")), Limit: defaultListLimit}

	switch filter.Status {
	case "", domain.DigestGenerating, domain.DigestReady, domain.DigestFailed:
	default:
		renderError(w, r, fmt.Errorf("invalid status %q", filter.Status), http.StatusBadRequest)
		return
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			renderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		filter.Limit = min(limit, maxListLimit)
	}

	digests, err := s.digests.ListDigests(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to list digests: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, digests)
}

// getDigestHandler returns a digest, articles are included once it is ready
func (s *Server) getDigestHandler(w http.ResponseWriter, r *http.Request) {
	view, err := s.digests.Digest(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, view)
}

// latestDigestHandler returns the most recent ready digest of the owner
func (s *Server) latestDigestHandler(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		renderError(w, r, errors.New("owner is required"), http.StatusBadRequest)
		return
	}
	view, err := s.digests.LatestDigest(r.Context(), owner)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, view)
}

// createPaperHandler builds an anonymous paper for the leaning
func (s *Server) createPaperHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Leaning domain.Leaning `json:"leaning"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if req.Leaning != "" && !req.Leaning.Valid() {
		renderError(w, r, fmt.Errorf("invalid leaning %q", req.Leaning), http.StatusBadRequest)
		return
	}

	clearWriteDeadline(w)
	paper, err := s.digests.Preview(r.Context(), req.Leaning)
	if err != nil {
		lgr.Printf("[WARN] failed to make paper for %q: %v", req.Leaning, err)
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, paper)
}

// getPaperHandler returns a kept anonymous paper
func (s *Server) getPaperHandler(w http.ResponseWriter, r *http.Request) {
	paper, err := s.digests.Paper(r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, paper)
}

// errorCode maps pipeline errors to HTTP status codes
func errorCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoArticlesFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCurationUnavailable), errors.Is(err, domain.ErrCurationMalformed):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// clearWriteDeadline lifts the server write timeout for a generation, which is bounded
// by fetch and curation timeouts instead
func clearWriteDeadline(w http.ResponseWriter) {
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		lgr.Printf("[DEBUG] can't clear write deadline: %v", err)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}
