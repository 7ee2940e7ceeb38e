package domain

import "errors"

// error kinds surfaced by the digest pipeline, check with errors.Is
var (
	ErrSourceUnavailable   = errors.New("source unavailable")
	ErrNoArticlesFound     = errors.New("no articles found from any sources")
	ErrCurationUnavailable = errors.New("curation unavailable")
	ErrCurationMalformed   = errors.New("curation response malformed")
	ErrPersistence         = errors.New("persistence failure")
	ErrNotFound            = errors.New("not found")
)
