package corpus

import "errors"

// Provider-level failures. Sources translate these to the kind-specific
// not-found errors below, so callers above the builder only ever see the
// stable taxonomy.
var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrContentNotFound = errors.New("content not found")
)

// Stable error kinds surfaced by the builder.
var (
	ErrLyricsNotFound   = errors.New("lyrics not found")
	ErrAuthorNotFound   = errors.New("author not found")
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// NotFoundErr returns the kind-specific not-found error.
func (k Kind) NotFoundErr() error {
	if k == KindLyrical {
		return ErrLyricsNotFound
	}
	return ErrAuthorNotFound
}

// ErrorName maps a domain error to its wire name for the error response field.
func ErrorName(err error) string {
	switch {
	case errors.Is(err, ErrLyricsNotFound):
		return "LyricsNotFound"
	case errors.Is(err, ErrAuthorNotFound):
		return "AuthorNotFound"
	case errors.Is(err, ErrCacheUnavailable):
		return "CacheUnavailable"
	default:
		return "InternalError"
	}
}
