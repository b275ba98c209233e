package middleware

import (
	"net/http"

	apperrors "cleanbook/pkg/errors"
	pkghttp "cleanbook/pkg/http"
)

// MaxBodySize rejects bodies larger than limit bytes. Declared lengths are
// checked up front; chunked bodies fail when the reader crosses the limit.
func MaxBodySize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				_ = pkghttp.WriteError(w, apperrors.TooLarge(limit))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
