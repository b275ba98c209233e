package http

import (
	"net/http"
	"strings"

	apperrors "cleanbook/pkg/errors"
)

// NotFoundHandler answers unknown routes with {"detail":"Not Found"}.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = WriteJSON(w, http.StatusNotFound, apperrors.ErrorResponse{Detail: "Not Found"})
	})
}

// MethodNotAllowedHandler answers known routes hit with the wrong method.
// httprouter sets the Allow header before calling it.
func MethodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = WriteError(w, apperrors.MethodNotAllowed())
	})
}

// ClientIP prefers the first X-Forwarded-For hop over RemoteAddr.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	return r.RemoteAddr
}
