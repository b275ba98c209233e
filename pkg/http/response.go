package http

import (
	"encoding/json"
	"net/http"

	apperrors "cleanbook/pkg/errors"
)

// SubmissionResponse is the envelope returned for accepted writes.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError renders err as {"detail": ...}. Errors that are not AppErrors
// become a 500 without exposing the cause.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.StatusCode(), appErr.Response())
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, data)
}

func WriteSubmission(w http.ResponseWriter, message string, data any) error {
	return WriteJSON(w, http.StatusOK, SubmissionResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}
