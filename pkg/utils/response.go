package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/payops/internal/domain"
	"go.uber.org/zap"
)

// APIError is the error half of the response envelope.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func RespondWithError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, Response{
		Success:   false,
		Error:     &APIError{Code: code, Message: message},
		Timestamp: time.Now().UTC(),
	})
}

// RespondWithAppError maps a domain error onto the wire; anything that is
// not a domain error becomes a generic 500.
func RespondWithAppError(w http.ResponseWriter, err error) {
	var appErr *domain.Error
	if errors.As(err, &appErr) {
		RespondWithError(w, statusFor(appErr.Kind), appErr.Code, appErr.Message)
		return
	}
	zap.L().Error("unhandled error", zap.Error(err))
	RespondWithError(w, http.StatusInternalServerError, domain.CodeInternal, "internal server error")
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidInput, domain.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}
