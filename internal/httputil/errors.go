// Package httputil writes JSON responses and errors in a consistent shape.
package httputil

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/jrschumacher/jwtinspect/internal/logger"
	"github.com/jrschumacher/jwtinspect/internal/validation"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string             `json:"error"`
	Message string             `json:"message,omitempty"`
	Details []validation.Error `json:"details,omitempty"`
}

// WriteError writes a standardized error response
func WriteError(w http.ResponseWriter, status int, message string, logFields ...any) {
	response := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}

	logFields = append([]any{"status", status, "message", message}, logFields...)
	if status >= http.StatusInternalServerError {
		logger.Error("HTTP error response", logFields...)
	} else {
		logger.Warn("HTTP error response", logFields...)
	}
}

// WriteValidationError writes a validation error response
func WriteValidationError(w http.ResponseWriter, validationErr validation.Errors) {
	response := ErrorResponse{
		Error:   "Validation Failed",
		Message: validationErr.Error(),
		Details: validationErr,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode validation error response", "error", err)
	}

	logger.Warn("Validation error", "errors", validationErr.Error())
}

// WriteInternalError writes a generic internal server error
func WriteInternalError(w http.ResponseWriter, err error, message string, logFields ...any) {
	response := ErrorResponse{
		Error:   "Internal Server Error",
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)

	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		logger.Error("Failed to encode internal error response", "error", encodeErr)
	}

	logFields = append([]any{"error", err, "message", message}, logFields...)
	logger.Error("Internal server error", logFields...)
}

// WriteJSON writes a JSON response with proper error handling
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

// WriteSuccess writes a 200 OK response with JSON data
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}
