// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, so the error can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and message.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, map[string]string{"error": message})
}

// StorageError reports a persistence failure as a 500. The detail is
// sanitized so credentials in a DSN never reach the client, and the full
// error is logged server-side.
func StorageError(w http.ResponseWriter, err error) {
	slog.Default().Error("storage failure",
		slog.String("error", SanitizeError(err)))
	Error(w, http.StatusInternalServerError,
		fmt.Sprintf("Database error: %s", SanitizeError(err)))
}
