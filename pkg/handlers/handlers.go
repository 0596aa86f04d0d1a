// Package handlers provides HTTP response helpers for JSON endpoints.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON encodes data as the response body with the given status.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondRaw writes body unchanged. It is used to relay upstream JSON verbatim.
func RespondRaw(w http.ResponseWriter, status int, body []byte) {
	RespondBytes(w, status, "application/json", body)
}

// RespondBytes writes body unchanged under contentType. An empty contentType
// leaves the header unset.
func RespondBytes(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(status)
	w.Write(body)
}

// RespondError logs err and writes {"error": "<message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}
