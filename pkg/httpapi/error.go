package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope standardizes JSON error responses for API namespaces.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// WriteValidationError reports a 422 with per-field messages, used by
// controllers after DTO validation fails.
func WriteValidationError(w http.ResponseWriter, fields map[string]string) error {
	return WriteError(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "request validation failed", fields)
}

// WriteUpstreamError reports a 502 for remote platform failures so the UI can
// show its generic error banner and let the user retry.
func WriteUpstreamError(w http.ResponseWriter, err error) error {
	meta := map[string]string{}
	if err != nil {
		meta["cause"] = err.Error()
	}
	return WriteError(w, http.StatusBadGateway, "UPSTREAM_FAILED", "remote platform call failed", meta)
}
