// Package httputil centralizes the JSON response envelope so every layer
// (handlers, middleware, the 404 route) emits the same shape:
// {"response": ..., "code": 200} on success, {"error": ..., "code": N}
// on failure.
package httputil

import (
	"encoding/json"
	"net/http"

	"scoreapi/pkg/apierrors"
)

type successEnvelope struct {
	Response any `json:"response"`
	Code     int `json:"code"`
}

type errorEnvelope struct {
	Error any `json:"error"`
	Code  int `json:"code"`
}

// WriteResult writes a handler result and protocol code as the response
// envelope. Error codes with a nil result fall back to the canonical text,
// so callers never leak internal detail by accident.
func WriteResult(w http.ResponseWriter, result any, code int) {
	if apierrors.IsError(code) {
		if result == nil {
			result = apierrors.Text(code)
		}
		WriteJSON(w, code, errorEnvelope{Error: result, Code: code})
		return
	}
	WriteJSON(w, code, successEnvelope{Response: result, Code: code})
}

// WriteJSON writes an arbitrary JSON body with the given HTTP status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
