// Package apierrors defines the protocol status codes shared by the HTTP
// layer and the method dispatcher. The wire format carries the code inside
// the JSON body as well as in the HTTP status line, so the codes are plain
// integers rather than an opaque enum.
package apierrors

import (
	"fmt"
	"sort"
	"strings"
)

// Protocol status codes. They double as HTTP status codes.
const (
	OK             = 200
	BadRequest     = 400
	Forbidden      = 403
	NotFound       = 404
	InvalidRequest = 422
	Internal       = 500
)

var texts = map[int]string{
	BadRequest:     "Bad Request",
	Forbidden:      "Forbidden",
	NotFound:       "Not Found",
	InvalidRequest: "Invalid Request",
	Internal:       "Internal Server Error",
}

// Text returns the canonical message for a protocol error code.
func Text(code int) string {
	if t, ok := texts[code]; ok {
		return t
	}
	return "Unknown Error"
}

// IsError reports whether the code denotes a failure envelope.
func IsError(code int) bool {
	_, ok := texts[code]
	return ok
}

// FieldErrors maps field names to validation messages. It is the body of a
// 422 response and also usable as an error value inside the service layer.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for name, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", name, msg))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
