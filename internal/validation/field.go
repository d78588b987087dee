// Package validation implements the declarative field-validation framework
// behind the method API: reusable field descriptors composed into ordered
// schemas, with per-field error accumulation instead of fail-fast errors.
//
// Descriptors are immutable and safe to declare as package-level schema
// variables; all per-request state lives in the Form produced by Bind.
package validation

import (
	"encoding/json"
	"math"
	"strconv"
)

// Options carries the presence semantics every descriptor has independently
// of its type rule. Required rejects absence of the field; Nullable permits
// values from the empty-value set (nil, "", empty array, empty object).
type Options struct {
	Required bool
	Nullable bool
}

// Opts implements Field for any descriptor embedding it.
func (o Options) Opts() Options { return o }

// Field is one reusable validator and normalizer for a single value type.
// Validate reports a format or type violation as a descriptive error;
// Normalize converts a valid raw value into its canonical form.
type Field interface {
	Opts() Options
	Validate(value any) error
	Normalize(value any) any
}

// IsEmpty reports membership in the empty-value set. Raw values come from
// encoding/json, so only the JSON container types are considered.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

// asInt64 coerces the numeric representations a value can arrive in:
// json.Number from the HTTP decoder, plain ints from tests, and integral
// float64 from callers that decode without UseNumber.
func asInt64(value any) (int64, bool) {
	switch n := value.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int64(n), true
		}
	}
	return 0, false
}

// asString renders strings and integer numerics in their decimal form,
// which is what the phone descriptor validates against.
func asString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	if i, ok := asInt64(value); ok {
		return strconv.FormatInt(i, 10), true
	}
	return "", false
}
