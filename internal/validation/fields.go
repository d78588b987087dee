package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for date fields.
const DateLayout = "02.01.2006"

// maxBirthAge bounds how far back a birth date may lie, in calendar years.
// The comparison subtracts years only, ignoring month and day.
const maxBirthAge = 70

// Char accepts any string value.
type Char struct{ Options }

func (Char) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return errors.New("This field must be a string")
	}
	return nil
}

func (Char) Normalize(value any) any {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// Arguments accepts a JSON object, passed through unchanged. It carries the
// nested request consumed by the dispatched handler.
type Arguments struct{ Options }

func (Arguments) Validate(value any) error {
	if _, ok := value.(map[string]any); !ok {
		return errors.New("This field must be an object")
	}
	return nil
}

func (Arguments) Normalize(value any) any { return value }

// Email accepts strings containing an @.
type Email struct{ Options }

func (Email) Validate(value any) error {
	if err := (Char{}).Validate(value); err != nil {
		return err
	}
	if !strings.Contains(value.(string), "@") {
		return errors.New("Invalid email address")
	}
	return nil
}

func (Email) Normalize(value any) any { return (Char{}).Normalize(value) }

// Phone accepts a string or an integer number whose decimal form is exactly
// 11 digits and starts with 7.
type Phone struct{ Options }

func (Phone) Validate(value any) error {
	s, ok := asString(value)
	if !ok {
		return errors.New("Phone number must be a string or a number")
	}
	if len(s) != 11 || !strings.HasPrefix(s, "7") || !isDigits(s) {
		return errors.New("Incorrect phone number format, should be 7XXXXXXXXXX")
	}
	return nil
}

// Normalize returns the decimal string form regardless of how the phone was
// supplied, so downstream cache keys do not depend on the caller's encoding.
func (Phone) Normalize(value any) any {
	s, _ := asString(value)
	return s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Date accepts strings in DD.MM.YYYY form and normalizes to time.Time.
type Date struct{ Options }

func (Date) Validate(value any) error {
	_, err := parseDate(value)
	return err
}

func (Date) Normalize(value any) any {
	t, _ := parseDate(value)
	return t
}

func parseDate(value any) (time.Time, error) {
	errFormat := errors.New("Incorrect date format, should be DD.MM.YYYY")
	s, ok := value.(string)
	if !ok {
		return time.Time{}, errFormat
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errFormat
	}
	return t, nil
}

// BirthDay is a Date no more than maxBirthAge calendar years in the past.
// Now is injectable so tests can pin the reference year; nil means time.Now.
type BirthDay struct {
	Options
	Now func() time.Time
}

func (b BirthDay) Validate(value any) error {
	t, err := parseDate(value)
	if err != nil {
		return err
	}
	if b.now().Year()-t.Year() > maxBirthAge {
		return fmt.Errorf("Birth date must be within the last %d years", maxBirthAge)
	}
	return nil
}

func (BirthDay) Normalize(value any) any {
	t, _ := parseDate(value)
	return t
}

func (b BirthDay) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Gender accepts exactly 0, 1 or 2 and normalizes to int.
type Gender struct{ Options }

// Recognized gender codes.
const (
	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

func (Gender) Validate(value any) error {
	g, ok := asInt64(value)
	if !ok || g < GenderUnknown || g > GenderFemale {
		return errors.New("Gender must be 0, 1 or 2")
	}
	return nil
}

func (Gender) Normalize(value any) any {
	g, _ := asInt64(value)
	return int(g)
}

// ClientIDs accepts an array of non-negative integers and normalizes to
// []int64 preserving input order.
type ClientIDs struct{ Options }

func (ClientIDs) Validate(value any) error {
	items, ok := value.([]any)
	if !ok {
		return errors.New("This field must be an array")
	}
	for _, item := range items {
		id, ok := asInt64(item)
		if !ok || id < 0 {
			return errors.New("All elements must be non-negative integers")
		}
	}
	return nil
}

func (ClientIDs) Normalize(value any) any {
	items, ok := value.([]any)
	if !ok {
		return []int64(nil)
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, _ := asInt64(item)
		ids = append(ids, id)
	}
	return ids
}
