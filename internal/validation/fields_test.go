package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// FieldsSuite covers the individual field descriptors. Validation must be a
// pure function of the input value, so every case is a plain table entry.
type FieldsSuite struct {
	suite.Suite
}

func TestFieldsSuite(t *testing.T) {
	suite.Run(t, new(FieldsSuite))
}

func (s *FieldsSuite) TestChar() {
	s.Run("accepts strings", func() {
		s.NoError(Char{}.Validate("value"))
		s.NoError(Char{}.Validate(""))
	})

	s.Run("rejects non strings", func() {
		for _, v := range []any{2, 37.5, []any{"val1", "val2"}, map[string]any{}, nil} {
			s.Error(Char{}.Validate(v), "value %v", v)
		}
	})

	s.Run("normalizes to the same string", func() {
		s.Equal("value", Char{}.Normalize("value"))
	})
}

func (s *FieldsSuite) TestArguments() {
	s.Run("accepts objects", func() {
		s.NoError(Arguments{}.Validate(map[string]any{"phone": "79175002040"}))
		s.NoError(Arguments{}.Validate(map[string]any{}))
	})

	s.Run("rejects non objects", func() {
		for _, v := range []any{2, 37.5, []any{"val1"}, "char", nil} {
			s.Error(Arguments{}.Validate(v), "value %v", v)
		}
	})
}

func (s *FieldsSuite) TestEmail() {
	s.Run("accepts strings containing @", func() {
		s.NoError(Email{}.Validate("stupnikov@otus.ru"))
	})

	s.Run("rejects strings without @ and non strings", func() {
		for _, v := range []any{"string", 42, 3.5, []any{"a", 4}} {
			s.Error(Email{}.Validate(v), "value %v", v)
		}
	})
}

func (s *FieldsSuite) TestPhone() {
	s.Run("accepts 11 digits starting with 7", func() {
		s.NoError(Phone{}.Validate("79998887766"))
		s.NoError(Phone{}.Validate(json.Number("79998887766")))
		s.NoError(Phone{}.Validate(79998887766))
	})

	s.Run("rejects wrong length, leading digit or content", func() {
		for _, v := range []any{
			"89998887766", // wrong leading digit
			"7999888776",  // ten digits
			"799988877661", // twelve digits
			"7XXXXXXXXXX",
			"string",
			3.5,
			[]any{"a", 4},
			89998887766,
		} {
			s.Error(Phone{}.Validate(v), "value %v", v)
		}
	})

	s.Run("normalizes numbers to their decimal string", func() {
		s.Equal("79998887766", Phone{}.Normalize(json.Number("79998887766")))
		s.Equal("79998887766", Phone{}.Normalize("79998887766"))
	})
}

func (s *FieldsSuite) TestDate() {
	s.Run("parses DD.MM.YYYY", func() {
		s.NoError(Date{}.Validate("01.07.1920"))

		t, ok := Date{}.Normalize("01.07.1920").(time.Time)
		s.Require().True(ok)
		s.Equal(1, t.Day())
		s.Equal(time.July, t.Month())
		s.Equal(1920, t.Year())
	})

	s.Run("rejects other formats", func() {
		for _, v := range []any{"2/19/1991", "1.08.04", "12 June 2012", 20120612, nil} {
			s.Error(Date{}.Validate(v), "value %v", v)
		}
	})
}

func (s *FieldsSuite) TestBirthDay() {
	fixed := func() time.Time { return time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC) }
	field := BirthDay{Now: fixed}

	s.Run("accepts dates within 70 years", func() {
		s.NoError(field.Validate("01.08.2004"))
		s.NoError(field.Validate("10.05.1954")) // exactly 70 years by year subtraction
	})

	s.Run("rejects dates older than 70 years", func() {
		s.Error(field.Validate("01.07.1920"))
		s.Error(field.Validate("31.12.1953"))
	})

	s.Run("year subtraction ignores month and day", func() {
		// Born late in the boundary year: still accepted because only the
		// year component is compared.
		s.NoError(field.Validate("31.12.1954"))
	})

	s.Run("rejects unparseable values", func() {
		s.Error(field.Validate("2/19/1991"))
	})
}

func (s *FieldsSuite) TestGender() {
	s.Run("accepts 0 1 2", func() {
		for _, v := range []any{0, 1, 2, json.Number("1"), float64(2)} {
			s.NoError(Gender{}.Validate(v), "value %v", v)
		}
	})

	s.Run("rejects strings floats and out of range", func() {
		for _, v := range []any{"0", "1", "2", 3, -1, 1.1, nil} {
			s.Error(Gender{}.Validate(v), "value %v", v)
		}
	})

	s.Run("normalizes to int", func() {
		s.Equal(1, Gender{}.Normalize(json.Number("1")))
	})
}

func (s *FieldsSuite) TestClientIDs() {
	s.Run("accepts arrays of non-negative integers", func() {
		s.NoError(ClientIDs{}.Validate([]any{json.Number("1"), json.Number("2")}))
		s.NoError(ClientIDs{}.Validate([]any{0, 1, 2}))
	})

	s.Run("rejects non arrays and bad elements", func() {
		for _, v := range []any{
			[]any{2.2, 3, 2324, 8000},
			[]any{-1},
			[]any{"client1"},
			2312,
			"client1",
		} {
			s.Error(ClientIDs{}.Validate(v), "value %v", v)
		}
	})

	s.Run("normalizes to int64 slice preserving order", func() {
		ids, ok := ClientIDs{}.Normalize([]any{json.Number("3"), json.Number("1"), json.Number("2")}).([]int64)
		s.Require().True(ok)
		s.Equal([]int64{3, 1, 2}, ids)
	})
}

// TestValidateIsPure re-runs a descriptor on the same value and expects the
// identical verdict; descriptors must hold no state.
func (s *FieldsSuite) TestValidateIsPure() {
	field := Phone{}
	first := field.Validate("89998887766")
	second := field.Validate("89998887766")
	s.Require().Error(first)
	s.Require().Error(second)
	s.Equal(first.Error(), second.Error())
}
