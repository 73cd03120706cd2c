package query

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when the query string is empty or all
// whitespace, for every field selector.
var ErrEmptyQuery = errors.New("empty query")

// UnknownFieldError reports a field selector that is not one of the
// searchable fields.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown search field %q (valid: model, part, color, type, iot, region, yield)", e.Field)
}

// InvalidRangeError reports a yield expression that cannot be parsed:
// a range that is not exactly two integers, an inverted range, or a
// comparison with a non-numeric bound.
type InvalidRangeError struct {
	Input  string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid yield query %q: %s", e.Input, e.Reason)
}

// IsEmptyQuery reports whether err is (or wraps) ErrEmptyQuery.
func IsEmptyQuery(err error) bool {
	return errors.Is(err, ErrEmptyQuery)
}

// IsInvalidRange reports whether err is (or wraps) an InvalidRangeError.
func IsInvalidRange(err error) bool {
	var re *InvalidRangeError
	return errors.As(err, &re)
}

// IsUnknownField reports whether err is (or wraps) an UnknownFieldError.
func IsUnknownField(err error) bool {
	var fe *UnknownFieldError
	return errors.As(err, &fe)
}
