package store

import (
	"errors"
	"fmt"
)

// FormatError reports a catalog file whose contents could not be
// parsed. It is fatal to the operation that triggered the load: a
// present-but-broken catalog must never be treated as an empty one.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormatError reports whether err is (or wraps) a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
