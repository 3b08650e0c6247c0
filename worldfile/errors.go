package worldfile

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when the path given to LoadFile is not a regular file.
	ErrNotFound = errors.New("world description not found")
	// ErrUnsupportedFormat is returned for file extensions other than .txt.
	ErrUnsupportedFormat = errors.New("unsupported world description format, give a .txt file")
	// ErrNotImplemented is returned by the json loader. It is also an ErrUnsupportedFormat.
	ErrNotImplemented = errors.Wrap(ErrUnsupportedFormat, "json loading is not implemented")
	// ErrWrongArity is the cause of a ValueError for a directive with the wrong number of values.
	ErrWrongArity = errors.New("wrong number of values")
	// ErrDuplicateKeyword is the cause of a ValueError for a second boundary, start or goal.
	ErrDuplicateKeyword = errors.New("keyword given more than once")
	// ErrTooManyObstacles is the cause of a ValueError when WithMaxObstacles is exceeded.
	ErrTooManyObstacles = errors.New("too many obstacles")
	// ErrMissingBoundary is the cause of the KeyError returned for a file without a boundary.
	ErrMissingBoundary = errors.New("boundary not specified in the file")
	// ErrStrict is returned in strict mode when parsing produced warnings.
	ErrStrict = errors.New("world description has warnings")
)

// SyntaxError is returned for a line that does not follow the `tag: values` grammar: an unknown
// tag, a missing ':' delimiter, no values, or a value that is not a number.
type SyntaxError struct {
	Line    int
	Content string
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error on line %d: %s: %q", e.Line, e.Reason, e.Content)
}

// ValueError is returned for a well formed directive that cannot be accepted: a wrong number of
// values (ErrWrongArity), or a repeated boundary, start or goal (ErrDuplicateKeyword).
type ValueError struct {
	Line    int
	Content string
	Tag     Tag
	// Got and Want are only set for ErrWrongArity.
	Got, Want int
	Err       error
}

func (e *ValueError) Error() string {
	if errors.Is(e.Err, ErrWrongArity) {
		return fmt.Sprintf("value error on line %d: %s has %d values, expected %d: %q",
			e.Line, e.Tag, e.Got, e.Want, e.Content)
	}
	return fmt.Sprintf("value error on line %d: %s: %s: %q", e.Line, e.Tag, e.Err, e.Content)
}

// Unwrap returns the cause.
func (e *ValueError) Unwrap() error {
	return e.Err
}

// KeyError is returned after a full scan when a required keyword is absent.
type KeyError struct {
	Tag Tag
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key error: %s not specified in the file", e.Tag)
}

// Unwrap returns ErrMissingBoundary, the only required keyword.
func (e *KeyError) Unwrap() error {
	return ErrMissingBoundary
}
