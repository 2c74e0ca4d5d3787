package filter

import "fmt"

// ErrInvalidPattern is returned by Compile when the search pattern is not a
// valid regular expression.
type ErrInvalidPattern struct {
	Pattern string
	cause   error
}

func (e *ErrInvalidPattern) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.cause)
}

func (e *ErrInvalidPattern) Unwrap() error {
	return e.cause
}

// ErrInvalidGlob is returned by Compile when glob matching is requested and
// the pattern is not a valid glob.
type ErrInvalidGlob struct {
	Pattern string
	cause   error
}

func (e *ErrInvalidGlob) Error() string {
	return fmt.Sprintf("invalid glob %q: %v", e.Pattern, e.cause)
}

func (e *ErrInvalidGlob) Unwrap() error {
	return e.cause
}
