package ffind

import (
	"errors"
	"fmt"

	"github.com/hupe1980/ffind/filter"
	"github.com/hupe1980/ffind/walk"
)

// ErrInvalidPattern indicates an unparsable search pattern.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidPattern struct {
	Pattern string
	cause   error
}

func (e *ErrInvalidPattern) Error() string {
	return fmt.Sprintf("invalid pattern %q", e.Pattern)
}

func (e *ErrInvalidPattern) Unwrap() error { return e.cause }

// ErrInvalidGlob indicates an unparsable glob pattern.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidGlob struct {
	Pattern string
	cause   error
}

func (e *ErrInvalidGlob) Error() string {
	return fmt.Sprintf("invalid glob %q", e.Pattern)
}

func (e *ErrInvalidGlob) Unwrap() error { return e.cause }

// ErrInvalidExclude indicates an unparsable exclude pattern.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidExclude struct {
	Pattern string
	cause   error
}

func (e *ErrInvalidExclude) Error() string {
	return fmt.Sprintf("invalid exclude pattern %q", e.Pattern)
}

func (e *ErrInvalidExclude) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ig *filter.ErrInvalidGlob
	if errors.As(err, &ig) {
		return &ErrInvalidGlob{Pattern: ig.Pattern, cause: err}
	}
	var ip *filter.ErrInvalidPattern
	if errors.As(err, &ip) {
		return &ErrInvalidPattern{Pattern: ip.Pattern, cause: err}
	}
	var eo *walk.ErrInvalidOverride
	if errors.As(err, &eo) {
		return &ErrInvalidExclude{Pattern: eo.Pattern, cause: err}
	}

	return err
}
