package walk

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hupe1980/ffind/internal/glob"
)

// ErrInvalidOverride indicates an exclude pattern that failed to compile.
// Override compilation happens before any filesystem access, so this is
// always a pre-traversal failure.
//
// The underlying error can be accessed via errors.Unwrap.
type ErrInvalidOverride struct {
	Pattern string
	cause   error
}

func (e *ErrInvalidOverride) Error() string {
	return fmt.Sprintf("invalid exclude pattern %q: %v", e.Pattern, e.cause)
}

func (e *ErrInvalidOverride) Unwrap() error { return e.cause }

type regexpRule struct {
	re       *regexp.Regexp
	anchored bool // pattern contains a separator: match the root-relative path
}

// Overrides force exclusion of matching paths regardless of ignore-file
// state. A matching directory prunes its entire subtree.
type Overrides struct {
	rules []regexpRule
}

// CompileOverrides validates and compiles exclude patterns eagerly. Every
// pattern must be a well-formed glob; the first malformed one aborts with
// ErrInvalidOverride.
func CompileOverrides(patterns []string) (*Overrides, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	rules := make([]regexpRule, 0, len(patterns))

	for _, pattern := range patterns {
		trimmed := strings.TrimSuffix(pattern, "/")

		src, err := glob.Translate(trimmed)
		if err != nil {
			return nil, &ErrInvalidOverride{Pattern: pattern, cause: err}
		}

		re, err := regexp.Compile(src)
		if err != nil {
			return nil, &ErrInvalidOverride{Pattern: pattern, cause: err}
		}

		rules = append(rules, regexpRule{
			re:       re,
			anchored: strings.Contains(trimmed, "/"),
		})
	}

	return &Overrides{rules: rules}, nil
}

// Excluded reports whether an entry is excluded. rel is the slash-separated
// path relative to the walk root; name is the entry's base name. Unanchored
// rules match the name at any level, anchored rules match the relative path.
func (o *Overrides) Excluded(rel, name string) bool {
	if o == nil {
		return false
	}

	for i := range o.rules {
		r := &o.rules[i]
		if r.anchored {
			if r.re.MatchString(rel) {
				return true
			}
		} else if r.re.MatchString(name) {
			return true
		}
	}

	return false
}
