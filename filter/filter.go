// Package filter compiles search criteria into a matcher pipeline that is
// evaluated against traversal entries.
//
// Compilation happens once, before traversal starts, so pattern errors
// surface eagerly. The compiled Matchers value is immutable and safe for
// concurrent use by any number of traversal units. Matching is ordered
// cheapest-first: name checks run on every entry while metadata is fetched
// lazily and only when a size or time bound requires it.
package filter

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hupe1980/ffind/internal/glob"
	"github.com/hupe1980/ffind/walk"
)

// Options holds the raw, uncompiled search criteria.
type Options struct {
	// Pattern is a regular expression, or a glob when Glob is set. Empty
	// means match every name.
	Pattern string

	// Glob interprets Pattern as a glob matched against the whole target.
	Glob bool

	// CaseSensitive disables the default case-insensitive matching of
	// Pattern. Extension matching is always case-insensitive.
	CaseSensitive bool

	// FullPath matches Pattern against the entry's full path instead of
	// its base name.
	FullPath bool

	// Type restricts matches to one entry kind: "f"/"file", "d"/"dir"/
	// "directory" or "l"/"symlink". Unrecognized values restrict nothing.
	Type string

	// Extension restricts matches to names with the given extension, with
	// or without the leading dot.
	Extension string

	// MinSize and MaxSize are inclusive size bounds in bytes.
	MinSize *uint64
	MaxSize *uint64

	// ChangedWithin and ChangedBefore bound the modification time relative
	// to now, in seconds.
	ChangedWithin *int64
	ChangedBefore *int64
}

// Matchers is a compiled, immutable matcher pipeline.
type Matchers struct {
	pattern   *regexp.Regexp
	extension *regexp.Regexp
	typ       walk.Type
	typeSet   bool
	fullPath  bool
	needsMeta bool
	minSize   *uint64
	maxSize   *uint64
	within    *time.Time
	before    *time.Time
}

// Compile validates opts and builds the matcher pipeline. Time bounds are
// resolved against the clock at compile time, so every entry of one search
// is measured against the same cutoff.
func Compile(opts Options) (*Matchers, error) {
	m := &Matchers{fullPath: opts.FullPath}

	if opts.Pattern != "" {
		expr := opts.Pattern

		if opts.Glob {
			translated, err := glob.Translate(expr)
			if err != nil {
				return nil, &ErrInvalidGlob{Pattern: opts.Pattern, cause: err}
			}
			expr = translated
		}

		if !opts.CaseSensitive {
			expr = "(?i)" + expr
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, &ErrInvalidPattern{Pattern: opts.Pattern, cause: err}
		}

		m.pattern = re
	}

	if opts.Extension != "" {
		ext := strings.TrimPrefix(opts.Extension, ".")
		m.extension = regexp.MustCompile(`(?i)\.` + regexp.QuoteMeta(ext) + `$`)
	}

	switch opts.Type {
	case "f", "file":
		m.typ, m.typeSet = walk.TypeFile, true
	case "d", "dir", "directory":
		m.typ, m.typeSet = walk.TypeDir, true
	case "l", "symlink":
		m.typ, m.typeSet = walk.TypeSymlink, true
	}

	m.minSize, m.maxSize = opts.MinSize, opts.MaxSize

	now := time.Now()

	if opts.ChangedWithin != nil {
		t := now.Add(-time.Duration(*opts.ChangedWithin) * time.Second)
		m.within = &t
	}

	if opts.ChangedBefore != nil {
		t := now.Add(-time.Duration(*opts.ChangedBefore) * time.Second)
		m.before = &t
	}

	m.needsMeta = m.minSize != nil || m.maxSize != nil || m.within != nil || m.before != nil

	return m, nil
}

// Match reports whether the entry passes every compiled matcher. A root
// directory never matches; the search yields its contents, not the starting
// point itself.
func (m *Matchers) Match(e *walk.Entry) bool {
	if e.Depth == 0 && e.Type == walk.TypeDir {
		return false
	}

	target := filepath.Base(e.Path)
	if m.fullPath {
		target = filepath.ToSlash(e.Path)
	}

	if m.pattern != nil && !m.pattern.MatchString(target) {
		return false
	}

	if m.extension != nil && !m.extension.MatchString(target) {
		return false
	}

	if m.typeSet && e.Type != m.typ {
		return false
	}

	if !m.needsMeta {
		return true
	}

	info, err := e.Metadata()
	if err != nil {
		return false
	}

	size := uint64(info.Size())

	if m.minSize != nil && size < *m.minSize {
		return false
	}

	if m.maxSize != nil && size > *m.maxSize {
		return false
	}

	// An unreadable modification time exempts the entry from time bounds.
	if mt := info.ModTime(); !mt.IsZero() {
		if m.within != nil && mt.Before(*m.within) {
			return false
		}
		if m.before != nil && !mt.Before(*m.before) {
			return false
		}
	}

	return true
}
