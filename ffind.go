package ffind

import (
	"context"
	"time"

	"github.com/hupe1980/ffind/filter"
	"github.com/hupe1980/ffind/walk"
)

// Config declares what a search looks for and where. The zero value matches
// every visible, non-ignored entry under the current directory.
//
// Optional bounds use pointers so that "unset" and "zero" stay distinct:
// a nil MinSize imposes no bound while a zero MinSize admits empty files.
type Config struct {
	// Pattern is a regular expression matched against entry names, or a
	// glob when Glob is set. Empty matches everything.
	Pattern string

	// Paths are the traversal roots. Empty means the current directory.
	Paths []string

	// Hidden includes hidden entries.
	Hidden bool

	// NoIgnore disables .gitignore/.ignore handling.
	NoIgnore bool

	// CaseSensitive disables the default case-insensitive matching.
	CaseSensitive bool

	// Glob interprets Pattern as a glob.
	Glob bool

	// FullPath matches Pattern against the full path instead of the name.
	FullPath bool

	// MaxDepth and MinDepth bound the traversal depth, inclusive. Roots
	// are at depth 0.
	MaxDepth *int
	MinDepth *int

	// Type restricts results to one entry kind: "f"/"file", "d"/"dir"/
	// "directory" or "l"/"symlink".
	Type string

	// Extension restricts results to names with the given extension.
	Extension string

	// Exclude prunes entries matching any of the given globs. An excluded
	// directory is not descended into.
	Exclude []string

	// Follow resolves symlinks during traversal.
	Follow bool

	// MinSize and MaxSize are inclusive size bounds in bytes.
	MinSize *uint64
	MaxSize *uint64

	// ChangedWithin and ChangedBefore bound the modification time
	// relative to now, in seconds.
	ChangedWithin *int64
	ChangedBefore *int64
}

// Search walks the configured roots in parallel and returns the paths of
// all matching entries. Result order follows batch arrival and is therefore
// nondeterministic across runs.
//
// Invalid patterns fail before any traversal starts. Per-entry problems
// during traversal (permission errors, vanished files) skip the entry and
// never fail the search.
func Search(config *Config, optFns ...Option) ([]string, error) {
	if config == nil {
		config = &Config{}
	}

	o := applyOptions(optFns)

	ctx := context.Background()
	start := time.Now()

	matchers, err := filter.Compile(filter.Options{
		Pattern:       config.Pattern,
		Glob:          config.Glob,
		CaseSensitive: config.CaseSensitive,
		FullPath:      config.FullPath,
		Type:          config.Type,
		Extension:     config.Extension,
		MinSize:       config.MinSize,
		MaxSize:       config.MaxSize,
		ChangedWithin: config.ChangedWithin,
		ChangedBefore: config.ChangedBefore,
	})
	if err != nil {
		err = translateError(err)
		o.logger.LogSearch(ctx, config.Pattern, 0, time.Since(start), err)
		o.metricsCollector.RecordSearch(0, time.Since(start), err)
		return nil, err
	}

	overrides, err := walk.CompileOverrides(config.Exclude)
	if err != nil {
		err = translateError(err)
		o.logger.LogSearch(ctx, config.Pattern, 0, time.Since(start), err)
		o.metricsCollector.RecordSearch(0, time.Since(start), err)
		return nil, err
	}

	roots := config.Paths
	if len(roots) == 0 {
		roots = []string{"."}
	}

	walker := walk.New(roots, walk.Options{
		Hidden:    config.Hidden,
		NoIgnore:  config.NoIgnore,
		Follow:    config.Follow,
		MaxDepth:  config.MaxDepth,
		MinDepth:  config.MinDepth,
		Overrides: overrides,
		Workers:   o.workers,
		Limiter:   o.limiter,
	})

	results := collect(walker, matchers, o)

	duration := time.Since(start)
	o.logger.LogSearch(ctx, config.Pattern, len(results), duration, nil)
	o.metricsCollector.RecordSearch(len(results), duration, nil)

	return results, nil
}
