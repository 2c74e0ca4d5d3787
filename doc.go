// Package ffind provides a fast, parallel file-tree search engine for Go.
//
// Ffind walks one or more directory trees concurrently and returns the
// paths of entries matching a set of compiled criteria: a name pattern
// (regex or glob), entry type, extension, size and modification-time
// bounds, and depth limits. Hidden entries and .gitignore/.ignore rules
// are honored by default and can be switched off per search.
//
// # Quick Start
//
// Declarative configuration:
//
//	paths, _ := ffind.Search(&ffind.Config{
//	    Pattern: `\.go$`,
//	    Paths:   []string{"./src"},
//	    Type:    "f",
//	})
//
// Fluent builder:
//
//	paths, _ := ffind.Find("*.toml").
//	    Glob().
//	    In("./project").
//	    Hidden().
//	    Execute()
//
// # Matching Model
//
// Patterns are regular expressions matched case-insensitively against
// entry base names. Globs (Config.Glob) are translated to anchored
// regexes where * never crosses a path separator and ** descends
// recursively. FullPath switches the match target to the whole path,
// CaseSensitive restores exact-case matching. Extension filters are
// always case-insensitive.
//
// # Error Model
//
// Invalid patterns, globs, and exclude rules fail fast, before any
// traversal starts, as *ErrInvalidPattern, *ErrInvalidGlob and
// *ErrInvalidExclude. Problems with individual entries during traversal
// (permission errors, files vanishing mid-walk) skip the entry, never
// fail the search.
//
// # Concurrency
//
// Traversal fans out one goroutine per directory subtree, bounded by a
// worker pool sized to runtime.GOMAXPROCS(0) by default (WithWorkers
// overrides). Matched paths are batched per traversal unit and drained
// concurrently, so result order is nondeterministic.
//
// # Observability
//
// Structured logging (log/slog) and metrics collection are pluggable via
// WithLogger, WithLogLevel and WithMetricsCollector.
package ffind
