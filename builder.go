// Package ffind provides a parallel file-tree search engine.
//
// This file implements the fluent builder API for composing searches.
// The builder is immutable - each method returns a new builder with the
// updated configuration.
package ffind

import "time"

// Find creates a new search builder for the given pattern. The pattern is
// a regular expression matched case-insensitively against entry names;
// combine with Glob, CaseSensitive and FullPath to change that.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents
// accidental state sharing.
//
// Example:
//
//	paths, err := ffind.Find(`\.go$`).
//	    In("./src").
//	    Type("f").
//	    MaxDepth(4).
//	    Execute()
func Find(pattern string) Builder {
	return Builder{
		config: Config{Pattern: pattern},
	}
}

// Builder is an immutable fluent builder for composing searches.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	config Config
	opts   []Option
}

// Glob interprets the pattern as a glob instead of a regular expression.
func (b Builder) Glob() Builder {
	b.config.Glob = true
	return b
}

// CaseSensitive disables the default case-insensitive matching.
func (b Builder) CaseSensitive() Builder {
	b.config.CaseSensitive = true
	return b
}

// Hidden includes hidden entries in the search.
func (b Builder) Hidden() Builder {
	b.config.Hidden = true
	return b
}

// NoIgnore disables .gitignore/.ignore handling.
func (b Builder) NoIgnore() Builder {
	b.config.NoIgnore = true
	return b
}

// FullPath matches the pattern against full paths instead of names.
func (b Builder) FullPath() Builder {
	b.config.FullPath = true
	return b
}

// FollowSymlinks resolves symlinks during traversal.
func (b Builder) FollowSymlinks() Builder {
	b.config.Follow = true
	return b
}

// In adds traversal roots. Without any, the current directory is searched.
func (b Builder) In(paths ...string) Builder {
	roots := make([]string, 0, len(b.config.Paths)+len(paths))
	roots = append(roots, b.config.Paths...)
	roots = append(roots, paths...)
	b.config.Paths = roots
	return b
}

// MaxDepth bounds how deep below the roots the search descends.
func (b Builder) MaxDepth(depth int) Builder {
	b.config.MaxDepth = &depth
	return b
}

// MinDepth suppresses results shallower than the given depth.
func (b Builder) MinDepth(depth int) Builder {
	b.config.MinDepth = &depth
	return b
}

// Type restricts results to one entry kind: "f"/"file", "d"/"dir"/
// "directory" or "l"/"symlink".
func (b Builder) Type(t string) Builder {
	b.config.Type = t
	return b
}

// Extension restricts results to names with the given extension.
func (b Builder) Extension(ext string) Builder {
	b.config.Extension = ext
	return b
}

// Exclude prunes entries matching any of the given globs.
func (b Builder) Exclude(patterns ...string) Builder {
	excludes := make([]string, 0, len(b.config.Exclude)+len(patterns))
	excludes = append(excludes, b.config.Exclude...)
	excludes = append(excludes, patterns...)
	b.config.Exclude = excludes
	return b
}

// MinSize restricts results to entries of at least the given size in bytes.
func (b Builder) MinSize(size uint64) Builder {
	b.config.MinSize = &size
	return b
}

// MaxSize restricts results to entries of at most the given size in bytes.
func (b Builder) MaxSize(size uint64) Builder {
	b.config.MaxSize = &size
	return b
}

// ChangedWithin restricts results to entries modified within the given
// duration before now. Sub-second durations round down to zero seconds.
func (b Builder) ChangedWithin(d time.Duration) Builder {
	secs := int64(d / time.Second)
	b.config.ChangedWithin = &secs
	return b
}

// ChangedBefore restricts results to entries last modified earlier than the
// given duration before now.
func (b Builder) ChangedBefore(d time.Duration) Builder {
	secs := int64(d / time.Second)
	b.config.ChangedBefore = &secs
	return b
}

// Logger sets the structured logger for operation tracing.
func (b Builder) Logger(l *Logger) Builder {
	return b.withOption(WithLogger(l))
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	return b.withOption(WithMetricsCollector(mc))
}

// Workers bounds the number of concurrent traversal units.
func (b Builder) Workers(n int) Builder {
	return b.withOption(WithWorkers(n))
}

func (b Builder) withOption(opt Option) Builder {
	opts := make([]Option, 0, len(b.opts)+1)
	opts = append(opts, b.opts...)
	opts = append(opts, opt)
	b.opts = opts
	return b
}

// Execute runs the search and returns the matching paths.
func (b Builder) Execute() ([]string, error) {
	config := b.config
	return Search(&config, b.opts...)
}
