// Package walk implements a parallel, policy-driven file-tree traversal.
//
// A Walker visits every entry under a set of roots, applying a shared policy
// (hidden-entry visibility, ignore-file honoring, symlink following, depth
// bounds, override rules) and hands entries to per-unit visitors. Traversal
// units run concurrently on a bounded pool; each unit owns exactly one
// visitor, so visitors never need internal synchronization.
package walk

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Options is the traversal policy shared by all roots of one walk.
type Options struct {
	// Hidden visits dot-prefixed (and, on Windows, attribute-hidden)
	// entries. Roots are always visited regardless.
	Hidden bool

	// NoIgnore disables .gitignore/.ignore handling for the whole walk.
	NoIgnore bool

	// Follow resolves symlinks: links are reported with their target's
	// type and links to directories are descended into, guarded against
	// cycles.
	Follow bool

	// MaxDepth, when set, stops descending below the given depth. Entries
	// deeper than MaxDepth are never produced.
	MaxDepth *int

	// MinDepth, when set, suppresses entries shallower than the given
	// depth. Descent is unaffected.
	MinDepth *int

	// Overrides force exclusion of matching paths; a matching directory
	// prunes its subtree.
	Overrides *Overrides

	// Workers bounds the number of concurrently running traversal units.
	// Defaults to runtime.GOMAXPROCS(0).
	Workers int

	// Limiter, when set, throttles directory reads.
	Limiter *rate.Limiter
}

// Visitor consumes the entries of one traversal unit. Visit is called with
// either a valid entry or a traversal error, never both. Close marks the end
// of the unit's portion of the walk and is called exactly once, even when
// the unit ends early.
type Visitor interface {
	Visit(e *Entry, err error)
	Close()
}

// VisitorFactory produces one Visitor per traversal unit.
type VisitorFactory func() Visitor

// Walker drives a parallel traversal over one or more roots.
type Walker struct {
	roots   []string
	opts    Options
	sem     *semaphore.Weighted
	wg      sync.WaitGroup
	factory VisitorFactory
}

// New creates a Walker over roots with the given policy. All roots share the
// policy and the worker pool.
func New(roots []string, opts Options) *Walker {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	return &Walker{
		roots: roots,
		opts:  opts,
	}
}

// Run walks all roots to completion. Root-level errors (a missing or
// unreadable root) are reported to the visitor and skipped; Run itself
// never fails.
func (w *Walker) Run(factory VisitorFactory) {
	w.factory = factory
	w.sem = semaphore.NewWeighted(int64(w.opts.Workers))

	v := factory()
	for _, root := range w.roots {
		w.walkRoot(root, v)
	}
	v.Close()

	w.wg.Wait()
}

// dirJob is one directory pending traversal.
type dirJob struct {
	path  string // cleaned os path
	slash string // slash-normalized path, for ignore-rule matching
	rel   string // slash path relative to the root, "" for the root itself
	depth int
	rules *ruleSet

	// cycle-detection chain, populated only when following symlinks
	parent *dirJob
	real   string
}

func (j *dirJob) inChain(real string) bool {
	for p := j; p != nil; p = p.parent {
		if p.real == real {
			return true
		}
	}

	return false
}

func (w *Walker) walkRoot(root string, v Visitor) {
	info, err := os.Lstat(root)
	if err != nil {
		v.Visit(nil, err)
		return
	}

	typ := typeOfMode(info.Mode())
	isDir := info.IsDir()

	if typ == TypeSymlink && w.opts.Follow {
		st, serr := os.Stat(root)
		if serr != nil {
			v.Visit(nil, serr)
			return
		}
		info = st
		typ = typeOfMode(st.Mode())
		isDir = st.IsDir()
	}

	if w.emitOK(0) {
		v.Visit(&Entry{
			Path:    root,
			Depth:   0,
			Type:    typ,
			follow:  w.opts.Follow,
			statted: true,
			info:    info,
		}, nil)
	}

	if !isDir || !w.descendOK(0) {
		return
	}

	dir := filepath.Clean(root)

	job := &dirJob{
		path:  dir,
		slash: filepath.ToSlash(dir),
		depth: 0,
	}

	if !w.opts.NoIgnore {
		job.rules = rootRuleSet(dir)
	}

	if w.opts.Follow {
		if real, rerr := filepath.EvalSymlinks(dir); rerr == nil {
			job.real = real
		}
	}

	w.walkDir(job, v)
}

func (w *Walker) walkDir(job *dirJob, v Visitor) {
	if w.opts.Limiter != nil {
		_ = w.opts.Limiter.Wait(context.Background())
	}

	entries, err := os.ReadDir(job.path)
	if err != nil {
		v.Visit(nil, err)
		return
	}

	rules := job.rules
	if !w.opts.NoIgnore {
		rules = newRuleSet(rules, job.path)
	}

	for _, de := range entries {
		name := de.Name()
		full := filepath.Join(job.path, name)
		slash := job.slash + "/" + name
		depth := job.depth + 1

		rel := name
		if job.rel != "" {
			rel = job.rel + "/" + name
		}

		typ := typeOfMode(de.Type())
		isDir := de.IsDir()

		if typ == TypeSymlink && w.opts.Follow {
			st, serr := os.Stat(full)
			if serr != nil {
				// dangling link
				v.Visit(nil, serr)
				continue
			}
			typ = typeOfMode(st.Mode())
			isDir = st.IsDir()
		}

		if !w.opts.Hidden && isHidden(full, name) {
			continue
		}

		if w.opts.Overrides.Excluded(rel, name) {
			continue
		}

		if rules.Ignored(slash, name, isDir) {
			continue
		}

		if w.emitOK(depth) {
			v.Visit(&Entry{
				Path:   full,
				Depth:  depth,
				Type:   typ,
				follow: w.opts.Follow,
			}, nil)
		}

		if !isDir || !w.descendOK(depth) {
			continue
		}

		child := &dirJob{
			path:   full,
			slash:  slash,
			rel:    rel,
			depth:  depth,
			rules:  rules,
			parent: job,
		}

		if w.opts.Follow {
			real, rerr := filepath.EvalSymlinks(full)
			if rerr != nil {
				continue
			}
			if job.inChain(real) {
				continue
			}
			child.real = real
		}

		w.spawn(child, v)
	}
}

// spawn hands job to a fresh traversal unit when a pool slot is free and
// otherwise processes it inline as part of the current unit.
func (w *Walker) spawn(job *dirJob, v Visitor) {
	if !w.sem.TryAcquire(1) {
		w.walkDir(job, v)
		return
	}

	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		defer w.sem.Release(1)

		u := w.factory()
		defer u.Close()

		w.walkDir(job, u)
	}()
}

func (w *Walker) emitOK(depth int) bool {
	if w.opts.MinDepth != nil && depth < *w.opts.MinDepth {
		return false
	}
	if w.opts.MaxDepth != nil && depth > *w.opts.MaxDepth {
		return false
	}

	return true
}

func (w *Walker) descendOK(depth int) bool {
	return w.opts.MaxDepth == nil || depth < *w.opts.MaxDepth
}
