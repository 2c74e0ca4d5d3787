package ffind

import (
	"context"

	"github.com/hupe1980/ffind/filter"
	"github.com/hupe1980/ffind/walk"
)

// batchSize is the number of matched paths buffered per traversal unit
// before they are handed to the drainer in one send.
const batchSize = 256

// resultBatch accumulates matched paths for one traversal unit and ships
// them to the shared channel in batches. It is owned by a single unit and
// needs no locking.
type resultBatch struct {
	out   chan<- []string
	paths []string
}

func newResultBatch(out chan<- []string) *resultBatch {
	return &resultBatch{
		out:   out,
		paths: make([]string, 0, batchSize),
	}
}

func (b *resultBatch) push(path string) {
	b.paths = append(b.paths, path)
	if len(b.paths) == batchSize {
		b.flush()
	}
}

// flush sends any buffered paths and resets the buffer. Called on every
// full batch and once more when the owning unit finishes, so partial
// batches are never lost.
func (b *resultBatch) flush() {
	if len(b.paths) == 0 {
		return
	}
	b.out <- b.paths
	b.paths = make([]string, 0, batchSize)
}

// matchVisitor is the per-unit traversal visitor: it filters entries
// through the compiled matcher pipeline and batches accepted paths.
type matchVisitor struct {
	matchers *filter.Matchers
	batch    *resultBatch
	logger   *Logger
	metrics  MetricsCollector
}

func (v *matchVisitor) Visit(e *walk.Entry, err error) {
	if err != nil {
		v.metrics.RecordEntrySkip()
		v.logger.LogTraversalError(context.Background(), err)
		return
	}

	if v.matchers.Match(e) {
		v.batch.push(e.Path)
	}
}

func (v *matchVisitor) Close() {
	v.batch.flush()
}

// collect runs the walker and fans all unit batches into one result slice.
// A dedicated drainer goroutine keeps receiving while units send, so the
// channel never backs up into the traversal; results arrive in batch
// arrival order.
func collect(w *walk.Walker, matchers *filter.Matchers, o options) []string {
	ch := make(chan []string, 64)

	var (
		batches [][]string
		total   int
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for batch := range ch {
			batches = append(batches, batch)
			total += len(batch)
		}
	}()

	w.Run(func() walk.Visitor {
		return &matchVisitor{
			matchers: matchers,
			batch:    newResultBatch(ch),
			logger:   o.logger,
			metrics:  o.metricsCollector,
		}
	})

	close(ch)
	<-done

	results := make([]string, 0, total)
	for _, batch := range batches {
		results = append(results, batch...)
	}

	return results
}
