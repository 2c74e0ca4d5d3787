package ffind

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ffind/filter"
	"github.com/hupe1980/ffind/walk"
)

func TestResultBatch(t *testing.T) {
	t.Run("flush on empty batch sends nothing", func(t *testing.T) {
		ch := make(chan []string, 1)
		b := newResultBatch(ch)

		b.flush()
		assert.Empty(t, ch)
	})

	t.Run("partial batch held until flush", func(t *testing.T) {
		ch := make(chan []string, 2)
		b := newResultBatch(ch)

		for i := 0; i < batchSize-1; i++ {
			b.push(fmt.Sprintf("p%d", i))
		}
		assert.Empty(t, ch)

		b.flush()
		require.Len(t, ch, 1)
		assert.Len(t, <-ch, batchSize-1)
	})

	t.Run("full batch ships immediately", func(t *testing.T) {
		ch := make(chan []string, 2)
		b := newResultBatch(ch)

		for i := 0; i < batchSize; i++ {
			b.push(fmt.Sprintf("p%d", i))
		}
		require.Len(t, ch, 1)
		assert.Len(t, <-ch, batchSize)

		// the buffer restarts empty, a following flush sends nothing
		b.flush()
		assert.Empty(t, ch)
	})

	t.Run("overflow spills into the next batch", func(t *testing.T) {
		ch := make(chan []string, 2)
		b := newResultBatch(ch)

		for i := 0; i < batchSize+3; i++ {
			b.push(fmt.Sprintf("p%d", i))
		}
		b.flush()

		require.Len(t, ch, 2)
		assert.Len(t, <-ch, batchSize)
		assert.Len(t, <-ch, 3)
	})
}

func TestMatchVisitor(t *testing.T) {
	matchers, err := filter.Compile(filter.Options{Pattern: `\.go$`})
	require.NoError(t, err)

	t.Run("accepted entries are batched", func(t *testing.T) {
		ch := make(chan []string, 1)
		v := &matchVisitor{
			matchers: matchers,
			batch:    newResultBatch(ch),
			logger:   NoopLogger(),
			metrics:  NoopMetricsCollector{},
		}

		v.Visit(&walk.Entry{Path: "main.go", Depth: 1, Type: walk.TypeFile}, nil)
		v.Visit(&walk.Entry{Path: "readme.md", Depth: 1, Type: walk.TypeFile}, nil)
		v.Close()

		require.Len(t, ch, 1)
		assert.Equal(t, []string{"main.go"}, <-ch)
	})

	t.Run("traversal errors count as skips", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		ch := make(chan []string, 1)
		v := &matchVisitor{
			matchers: matchers,
			batch:    newResultBatch(ch),
			logger:   NoopLogger(),
			metrics:  metrics,
		}

		v.Visit(nil, errors.New("permission denied"))
		v.Close()

		assert.Empty(t, ch)
		assert.Equal(t, int64(1), metrics.GetStats().EntrySkips)
	})
}
