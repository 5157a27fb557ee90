// internal/solver/engine.go
//
// Data-parallel execution for the filter and score stages.
//
// Every stage is a pure per-word transformation, so the input slice is split
// into contiguous chunks and each chunk is handled by its own goroutine in an
// errgroup. Chunk results are concatenated in chunk order, which keeps the
// output order identical to the input order.
//
// Small inputs run on the calling goroutine.

package solver

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest slice worth handing to its own goroutine.
const minChunk = 1024

// Engine runs the solver stages over a pool of workers.
type Engine struct {
	workers   int
	minLength int
	log       zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the number of parallel workers; n <= 0 means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithMinLength raises the minimum word length used by Solve.
// Values below MinWordLength are clamped to it.
func WithMinLength(n int) Option {
	return func(e *Engine) {
		e.minLength = max(n, MinWordLength)
	}
}

// WithLogger replaces the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New constructs an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		workers:   runtime.NumCPU(),
		minLength: MinWordLength,
		log:       log.Logger,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Workers reports the configured worker count.
func (e *Engine) Workers() int { return e.workers }

// MinLength reports the minimum word length used by Solve.
func (e *Engine) MinLength() int { return e.minLength }

// span is a half-open index range [start, end).
type span struct{ start, end int }

// partition splits n items into at most e.workers contiguous spans.
func (e *Engine) partition(n int) []span {
	workers := e.workers
	if limit := n / minChunk; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		return []span{{0, n}}
	}
	size := (n + workers - 1) / workers
	spans := make([]span, 0, workers)
	for start := 0; start < n; start += size {
		spans = append(spans, span{start, min(start+size, n)})
	}
	return spans
}

// filter keeps the words for which keep returns true, preserving order.
// The result is never nil.
func (e *Engine) filter(words []string, keep func(string) bool) []string {
	spans := e.partition(len(words))
	parts := make([][]string, len(spans))

	run := func(i int, s span) {
		var out []string
		for _, w := range words[s.start:s.end] {
			if keep(w) {
				out = append(out, w)
			}
		}
		parts[i] = out
	}

	if len(spans) == 1 {
		run(0, spans[0])
	} else {
		var g errgroup.Group
		for i, s := range spans {
			g.Go(func() error {
				run(i, s)
				return nil
			})
		}
		_ = g.Wait()
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]string, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// each calls fn for every index of an n-length collection, in parallel spans.
// fn must only write to state owned by its index.
func (e *Engine) each(n int, fn func(i int)) {
	spans := e.partition(n)
	if len(spans) == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var g errgroup.Group
	for _, s := range spans {
		g.Go(func() error {
			for i := s.start; i < s.end; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}
