package search

import (
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/memrank/core"
)

// Engine ranks memory records against free-text queries using a fixed set of
// scoring strategies. An Engine is immutable after construction and safe for
// concurrent use from multiple goroutines; each Search call is a pure
// computation over the corpus snapshot it is handed.
type Engine struct {
	strategies []strategy
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize enables concurrent strategy execution on a worker pool of the
// given size. Strategies are side-effect-free, so they are launched as
// independent tasks over the same corpus snapshot and joined before
// combination. Without this option strategies run sequentially.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// NewEngine creates a new search engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		strategies: defaultStrategies(),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			e.Release()
			return nil, err
		}
	}

	return e, nil
}

// Release releases the worker pool, if any.
// The engine remains usable afterwards; strategies then run sequentially.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
		e.pool = nil
	}
}

// Search ranks the corpus against the query.
// It never fails: an empty corpus or a query nothing matches yields an
// Outcome with no results.
func (e *Engine) Search(query string, corpus []*core.MemoryRecord, opts Options) *Outcome {
	return e.SearchWithMonitor(query, corpus, opts, nil)
}

// SearchWithMonitor ranks the corpus against the query with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (e *Engine) SearchWithMonitor(query string, corpus []*core.MemoryRecord, opts Options, monitor Monitor) *Outcome {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	opts = opts.normalized()

	start := time.Now()
	monitor.Start(query)

	analysis := Analyze(query)
	monitor.AfterAnalysis(analysis)

	var active []strategy
	used := make([]string, 0, len(e.strategies))
	for _, s := range e.strategies {
		if !s.applies(analysis, opts) {
			monitor.StrategySkipped(s.name())
			continue
		}
		active = append(active, s)
		used = append(used, s.name())
	}

	perStrategy := make([][]ScoredMatch, len(active))
	if e.pool != nil {
		var wg sync.WaitGroup
		for i, s := range active {
			wg.Add(1)
			task := func() {
				defer wg.Done()
				perStrategy[i] = e.runStrategy(s, analysis, corpus)
			}
			if err := e.pool.Submit(task); err != nil {
				e.logger.Warn("pool submit failed, running strategy inline", "strategy", s.name(), "err", err)
				task()
			}
		}
		wg.Wait()
	} else {
		for i, s := range active {
			perStrategy[i] = e.runStrategy(s, analysis, corpus)
		}
	}

	var all []ScoredMatch
	for i, matches := range perStrategy {
		monitor.AfterStrategy(active[i].name(), matches)
		all = append(all, matches...)
	}

	// Combination breaks score ties by corpus order, keeping the ranking
	// deterministic for identical inputs.
	corpusOrder := make(map[core.ID]int, len(corpus))
	for i, record := range corpus {
		if record == nil {
			continue
		}
		if _, ok := corpusOrder[record.Id]; !ok {
			corpusOrder[record.Id] = i
		}
	}

	combined := combine(all, opts, corpusOrder, time.Now().UTC())
	monitor.AfterCombine(combined)

	total := len(combined)
	results := combined
	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	outcome := &Outcome{
		Results:        results,
		TotalMatches:   total,
		Elapsed:        time.Since(start),
		StrategiesUsed: used,
		Analysis:       analysis,
	}
	monitor.Finish(outcome)
	return outcome
}

// runStrategy executes one strategy, converting a panic at the invocation
// boundary into zero matches so one bad record cannot abort the whole query.
func (e *Engine) runStrategy(s strategy, analysis QueryAnalysis, corpus []*core.MemoryRecord) (matches []ScoredMatch) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("strategy failed, treating as zero matches", "strategy", s.name(), "err", r)
			matches = nil
		}
	}()
	return s.execute(analysis, corpus)
}
