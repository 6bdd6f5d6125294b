package search

import (
	"time"

	"github.com/poiesic/memrank/core"
)

// ScoredMatch is a single record matched by a strategy.
//
// Score holds the strategy-local raw score in [0, 1] when produced by a
// strategy, and the weighted final score once the match has passed through
// combination. Details are human-readable explanations for diagnostics only
// and never feed back into scoring.
type ScoredMatch struct {
	Record   *core.MemoryRecord
	Score    float64
	Strategy string
	Details  []string
}

// Outcome is the result of one search call.
type Outcome struct {
	// Results holds the ranked matches, at most Options.Limit of them.
	Results []ScoredMatch
	// TotalMatches counts the distinct records that survived combination
	// before truncation to the result limit.
	TotalMatches int
	// Elapsed is the wall time the search computation took.
	Elapsed time.Duration
	// StrategiesUsed names the strategies that actually executed, in
	// registry order. A skipped strategy is absent; a strategy that ran
	// and found nothing is present.
	StrategiesUsed []string
	// Analysis is the query classification the search was driven by.
	Analysis QueryAnalysis
}
