package search

import "github.com/poiesic/memrank/core"

// Strategy names as they appear in Outcome.StrategiesUsed and in the
// combiner's weight table.
const (
	StrategyExactMatch         = "exact-match"
	StrategyTagBased           = "tag-based"
	StrategyFuzzyContent       = "fuzzy-content"
	StrategySemanticSimilarity = "semantic-similarity"
	StrategyPartialMatch       = "partial-match"
)

// strategy is one independent scoring pass over the corpus. Implementations
// are pure: they never mutate the corpus and return an empty result set
// rather than failing when nothing matches.
//
// The strategy set is closed; the registry below is the complete list and
// there is no runtime registration.
type strategy interface {
	name() string
	// applies reports whether the strategy should run at all for this
	// query. Skipping is distinct from running and finding nothing.
	applies(analysis QueryAnalysis, opts Options) bool
	execute(analysis QueryAnalysis, corpus []*core.MemoryRecord) []ScoredMatch
}

// defaultStrategies returns the fixed strategy registry in execution order.
func defaultStrategies() []strategy {
	return []strategy{
		exactMatchStrategy{},
		tagBasedStrategy{},
		fuzzyContentStrategy{},
		semanticSimilarityStrategy{},
		partialMatchStrategy{},
	}
}
