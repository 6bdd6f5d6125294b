package search

import (
	"math"
	"sort"
	"time"

	"github.com/poiesic/memrank/core"
)

// Static strategy weights applied during combination. An unrecognized
// strategy name falls back to weight 1.0 rather than failing the query.
var strategyWeights = map[string]float64{
	StrategyExactMatch:         1.0,
	StrategyTagBased:           0.9,
	StrategyFuzzyContent:       0.8,
	StrategySemanticSimilarity: 0.7,
	StrategyPartialMatch:       0.6,
}

func strategyWeight(name string) float64 {
	if weight, ok := strategyWeights[name]; ok {
		return weight
	}
	return 1.0
}

// Time-decay constants: records age out on a 30-day scale, access recency on
// a 7-day scale, and access frequency saturates around 1000 accesses.
const (
	ageDecayScale     = 30 * 24 * time.Hour
	recencyDecayScale = 7 * 24 * time.Hour
	accessWeightScale = 3.0
)

// timeWeight computes the multiplicative decay factor for a record:
// 0.4*ageDecay + 0.4*recencyDecay + 0.2*accessWeight.
func timeWeight(record *core.MemoryRecord, now time.Time) float64 {
	ageDecay := math.Exp(-now.Sub(record.CreatedAt).Hours() / ageDecayScale.Hours())

	lastAccess := record.LastAccessedAt
	if lastAccess.IsZero() {
		lastAccess = record.CreatedAt
	}
	recencyDecay := math.Exp(-now.Sub(lastAccess).Hours() / recencyDecayScale.Hours())

	accessWeight := math.Log10(float64(record.AccessCount)+1) / accessWeightScale

	return 0.4*ageDecay + 0.4*recencyDecay + 0.2*accessWeight
}

// combine merges per-strategy matches into the final ranked set.
//
// Each match's raw score is multiplied by its strategy weight and, when
// enabled, by the record's time weight. Within a record only the single
// strongest weighted match survives; strategies are never summed. Records
// below MinScore are discarded and the rest are sorted by score descending
// with ties broken by corpus order, so identical inputs always produce
// identical output.
func combine(matches []ScoredMatch, opts Options, corpusOrder map[core.ID]int, now time.Time) []ScoredMatch {
	best := make(map[core.ID]ScoredMatch)
	for _, match := range matches {
		if match.Record == nil {
			continue
		}
		final := match.Score * strategyWeight(match.Strategy)
		if opts.TimeWeight {
			final *= timeWeight(match.Record, now)
		}
		match.Score = final

		current, ok := best[match.Record.Id]
		if !ok || final > current.Score {
			best[match.Record.Id] = match
		}
	}

	results := make([]ScoredMatch, 0, len(best))
	for _, match := range best {
		if match.Score >= opts.MinScore {
			results = append(results, match)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return corpusOrder[results[i].Record.Id] < corpusOrder[results[j].Record.Id]
	})
	return results
}
