package search

import (
	"fmt"
	"strings"

	"github.com/poiesic/memrank/core"
)

// fuzzyTokenThreshold is the minimum edit similarity for a query token to
// count as matched.
const fuzzyTokenThreshold = 0.3

// fuzzyScale keeps a fuzzy hit from outranking an equal-strength exact hit.
const fuzzyScale = 0.8

// fuzzyContentStrategy scores token-level edit-distance similarity between
// the query and the combined content+tags text.
type fuzzyContentStrategy struct{}

func (fuzzyContentStrategy) name() string { return StrategyFuzzyContent }

func (fuzzyContentStrategy) applies(analysis QueryAnalysis, opts Options) bool {
	return opts.Fuzzy
}

func (fuzzyContentStrategy) execute(analysis QueryAnalysis, corpus []*core.MemoryRecord) []ScoredMatch {
	tokens := queryTokens(analysis.NormalizedQuery, 3)
	if len(tokens) == 0 {
		return nil
	}

	var matches []ScoredMatch
	for _, record := range corpus {
		if record == nil {
			continue
		}
		docTokens := strings.Fields(searchText(record))
		if len(docTokens) == 0 {
			continue
		}

		var sum float64
		var details []string
		for _, token := range tokens {
			best := 0.0
			for _, docToken := range docTokens {
				sim := editSimilarity(token, docToken)
				if sim > best {
					best = sim
					if best == 1.0 {
						break
					}
				}
			}
			if best > fuzzyTokenThreshold {
				sum += best
				details = append(details, fmt.Sprintf("token %q matched with similarity %.2f", token, best))
			}
		}

		if sum == 0 {
			continue
		}
		score := sum / float64(len(tokens)) * fuzzyScale
		matches = append(matches, ScoredMatch{
			Record:   record,
			Score:    score,
			Strategy: StrategyFuzzyContent,
			Details:  details,
		})
	}
	return matches
}
