package search

import (
	"fmt"
	"strings"

	"github.com/poiesic/memrank/core"
)

// partialMatchStrategy scores the fraction of query fragments (words longer
// than 2 characters) contained in a record's content or tags. Runs only for
// queries longer than 5 characters.
type partialMatchStrategy struct{}

func (partialMatchStrategy) name() string { return StrategyPartialMatch }

func (partialMatchStrategy) applies(analysis QueryAnalysis, opts Options) bool {
	return len(analysis.NormalizedQuery) > 5
}

func (partialMatchStrategy) execute(analysis QueryAnalysis, corpus []*core.MemoryRecord) []ScoredMatch {
	fragments := queryTokens(analysis.NormalizedQuery, 3)
	if len(fragments) == 0 {
		return nil
	}

	var matches []ScoredMatch
	for _, record := range corpus {
		if record == nil {
			continue
		}
		text := searchText(record)

		matched := 0
		var details []string
		for _, fragment := range fragments {
			if strings.Contains(text, fragment) {
				matched++
				details = append(details, fmt.Sprintf("fragment %q found", fragment))
			}
		}

		if matched == 0 {
			continue
		}
		matches = append(matches, ScoredMatch{
			Record:   record,
			Score:    float64(matched) / float64(len(fragments)),
			Strategy: StrategyPartialMatch,
			Details:  details,
		})
	}
	return matches
}
