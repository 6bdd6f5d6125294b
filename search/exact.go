package search

import (
	"strings"

	"github.com/poiesic/memrank/core"
)

// exactMatchStrategy scores verbatim substring hits of the whole query
// against record content and tags. It always runs.
type exactMatchStrategy struct{}

func (exactMatchStrategy) name() string { return StrategyExactMatch }

func (exactMatchStrategy) applies(QueryAnalysis, Options) bool { return true }

func (exactMatchStrategy) execute(analysis QueryAnalysis, corpus []*core.MemoryRecord) []ScoredMatch {
	query := analysis.NormalizedQuery
	if query == "" {
		return nil
	}
	multiWord := len(strings.Fields(query)) > 1

	var matches []ScoredMatch
	for _, record := range corpus {
		if record == nil {
			continue
		}

		var score float64
		var details []string

		if strings.Contains(contentText(record), query) {
			score += 0.8
			details = append(details, "query found in content")
			if multiWord {
				// Full phrase present, not just word fragments.
				score += 0.2
				details = append(details, "full phrase match")
			}
		}
		if strings.Contains(tagText(record), query) {
			score += 0.6
			details = append(details, "query found in tags")
		}

		if score == 0 {
			continue
		}
		if score > 1.0 {
			score = 1.0
		}
		matches = append(matches, ScoredMatch{
			Record:   record,
			Score:    score,
			Strategy: StrategyExactMatch,
			Details:  details,
		})
	}
	return matches
}
