package search

import (
	"fmt"
	"strings"

	"github.com/poiesic/memrank/core"
)

// semanticEmitThreshold is the minimum score for a semantic match to be
// emitted at all.
const semanticEmitThreshold = 0.2

// semanticSimilarityStrategy counts direct word overlaps between query and
// content, plus half-weighted conceptual matches through the static
// concept->related-terms table. Runs only for queries longer than 10
// characters.
type semanticSimilarityStrategy struct{}

func (semanticSimilarityStrategy) name() string { return StrategySemanticSimilarity }

func (semanticSimilarityStrategy) applies(analysis QueryAnalysis, opts Options) bool {
	return opts.SemanticSearch && len(analysis.NormalizedQuery) > 10
}

func (semanticSimilarityStrategy) execute(analysis QueryAnalysis, corpus []*core.MemoryRecord) []ScoredMatch {
	queryWords := strings.Fields(analysis.NormalizedQuery)
	if len(queryWords) == 0 {
		return nil
	}

	var matches []ScoredMatch
	for _, record := range corpus {
		if record == nil {
			continue
		}

		contentWords := make(map[string]bool)
		for _, word := range strings.Fields(contentText(record)) {
			contentWords[word] = true
		}

		direct := 0
		conceptual := 0
		var details []string
		for _, word := range queryWords {
			if contentWords[word] {
				direct++
				details = append(details, fmt.Sprintf("word %q present", word))
				continue
			}
			for _, related := range conceptTerms[word] {
				if contentWords[related] {
					conceptual++
					details = append(details, fmt.Sprintf("word %q related to %q", word, related))
					break
				}
			}
		}

		score := (float64(direct) + 0.5*float64(conceptual)) / float64(len(queryWords))
		if score <= semanticEmitThreshold {
			continue
		}
		matches = append(matches, ScoredMatch{
			Record:   record,
			Score:    score,
			Strategy: StrategySemanticSimilarity,
			Details:  details,
		})
	}
	return matches
}
