package search

import (
	"fmt"
	"strings"

	"github.com/poiesic/memrank/core"
)

// tagBasedStrategy scores records by how many of the query's extracted tags
// their own tags satisfy. An exact tag equality contributes 1.0, a partial
// containment (either direction) contributes 0.5; the sum is averaged over
// the extracted tag count.
type tagBasedStrategy struct{}

func (tagBasedStrategy) name() string { return StrategyTagBased }

func (tagBasedStrategy) applies(analysis QueryAnalysis, opts Options) bool {
	return opts.TagSearch && len(analysis.ExtractedTags) > 0
}

func (tagBasedStrategy) execute(analysis QueryAnalysis, corpus []*core.MemoryRecord) []ScoredMatch {
	extracted := analysis.ExtractedTags
	if len(extracted) == 0 {
		return nil
	}

	var matches []ScoredMatch
	for _, record := range corpus {
		if record == nil || len(record.Tags) == 0 {
			continue
		}

		var total float64
		var details []string
		for _, queryTag := range extracted {
			best := 0.0
			bestDetail := ""
			for _, recordTag := range record.Tags {
				tag := strings.ToLower(recordTag)
				if tag == queryTag {
					best = 1.0
					bestDetail = fmt.Sprintf("tag %q matched", queryTag)
					break
				}
				if strings.Contains(tag, queryTag) || strings.Contains(queryTag, tag) {
					if best < 0.5 {
						best = 0.5
						bestDetail = fmt.Sprintf("tag %q partially matched %q", queryTag, tag)
					}
				}
			}
			if best > 0 {
				total += best
				details = append(details, bestDetail)
			}
		}

		if total == 0 {
			continue
		}
		score := total / float64(len(extracted))
		if score > 1.0 {
			score = 1.0
		}
		matches = append(matches, ScoredMatch{
			Record:   record,
			Score:    score,
			Strategy: StrategyTagBased,
			Details:  details,
		})
	}
	return matches
}
