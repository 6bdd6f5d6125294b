package search

import (
	"sort"
	"strings"
)

// QueryType classifies a query for strategy selection.
type QueryType string

const (
	// QueryTypeExact marks quoted or short queries best served verbatim.
	QueryTypeExact QueryType = "exact"
	// QueryTypeFuzzy is the default classification.
	QueryTypeFuzzy QueryType = "fuzzy"
	// QueryTypeSemantic marks long prose queries without tag keywords.
	QueryTypeSemantic QueryType = "semantic"
	// QueryTypeTagBased marks queries carrying known tag keywords.
	QueryTypeTagBased QueryType = "tag-based"
)

// QueryAnalysis is the per-call classification of a raw query.
type QueryAnalysis struct {
	NormalizedQuery string
	ExtractedTags   []string
	QueryType       QueryType
	Confidence      float64
}

// Analyze classifies a raw query and extracts candidate tags.
//
// Tags come from two sources: the static keyword table (substring
// containment against the normalized query) and heuristic content words
// (tokens longer than 3 characters that are not stop words). Only
// keyword-table tags drive the type classification; content words merely
// widen the tag set the tag strategy scores against.
//
// Classification precedence is deliberate and load-bearing: long prose
// queries with no keyword tags are caught as semantic before the quote/short
// exact check can claim them. Reordering the branches changes the
// classification of queries that satisfy several conditions at once.
//
// Analyze never fails; an empty query still yields a valid analysis.
func Analyze(query string) QueryAnalysis {
	normalized := strings.ToLower(strings.TrimSpace(query))

	keywordSet := make(map[string]bool)
	for _, keyword := range keywordList {
		if strings.Contains(normalized, keyword) {
			for _, tag := range keywordTags[keyword] {
				keywordSet[tag] = true
			}
		}
	}

	tagSet := make(map[string]bool, len(keywordSet))
	for tag := range keywordSet {
		tagSet[tag] = true
	}
	for _, token := range strings.Fields(normalized) {
		if len(token) > 3 && !stopWords[token] {
			tagSet[token] = true
		}
	}

	extracted := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		extracted = append(extracted, tag)
	}
	sort.Strings(extracted)

	analysis := QueryAnalysis{
		NormalizedQuery: normalized,
		ExtractedTags:   extracted,
	}

	switch {
	case len(normalized) > 20 && len(keywordSet) == 0:
		analysis.QueryType = QueryTypeSemantic
		analysis.Confidence = 0.7
	case len(keywordSet) > 0:
		analysis.QueryType = QueryTypeTagBased
		analysis.Confidence = 0.8
	case strings.ContainsAny(normalized, `"'`) || len(normalized) < 10:
		analysis.QueryType = QueryTypeExact
		analysis.Confidence = 0.9
	default:
		analysis.QueryType = QueryTypeFuzzy
		analysis.Confidence = 0.5
	}

	return analysis
}
