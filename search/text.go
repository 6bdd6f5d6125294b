package search

import (
	"strings"

	"github.com/poiesic/memrank/core"
	"github.com/xrash/smetrics"
)

// Stop words excluded from heuristic tag extraction and verbatim checks
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "what": true, "when": true, "where": true,
	"how": true, "about": true, "into": true, "over": true,
}

// contentText returns the lower-cased content view of a record.
func contentText(record *core.MemoryRecord) string {
	return strings.ToLower(record.Content)
}

// tagText returns the lower-cased joined tag string of a record.
func tagText(record *core.MemoryRecord) string {
	return strings.ToLower(strings.Join(record.Tags, " "))
}

// searchText returns the combined lower-cased content+tags view of a record.
func searchText(record *core.MemoryRecord) string {
	if len(record.Tags) == 0 {
		return contentText(record)
	}
	return contentText(record) + " " + tagText(record)
}

// queryTokens splits a normalized query into whitespace tokens of at least
// minLen characters.
func queryTokens(normalized string, minLen int) []string {
	words := strings.Fields(normalized)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) >= minLen {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// editSimilarity computes an edit-distance-based similarity between a query
// token and a document token. A substring hit short-circuits to 1.0;
// otherwise similarity is 1 - distance/maxLength.
func editSimilarity(token, docToken string) float64 {
	if token == docToken || strings.Contains(docToken, token) {
		return 1.0
	}
	maxLen := len(token)
	if len(docToken) > maxLen {
		maxLen = len(docToken)
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := smetrics.WagnerFischer(token, docToken, 1, 1, 1)
	return 1.0 - float64(dist)/float64(maxLen)
}
