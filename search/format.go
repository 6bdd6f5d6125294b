package search

import (
	"fmt"
	"strings"
	"time"
)

// previewLength caps the content excerpt shown per result.
const previewLength = 100

// FormatResults renders an Outcome as a human-readable diagnostic report.
// Presentation only; the ranked results themselves are in Outcome.Results.
func FormatResults(outcome *Outcome) string {
	if outcome == nil || len(outcome.Results) == 0 {
		return formatNoResults(outcome)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d result(s) (%d matched) in %s\n",
		len(outcome.Results), outcome.TotalMatches, outcome.Elapsed.Round(time.Microsecond))
	fmt.Fprintf(&b, "Query type: %s (confidence %.2f)\n", outcome.Analysis.QueryType, outcome.Analysis.Confidence)
	if len(outcome.Analysis.ExtractedTags) > 0 {
		fmt.Fprintf(&b, "Extracted tags: %s\n", strings.Join(outcome.Analysis.ExtractedTags, ", "))
	}
	fmt.Fprintf(&b, "Strategies: %s\n\n", strings.Join(outcome.StrategiesUsed, ", "))

	for i, result := range outcome.Results {
		fmt.Fprintf(&b, "%d. [%.3f] %s (%s)\n", i+1, result.Score, result.Strategy, result.Record.Type)
		if len(result.Record.Tags) > 0 {
			fmt.Fprintf(&b, "   tags: %s\n", strings.Join(result.Record.Tags, ", "))
		}
		fmt.Fprintf(&b, "   %s\n", preview(result.Record.Content))
		for _, detail := range result.Details {
			fmt.Fprintf(&b, "   - %s\n", detail)
		}
	}
	return b.String()
}

func formatNoResults(outcome *Outcome) string {
	var b strings.Builder
	b.WriteString("No results found.\n\nTry:\n")
	b.WriteString("  - broadening your search terms\n")
	b.WriteString("  - searching by tag (e.g. \"bugs\", \"configuration\")\n")
	b.WriteString("  - lowering the minimum score\n")
	if outcome != nil && len(outcome.StrategiesUsed) > 0 {
		fmt.Fprintf(&b, "\nStrategies tried: %s\n", strings.Join(outcome.StrategiesUsed, ", "))
	}
	return b.String()
}

func preview(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	if len(content) <= previewLength {
		return content
	}
	return content[:previewLength] + "..."
}
