package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_TagBased(t *testing.T) {
	analysis := Analyze("urgent")

	assert.Equal(t, QueryTypeTagBased, analysis.QueryType)
	assert.Equal(t, 0.8, analysis.Confidence)
	assert.Equal(t, "urgent", analysis.NormalizedQuery)
	assert.Contains(t, analysis.ExtractedTags, "critical-issues")
	assert.Contains(t, analysis.ExtractedTags, "high-priority")
	// The token itself qualifies as a heuristic content word.
	assert.Contains(t, analysis.ExtractedTags, "urgent")
}

func TestAnalyze_SemanticForLongProse(t *testing.T) {
	analysis := Analyze("investigate the occasional timeout in the upload pipeline")

	assert.Equal(t, QueryTypeSemantic, analysis.QueryType)
	assert.Equal(t, 0.7, analysis.Confidence)
	// Content words still land in the extracted tag set even though the
	// keyword table matched nothing.
	assert.Contains(t, analysis.ExtractedTags, "timeout")
	assert.Contains(t, analysis.ExtractedTags, "pipeline")
	assert.NotContains(t, analysis.ExtractedTags, "the")
}

func TestAnalyze_SemanticWinsOverQuotedExact(t *testing.T) {
	// Longer than 20 characters, quoted, no keyword-table hits: the prose
	// rule is checked first and must win.
	analysis := Analyze("'the wind whispered gently tonight'")

	assert.Equal(t, QueryTypeSemantic, analysis.QueryType)
	assert.Equal(t, 0.7, analysis.Confidence)
}

func TestAnalyze_ExactForQuotedQuery(t *testing.T) {
	analysis := Analyze("'quux flux'")

	assert.Equal(t, QueryTypeExact, analysis.QueryType)
	assert.Equal(t, 0.9, analysis.Confidence)
}

func TestAnalyze_ExactForShortQuery(t *testing.T) {
	analysis := Analyze("zzz")

	assert.Equal(t, QueryTypeExact, analysis.QueryType)
	assert.Equal(t, 0.9, analysis.Confidence)
	assert.Empty(t, analysis.ExtractedTags)
}

func TestAnalyze_FuzzyDefault(t *testing.T) {
	// 10-20 characters, no quotes, no keyword hits.
	analysis := Analyze("quux corge grault")

	assert.Equal(t, QueryTypeFuzzy, analysis.QueryType)
	assert.Equal(t, 0.5, analysis.Confidence)
}

func TestAnalyze_Normalization(t *testing.T) {
	analysis := Analyze("  URGENT  ")

	assert.Equal(t, "urgent", analysis.NormalizedQuery)
	assert.Equal(t, QueryTypeTagBased, analysis.QueryType)
}

func TestAnalyze_EmptyQuery(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		analysis := Analyze(query)

		assert.Equal(t, "", analysis.NormalizedQuery)
		assert.Empty(t, analysis.ExtractedTags)
		assert.NotZero(t, analysis.Confidence)
		assert.NotEmpty(t, analysis.QueryType)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	first := Analyze("urgent login error")
	second := Analyze("urgent login error")

	assert.Equal(t, first, second)
}
