package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		docToken string
		want     float64
	}{
		{"identical", "database", "database", 1.0},
		{"substring short-circuits", "data", "database", 1.0},
		{"single edit", "databse", "database", 1.0 - 1.0/8.0},
		{"disjoint", "zzzzzz", "alpha", 0.0},
		{"both empty", "", "", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, editSimilarity(tt.token, tt.docToken), 1e-9)
		})
	}
}

func TestQueryTokens(t *testing.T) {
	assert.Equal(t, []string{"upload", "pipeline"}, queryTokens("an upload pipeline", 3))
	assert.Empty(t, queryTokens("a b c", 3))
	assert.Empty(t, queryTokens("", 3))
}

func TestSearchText(t *testing.T) {
	record := testRecord("Fix The Login Bug", "Critical", "Auth")
	assert.Equal(t, "fix the login bug critical auth", searchText(record))

	untagged := testRecord("Plain Content")
	assert.Equal(t, "plain content", searchText(untagged))
}
