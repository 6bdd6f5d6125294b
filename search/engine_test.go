package search

import (
	"log/slog"
	"testing"

	"github.com/poiesic/memrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine, err := NewEngine()
		require.NoError(t, err)
		assert.NotNil(t, engine)
		assert.Len(t, engine.strategies, 5)
	})

	t.Run("with custom logger", func(t *testing.T) {
		engine, err := NewEngine(WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		engine, err := NewEngine(WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("with worker pool", func(t *testing.T) {
		engine, err := NewEngine(WithPoolSize(4))
		require.NoError(t, err)
		defer engine.Release()
		assert.NotNil(t, engine.pool)
	})
}

func TestSearch_ExactHitUnderDefaults(t *testing.T) {
	// One record, single-word query present in content.
	engine, err := NewEngine()
	require.NoError(t, err)

	corpus := []*core.MemoryRecord{
		testRecord(`{"note":"fix the login bug"}`, "critical"),
	}

	outcome := engine.Search("bug", corpus, DefaultOptions())

	require.Len(t, outcome.Results, 1)
	assert.Greater(t, outcome.Results[0].Score, 0.0)
	assert.Equal(t, 1, outcome.TotalMatches)
	assert.Contains(t, outcome.StrategiesUsed, StrategyExactMatch)
}

func TestSearch_EmptyCorpus(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	outcome := engine.Search("anything at all", nil, DefaultOptions())

	assert.Empty(t, outcome.Results)
	assert.Equal(t, 0, outcome.TotalMatches)
	assert.NotEmpty(t, outcome.StrategiesUsed)
	assert.Contains(t, FormatResults(outcome), "No results found")
}

func TestSearch_TagGating(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	corpus := []*core.MemoryRecord{
		testRecord("fix the login bug", "critical"),
	}

	t.Run("tag strategy runs when enabled", func(t *testing.T) {
		outcome := engine.Search("urgent", corpus, DefaultOptions())
		assert.Contains(t, outcome.StrategiesUsed, StrategyTagBased)
	})

	t.Run("disabling tagSearch removes it even with extracted tags", func(t *testing.T) {
		opts := DefaultOptions()
		opts.TagSearch = false

		outcome := engine.Search("urgent", corpus, opts)

		require.NotEmpty(t, outcome.Analysis.ExtractedTags)
		assert.NotContains(t, outcome.StrategiesUsed, StrategyTagBased)
	})

	t.Run("short query skips semantic", func(t *testing.T) {
		outcome := engine.Search("urgent", corpus, DefaultOptions())
		assert.NotContains(t, outcome.StrategiesUsed, StrategySemanticSimilarity)
	})
}

func TestSearch_Deterministic(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	corpus := []*core.MemoryRecord{
		testRecord("the upload pipeline times out", "infra"),
		testRecord("login bug in the auth service", "bugs"),
		testRecord("database configuration notes", "configuration"),
	}

	opts := DefaultOptions()
	opts.TimeWeight = false // time weighting depends on the clock

	first := engine.Search("upload pipeline", corpus, opts)
	second := engine.Search("upload pipeline", corpus, opts)

	require.Equal(t, len(first.Results), len(second.Results))
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Record.Id, second.Results[i].Record.Id)
		assert.Equal(t, first.Results[i].Score, second.Results[i].Score)
	}
	assert.Equal(t, first.StrategiesUsed, second.StrategiesUsed)
}

func TestSearch_ThresholdAndLimitInvariants(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	corpus := make([]*core.MemoryRecord, 0, 15)
	for i := 0; i < 15; i++ {
		corpus = append(corpus, testRecord("the login bug strikes again", "bugs", string(rune('a'+i))))
	}

	opts := DefaultOptions()
	opts.Limit = 5

	outcome := engine.Search("login bug", corpus, opts)

	assert.LessOrEqual(t, len(outcome.Results), 5)
	assert.Equal(t, 15, outcome.TotalMatches)
	for _, result := range outcome.Results {
		assert.GreaterOrEqual(t, result.Score, opts.MinScore)
	}
}

func TestSearch_ClampsInvalidOptions(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	corpus := make([]*core.MemoryRecord, 0, 20)
	for i := 0; i < 20; i++ {
		corpus = append(corpus, testRecord("the login bug strikes again", "bugs", string(rune('a'+i))))
	}

	opts := DefaultOptions()
	opts.Limit = -5
	opts.MinScore = 7.0

	outcome := engine.Search("login bug", corpus, opts)

	// Clamped to the defaults: limit 10, minScore 0.3.
	assert.Len(t, outcome.Results, 10)
	for _, result := range outcome.Results {
		assert.GreaterOrEqual(t, result.Score, 0.3)
	}
}

func TestSearch_ParallelMatchesSequential(t *testing.T) {
	sequential, err := NewEngine()
	require.NoError(t, err)
	parallel, err := NewEngine(WithPoolSize(4))
	require.NoError(t, err)
	defer parallel.Release()

	corpus := []*core.MemoryRecord{
		testRecord("the upload pipeline times out", "infra"),
		testRecord("login bug in the auth service", "bugs"),
		testRecord("database configuration notes", "configuration"),
		testRecord("how to fix the error quickly"),
	}

	opts := DefaultOptions()
	opts.TimeWeight = false

	a := sequential.Search("fix the upload error", corpus, opts)
	b := parallel.Search("fix the upload error", corpus, opts)

	require.Equal(t, len(a.Results), len(b.Results))
	for i := range a.Results {
		assert.Equal(t, a.Results[i].Record.Id, b.Results[i].Record.Id)
		assert.Equal(t, a.Results[i].Score, b.Results[i].Score)
	}
}

// panicStrategy always panics; used to verify the invocation boundary.
type panicStrategy struct{}

func (panicStrategy) name() string                        { return "panicky" }
func (panicStrategy) applies(QueryAnalysis, Options) bool { return true }
func (panicStrategy) execute(QueryAnalysis, []*core.MemoryRecord) []ScoredMatch {
	panic("malformed record")
}

func TestSearch_StrategyPanicDegradesToZeroMatches(t *testing.T) {
	engine := &Engine{
		strategies: []strategy{panicStrategy{}, exactMatchStrategy{}},
		logger:     slog.Default(),
	}

	corpus := []*core.MemoryRecord{
		testRecord("fix the login bug"),
	}

	outcome := engine.Search("bug", corpus, DefaultOptions())

	// The panicking strategy contributes nothing; the exact strategy still
	// produces its hit.
	require.Len(t, outcome.Results, 1)
	assert.Equal(t, StrategyExactMatch, outcome.Results[0].Strategy)
	assert.Contains(t, outcome.StrategiesUsed, "panicky")
}

func TestSearch_WithMonitor(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	corpus := []*core.MemoryRecord{
		testRecord("fix the login bug", "bugs"),
	}

	monitor := &testMonitor{}
	outcome := engine.SearchWithMonitor("bug", corpus, DefaultOptions(), monitor)

	require.NotNil(t, outcome)
	assert.True(t, monitor.startCalled)
	assert.True(t, monitor.analysisCalled)
	assert.True(t, monitor.finishCalled)
	assert.NotEmpty(t, monitor.strategiesSeen)
}

// testMonitor is a simple test implementation of Monitor
type testMonitor struct {
	startCalled    bool
	analysisCalled bool
	finishCalled   bool
	strategiesSeen []string
}

func (m *testMonitor) Start(string)                  { m.startCalled = true }
func (m *testMonitor) AfterAnalysis(QueryAnalysis)   { m.analysisCalled = true }
func (m *testMonitor) StrategySkipped(string)        {}
func (m *testMonitor) AfterStrategy(name string, _ []ScoredMatch) {
	m.strategiesSeen = append(m.strategiesSeen, name)
}
func (m *testMonitor) AfterCombine([]ScoredMatch) {}
func (m *testMonitor) Finish(*Outcome)            { m.finishCalled = true }
