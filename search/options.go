package search

// Default option values.
const (
	DefaultLimit    = 10
	DefaultMinScore = 0.3
)

// Options controls one search call.
type Options struct {
	Limit          int     // max results (default 10)
	Fuzzy          bool    // enable the fuzzy-content strategy (default on)
	TagSearch      bool    // enable the tag-based strategy (default on)
	SemanticSearch bool    // enable the semantic-similarity strategy (default on)
	MinScore       float64 // minimum final score a result must reach (default 0.3)
	TimeWeight     bool    // apply time-decay/access-frequency weighting (default on)
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		Limit:          DefaultLimit,
		Fuzzy:          true,
		TagSearch:      true,
		SemanticSearch: true,
		MinScore:       DefaultMinScore,
		TimeWeight:     true,
	}
}

// normalized clamps out-of-range values to safe defaults. Invalid options
// are never rejected.
func (o Options) normalized() Options {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.MinScore < 0 || o.MinScore > 1 {
		o.MinScore = DefaultMinScore
	}
	return o
}
