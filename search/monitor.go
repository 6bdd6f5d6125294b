package search

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type Monitor interface {
	Start(query string)
	AfterAnalysis(analysis QueryAnalysis)
	StrategySkipped(name string)
	AfterStrategy(name string, matches []ScoredMatch)
	AfterCombine(matches []ScoredMatch)
	Finish(outcome *Outcome)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) AfterAnalysis(_ QueryAnalysis)           {}
func (n *noopMonitor) StrategySkipped(_ string)                {}
func (n *noopMonitor) AfterStrategy(_ string, _ []ScoredMatch) {}
func (n *noopMonitor) AfterCombine(_ []ScoredMatch)            {}
func (n *noopMonitor) Finish(_ *Outcome)                       {}
