package search

import "github.com/poiesic/partdex/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterTokenSearch(ids []core.ID)
	FuzzyHit(part *core.Part, similarity float64)
	Finish(results []*Result)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                   {}
func (n *noopMonitor) AfterTokenSearch(_ []core.ID)     {}
func (n *noopMonitor) FuzzyHit(_ *core.Part, _ float64) {}
func (n *noopMonitor) Finish(_ []*Result)               {}
