package scan

import "github.com/matzehuels/cargoscan/pkg/deps"

// Aggregator accumulates records across manifests and tracks which projects
// were already visited. It is not safe for concurrent use.
type Aggregator struct {
	seen    map[string]struct{}
	records []deps.Record
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		seen:    make(map[string]struct{}),
		records: []deps.Record{},
	}
}

// Visit marks project as seen. It returns true on the first call for a
// project and false on every later call.
func (a *Aggregator) Visit(project string) bool {
	if _, ok := a.seen[project]; ok {
		return false
	}
	a.seen[project] = struct{}{}
	return true
}

// Add appends records in the order given.
func (a *Aggregator) Add(records ...deps.Record) {
	a.records = append(a.records, records...)
}

// Records returns the accumulated records in insertion order. The result is
// never nil.
func (a *Aggregator) Records() []deps.Record {
	return a.records
}

// Len returns the number of accumulated records.
func (a *Aggregator) Len() int { return len(a.records) }

// Projects returns the number of distinct projects visited.
func (a *Aggregator) Projects() int { return len(a.seen) }
