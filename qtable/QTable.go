// Package qtable implements a tabular action-value table mapping
// state ids to the statistics of each action taken in that state.
//
// A Table is passive storage. Ids are supplied by the caller and are
// never validated: two states (or two actions of one state) reporting
// the same id share statistics. A Table only grows; entries are never
// evicted. A Table is not safe for concurrent use.
package qtable

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/samuelfneumann/bayesq/stats"
)

// Bucket maps action ids to the statistics of those actions in a
// single state
type Bucket map[string]stats.ActionStatter

// Table stores the statistics of each (state, action) pair
type Table struct {
	data map[string]Bucket
}

// New returns a new, empty Table
func New() *Table {
	return &Table{data: make(map[string]Bucket)}
}

// Stats returns a copy of the statistics stored for the action in the
// state, and whether any were stored. Stats never modifies the Table.
func (t *Table) Stats(stateID, actionID string) (stats.ActionStatter, bool) {
	bucket, ok := t.data[stateID]
	if !ok {
		return nil, false
	}

	s, ok := bucket[actionID]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// Update overwrites, or inserts, the statistics stored for the action
// in the state. The Table stores its own copy of s.
func (t *Table) Update(stateID, actionID string, s stats.ActionStatter) {
	t.Bucket(stateID)[actionID] = s.Clone()
}

// Bucket returns the action statistics of a state, creating an empty
// bucket if the state has never been seen. The returned Bucket is the
// Table's own storage; changes to it are changes to the Table.
func (t *Table) Bucket(stateID string) Bucket {
	bucket, ok := t.data[stateID]
	if !ok {
		bucket = make(Bucket)
		t.data[stateID] = bucket
	}
	return bucket
}

// Len returns the number of states that have a bucket
func (t *Table) Len() int {
	return len(t.data)
}

// States returns the ids of all states that have a bucket, sorted
// lexicographically
func (t *Table) States() []string {
	ids := maps.Keys(t.data)
	slices.Sort(ids)
	return ids
}

// Snapshot returns a deep copy of the Table's contents
func (t *Table) Snapshot() map[string]map[string]stats.ActionStatter {
	snapshot := make(map[string]map[string]stats.ActionStatter, len(t.data))
	for stateID, bucket := range t.data {
		actions := make(map[string]stats.ActionStatter, len(bucket))
		for actionID, s := range bucket {
			actions[actionID] = s.Clone()
		}
		snapshot[stateID] = actions
	}
	return snapshot
}
