// Package search implements the alpha-beta negamax driver: move ordering,
// quiescence search, null-move pruning, and the transposition cache that
// backs them.
package search

import "github.com/negamax-chess/engine/board"

// BoundKind classifies how a cached score relates to the true minimax value.
type BoundKind uint8

const (
	// Exact means Score is the true minimax value at DepthSearched.
	Exact BoundKind = iota
	// LowerBound means the true value is at least Score (search failed high).
	LowerBound
	// UpperBound means the true value is at most Score (search never raised alpha).
	UpperBound
)

// Entry is a single transposition table record, keyed externally by Zobrist
// hash.
type Entry struct {
	Score         int
	BestMove      board.Move
	DepthSearched int
	Bound         BoundKind
}

// Table is the transposition cache: position hash to Entry, unconditional
// overwrite on insert. The teacher's two-bucket aging scheme is dropped
// here; spec calls for plain "always replace" semantics with unique keys
// and no ordering requirement.
type Table struct {
	entries map[uint64]Entry
}

// NewTable creates an empty transposition table. A fresh table is expected
// per top-level search invocation; no cross-invocation persistence.
func NewTable() *Table {
	return &Table{entries: make(map[uint64]Entry)}
}

// Get looks up the entry for a position hash.
func (t *Table) Get(hash uint64) (Entry, bool) {
	entry, found := t.entries[hash]
	return entry, found
}

// Insert stores an entry, overwriting any prior entry for the same hash.
func (t *Table) Insert(hash uint64, entry Entry) {
	t.entries[hash] = entry
}

// Len returns the number of entries currently stored, used by the match
// driver's per-move diagnostics.
func (t *Table) Len() int {
	return len(t.entries)
}
