package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/negamax-chess/engine/board"
)

func TestTableInsertAndGet(t *testing.T) {
	tt := NewTable()
	_, found := tt.Get(42)
	assert.False(t, found)

	tt.Insert(42, Entry{Score: 100, BestMove: board.NullMove, DepthSearched: 3, Bound: Exact})
	entry, found := tt.Get(42)
	assert.True(t, found)
	assert.Equal(t, 100, entry.Score)
	assert.Equal(t, 3, entry.DepthSearched)
	assert.Equal(t, Exact, entry.Bound)
}

func TestTableInsertAlwaysReplaces(t *testing.T) {
	tt := NewTable()
	tt.Insert(7, Entry{Score: 1, DepthSearched: 1, Bound: UpperBound})
	tt.Insert(7, Entry{Score: 2, DepthSearched: 1, Bound: LowerBound})

	entry, found := tt.Get(7)
	assert.True(t, found)
	assert.Equal(t, 2, entry.Score)
	assert.Equal(t, LowerBound, entry.Bound)
	assert.Equal(t, 1, tt.Len())
}
