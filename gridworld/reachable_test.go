package gridworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndexRoundTrip checks the row-major index helpers on a non-square grid.
func TestIndexRoundTrip(t *testing.T) {
	g, err := New(
		[][]bool{{false, false, false}, {false, false, false}},
		[][]int{{1, 1, 1}, {1, 1, 1}},
		Position{}, Position{Row: 1, Col: 2},
	)
	require.NoError(t, err)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := Position{r, c}
			assert.Equal(t, p, g.position(g.index(p)))
		}
	}
	assert.Equal(t, 5, g.index(Position{Row: 1, Col: 2}))
}

// TestReachable_Reference: every open cell of the reference grid is connected.
func TestReachable_Reference(t *testing.T) {
	g := Reference()
	open := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.Blocked(Position{r, c}) {
				open++
			}
		}
	}
	got := g.Reachable()
	assert.Len(t, got, open)
	assert.True(t, g.GoalReachable())
}

// TestReachable_Walled: a full wall column cuts the goal off.
//
//	S # G
//	. # .
func TestReachable_Walled(t *testing.T) {
	g, err := New(
		[][]bool{{false, true, false}, {false, true, false}},
		[][]int{{1, 1, 1}, {1, 1, 1}},
		Position{Row: 0, Col: 0}, Position{Row: 0, Col: 2},
	)
	require.NoError(t, err)

	got := g.Reachable()
	assert.Equal(t, map[Position]struct{}{
		{Row: 0, Col: 0}: {},
		{Row: 1, Col: 0}: {},
	}, got)
	assert.False(t, g.GoalReachable())
}
