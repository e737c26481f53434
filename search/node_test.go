package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridworld"
	"github.com/katalvlaran/gridpath/search"
)

// TestExpand_Corner: from the reference start only Up and Right succeed.
func TestExpand_Corner(t *testing.T) {
	g := gridworld.Reference()
	parent := search.Node{
		Position: g.Start(),
		Actions:  []gridworld.Action{},
		PathCost: 0,
	}
	succ := search.Expand(g, parent)
	require.Len(t, succ, 2)

	assert.Equal(t, gridworld.Position{Row: 7, Col: 0}, succ[0].Position)
	assert.Equal(t, []gridworld.Action{gridworld.Up}, succ[0].Actions)
	assert.Equal(t, 1, succ[0].PathCost)

	assert.Equal(t, gridworld.Position{Row: 8, Col: 1}, succ[1].Position)
	assert.Equal(t, []gridworld.Action{gridworld.Right}, succ[1].Actions)
	assert.Equal(t, 1, succ[1].PathCost)
}

// TestExpand_ChargesEntryCost: the cost added is that of the cell entered.
func TestExpand_ChargesEntryCost(t *testing.T) {
	g := gridworld.Reference()
	// (3,2) has cost 1; its right neighbor (3,3) costs 10, up (2,2) is a wall.
	parent := search.Node{Position: gridworld.Position{Row: 3, Col: 2}, PathCost: 4}
	costs := make(map[gridworld.Action]int)
	for _, s := range search.Expand(g, parent) {
		costs[s.Actions[len(s.Actions)-1]] = s.PathCost
	}
	assert.Equal(t, map[gridworld.Action]int{
		gridworld.Down:  5,
		gridworld.Left:  5,
		gridworld.Right: 14,
	}, costs)
}

// TestExpand_DoesNotAlias makes sure siblings never share an action backing array.
func TestExpand_DoesNotAlias(t *testing.T) {
	g := gridworld.Reference()
	acts := make([]gridworld.Action, 1, 8)
	acts[0] = gridworld.Right
	parent := search.Node{Position: gridworld.Position{Row: 5, Col: 2}, Actions: acts, PathCost: 1}

	succ := search.Expand(g, parent)
	require.Len(t, succ, 4)
	for i, s := range succ {
		assert.Equal(t, gridworld.Right, s.Actions[0])
		assert.Equal(t, gridworld.Actions()[i], s.Actions[1])
	}
	assert.Len(t, parent.Actions, 1)
}
