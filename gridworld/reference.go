package gridworld

// Reference dimensions and endpoints of the demonstration instance.
const (
	ReferenceRows = 9
	ReferenceCols = 9
)

var (
	// ReferenceStart is the bottom-left corner.
	ReferenceStart = Position{Row: 8, Col: 0}
	// ReferenceGoal is the top-right corner.
	ReferenceGoal = Position{Row: 0, Col: 8}
)

// referenceObstacles: 1 = wall. A hook-shaped wall separates the start from
// the goal, open on the left side and along row 8.
var referenceObstacles = [ReferenceRows][ReferenceCols]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, 0, 0},
	{0, 0, 0, 1, 1, 1, 1, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var referenceCosts = [ReferenceRows][ReferenceCols]int{
	{1, 1, 1, 5, 5, 5, 5, 1, 1},
	{1, 1, 1, 5, 5, 5, 5, 1, 1},
	{1, 1, 10, 10, 10, 10, 10, 1, 1},
	{1, 1, 1, 10, 10, 10, 10, 1, 1},
	{1, 1, 1, 1, 1, 10, 10, 1, 1},
	{1, 1, 1, 1, 1, 10, 10, 1, 1},
	{1, 1, 1, 1, 10, 10, 10, 1, 1},
	{1, 1, 1, 10, 10, 10, 10, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// Reference returns a fresh copy of the 9×9 demonstration grid with start
// (8,0) and goal (0,8). Options may move either endpoint.
// It panics if an option places an endpoint on a wall or off the grid.
func Reference(opts ...Option) *Grid {
	obstacles := make([][]bool, ReferenceRows)
	costs := make([][]int, ReferenceRows)
	for r := 0; r < ReferenceRows; r++ {
		obstacles[r] = make([]bool, ReferenceCols)
		costs[r] = make([]int, ReferenceCols)
		for c := 0; c < ReferenceCols; c++ {
			obstacles[r][c] = referenceObstacles[r][c] == 1
			costs[r][c] = referenceCosts[r][c]
		}
	}
	g, err := New(obstacles, costs, ReferenceStart, ReferenceGoal, opts...)
	if err != nil {
		panic(err)
	}

	return g
}
