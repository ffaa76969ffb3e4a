package arena

// Grid is the 20×20 arena board. It owns the obstacle list and answers
// every bounds and clearance query in the pipeline.
//
// A Grid is built once per planning call and treated as read-only by
// the search layers; only bullseye recovery mutates an obstacle face,
// exactly once, before re-planning.
type Grid struct {
	SizeX, SizeY int
	Obstacles    []*Obstacle
}

// NewGrid returns an empty GridSize×GridSize arena.
func NewGrid() *Grid {
	return &Grid{SizeX: GridSize, SizeY: GridSize}
}

// AddObstacle appends o to the grid. Insertion order is preserved; the
// scheduler's node indices follow it.
func (g *Grid) AddObstacle(o *Obstacle) {
	g.Obstacles = append(g.Obstacles, o)
}

// FindObstacle returns the obstacle with the given id, or
// ErrUnknownObstacle when no such obstacle is on the grid.
// Complexity: O(n) over the obstacle list (n ≲ 10).
func (g *Grid) FindObstacle(id int) (*Obstacle, error) {
	for _, o := range g.Obstacles {
		if o.ID == id {
			return o, nil
		}
	}

	return nil, ErrUnknownObstacle
}

// InBounds reports whether the robot centre may occupy (x, y): both
// coordinates must lie in the interior band [MinPadding, MaxPadding].
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return MinPadding <= x && x <= MaxPadding && MinPadding <= y && y <= MaxPadding
}

// Reachable reports whether the robot can occupy (x, y) without
// collision: the position must be in bounds and keep a Chebyshev
// distance greater than Clearance cells to every obstacle.
//
// The same predicate backs straight endpoints, arc endpoints and each
// arc-sweep cell, so a single definition keeps the collision invariant
// consistent across all movement kinds.
//
// Complexity: O(n) over the obstacle list.
func (g *Grid) Reachable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	var dx, dy int
	for _, o := range g.Obstacles {
		dx = abs(o.X - x)
		dy = abs(o.Y - y)
		// Square bounding-box test: a hit when inside the buffer on
		// BOTH axes, i.e. max(dx,dy) ≤ Clearance.
		if dx <= Clearance && dy <= Clearance {
			return false
		}
	}

	return true
}

// ReachableTurning is Reachable for positions visited mid-turn. The
// wider-clearance variant is reserved; today it applies the same
// Clearance as straight motion.
func (g *Grid) ReachableTurning(x, y int) bool {
	return g.Reachable(x, y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
