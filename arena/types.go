package arena

import (
	"errors"
	"fmt"
)

// Sentinel errors for arena construction and lookups.
var (
	// ErrUnknownObstacle indicates an obstacle id was not found on the grid.
	ErrUnknownObstacle = errors.New("arena: unknown obstacle id")
)

// Pose is a robot position and orientation on the grid. It is a value
// type: equality and map-key hashing cover exactly the (X, Y, H) triple.
type Pose struct {
	X int
	Y int
	H Heading
}

// String renders the pose for logs and test failures.
func (p Pose) String() string {
	return fmt.Sprintf("(%d,%d,%s)", p.X, p.Y, p.H)
}

// Cell is a pose enriched with pathfinding metadata: which obstacle to
// photograph on arrival (Snap, NoSnapshot when none) and an additional
// cost for choosing this position as a viewing spot.
//
// Penalty influences the scheduler's cost matrix only; it is never part
// of an A* edge cost, and neither Snap nor Penalty participates in
// state identity — searches key on the embedded Pose alone.
type Cell struct {
	Pose

	// Snap is the id of the obstacle to photograph at this cell, or
	// NoSnapshot.
	Snap int

	// Penalty is the extra cost of using this cell as a viewing spot.
	Penalty float64
}

// NewCell returns a Cell at (x, y, h) with no snapshot and no penalty.
func NewCell(x, y int, h Heading) Cell {
	return Cell{Pose: Pose{X: x, Y: y, H: h}, Snap: NoSnapshot}
}

// String renders the cell, including its snapshot id when assigned.
func (c Cell) String() string {
	if c.Snap == NoSnapshot {
		return c.Pose.String()
	}

	return fmt.Sprintf("(%d,%d,%s,SP%d)", c.X, c.Y, c.H, c.Snap)
}

// sentinelCoord marks the unreachable-obstacle placeholder inserted
// into the scheduler's node list.
const sentinelCoord = -99

// SentinelCell returns the "unreachable" placeholder node. Any cost
// matrix edge touching it is infeasible.
func SentinelCell() Cell {
	return NewCell(sentinelCoord, sentinelCoord, North)
}

// IsSentinel reports whether c is the unreachable placeholder.
func (c Cell) IsSentinel() bool {
	return c.X == sentinelCoord && c.Y == sentinelCoord
}
