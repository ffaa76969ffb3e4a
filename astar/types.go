// Package astar - node, priority queue, arc tables and sentinel errors.
package astar

import (
	"errors"

	"github.com/J0knee10/arcplan/arena"
)

// Sentinel errors.
var (
	// ErrNilGrid indicates the search was constructed without a grid.
	ErrNilGrid = errors.New("astar: nil grid")

	// ErrCostCacheMiss indicates a cost lookup for a pair the search
	// reported reachable; reaching it is an internal inconsistency.
	ErrCostCacheMiss = errors.New("astar: cost cache miss for searched pair")

	// ErrArcTable indicates an arc lookup with an out-of-domain heading;
	// reaching it is an internal inconsistency.
	ErrArcTable = errors.New("astar: no arc table entry for heading")
)

// arcKind enumerates the four 90° arc manoeuvres in expansion order.
type arcKind int

const (
	arcFL arcKind = iota // forward-left:  steer left, drive forward
	arcFR                // forward-right: steer right, drive forward
	arcBL                // backward-left: steer left, drive reverse (nose swings right)
	arcBR                // backward-right: steer right, drive reverse (nose swings left)
)

// arcOrder fixes neighbour expansion order for determinism.
var arcOrder = [...]arcKind{arcFL, arcFR, arcBL, arcBR}

// arcMove is one entry of the fixed arc displacement table.
type arcMove struct {
	dx, dy int
	to     arena.Heading
}

// r is the arc radius in cells, aliased for table readability.
const r = arena.TurnRadius

// arcTable maps (manoeuvre, current heading) to the endpoint
// displacement and resulting heading. These sixteen entries are the
// whole kinematic model of turning; they are a contract, not a tuning
// surface.
var arcTable = map[arcKind]map[arena.Heading]arcMove{
	arcFL: {
		arena.North: {-r, +r, arena.West},
		arena.East:  {+r, +r, arena.North},
		arena.South: {+r, -r, arena.East},
		arena.West:  {-r, -r, arena.South},
	},
	arcFR: {
		arena.North: {+r, +r, arena.East},
		arena.East:  {+r, -r, arena.South},
		arena.South: {-r, -r, arena.West},
		arena.West:  {-r, +r, arena.North},
	},
	arcBL: {
		arena.North: {-r, -r, arena.East},
		arena.East:  {-r, +r, arena.South},
		arena.South: {+r, +r, arena.West},
		arena.West:  {+r, -r, arena.North},
	},
	arcBR: {
		arena.North: {+r, -r, arena.West},
		arena.East:  {-r, -r, arena.North},
		arena.South: {-r, +r, arena.East},
		arena.West:  {+r, +r, arena.South},
	},
}

// sweepOffsets lists, per unit step signs (sx, sy) of an arc's endpoint
// displacement, the relative cells the robot body passes through while
// turning. Every one of them must satisfy the clearance predicate for
// the arc to be admitted.
//
//	(sx,0), (0,sy)                       — entry cells
//	(sx,sy), (2sx,sy), (sx,2sy), (2sx,2sy) — core arc / diagonal
//	(2sx,3sy), (3sx,2sy)                 — exit cells
var sweepOffsets = [8][2]int{
	{1, 0}, {0, 1},
	{1, 1}, {2, 1}, {1, 2}, {2, 2},
	{2, 3}, {3, 2},
}

// node is a single A* search node. Nodes are linked through parent for
// path reconstruction.
type node struct {
	state  arena.Cell
	g      float64 // realised cost from start
	f      float64 // g + heuristic
	seq    int     // insertion sequence, FIFO tie-break
	parent *node
}

// nodePQ is a min-heap of search nodes ordered by f, with FIFO
// insertion order breaking ties.
type nodePQ []*node

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*node)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// pairKey identifies a (start, goal) pair in the cost cache. Only the
// pose triples participate; snapshot ids and penalties are excluded so
// the scheduler never suffers key misses from metadata variation.
type pairKey struct {
	from, to arena.Pose
}
