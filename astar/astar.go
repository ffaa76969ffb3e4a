package astar

import (
	"container/heap"
	"math"

	"github.com/J0knee10/arcplan/arena"
)

// AStar runs kinematic searches over one collision grid. It borrows the
// grid read-only and memoises realised path costs per (start, goal)
// pose pair for the scheduler's cost-matrix pass.
//
// An AStar value is bound to one planning call; it is not safe for
// concurrent use and is discarded when the call returns.
type AStar struct {
	grid      *arena.Grid
	costCache map[pairKey]float64
}

// New constructs a search bound to g.
// Returns ErrNilGrid when g is nil.
func New(g *arena.Grid) (*AStar, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return &AStar{
		grid:      g,
		costCache: make(map[pairKey]float64),
	}, nil
}

// heuristic is the straight-line Euclidean distance between cell
// centres. Admissible: the cheapest edge covers one cell at cost 1.
func heuristic(a, b arena.Cell) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// neighbor couples a successor state with its edge cost.
type neighbor struct {
	state arena.Cell
	cost  float64
}

// neighbors expands state in a fixed deterministic order:
// straight forward, straight backward, then FL, FR, BL, BR arcs.
func (a *AStar) neighbors(state arena.Cell) []neighbor {
	out := make([]neighbor, 0, 6)
	x, y, h := state.X, state.Y, state.H

	// 1) Straight movement: one cell along the heading axis, both ways.
	dx, dy := h.Delta()
	for _, sign := range [2]int{1, -1} {
		nx, ny := x+dx*sign, y+dy*sign
		if a.grid.Reachable(nx, ny) {
			out = append(out, neighbor{
				state: arena.NewCell(nx, ny, h),
				cost:  arena.StraightCost,
			})
		}
	}

	// 2) 90° arcs. Each needs its endpoint clear AND the full swept
	//    body area clear — the endpoint test alone clips corners.
	for _, kind := range arcOrder {
		move, ok := arcTable[kind][h]
		if !ok {
			// ErrArcTable territory: h left the four-heading domain.
			continue
		}
		nx, ny := x+move.dx, y+move.dy
		if !a.grid.ReachableTurning(nx, ny) {
			continue
		}
		if !a.sweepClear(x, y, move.dx, move.dy) {
			continue
		}
		out = append(out, neighbor{
			state: arena.NewCell(nx, ny, move.to),
			cost:  arena.TurnCost + arena.TurnRadius,
		})
	}

	return out
}

// sweepClear verifies the eight swept cells of an arc whose endpoint
// displacement is (dx, dy), relative to the arc's start cell.
func (a *AStar) sweepClear(x, y, dx, dy int) bool {
	sx, sy := 1, 1
	if dx < 0 {
		sx = -1
	}
	if dy < 0 {
		sy = -1
	}
	for _, off := range sweepOffsets {
		if !a.grid.ReachableTurning(x+off[0]*sx, y+off[1]*sy) {
			return false
		}
	}

	return true
}

// Search returns the waypoint sequence start … goal, or nil when no
// path exists. The goal matches on the exact (x, y, heading) triple.
//
// On success the realised cost g* is recorded in the cost cache under
// the (start, goal) pose pair.
//
// Complexity: O(S log S) over visited states S; Memory: O(S).
func (a *AStar) Search(start, goal arena.Cell) []arena.Cell {
	// Ephemeral per-search state. gScores doubles as the membership
	// test for "seen with some cost"; closed marks finalised poses.
	gScores := map[arena.Pose]float64{start.Pose: 0}
	closed := make(map[arena.Pose]bool)

	pq := make(nodePQ, 0, 64)
	heap.Init(&pq)

	seq := 0
	heap.Push(&pq, &node{state: start, g: 0, f: heuristic(start, goal), seq: seq})

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*node)
		curr := current.state

		// Goal test: exact (x, y, heading) match.
		if curr.Pose == goal.Pose {
			a.costCache[pairKey{from: start.Pose, to: goal.Pose}] = current.g

			return reconstruct(current)
		}

		// Lazy decrease-key: skip stale heap entries.
		if closed[curr.Pose] {
			continue
		}
		closed[curr.Pose] = true

		for _, nb := range a.neighbors(curr) {
			if closed[nb.state.Pose] {
				continue
			}
			tentative := current.g + nb.cost
			if best, seen := gScores[nb.state.Pose]; !seen || tentative < best {
				gScores[nb.state.Pose] = tentative
				seq++
				heap.Push(&pq, &node{
					state:  nb.state,
					g:      tentative,
					f:      tentative + heuristic(nb.state, goal),
					seq:    seq,
					parent: current,
				})
			}
		}
	}

	return nil
}

// CachedCost returns the memoised g* for a previously successful
// (start, goal) search. The boolean is false when the pair was never
// searched successfully — for a pair Search just returned a path for,
// that is ErrCostCacheMiss territory upstream.
func (a *AStar) CachedCost(start, goal arena.Cell) (float64, bool) {
	cost, ok := a.costCache[pairKey{from: start.Pose, to: goal.Pose}]

	return cost, ok
}

// reconstruct walks parent links back to the root and reverses.
func reconstruct(n *node) []arena.Cell {
	var path []arena.Cell
	for ; n != nil; n = n.parent {
		path = append(path, n.state)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
