package hamiltonian

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/J0knee10/arcplan/arena"
	"github.com/J0knee10/arcplan/astar"
)

// Scheduler solves the visit-ordering problem and generates the full
// A* path realising the chosen order.
//
// The grid handed to New is the COLLISION grid — it must contain every
// physical obstacle on the arena so that no A* segment ever plans
// through one. The optional target list narrows which obstacles get
// snapshot visits; collision checks always use the full grid.
type Scheduler struct {
	grid  *arena.Grid
	start arena.Cell
	astar *astar.AStar
	log   *zap.Logger
}

// New constructs a scheduler for the given collision grid and robot
// start cell. Returns ErrNilGrid when grid is nil.
func New(grid *arena.Grid, start arena.Cell, opts ...Option) (*Scheduler, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	search, err := astar.New(grid)
	if err != nil {
		return nil, err
	}

	s := &Scheduler{
		grid:  grid,
		start: start,
		astar: search,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// targetList resolves the obstacle set to plan snapshot visits for:
// the explicit subset when given, else every obstacle on the grid.
func (s *Scheduler) targetList(targets []*arena.Obstacle) []*arena.Obstacle {
	if targets != nil {
		return targets
	}

	return s.grid.Obstacles
}

// nodeList assembles [start, v₁, …, vₙ]: per target obstacle, the first
// viewing candidate A* can reach from the start; failing that, the
// first geometrically valid candidate; failing that, the sentinel.
func (s *Scheduler) nodeList(targets []*arena.Obstacle, retrying bool) []arena.Cell {
	positions := make([]arena.Cell, 0, len(targets)+1)
	positions = append(positions, s.start)

	for _, obs := range targets {
		valid := obs.ValidViewingCandidates(s.grid, retrying, true)

		var selected arena.Cell
		found := false
		for _, cand := range valid {
			if s.astar.Search(s.start, cand) != nil {
				selected, found = cand, true
				break
			}
		}
		if !found && len(valid) > 0 {
			// Geometrically valid but not provably reachable from the
			// start; the cost matrix decides its fate pair-by-pair.
			selected, found = valid[0], true
		}
		if !found {
			s.log.Warn("obstacle has no safe viewing spots",
				zap.Int("obstacle_id", obs.ID))
			selected = arena.SentinelCell()
		}
		positions = append(positions, selected)
	}

	return positions
}

// CostMatrix fills the (n+1)×(n+1) asymmetric matrix over positions:
//
//	C[i][i] = 0
//	C[i][0] = 0                      (open-tour trick)
//	C[i][j] = InfCost                when either endpoint is a sentinel
//	C[i][j] = g*(i→j) + penalty(vⱼ)  when A* connects them
//	C[i][j] = InfCost                otherwise
//
// Returns astar.ErrCostCacheMiss when a successful search has no cached
// cost — an internal inconsistency, never expected in practice.
func (s *Scheduler) CostMatrix(positions []arena.Cell) (*mat.Dense, error) {
	n := len(positions)
	c := mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				c.Set(i, j, 0)
			case j == 0:
				// Returning to start is free: the solver then produces
				// an open Hamiltonian path, not a cycle.
				c.Set(i, j, 0)
			case positions[i].IsSentinel() || positions[j].IsSentinel():
				c.Set(i, j, InfCost)
			default:
				if s.astar.Search(positions[i], positions[j]) == nil {
					c.Set(i, j, InfCost)
					continue
				}
				g, ok := s.astar.CachedCost(positions[i], positions[j])
				if !ok {
					return nil, fmt.Errorf("%w: %s → %s",
						astar.ErrCostCacheMiss, positions[i], positions[j])
				}
				c.Set(i, j, g+positions[j].Penalty)
			}
		}
	}

	return c, nil
}

// FindOptimalOrder solves the ordering problem for the target set
// (nil → all grid obstacles), degrading to the best feasible subset
// when the full tour is infeasible.
//
// Complexity: O(n²) A* searches for the matrix, then O(n²·2ⁿ) DP per
// attempted subset; subsets are enumerated largest-first and the loop
// stops at the first size with any feasible tour.
func (s *Scheduler) FindOptimalOrder(retrying bool, targets []*arena.Obstacle) (Result, error) {
	targetObs := s.targetList(targets)
	positions := s.nodeList(targetObs, retrying)

	s.log.Info("solving fastest-path ordering",
		zap.Int("targets", len(targetObs)))

	c, err := s.CostMatrix(positions)
	if err != nil {
		return Result{}, err
	}

	// 1) Full tour first.
	perm, dist, err := heldKarp(c)
	if err == nil && dist < InfCost {
		s.log.Info("optimal order found",
			zap.Int("visited", len(targetObs)),
			zap.Float64("cost", dist))

		return Result{Permutation: perm, Distance: dist, Positions: positions}, nil
	}

	// 2) Subset degradation: largest k first, all k-combinations, keep
	//    the cheapest feasible tour of the first k that yields one.
	n := len(targetObs)
	for k := n - 1; k >= 1; k-- {
		bestDist := InfCost
		var bestPerm []int

		combinations(n, k, func(comb []int) {
			// Global node indices: start plus the chosen obstacles
			// (comb entries are 0-based over targets; +1 skips start).
			indices := make([]int, 0, k+1)
			indices = append(indices, 0)
			for _, t := range comb {
				indices = append(indices, t+1)
			}

			sub := submatrix(c, indices)
			perm, dist, err := heldKarp(sub)
			if err != nil || dist >= InfCost {
				return
			}
			if dist < bestDist {
				bestDist = dist
				bestPerm = make([]int, len(perm))
				for i, local := range perm {
					bestPerm[i] = indices[local]
				}
			}
		})

		if bestPerm != nil {
			rotateToStart(bestPerm)
			res := Result{
				Permutation: bestPerm,
				Distance:    bestDist,
				Skipped:     skippedIDs(targetObs, bestPerm),
				Positions:   positions,
			}
			s.log.Warn("degraded to feasible subset",
				zap.Int("visited", k),
				zap.Int("targets", n),
				zap.Ints("skipped_ids", res.Skipped),
				zap.Float64("cost", bestDist))

			return res, nil
		}
	}

	// 3) Completely boxed in: visit nothing, succeed with an empty tour.
	s.log.Warn("all paths infeasible; robot is boxed in",
		zap.Int("targets", n))

	return Result{
		Permutation: []int{0},
		Distance:    0,
		Skipped:     skippedIDs(targetObs, []int{0}),
		Positions:   positions,
	}, nil
}

// GenerateFullPath expands a scheduling result into the dense waypoint
// path: consecutive permutation pairs are A*-connected, segments are
// stitched with the join waypoint deduplicated, and the final waypoint
// of each segment is tagged with the visited obstacle's snapshot id.
// Pairs returning to the start node are never emitted (open tour).
func (s *Scheduler) GenerateFullPath(res Result, targets []*arena.Obstacle) []arena.Cell {
	targetObs := s.targetList(targets)
	positions := res.Positions

	var fullPath []arena.Cell
	for i := 0; i+1 < len(res.Permutation); i++ {
		from, to := res.Permutation[i], res.Permutation[i+1]
		if to == 0 {
			continue
		}

		segment := s.astar.Search(positions[from], positions[to])
		if segment == nil {
			continue
		}

		if i == 0 {
			fullPath = append(fullPath, segment...)
		} else {
			// Segment starts where the previous one ended.
			fullPath = append(fullPath, segment[1:]...)
		}

		if len(fullPath) > 0 {
			fullPath[len(fullPath)-1].Snap = targetObs[to-1].ID
		}
	}

	return fullPath
}

// combinations invokes fn with every k-combination of {0..n-1} in
// lexicographic order. The slice passed to fn is reused between calls.
func combinations(n, k int, fn func([]int)) {
	if k <= 0 || k > n {
		return
	}
	comb := make([]int, k)
	for i := range comb {
		comb[i] = i
	}
	for {
		fn(comb)
		// Advance to the next combination.
		i := k - 1
		for i >= 0 && comb[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		comb[i]++
		for j := i + 1; j < k; j++ {
			comb[j] = comb[j-1] + 1
		}
	}
}

// submatrix extracts the dense minor of c over the given row/column
// indices, in order.
func submatrix(c *mat.Dense, indices []int) *mat.Dense {
	m := len(indices)
	sub := mat.NewDense(m, m, nil)
	for i, ri := range indices {
		for j, cj := range indices {
			sub.Set(i, j, c.At(ri, cj))
		}
	}

	return sub
}

// rotateToStart rotates perm in place so node 0 leads.
func rotateToStart(perm []int) {
	for i, v := range perm {
		if v == 0 {
			rotated := append(append([]int{}, perm[i:]...), perm[:i]...)
			copy(perm, rotated)

			return
		}
	}
}

// skippedIDs lists obstacle ids with no node in perm.
func skippedIDs(targets []*arena.Obstacle, perm []int) []int {
	visited := make(map[int]bool, len(perm))
	for _, idx := range perm {
		visited[idx] = true
	}
	var skipped []int
	for i, obs := range targets {
		if !visited[i+1] {
			skipped = append(skipped, obs.ID)
		}
	}

	return skipped
}
