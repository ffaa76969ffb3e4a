// Package hamiltonian - configuration, result type and sentinel errors.
package hamiltonian

import (
	"errors"

	"go.uber.org/zap"

	"github.com/J0knee10/arcplan/arena"
)

// InfCost is the cost-matrix infinity sentinel. Any value ≥ InfCost is
// infeasible; never add penalties to it and never let it near NaN or
// float overflow territory.
const InfCost = 1e9

// Sentinel errors.
var (
	// ErrNilGrid indicates the scheduler was constructed without a grid.
	ErrNilGrid = errors.New("hamiltonian: nil grid")

	// ErrNoFeasibleTour indicates no tour under InfCost exists for the
	// given matrix; the subset-degradation loop catches it internally.
	ErrNoFeasibleTour = errors.New("hamiltonian: no feasible tour")

	// ErrMatrixShape indicates a non-square or undersized cost matrix
	// reached the exact solver; reaching it is an internal inconsistency.
	ErrMatrixShape = errors.New("hamiltonian: malformed cost matrix")
)

// Result is the outcome of one scheduling pass.
type Result struct {
	// Permutation is the visit order over node indices, always starting
	// at 0 (the robot start node). Index i > 0 refers to Positions[i]
	// and to the i-th target obstacle.
	Permutation []int

	// Distance is the Held–Karp tour cost of Permutation, including
	// viewing penalties; 0 when nothing is visitable.
	Distance float64

	// Skipped lists obstacle ids dropped by subset degradation.
	Skipped []int

	// Positions is the node list the permutation indexes into:
	// Positions[0] is the start cell, Positions[i] the selected viewing
	// cell (or sentinel) of target obstacle i−1. Path generation reuses
	// this exact list so ordering and pathing can never desync.
	Positions []arena.Cell
}

// Option customises a Scheduler.
type Option func(*Scheduler)

// WithLogger installs a structured logger for scheduling progress and
// skipped-obstacle reporting. Default: zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(s *Scheduler) {
		if log != nil {
			s.log = log
		}
	}
}
