package bullseye

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/J0knee10/arcplan/arena"
	"github.com/J0knee10/arcplan/astar"
	"github.com/J0knee10/arcplan/commands"
	"github.com/J0knee10/arcplan/hamiltonian"
)

// ErrNilGrid indicates the handler was constructed without a grid.
var ErrNilGrid = errors.New("bullseye: nil grid")

// Outcome is the full result of one recovery: both phases individually
// plus the stitched unified plan.
type Outcome struct {
	FullPath     []arena.Cell
	FullCommands []string

	Phase1Path     []arena.Cell
	Phase1Commands []string

	Phase2Path     []arena.Cell
	Phase2Commands []string
	Phase2Distance float64

	// Resolved is the robot pose after phase 1 (the live pose when the
	// correct face was unreachable).
	Resolved arena.Cell

	// NewFace echoes the corrected image face.
	NewFace arena.Heading

	// Skipped is true when phase 1 could not reach the correct face and
	// emitted SNAP_FAILED instead of SP.
	Skipped bool
}

// Handler drives two-phase bullseye recovery over a full collision grid.
type Handler struct {
	grid  *arena.Grid
	astar *astar.AStar
	log   *zap.Logger
}

// Option customises a Handler.
type Option func(*Handler)

// WithLogger installs a structured logger for phase transitions.
// Default: zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// New constructs a handler bound to the full collision grid — every
// obstacle still physically on the arena, the bullseye one included.
func New(grid *arena.Grid, opts ...Option) (*Handler, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	search, err := astar.New(grid)
	if err != nil {
		return nil, err
	}

	h := &Handler{grid: grid, astar: search, log: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// PathToCorrectFace plans from the live pose to the first reachable
// viewing candidate of the obstacle's (already corrected) face, trying
// the nominal stand-off before the retry stand-off.
//
// Returns the resolved cell, the waypoint segment and its commands
// (FIN stripped, SP<id> appended). ok is false when no candidate is
// reachable; the command slice then carries only SNAP_FAILED<id>.
func (h *Handler) PathToCorrectFace(obs *arena.Obstacle, live arena.Cell) (resolved arena.Cell, path []arena.Cell, cmds []string, ok bool) {
	for _, retrying := range [2]bool{false, true} {
		for _, candidate := range obs.ValidViewingCandidates(h.grid, retrying, true) {
			segment := h.astar.Search(live, candidate)
			if segment == nil {
				continue
			}

			tape := commands.Generate(segment)
			// The tape continues into phase 2; strip the terminator and
			// mark the snapshot here instead.
			tape = withoutFinish(tape)
			tape = append(tape, commands.Snap(obs.ID))

			return candidate, segment, tape, true
		}
	}

	h.log.Warn("correct face unreachable",
		zap.Int("obstacle_id", obs.ID),
		zap.Stringer("face", obs.Face))

	return live, nil, []string{commands.SnapFailed(obs.ID)}, false
}

// RerouteRemaining re-solves ordering and path generation for the
// obstacles still needing a snapshot, starting from the resolved pose.
// Collision checks run against the handler's full grid; visit is only
// the target subset.
func (h *Handler) RerouteRemaining(start arena.Cell, visit []*arena.Obstacle) (pathOut []arena.Cell, cmds []string, distance float64, err error) {
	if len(visit) == 0 {
		return nil, []string{commands.Finish}, 0, nil
	}

	// Start from the bare pose: the resolved cell carries the bullseye
	// obstacle's snapshot id, which phase 2 must not tag again.
	scheduler, err := hamiltonian.New(h.grid, arena.NewCell(start.X, start.Y, start.H), hamiltonian.WithLogger(h.log))
	if err != nil {
		return nil, nil, 0, err
	}

	res, err := scheduler.FindOptimalOrder(false, visit)
	if err != nil {
		return nil, nil, 0, err
	}

	fullPath := scheduler.GenerateFullPath(res, visit)

	return fullPath, commands.Generate(fullPath), res.Distance, nil
}

// Handle runs the complete recovery.
//
// obstacleID names the bullseye obstacle (must exist on the grid —
// arena.ErrUnknownObstacle otherwise), newFace its true image face, and
// live the robot's current pose. The visit set for phase 2 is every
// grid obstacle except the bullseye one.
func (h *Handler) Handle(obstacleID int, newFace arena.Heading, live arena.Cell) (Outcome, error) {
	bullseyeObs, err := h.grid.FindObstacle(obstacleID)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: id %d", err, obstacleID)
	}

	// The one permitted mutation: adopt the true face before planning.
	bullseyeObs.Face = newFace
	h.log.Info("bullseye recovery started",
		zap.Int("obstacle_id", obstacleID),
		zap.Stringer("true_face", newFace),
		zap.Stringer("live", live.Pose))

	// ---- Phase 1: navigate to the correct face. ----
	resolved, p1Path, p1Cmds, reached := h.PathToCorrectFace(bullseyeObs, live)
	if !reached {
		// Degrade: hold position, mark the miss, let phase 2 continue
		// from where the robot actually is.
		resolved = live
		p1Path = []arena.Cell{live}
	}
	h.log.Info("phase 1 done",
		zap.Stringer("resolved", resolved.Pose),
		zap.Bool("skipped", !reached))

	// ---- Phase 2: reroute the remaining obstacles. ----
	visit := make([]*arena.Obstacle, 0, len(h.grid.Obstacles))
	for _, o := range h.grid.Obstacles {
		if o.ID != obstacleID {
			visit = append(visit, o)
		}
	}
	h.log.Info("phase 2 rerouting",
		zap.Int("visit", len(visit)),
		zap.Int("collision_obstacles", len(h.grid.Obstacles)))

	p2Path, p2Cmds, p2Dist, err := h.RerouteRemaining(resolved, visit)
	if err != nil {
		return Outcome{}, err
	}

	// ---- Stitch: phase 1 + phase 2, join waypoint deduplicated. ----
	fullPath := make([]arena.Cell, 0, len(p1Path)+len(p2Path))
	fullPath = append(fullPath, p1Path...)
	if len(p1Path) > 0 && len(p2Path) > 0 {
		fullPath = append(fullPath, p2Path[1:]...)
	} else {
		fullPath = append(fullPath, p2Path...)
	}

	fullCmds := make([]string, 0, len(p1Cmds)+len(p2Cmds))
	fullCmds = append(fullCmds, p1Cmds...)
	fullCmds = append(fullCmds, p2Cmds...)

	return Outcome{
		FullPath:       fullPath,
		FullCommands:   fullCmds,
		Phase1Path:     p1Path,
		Phase1Commands: p1Cmds,
		Phase2Path:     p2Path,
		Phase2Commands: p2Cmds,
		Phase2Distance: p2Dist,
		Resolved:       resolved,
		NewFace:        newFace,
		Skipped:        !reached,
	}, nil
}

// withoutFinish strips every FIN token from a tape.
func withoutFinish(tape []string) []string {
	out := tape[:0:0]
	for _, cmd := range tape {
		if cmd != commands.Finish {
			out = append(out, cmd)
		}
	}

	return out
}
