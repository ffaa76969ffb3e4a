package planner

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/J0knee10/arcplan/arena"
	"github.com/J0knee10/arcplan/bullseye"
	"github.com/J0knee10/arcplan/commands"
	"github.com/J0knee10/arcplan/hamiltonian"
)

// Planner exposes the planning pipeline. The zero value is usable; New
// adds option handling. A Planner holds no per-request state.
type Planner struct {
	log *zap.Logger
}

// Option customises a Planner.
type Option func(*Planner)

// WithLogger installs a structured logger propagated to the scheduler
// and recovery layers. Default: zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(p *Planner) {
		if log != nil {
			p.log = log
		}
	}
}

// New constructs a Planner.
func New(opts ...Option) *Planner {
	p := &Planner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// logger tolerates zero-value Planners.
func (p *Planner) logger() *zap.Logger {
	if p.log == nil {
		return zap.NewNop()
	}

	return p.log
}

// validateObstacles rejects malformed obstacle specs, aggregating every
// violation into one ErrInvalidInput-wrapped error.
func validateObstacles(specs []ObstacleSpec) error {
	var errs error
	for _, o := range specs {
		if o.ID < 1 {
			errs = multierr.Append(errs, fmt.Errorf("obstacle id %d: must be ≥ 1", o.ID))
		}
		if o.X < arena.MinPadding || o.X > arena.MaxPadding ||
			o.Y < arena.MinPadding || o.Y > arena.MaxPadding {
			errs = multierr.Append(errs, fmt.Errorf("obstacle id %d: position (%d,%d) outside [%d,%d]²",
				o.ID, o.X, o.Y, arena.MinPadding, arena.MaxPadding))
		}
		if _, ok := arena.HeadingFromInt(o.D); !ok {
			errs = multierr.Append(errs, fmt.Errorf("obstacle id %d: direction %d not in {0,2,4,6}", o.ID, o.D))
		}
	}
	if errs != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, errs)
	}

	return nil
}

// buildGrid assembles the collision grid from validated specs,
// preserving wire order.
func buildGrid(specs []ObstacleSpec) *arena.Grid {
	grid := arena.NewGrid()
	for _, o := range specs {
		face, _ := arena.HeadingFromInt(o.D)
		grid.AddObstacle(arena.NewObstacle(o.ID, o.X, o.Y, face))
	}

	return grid
}

// startCell derives the robot start cell from wire values. An invalid
// heading is coerced to North; the position is passed through untouched
// — an out-of-bounds start simply makes every search fail cleanly.
func startCell(x, y, dir int) arena.Cell {
	h, ok := arena.HeadingFromInt(dir)
	if !ok {
		h = arena.North
	}

	return arena.NewCell(x, y, h)
}

// Plan computes a full-mission plan: visit order over every reachable
// obstacle, the dense waypoint path and the compressed command tape.
//
// Unreachable obstacles degrade the tour to the best feasible subset;
// their ids populate Skipped and the call still succeeds. With no
// obstacles at all the response is the empty plan (commands = [FIN]).
func (p *Planner) Plan(req PlanRequest) (PlanResponse, error) {
	if err := validateObstacles(req.Obstacles); err != nil {
		return PlanResponse{}, err
	}

	grid := buildGrid(req.Obstacles)
	start := startCell(req.RobotX, req.RobotY, req.RobotDir)

	scheduler, err := hamiltonian.New(grid, start, hamiltonian.WithLogger(p.logger()))
	if err != nil {
		return PlanResponse{}, err
	}

	res, err := scheduler.FindOptimalOrder(req.Retrying, nil)
	if err != nil {
		return PlanResponse{}, err
	}

	path := scheduler.GenerateFullPath(res, nil)
	tape := commands.Generate(path)

	points := toPathPoints(path)
	snaps := make([]PathPoint, 0, len(req.Obstacles))
	for _, pt := range points {
		if pt.S != arena.NoSnapshot {
			snaps = append(snaps, pt)
		}
	}

	return PlanResponse{
		Data:     PlanData{Commands: tape, SnapPositions: snaps},
		Path:     points,
		Distance: res.Distance,
		Skipped:  res.Skipped,
	}, nil
}

// Recover re-plans mid-mission after a bullseye result.
//
// The collision grid is built from RemainingObstacles, which must
// include the bullseye obstacle itself. An unknown ObstacleID or an
// invalid NewDirection is ErrInvalidInput.
func (p *Planner) Recover(req RecoverRequest) (RecoverResponse, error) {
	if err := validateObstacles(req.RemainingObstacles); err != nil {
		return RecoverResponse{}, err
	}
	newFace, ok := arena.HeadingFromInt(req.NewDirection)
	if !ok {
		return RecoverResponse{}, fmt.Errorf("%w: new_direction %d not in {0,2,4,6}",
			ErrInvalidInput, req.NewDirection)
	}

	grid := buildGrid(req.RemainingObstacles)
	live := startCell(req.RobotX, req.RobotY, req.RobotDir)

	handler, err := bullseye.New(grid, bullseye.WithLogger(p.logger()))
	if err != nil {
		return RecoverResponse{}, err
	}

	out, err := handler.Handle(req.ObstacleID, newFace, live)
	if err != nil {
		if errors.Is(err, arena.ErrUnknownObstacle) {
			return RecoverResponse{}, fmt.Errorf("%w: obstacle id %d not in remaining set",
				ErrInvalidInput, req.ObstacleID)
		}

		return RecoverResponse{}, err
	}

	return RecoverResponse{
		FullPath:         toPathPoints(out.FullPath),
		FullCommands:     out.FullCommands,
		Phase1Path:       toPathPoints(out.Phase1Path),
		Phase1Commands:   out.Phase1Commands,
		Phase2Path:       toPathPoints(out.Phase2Path),
		Phase2Commands:   out.Phase2Commands,
		Phase2Distance:   out.Phase2Distance,
		ResolvedPosition: toPathPoint(out.Resolved),
		NewDirection:     req.NewDirection,
		SkippedObstacle:  out.Skipped,
	}, nil
}
