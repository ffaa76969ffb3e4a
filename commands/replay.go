package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/J0knee10/arcplan/arena"
)

// ErrBadToken indicates a tape token outside the command grammar.
var ErrBadToken = errors.New("commands: token outside the tape grammar")

// forwardArc maps a heading to the endpoint displacement and resulting
// heading of a forward 90° arc in the given steer direction. Mirrors
// the planner's FL/FR kinematics so a replayed tape lands exactly where
// the plan says it does.
var (
	forwardLeftArc = map[arena.Heading]struct {
		dx, dy int
		to     arena.Heading
	}{
		arena.North: {-arena.TurnRadius, +arena.TurnRadius, arena.West},
		arena.East:  {+arena.TurnRadius, +arena.TurnRadius, arena.North},
		arena.South: {+arena.TurnRadius, -arena.TurnRadius, arena.East},
		arena.West:  {-arena.TurnRadius, -arena.TurnRadius, arena.South},
	}
	forwardRightArc = map[arena.Heading]struct {
		dx, dy int
		to     arena.Heading
	}{
		arena.North: {+arena.TurnRadius, +arena.TurnRadius, arena.East},
		arena.East:  {+arena.TurnRadius, -arena.TurnRadius, arena.South},
		arena.South: {-arena.TurnRadius, -arena.TurnRadius, arena.West},
		arena.West:  {-arena.TurnRadius, +arena.TurnRadius, arena.North},
	}
)

// Replay executes a command tape from a start pose and returns the
// final pose plus the snapshot ids in execution order.
//
// Straight tokens advance value/CellSize cells along (FW) or against
// (BW) the heading; FL90/FR90 apply the forward-arc kinematics; SP
// records its id; FIN and SNAP_FAILED are no-ops. Unknown tokens
// return ErrBadToken.
func Replay(start arena.Pose, tape []string) (arena.Pose, []int, error) {
	pose := start
	var snaps []int

	for _, cmd := range tape {
		switch {
		case cmd == Finish:
			// Terminator; position unchanged.

		case hasPrefix(cmd, prefixFailed):
			// Advisory no-op.

		case hasPrefix(cmd, prefixSnap):
			id, err := strconv.Atoi(cmd[len(prefixSnap):])
			if err != nil {
				return pose, snaps, fmt.Errorf("%w: %q", ErrBadToken, cmd)
			}
			snaps = append(snaps, id)

		case cmd == turnLeft:
			arc := forwardLeftArc[pose.H]
			pose = arena.Pose{X: pose.X + arc.dx, Y: pose.Y + arc.dy, H: arc.to}

		case cmd == turnRight:
			arc := forwardRightArc[pose.H]
			pose = arena.Pose{X: pose.X + arc.dx, Y: pose.Y + arc.dy, H: arc.to}

		default:
			kind, val, straight := parseStraight(cmd)
			if !straight || val%arena.CellSize != 0 {
				return pose, snaps, fmt.Errorf("%w: %q", ErrBadToken, cmd)
			}
			cells := val / arena.CellSize
			dx, dy := pose.H.Delta()
			if kind == prefixBackward {
				dx, dy = -dx, -dy
			}
			pose = arena.Pose{X: pose.X + dx*cells, Y: pose.Y + dy*cells, H: pose.H}
		}
	}

	return pose, snaps, nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
