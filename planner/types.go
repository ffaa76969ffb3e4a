// Package planner - wire-format request/response types and sentinels.
package planner

import (
	"errors"

	"github.com/J0knee10/arcplan/arena"
)

// Sentinel errors.
var (
	// ErrInvalidInput indicates a malformed request: a bad obstacle id,
	// pose or direction value.
	ErrInvalidInput = errors.New("planner: invalid input")
)

// ObstacleSpec is one obstacle as supplied on the wire.
type ObstacleSpec struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
	D  int `json:"d"`
}

// PathPoint is one waypoint on the wire: position, heading value and
// snapshot id (−1 when the waypoint takes no photo).
type PathPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
	D int `json:"d"`
	S int `json:"s"`
}

// PlanRequest asks for a full-mission plan.
type PlanRequest struct {
	Obstacles []ObstacleSpec `json:"obstacles"`
	RobotX    int            `json:"robot_x"`
	RobotY    int            `json:"robot_y"`
	RobotDir  int            `json:"robot_dir"`
	Retrying  bool           `json:"retrying,omitempty"`
}

// PlanData is the command payload of a plan response.
type PlanData struct {
	Commands      []string    `json:"commands"`
	SnapPositions []PathPoint `json:"snap_positions"`
}

// PlanResponse is a complete mission plan. A populated Skipped list
// marks a partial plan: the listed obstacle ids were unreachable and
// the tour covers the best feasible subset.
type PlanResponse struct {
	Data     PlanData    `json:"data"`
	Path     []PathPoint `json:"path"`
	Distance float64     `json:"distance"`
	Skipped  []int       `json:"skipped,omitempty"`
}

// RecoverRequest asks for mid-mission bullseye recovery.
// RemainingObstacles must include the bullseye obstacle itself — the
// collision grid is built from this exact set.
type RecoverRequest struct {
	ObstacleID         int            `json:"obstacle_id"`
	NewDirection       int            `json:"new_direction"`
	RobotX             int            `json:"robot_x"`
	RobotY             int            `json:"robot_y"`
	RobotDir           int            `json:"robot_dir"`
	RemainingObstacles []ObstacleSpec `json:"remaining_obstacles"`
}

// RecoverResponse carries both recovery phases and the stitched plan.
// SkippedObstacle is true when phase 1 could not reach the correct
// face; the tape then opens with the advisory SNAP_FAILED token.
type RecoverResponse struct {
	FullPath     []PathPoint `json:"full_path"`
	FullCommands []string    `json:"full_commands"`

	Phase1Path     []PathPoint `json:"phase1_path"`
	Phase1Commands []string    `json:"phase1_commands"`

	Phase2Path     []PathPoint `json:"phase2_path"`
	Phase2Commands []string    `json:"phase2_commands"`
	Phase2Distance float64     `json:"phase2_distance"`

	ResolvedPosition PathPoint `json:"resolved_position"`
	NewDirection     int       `json:"new_direction"`
	SkippedObstacle  bool      `json:"skipped_obstacle"`
}

// toPathPoint converts an internal cell to its wire form.
func toPathPoint(c arena.Cell) PathPoint {
	return PathPoint{X: c.X, Y: c.Y, D: int(c.H), S: c.Snap}
}

// toPathPoints converts a waypoint slice; never nil, so empty paths
// serialize as [] rather than null.
func toPathPoints(cells []arena.Cell) []PathPoint {
	points := make([]PathPoint, 0, len(cells))
	for _, c := range cells {
		points = append(points, toPathPoint(c))
	}

	return points
}
