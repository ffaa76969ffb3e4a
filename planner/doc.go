// Package planner is the public entry point of the pipeline: it
// validates wire-format requests, assembles the grid, robot and
// scheduler, and returns complete plans.
//
// Two operations are exposed:
//
//   - Plan — full-mission planning: order every obstacle's viewing
//     pose from the start pose, generate the dense waypoint path and
//     the compressed command tape. Obstacles the robot cannot reach are
//     dropped to the best feasible subset and reported in Skipped —
//     a partial plan is a success, not an error.
//   - Recover — bullseye recovery: given the obstacle whose snapshot
//     showed the wrong face, its true face, the robot's live pose and
//     the remaining obstacle set, re-plan mid-mission and return both
//     phases plus the stitched unified plan.
//
// Wire format mirrors the robot bridge: positions serialize as
// {x, y, d, s} with d the heading value in {0, 2, 4, 6} and s the
// snapshot obstacle id (−1 when none). An invalid robot heading is
// coerced to North and the pose passed through — search then fails
// cleanly; malformed obstacles are rejected with ErrInvalidInput.
//
// Planning is synchronous and CPU-bound; a Planner value holds no
// mutable state across calls, so callers may invoke one Planner from
// many goroutines or shard requests across worker threads as they
// prefer. Cancellation is the caller's concern — there are no I/O or
// timer points inside.
package planner
