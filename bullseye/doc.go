// Package bullseye orchestrates mid-mission recovery after a snapshot
// reports a wrong obstacle face ("bullseye").
//
// Recovery runs two phases over ONE collision grid that contains every
// obstacle still standing on the arena — including the bullseye
// obstacle itself. Stripping it would let the re-plan route the robot
// straight through it on the way to its "correct" face.
//
// Phase 1 — reach the correct face. The bullseye obstacle's face is
// rewritten to the caller-supplied true direction, then its single-face
// viewing candidates are tried in order, first at the nominal stand-off
// and then at the retry stand-off; the first candidate kinematic A*
// can reach from the live pose becomes the resolved pose. Its tape is
// emitted with the trailing FIN stripped and SP<id> appended. When no
// candidate is reachable the phase degrades to the advisory
// SNAP_FAILED<id> token, the resolved pose stays the live pose, and
// the obstacle is reported skipped.
//
// Phase 2 — reroute the rest. From the resolved pose a fresh scheduler
// re-solves ordering and path generation for the remaining obstacles
// (the bullseye one excluded — it was just satisfied), still collision-
// checking against the full grid.
//
// The two phases are returned individually plus stitched into one
// unified plan, with the join waypoint deduplicated.
package bullseye
