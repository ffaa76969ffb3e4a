// Package commands encodes waypoint paths into the compact motor-command
// tape the robot firmware executes, and replays tapes for verification.
//
// Token grammar:
//
//	token := FW<nn> | BW<nn> | FL90 | FR90 | SP<id> | FIN | SNAP_FAILED<id>
//	nn    := 1..90 centimetres (two-digit zero-padded after compression)
//
// Generation walks consecutive waypoint pairs: an unchanged heading
// becomes a 10 cm forward/backward step (forward iff the positional
// delta points along the heading); a heading change of (h'−h) mod 8 ==
// 2 becomes FR90, == 6 becomes FL90 and == 4 two FR90 in sequence; a
// waypoint carrying a snapshot id appends SP<id>. The tape always ends
// with FIN. Zero-length straight segments at segment joins are dropped
// outright.
//
// Compression merges runs of same-kind straight tokens by summing their
// centimetre values, then splits any sum over 90 into full 90 cm chunks
// followed by a zero-padded remainder (120 → FW90, FW30). Turn,
// snapshot and FIN tokens pass through verbatim. Compression is a fixed
// point on its own output.
//
// SNAP_FAILED<id> is an advisory marker emitted by bullseye recovery
// when no viewing pose of the correct face is reachable; consumers
// treat it as a no-op, not a hard error.
package commands
