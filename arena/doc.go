// Package arena defines the geometric ground truth of the planning
// pipeline: the cell grid, robot headings, poses, obstacles and the
// collision-clearance model every other package builds on.
//
// Geometry & units:
//
//   - The arena is a 20×20 board of 10 cm cells. Cells 0 and 19 on each
//     axis are virtual walls; the valid interior band is [1,18]².
//   - A robot pose is an integer cell coordinate plus one of four
//     headings (North, East, South, West). Headings carry the even
//     values {0,2,4,6} so that turn direction falls out of mod-8
//     arithmetic: (h'−h) mod 8 == 2 is a right turn, 6 a left turn,
//     4 a half-turn.
//   - An obstacle occupies exactly one cell and bears an image on one
//     face. The robot photographs that face from a stand-off distance
//     of 3 cells (4 on a retry), looking back at the obstacle.
//
// Collision model:
//
//	Reachable(x, y) holds iff (x, y) lies inside the interior band and
//	the Chebyshev distance max(|dx|, |dy|) to every obstacle exceeds
//	the safety clearance of 2 cells. The same predicate backs straight
//	endpoints, arc endpoints and every arc-sweep cell.
//
// The grid and its obstacles are constructed per planning call and are
// immutable for the duration of that call; bullseye recovery mutates a
// single obstacle face exactly once before re-planning.
package arena
