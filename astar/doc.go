// Package astar implements the kinematic A* search the planner runs
// between viewing poses.
//
// The state space is (x, y, heading) — arena.Cell keyed by its embedded
// Pose. From each state the robot may:
//
//   - move one cell straight, forward or backward along its heading
//     (edge cost 1), or
//   - execute one of four 90° arcs of radius 3 cells — forward-left,
//     forward-right, backward-left, backward-right — each displacing
//     the robot by (±3, ±3) and rotating it a quarter turn
//     (edge cost TurnCost + TurnRadius = 23).
//
// Every arc is admitted only when its endpoint AND all eight cells of
// the swept body area pass the grid clearance predicate. The endpoint
// test alone is insufficient: corner clipping during the arc is the
// classic failure mode, and the eight sweep cells are the contract that
// prevents it.
//
// Heuristic: straight-line Euclidean distance between cell centres —
// admissible because the cheapest edge moves one cell for cost 1.
// Tie-breaking is FIFO on heap insertion order, which keeps expansions
// (and therefore returned paths) reproducible across runs.
//
// A successful search memoises its realised cost in a per-instance
// cache keyed by the (start, goal) pose pair; snapshot ids and viewing
// penalties never participate in the key. The cache lives only as long
// as the AStar value — one planning call.
//
// Complexity per search: O(S log S) with S ≤ 4·18·18 states, each
// expanding ≤ 6 neighbours.
package astar
