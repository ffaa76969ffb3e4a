// Package hamiltonian orders obstacle visits and generates the full
// waypoint path realising that order.
//
// The scheduler builds a node list [start, v₁, …, vₙ] where vᵢ is the
// first viewing candidate of obstacle i that kinematic A* can actually
// reach from the start; failing that, the first geometrically valid
// candidate; failing that, an "unreachable" sentinel node. An
// (n+1)×(n+1) asymmetric cost matrix is then filled from realised A*
// costs plus per-candidate viewing penalties, with two structural
// rules:
//
//   - C[i][0] = 0 for all i — the open-tour trick: zeroing every
//     return-to-start edge makes the exact cycle solver produce a
//     Hamiltonian PATH from node 0, and the final return segment is
//     simply never emitted;
//   - any edge touching a sentinel node, or any pair A* cannot
//     connect, costs InfCost (10⁹). Values ≥ InfCost are treated as
//     infeasible everywhere; penalties are never added to them.
//
// Ordering is solved exactly by Held–Karp dynamic programming
// (O(n²·2ⁿ), fine for n ≲ 10). When no full tour is feasible the
// scheduler degrades: for k = n−1, n−2, …, 1 it solves every k-subset
// of obstacles (plus the start node) and keeps the cheapest feasible
// tour of the largest feasible k, reporting the dropped obstacle ids
// as skipped. A fully boxed-in arena yields permutation [0] with
// distance 0 rather than an error.
//
// Targeted scheduling separates the VISIT set from the COLLISION set:
// the grid passed at construction always carries every physical
// obstacle, while an explicit target subset restricts which obstacles
// get viewing nodes. Bullseye recovery leans on this to re-plan the
// remaining obstacles without ever planning through the resolved one.
package hamiltonian
