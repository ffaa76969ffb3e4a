// Package arcplan computes physically executable motion plans for a
// differential-drive robot photographing directional obstacles in a
// bounded 20×20 arena.
//
// 🚀 What is arcplan?
//
//	A deterministic planning pipeline that turns an obstacle layout into
//	a drivable command tape:
//
//	  • Collision geometry: Chebyshev clearance on a cell grid, plus a
//	    full arc-sweep check for every 90° turn
//	  • Kinematic A*: search over (x, y, heading) with straight steps
//	    and fixed-radius 90° arcs (FL / FR / BL / BR)
//	  • Subset-Hamiltonian scheduling: exact Held–Karp ordering that
//	    degrades to the best feasible subset when obstacles are boxed in
//	  • Command encoding: compact FW/BW/FL90/FR90/SP tape with run
//	    compression and 90 cm chunking
//	  • Bullseye recovery: mid-mission re-planning when a snapshot
//	    reports the wrong obstacle face
//
// Everything is organized under six subpackages:
//
//	arena/       — headings, poses, obstacles, the grid and its clearance model
//	astar/       — kinematic A* over (x, y, heading) with arc-sweep safety
//	hamiltonian/ — cost matrix + exact TSP ordering + full-path generation
//	commands/    — command-tape encoding, compression and replay
//	bullseye/    — two-phase wrong-face recovery orchestration
//	planner/     — the public Plan / Recover API and wire-format types
//
// The pipeline is single-threaded and synchronous per request: no shared
// state crosses calls, so concurrent plans simply run on independent
// Planner values.
//
//	go get github.com/J0knee10/arcplan
package arcplan
