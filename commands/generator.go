package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/J0knee10/arcplan/arena"
)

// Fixed tokens.
const (
	// Finish terminates every tape.
	Finish = "FIN"

	prefixForward  = "FW"
	prefixBackward = "BW"
	turnRight      = "FR90"
	turnLeft       = "FL90"
	prefixSnap     = "SP"
	prefixFailed   = "SNAP_FAILED"
)

// Snap formats the snapshot token for an obstacle id.
func Snap(id int) string {
	return prefixSnap + strconv.Itoa(id)
}

// SnapFailed formats the advisory wrong-face failure token.
func SnapFailed(id int) string {
	return prefixFailed + strconv.Itoa(id)
}

// Generate encodes a waypoint path into a compressed command tape.
// An empty or single-waypoint path yields just [FIN].
func Generate(path []arena.Cell) []string {
	raw := make([]string, 0, len(path)+1)

	for i := 1; i < len(path); i++ {
		prev, curr := path[i-1], path[i]

		if prev.H == curr.H {
			// Straight movement, cells → centimetres.
			dist := maxAbs(curr.X-prev.X, curr.Y-prev.Y) * arena.CellSize
			if dist == 0 {
				// Degenerate join-point duplicate; drop explicitly.
				continue
			}
			if isForward(prev.H, curr.X-prev.X, curr.Y-prev.Y) {
				raw = append(raw, prefixForward+strconv.Itoa(dist))
			} else {
				raw = append(raw, prefixBackward+strconv.Itoa(dist))
			}
		} else {
			switch prev.H.TurnDiff(curr.H) {
			case 2:
				raw = append(raw, turnRight)
			case 6:
				raw = append(raw, turnLeft)
			case 4:
				// Half-turn: two quarter turns to the right.
				raw = append(raw, turnRight, turnRight)
			}
		}

		if curr.Snap != arena.NoSnapshot {
			raw = append(raw, Snap(curr.Snap))
		}
	}

	raw = append(raw, Finish)

	return Compress(raw)
}

// isForward reports whether a straight delta points along the heading
// (forward) rather than against it (backward).
func isForward(h arena.Heading, dx, dy int) bool {
	switch h {
	case arena.North:
		return dy > 0
	case arena.South:
		return dy < 0
	case arena.East:
		return dx > 0
	case arena.West:
		return dx < 0
	}

	return false
}

// Compress merges consecutive same-kind straight tokens and splits any
// merged run over 90 cm into 90-chunks plus a zero-padded remainder.
// All other tokens pass through verbatim. Compress(Compress(x)) ==
// Compress(x).
func Compress(cmds []string) []string {
	out := make([]string, 0, len(cmds))

	for i := 0; i < len(cmds); {
		kind, val, straight := parseStraight(cmds[i])
		if !straight {
			out = append(out, cmds[i])
			i++
			continue
		}

		// Merge the whole run of same-kind straights.
		total := val
		j := i + 1
		for j < len(cmds) {
			k, v, s := parseStraight(cmds[j])
			if !s || k != kind {
				break
			}
			total += v
			j++
		}

		for total > 90 {
			out = append(out, kind+"90")
			total -= 90
		}
		if total > 0 {
			out = append(out, fmt.Sprintf("%s%02d", kind, total))
		}
		i = j
	}

	return out
}

// parseStraight splits a straight token into its kind prefix and
// centimetre value; straight is false for every other token.
func parseStraight(cmd string) (kind string, val int, straight bool) {
	if len(cmd) <= 2 {
		return "", 0, false
	}
	kind = cmd[:2]
	if kind != prefixForward && kind != prefixBackward {
		return "", 0, false
	}
	// SNAP_FAILED and SP never reach here: their prefixes differ.
	val, err := strconv.Atoi(strings.TrimSpace(cmd[2:]))
	if err != nil || val < 0 {
		return "", 0, false
	}

	return kind, val, true
}

func maxAbs(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}

	return b
}
