package arena

// Obstacle is a single-cell directional obstacle. Face names the side
// bearing the image the robot must photograph.
type Obstacle struct {
	ID   int
	X, Y int
	Face Heading
}

// NewObstacle constructs an obstacle at (x, y) with the given image face.
func NewObstacle(id, x, y int, face Heading) *Obstacle {
	return &Obstacle{ID: id, X: x, Y: y, Face: face}
}

// standoffCells returns the stand-off distance between robot centre and
// obstacle centre, in cells. Nominally max(3, (D + S/2) / C); a retry
// backs off one extra cell to widen the camera's field of view.
func standoffCells(retrying bool) int {
	d := (CameraDistance + ObstacleSize/2) / CellSize
	if d < 3 {
		d = 3
	}
	if retrying {
		d++
	}

	return d
}

// FacesExcept returns the three faces other than exclude, with the two
// adjacent faces ordered before the directly opposite one (adjacent
// faces are cheaper to reach, so recovery tries them first).
func (o *Obstacle) FacesExcept(exclude Heading) []Heading {
	all := []Heading{North, East, South, West}
	opposite := exclude.Opposite()

	faces := make([]Heading, 0, 3)
	for _, f := range all {
		if f != exclude && f != opposite {
			faces = append(faces, f)
		}
	}

	return append(faces, opposite)
}

// ViewingCandidates generates the candidate cells a robot may stand on
// to photograph this obstacle, in a fixed deterministic order —
// downstream always picks the first feasible one.
//
// Per face, in order:
//  1. directly opposite the face at stand-off d      (penalty 0)
//  2. same column/row one cell farther, at d+1       (penalty StandoffPenalty)
//  3. offset −1 perpendicular to the face, at d      (penalty ScreenshotCost)
//  4. offset +1 perpendicular to the face, at d      (penalty ScreenshotCost)
//
// The candidate heading is the face rotated 180°: the robot looks back
// at the image. When specificFace is true only the obstacle's own Face
// is considered; otherwise all four faces are generated (recovery uses
// this to search for an unknown true face).
//
// Candidates are NOT collision-filtered here; see ValidViewingCandidates.
func (o *Obstacle) ViewingCandidates(retrying, specificFace bool) []Cell {
	offset1 := standoffCells(retrying)
	offset2 := offset1 + 1

	faces := []Heading{o.Face}
	if !specificFace {
		faces = []Heading{North, South, East, West}
	}

	candidates := make([]Cell, 0, 4*len(faces))
	add := func(x, y int, h Heading, penalty float64) {
		candidates = append(candidates, Cell{
			Pose:    Pose{X: x, Y: y, H: h},
			Snap:    o.ID,
			Penalty: penalty,
		})
	}

	for _, face := range faces {
		target := face.Opposite()
		switch face {
		case North:
			add(o.X, o.Y+offset1, target, 0)
			add(o.X, o.Y+offset2, target, StandoffPenalty)
			add(o.X-1, o.Y+offset1, target, ScreenshotCost)
			add(o.X+1, o.Y+offset1, target, ScreenshotCost)
		case South:
			add(o.X, o.Y-offset1, target, 0)
			add(o.X, o.Y-offset2, target, StandoffPenalty)
			add(o.X-1, o.Y-offset1, target, ScreenshotCost)
			add(o.X+1, o.Y-offset1, target, ScreenshotCost)
		case East:
			add(o.X+offset1, o.Y, target, 0)
			add(o.X+offset2, o.Y, target, StandoffPenalty)
			add(o.X+offset1, o.Y-1, target, ScreenshotCost)
			add(o.X+offset1, o.Y+1, target, ScreenshotCost)
		case West:
			add(o.X-offset1, o.Y, target, 0)
			add(o.X-offset2, o.Y, target, StandoffPenalty)
			add(o.X-offset1, o.Y-1, target, ScreenshotCost)
			add(o.X-offset1, o.Y+1, target, ScreenshotCost)
		}
	}

	return candidates
}

// ValidViewingCandidates filters ViewingCandidates down to cells the
// grid reports as reachable, preserving order.
func (o *Obstacle) ValidViewingCandidates(g *Grid, retrying, specificFace bool) []Cell {
	candidates := o.ViewingCandidates(retrying, specificFace)
	valid := candidates[:0:0]
	for _, c := range candidates {
		if g.Reachable(c.X, c.Y) {
			valid = append(valid, c)
		}
	}

	return valid
}
