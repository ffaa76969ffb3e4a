package commands

import (
	"errors"
	"reflect"
	"testing"

	"github.com/J0knee10/arcplan/arena"
)

// TestReplayStraights advances and retreats along the heading.
func TestReplayStraights(t *testing.T) {
	start := arena.Pose{X: 5, Y: 5, H: arena.North}
	pose, snaps, err := Replay(start, []string{"FW30", "BW10", "FIN"})
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	want := arena.Pose{X: 5, Y: 7, H: arena.North}
	if pose != want {
		t.Errorf("final pose = %v; want %v", pose, want)
	}
	if len(snaps) != 0 {
		t.Errorf("snaps = %v; want none", snaps)
	}
}

// TestReplayArcs applies the forward-arc kinematics: FR from North
// lands at (+3,+3) heading East; FL from East lands at (+3,+3) North.
func TestReplayArcs(t *testing.T) {
	start := arena.Pose{X: 1, Y: 1, H: arena.North}
	pose, _, err := Replay(start, []string{"FR90", "FL90", "FIN"})
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	// FR: (1,1,N) → (4,4,E); FL: (4,4,E) → (7,7,N).
	want := arena.Pose{X: 7, Y: 7, H: arena.North}
	if pose != want {
		t.Errorf("final pose = %v; want %v", pose, want)
	}
}

// TestReplaySnapshots records snapshot ids in execution order and
// treats SNAP_FAILED as a no-op.
func TestReplaySnapshots(t *testing.T) {
	start := arena.Pose{X: 5, Y: 5, H: arena.East}
	pose, snaps, err := Replay(start, []string{"SP2", "FW10", "SNAP_FAILED7", "SP4", "FIN"})
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	if !reflect.DeepEqual(snaps, []int{2, 4}) {
		t.Errorf("snaps = %v; want [2 4]", snaps)
	}
	want := arena.Pose{X: 6, Y: 5, H: arena.East}
	if pose != want {
		t.Errorf("final pose = %v; want %v", pose, want)
	}
}

// TestReplayBadToken rejects tokens outside the grammar.
func TestReplayBadToken(t *testing.T) {
	start := arena.Pose{X: 1, Y: 1, H: arena.North}
	for _, tape := range [][]string{{"XX10"}, {"FW7"}, {"SPx"}} {
		if _, _, err := Replay(start, tape); !errors.Is(err, ErrBadToken) {
			t.Errorf("Replay(%v) error = %v; want ErrBadToken", tape, err)
		}
	}
}

// TestReplayRoundTrip: encoding a forward-arc path and replaying its
// tape reproduces the final pose and snapshot order.
func TestReplayRoundTrip(t *testing.T) {
	path := []arena.Cell{
		cell(1, 1, arena.North),
		cell(1, 2, arena.North),
		cell(1, 3, arena.North),
		cell(4, 6, arena.East), // FR arc
		cell(5, 6, arena.East),
		snapCell(6, 6, arena.East, 3),
	}
	tape := Generate(path)

	pose, snaps, err := Replay(path[0].Pose, tape)
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	if pose != path[len(path)-1].Pose {
		t.Errorf("replayed pose = %v; want %v", pose, path[len(path)-1].Pose)
	}
	if !reflect.DeepEqual(snaps, []int{3}) {
		t.Errorf("snaps = %v; want [3]", snaps)
	}
}
