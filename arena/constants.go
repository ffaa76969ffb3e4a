package arena

// Grid & arena dimensions.
const (
	// GridSize is the board edge length in cells (20×20).
	GridSize = 20

	// CellSize is the physical edge of one cell, in centimetres.
	CellSize = 10

	// ObstacleSize is the physical edge of one obstacle, in centimetres.
	ObstacleSize = 10

	// CameraDistance is the optimal camera-to-face distance, in centimetres.
	CameraDistance = 20
)

// Boundary constraints. Cells 0 and GridSize-1 act as virtual walls;
// the robot centre may only occupy [MinPadding, MaxPadding] on each axis.
const (
	MinPadding = 1
	MaxPadding = 18
)

// Movement physics.
const (
	// TurnRadius is the 90° arc radius in cells (3 cells = 30 cm).
	// Each arc displaces the robot by (±3, ±3) and rotates it 90°.
	TurnRadius = 3

	// StraightStep is the straight-move expansion step in cells.
	StraightStep = 1
)

// Search costs and penalties.
const (
	// Clearance is the safety buffer around every obstacle, in cells.
	// Positions with Chebyshev distance ≤ Clearance to any obstacle are
	// rejected by Grid.Reachable.
	Clearance = 2

	// StraightCost is the A* edge cost of a one-cell straight move.
	StraightCost = 1

	// TurnCost is the base penalty of a 90° arc; the full arc edge cost
	// is TurnCost + TurnRadius.
	TurnCost = 20

	// StandoffPenalty is added to the cost matrix for the farther
	// same-column viewing candidate (stand-off d+1).
	StandoffPenalty = 5

	// ScreenshotCost is added to the cost matrix for the two off-axis
	// viewing candidates (±1 cell perpendicular to the face).
	ScreenshotCost = 50
)

// NoSnapshot marks a Cell that carries no snapshot assignment.
const NoSnapshot = -1
