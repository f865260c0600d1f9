package component

// Input stores per-frame input state for an entity. MoveX and MoveY are screen
// space axes in [-1, 1]; Slam is true only on the frame the button went down.
type Input struct {
	MoveX float64
	MoveY float64
	Slam  bool
	Pause bool
}

var InputComponent = NewComponent[Input]()
