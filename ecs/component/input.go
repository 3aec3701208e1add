package component

// Input stores per-frame input state for an entity. The Pressed and Released
// fields are edges and are cleared once consumed.
type Input struct {
	MoveX          float64
	JumpPressed    bool
	SprintPressed  bool
	SprintReleased bool
}

var InputComponent = NewComponent[Input]()
