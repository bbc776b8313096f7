package component

// Input stores the direction intent sampled for the current frame.
// MoveX is in [-1, 1]; MoveY is in [0, 1] since there is no downward input.
type Input struct {
	MoveX float64
	MoveY float64
}

var InputComponent = NewComponent[Input]()
