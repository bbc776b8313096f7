package component

import "github.com/jakecoffman/cp"

// Player marks the dynamic body driven by input.
type Player struct {
	// MaxSpeed scales the input direction into velocity, per axis.
	MaxSpeed cp.Vector
}

var PlayerComponent = NewComponent[Player]()
