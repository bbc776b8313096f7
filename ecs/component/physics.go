package component

// Velocity is the displacement applied to Transform on the next physics step.
type Velocity struct {
	X float64
	Y float64
}

// Grounded caches whether the body rested on a solid collider this frame.
type Grounded struct {
	Value bool
}

var VelocityComponent = NewComponent[Velocity]()
var GroundedComponent = NewComponent[Grounded]()
