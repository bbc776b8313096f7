package component

// GravityScale is the downward fall rate of a body in units per second.
// 0 disables gravity.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
