package component

// Transform is a center-origin world position. Y grows upward.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
