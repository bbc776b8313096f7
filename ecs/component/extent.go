package component

import "github.com/jakecoffman/cp"

// Extent is the full width and height of an entity's axis-aligned box.
type Extent struct {
	Width  float64
	Height float64
}

// Bounds returns the box centered on t.
func (e Extent) Bounds(t Transform) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Y}, e.Width/2, e.Height/2)
}

var ExtentComponent = NewComponent[Extent]()
