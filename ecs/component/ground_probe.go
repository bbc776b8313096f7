package component

// RayHit is the result of one downward ground ray.
type RayHit struct {
	OriginX  float64
	OriginY  float64
	Distance float64
	Hit      bool
}

// GroundProbe configures the debug ground rays cast from a body's footprint
// and holds the latest results.
type GroundProbe struct {
	Rays        int
	SkinWidth   float64
	MaxDistance float64
	Hits        []RayHit
}

var GroundProbeComponent = NewComponent[GroundProbe]()
