package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs/component"
)

// CastGroundRays casts n evenly spaced rays straight down from body's footprint
// and reports the nearest hit per ray. Rays start skin units above the bottom
// edge, inset skin units from the sides, and reach maxDistance below the edge.
// Distances are measured from the bottom edge, so a body resting on a surface
// reads 0 and a negative value means the ray started inside a collider.
func CastGroundRays(body cp.BB, colliders []cp.BB, n int, skin, maxDistance float64) []component.RayHit {
	if n <= 0 {
		return nil
	}

	left := body.L + skin
	right := body.R - skin
	if left > right {
		left, right = (body.L+body.R)/2, (body.L+body.R)/2
	}
	spacing := 0.0
	if n > 1 {
		spacing = (right - left) / float64(n-1)
	}

	originY := body.B + skin
	length := skin + maxDistance
	hits := make([]component.RayHit, n)
	for i := range hits {
		x := left + spacing*float64(i)
		if n == 1 {
			x = (body.L + body.R) / 2
		}
		hit := component.RayHit{OriginX: x, OriginY: originY, Distance: maxDistance}
		closest := math.Inf(1)
		for _, c := range colliders {
			if ok, t := segmentAABBHit(x, originY, 0, -length, c.L, c.B, c.R, c.T); ok && t < closest {
				closest = t
			}
		}
		if !math.IsInf(closest, 1) {
			hit.Hit = true
			hit.Distance = closest*length - skin
		}
		hits[i] = hit
	}
	return hits
}

// segmentAABBHit tests the segment from (x0, y0) along (dx, dy) against a box
// using the slab method and returns the entry parameter in [0, 1].
func segmentAABBHit(x0, y0, dx, dy, minX, minY, maxX, maxY float64) (bool, float64) {
	tmin := 0.0
	tmax := 1.0

	if dx != 0 {
		invD := 1.0 / dx
		t1 := (minX - x0) * invD
		t2 := (maxX - x0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if x0 < minX || x0 > maxX {
		return false, 0
	}

	if dy != 0 {
		invD := 1.0 / dy
		t1 := (minY - y0) * invD
		t2 := (maxY - y0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if y0 < minY || y0 > maxY {
		return false, 0
	}

	if tmax >= tmin {
		return true, tmin
	}
	return false, 0
}
