package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCastGroundRays(t *testing.T) {
	floor := box(0, -300, 910, 10) // top at -295

	t.Run("resting body reads zero", func(t *testing.T) {
		body := box(0, -280, 120, 30) // bottom at -295
		hits := CastGroundRays(body, []cp.BB{floor}, 4, 1.5, 64)
		if len(hits) != 4 {
			t.Fatalf("expected 4 rays, got %d", len(hits))
		}
		for i, h := range hits {
			if !h.Hit || math.Abs(h.Distance) > 1e-9 {
				t.Fatalf("ray %d: expected hit at 0, got %+v", i, h)
			}
		}
		if hits[0].OriginX != body.L+1.5 || hits[3].OriginX != body.R-1.5 {
			t.Fatalf("rays not spread across footprint: %v .. %v", hits[0].OriginX, hits[3].OriginX)
		}
	})

	t.Run("distance to floor", func(t *testing.T) {
		body := box(0, -260, 120, 30) // bottom at -275
		hits := CastGroundRays(body, []cp.BB{floor}, 2, 1.5, 64)
		for _, h := range hits {
			if !h.Hit || math.Abs(h.Distance-20) > 1e-9 {
				t.Fatalf("expected hit at 20, got %+v", h)
			}
		}
	})

	t.Run("out of range", func(t *testing.T) {
		body := box(0, -215, 120, 30) // bottom at -230, 65 above floor
		for _, h := range CastGroundRays(body, []cp.BB{floor}, 4, 1.5, 64) {
			if h.Hit || h.Distance != 64 {
				t.Fatalf("expected miss, got %+v", h)
			}
		}
	})

	t.Run("nearest of stacked colliders", func(t *testing.T) {
		body := box(0, 0, 20, 20)    // bottom at -10
		ledge := box(0, -30, 40, 10) // top at -25
		hits := CastGroundRays(body, []cp.BB{floor, ledge}, 1, 0, 500)
		if len(hits) != 1 || !hits[0].Hit || math.Abs(hits[0].Distance-15) > 1e-9 {
			t.Fatalf("expected nearest hit at 15, got %+v", hits)
		}
	})

	t.Run("partial footprint", func(t *testing.T) {
		body := box(0, 0, 20, 20)
		ledge := box(-20, -15, 20, 10) // spans x [-30,-10]
		hits := CastGroundRays(body, []cp.BB{ledge}, 2, 0, 100)
		if !hits[0].Hit || hits[1].Hit {
			t.Fatalf("expected only the left ray to hit, got %+v", hits)
		}
	})

	t.Run("no rays", func(t *testing.T) {
		if hits := CastGroundRays(box(0, 0, 1, 1), nil, 0, 0, 10); hits != nil {
			t.Fatalf("expected nil, got %v", hits)
		}
	})
}
