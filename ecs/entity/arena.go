package entity

import (
	"fmt"

	"github.com/milk9111/sidestep/config"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/ecs/component"
)

type wallSpec struct {
	name          string
	x, y          float64
	width, height float64
}

// BuildArena registers the four solid boundary walls, in the order left,
// right, bottom, top. Walls sit centered on the arena edges and run one wall
// thickness past the corners so they overlap.
func BuildArena(w *ecs.World, cfg config.ArenaConfig) ([]ecs.Entity, error) {
	half := cfg.HalfExtent()
	t := cfg.WallThickness
	walls := []wallSpec{
		{name: "left", x: -half.X, y: 0, width: t, height: cfg.Bounds.Y + t},
		{name: "right", x: half.X, y: 0, width: t, height: cfg.Bounds.Y + t},
		{name: "bottom", x: 0, y: -half.Y, width: cfg.Bounds.X + t, height: t},
		{name: "top", x: 0, y: half.Y, width: cfg.Bounds.X + t, height: t},
	}

	out := make([]ecs.Entity, 0, len(walls))
	for _, spec := range walls {
		e, err := NewSolid(w, spec.name, spec.x, spec.y, spec.width, spec.height)
		if err != nil {
			return nil, fmt.Errorf("arena: %s wall: %w", spec.name, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// NewSolid creates one static solid collider centered on (x, y).
func NewSolid(w *ecs.World, name string, x, y, width, height float64) (ecs.Entity, error) {
	e := w.CreateEntity()
	err := addAll(w, e,
		func() error {
			return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Kind: component.ColliderSolid, Name: name})
		},
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
		},
		func() error {
			return ecs.Add(w, e, component.ExtentComponent.Kind(), &component.Extent{Width: width, Height: height})
		},
	)
	if err != nil {
		return 0, err
	}
	return e, nil
}
