package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/ecs/component"
)

// GroundingPolicy selects how per-collider contacts fold into one grounded flag.
type GroundingPolicy uint8

const (
	// GroundAny grounds the body if any solid collider reports a top contact,
	// regardless of iteration order.
	GroundAny GroundingPolicy = iota
	// GroundLastWrite replays the reset-then-set loop: colliders are visited in
	// registration order, the flag is cleared for each one without a top
	// contact, and the first top contact sets it and ends the pass. It always
	// agrees with GroundAny.
	GroundLastWrite
)

// Contact is one collider's result against the player's box.
type Contact struct {
	Collider ecs.Entity
	Side     Side
}

// CollisionSystem derives the player's grounded flag from the static colliders.
// It reads the position left by the previous physics step.
type CollisionSystem struct {
	player ecs.Entity
	Policy GroundingPolicy

	contacts []Contact
}

func NewCollisionSystem(player ecs.Entity, policy GroundingPolicy) *CollisionSystem {
	return &CollisionSystem{player: player, Policy: policy}
}

// Contacts returns the overlapping colliders found by the last Update.
func (s *CollisionSystem) Contacts() []Contact {
	return s.contacts
}

func (s *CollisionSystem) Update(w *ecs.World, _ float64) error {
	transform, err := ecs.MustGet(w, s.player, component.TransformComponent.Kind())
	if err != nil {
		return err
	}
	extent, err := ecs.MustGet(w, s.player, component.ExtentComponent.Kind())
	if err != nil {
		return err
	}
	grounded, err := ecs.MustGet(w, s.player, component.GroundedComponent.Kind())
	if err != nil {
		return err
	}

	body := extent.Bounds(*transform)
	s.contacts = s.contacts[:0]
	results := make([]bool, 0, 4)
	var support ecs.Entity

	ecs.ForEach3(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), component.ExtentComponent.Kind(),
		func(e ecs.Entity, c *component.Collider, t *component.Transform, ext *component.Extent) {
			if e == s.player || c.Kind != component.ColliderSolid {
				return
			}
			side := Collide(body, ext.Bounds(*t))
			if side != SideNone {
				s.contacts = append(s.contacts, Contact{Collider: e, Side: side})
			}
			top := side == SideTop
			if top && !support.Valid() {
				support = e
			}
			results = append(results, top)
		})

	next := foldGrounded(results, s.Policy)
	if next != grounded.Value {
		kind := ecs.CollisionEventAirborne
		if next {
			kind = ecs.CollisionEventGrounded
		}
		w.Events().Push(ecs.CollisionEvent{Entity: s.player, Kind: kind, Collider: support})
	}
	grounded.Value = next
	return nil
}

func foldGrounded(tops []bool, policy GroundingPolicy) bool {
	if policy == GroundLastWrite {
		grounded := false
		for _, top := range tops {
			if top {
				grounded = true
				break
			}
			grounded = false
		}
		return grounded
	}
	for _, top := range tops {
		if top {
			return true
		}
	}
	return false
}

// BodyBounds returns the world box of an entity with Transform and Extent.
func BodyBounds(w *ecs.World, e ecs.Entity) (cp.BB, error) {
	transform, err := ecs.MustGet(w, e, component.TransformComponent.Kind())
	if err != nil {
		return cp.BB{}, err
	}
	extent, err := ecs.MustGet(w, e, component.ExtentComponent.Kind())
	if err != nil {
		return cp.BB{}, err
	}
	return extent.Bounds(*transform), nil
}
