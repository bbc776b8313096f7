package system

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/ecs/component"
)

type fixture struct {
	w      *ecs.World
	player ecs.Entity
}

func newFixture(t *testing.T, x, y float64) fixture {
	t.Helper()
	w := ecs.NewWorld()
	p := w.CreateEntity()
	must(t, ecs.Add(w, p, component.PlayerComponent.Kind(), &component.Player{MaxSpeed: cp.Vector{X: 500, Y: 200}}))
	must(t, ecs.Add(w, p, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	must(t, ecs.Add(w, p, component.ExtentComponent.Kind(), &component.Extent{Width: 120, Height: 30}))
	must(t, ecs.Add(w, p, component.VelocityComponent.Kind(), &component.Velocity{}))
	must(t, ecs.Add(w, p, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 20}))
	must(t, ecs.Add(w, p, component.GroundedComponent.Kind(), &component.Grounded{}))
	must(t, ecs.Add(w, p, component.InputComponent.Kind(), &component.Input{}))
	return fixture{w: w, player: p}
}

func (f fixture) solid(t *testing.T, name string, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := f.w.CreateEntity()
	must(t, ecs.Add(f.w, e, component.ColliderComponent.Kind(), &component.Collider{Kind: component.ColliderSolid, Name: name}))
	must(t, ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	must(t, ecs.Add(f.w, e, component.ExtentComponent.Kind(), &component.Extent{Width: width, Height: height}))
	return e
}

func (f fixture) grounded(t *testing.T) bool {
	t.Helper()
	g, ok := ecs.Get(f.w, f.player, component.GroundedComponent.Kind())
	if !ok {
		t.Fatalf("player has no grounded component")
	}
	return g.Value
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestCollisionGroundingPolicies(t *testing.T) {
	type wall struct {
		name                string
		x, y, width, height float64
	}
	floor := wall{"bottom", 0, -300, 910, 10}
	left := wall{"left", -450, 0, 10, 610}
	top := wall{"top", 0, 300, 910, 10}

	tests := []struct {
		name  string
		walls []wall
		want  bool
	}{
		{"floor first", []wall{floor, left, top}, true},
		{"floor last", []wall{left, top, floor}, true},
		{"floor between", []wall{left, floor, top}, true},
		{"no floor", []wall{left, top}, false},
	}
	for _, tt := range tests {
		for _, policy := range []GroundingPolicy{GroundAny, GroundLastWrite} {
			t.Run(fmt.Sprintf("%s/policy_%d", tt.name, policy), func(t *testing.T) {
				f := newFixture(t, 0, -280) // bottom edge at -295
				for _, w := range tt.walls {
					f.solid(t, w.name, w.x, w.y, w.width, w.height)
				}

				must(t, NewCollisionSystem(f.player, policy).Update(f.w, 1.0/60))
				if got := f.grounded(t); got != tt.want {
					t.Fatalf("grounded = %v, want %v", got, tt.want)
				}
			})
		}
	}
}

func TestFoldGrounded(t *testing.T) {
	tests := []struct {
		name string
		tops []bool
		want bool
	}{
		{"empty", nil, false},
		{"single top", []bool{true}, true},
		{"top then misses", []bool{true, false, false}, true},
		{"misses then top", []bool{false, false, true}, true},
		{"all misses", []bool{false, false, false}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anyTop := foldGrounded(tt.tops, GroundAny)
			lastWrite := foldGrounded(tt.tops, GroundLastWrite)
			if anyTop != tt.want || lastWrite != tt.want {
				t.Fatalf("any=%v last_write=%v, want %v", anyTop, lastWrite, tt.want)
			}
		})
	}
}

func TestCollisionEmitsTransitions(t *testing.T) {
	f := newFixture(t, 0, -280)
	floor := f.solid(t, "bottom", 0, -300, 910, 10)
	cs := NewCollisionSystem(f.player, GroundAny)

	must(t, cs.Update(f.w, 0))
	events := f.w.Events().Drain()
	if len(events) != 1 || events[0].Kind != ecs.CollisionEventGrounded || events[0].Collider != floor {
		t.Fatalf("expected one grounded event on the floor, got %+v", events)
	}
	if len(cs.Contacts()) != 1 || cs.Contacts()[0].Side != SideTop {
		t.Fatalf("expected a single top contact, got %+v", cs.Contacts())
	}

	must(t, cs.Update(f.w, 0))
	if n := f.w.Events().Len(); n != 0 {
		t.Fatalf("steady state should not emit, got %d events", n)
	}

	tr, _ := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	tr.Y = 0
	must(t, cs.Update(f.w, 0))
	events = f.w.Events().Drain()
	if len(events) != 1 || events[0].Kind != ecs.CollisionEventAirborne {
		t.Fatalf("expected airborne event, got %+v", events)
	}
	if f.grounded(t) {
		t.Fatalf("expected airborne after leaving the floor")
	}
}

func TestSideContactsDoNotGround(t *testing.T) {
	f := newFixture(t, -380, 0) // left edge at -440
	f.solid(t, "left", -445, 0, 10, 610)
	f.solid(t, "top", 0, 300, 910, 10)

	cs := NewCollisionSystem(f.player, GroundAny)
	must(t, cs.Update(f.w, 0))
	if f.grounded(t) {
		t.Fatalf("side contact must not ground the body")
	}
	if len(cs.Contacts()) != 1 || cs.Contacts()[0].Side != SideRight {
		t.Fatalf("expected a right-side contact with the wall, got %+v", cs.Contacts())
	}
}

func TestSystemsFailFastWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	ghost := w.CreateEntity()
	w.DestroyEntity(ghost)

	systems := []ecs.System{
		NewInputSystem(ghost),
		NewMotionSystem(ghost),
		NewCollisionSystem(ghost, GroundAny),
		NewPhysicsSystem(ghost, defaultClamp),
	}
	for _, s := range systems {
		if err := s.Update(w, 0.016); !errors.Is(err, ecs.ErrMissingEntity) {
			t.Fatalf("%T: expected ErrMissingEntity, got %v", s, err)
		}
	}
}

func TestPhysicsRequiresGravityScale(t *testing.T) {
	f := newFixture(t, 0, -215)
	if !ecs.Remove(f.w, f.player, component.GravityScaleComponent.Kind()) {
		t.Fatal("fixture player should carry a gravity scale")
	}

	err := NewPhysicsSystem(f.player, defaultClamp).Update(f.w, 1)
	if !errors.Is(err, ecs.ErrMissingEntity) {
		t.Fatalf("expected ErrMissingEntity, got %v", err)
	}
	tr, _ := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	if tr.Y != -215 {
		t.Fatalf("failed step moved the body to %v", tr.Y)
	}
}

func TestPipelineFrame(t *testing.T) {
	f := newFixture(t, 0, -215)
	f.solid(t, "bottom", 0, -300, 910, 10)

	input := NewInputSystem(f.player)
	sched := ecs.NewScheduler(
		input,
		NewMotionSystem(f.player),
		NewCollisionSystem(f.player, GroundAny),
		NewPhysicsSystem(f.player, defaultClamp),
	)

	input.Set(Direction(true, true, false))
	must(t, sched.Update(f.w, 0.1))

	tr, _ := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	vel, _ := ecs.Get(f.w, f.player, component.VelocityComponent.Kind())
	if vel.X != 0 || vel.Y != 0 {
		t.Fatalf("cancelled input should not move, got velocity %+v", *vel)
	}
	if tr.X != 0 || tr.Y != -217 {
		t.Fatalf("expected (0, -217), got (%v, %v)", tr.X, tr.Y)
	}
	if f.grounded(t) {
		t.Fatalf("body 65 units above the floor should be airborne")
	}
}
