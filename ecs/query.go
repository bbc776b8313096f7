package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/sidestep/ecs/component"
)

// ErrMissingEntity reports an entity, or a component it must carry, that is
// not there.
var ErrMissingEntity = errors.New("ecs: missing entity")

// MissingComponentError reports a component an entity was required to carry.
type MissingComponentError struct {
	Entity Entity
	Kind   string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("ecs: entity %s has no %s", e.Entity, e.Kind)
}

func (e *MissingComponentError) Unwrap() error {
	return ErrMissingEntity
}

// Query returns live entities carrying every listed component, in the dense
// order of the first store.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	base := w.store(ids[0], false)
	if base == nil {
		return nil
	}
	out := make([]Entity, 0, base.Len())
outer:
	for _, e := range base.Entities() {
		for _, id := range ids[1:] {
			s := w.store(id, false)
			if s == nil || !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns the first entity carrying every listed component.
func (w *World) First(ids ...component.ComponentID) (Entity, bool) {
	ents := w.Query(ids...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Single returns the only entity carrying kind, failing when there are zero or
// several.
func Single[T any](w *World, kind component.ComponentKind[T]) (Entity, error) {
	ents := w.Query(kind.ID())
	if len(ents) != 1 {
		return 0, fmt.Errorf("%w: want exactly one %s, found %d", ErrMissingEntity, kind.String(), len(ents))
	}
	return ents[0], nil
}

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind.ID()) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka.ID(), kb.ID()) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka.ID(), kb.ID(), kc.ID()) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
