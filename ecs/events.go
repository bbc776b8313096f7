package ecs

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventGrounded CollisionEventKind = "grounded"
	CollisionEventAirborne CollisionEventKind = "airborne"
)

// CollisionEvent is emitted when an entity's grounded state changes.
type CollisionEvent struct {
	Entity   Entity
	Kind     CollisionEventKind
	Collider Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []CollisionEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
