// Package input provides the direction intent collaborators that feed the
// simulation once per frame.
package input

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs/system"
	"github.com/milk9111/sidestep/sim"
)

// Source samples the direction intent for a frame. snap is the state the
// previous frame left behind.
type Source interface {
	Direction(frame int, snap sim.Snapshot) (cp.Vector, error)
}

// Key is a directional key the core reads. There is no down key.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	keyCount
)

// Latch turns discrete key presses into held keys. Terminals only report
// presses and auto-repeat, so a key counts as held until hold has passed
// without another press.
type Latch struct {
	hold    time.Duration
	pressed [keyCount]time.Time
	now     func() time.Time
}

func NewLatch(hold time.Duration) *Latch {
	return &Latch{hold: hold, now: time.Now}
}

func (l *Latch) Press(k Key) {
	if k < keyCount {
		l.pressed[k] = l.now()
	}
}

// Release drops every held key.
func (l *Latch) Release() {
	l.pressed = [keyCount]time.Time{}
}

func (l *Latch) Held(k Key) bool {
	if k >= keyCount || l.pressed[k].IsZero() {
		return false
	}
	return l.now().Sub(l.pressed[k]) < l.hold
}

func (l *Latch) Direction(int, sim.Snapshot) (cp.Vector, error) {
	return system.Direction(l.Held(KeyLeft), l.Held(KeyRight), l.Held(KeyUp)), nil
}
