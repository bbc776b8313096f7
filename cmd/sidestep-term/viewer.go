package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/input"
	"github.com/milk9111/sidestep/sim"
)

// keyHold covers the gap between the first press and terminal auto-repeat.
const keyHold = 180 * time.Millisecond

type Viewer struct {
	screen tcell.Screen
	sim    *sim.Simulation
	keys   *input.Latch
	tone   *tone
	snap   sim.Snapshot
}

func NewViewer(s *sim.Simulation, sound bool) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &Viewer{screen: screen, sim: s, keys: input.NewLatch(keyHold)}
	if sound {
		t, err := newTone()
		if err != nil {
			// Non-fatal, the viewer runs without sound.
			log.Printf("audio initialization failed: %v", err)
		} else {
			v.tone = t
		}
	}
	v.snap, err = s.Snapshot()
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return v, nil
}

func (v *Viewer) Run(frame time.Duration) error {
	defer v.screen.Fini()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(v.screen, eventChan, done)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := v.step(dt); err != nil {
				return err
			}
			v.draw()
		}
	}
}

// pumpEvents forwards screen events until the screen is finalized or done is
// closed.
func pumpEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.keys.Press(input.KeyLeft)
		case tcell.KeyRight:
			v.keys.Press(input.KeyRight)
		case tcell.KeyUp:
			v.keys.Press(input.KeyUp)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				v.keys.Press(input.KeyLeft)
			case 'd':
				v.keys.Press(input.KeyRight)
			case 'w', ' ':
				v.keys.Press(input.KeyUp)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) step(dt float64) error {
	dir, err := v.keys.Direction(v.sim.Frame(), v.snap)
	if err != nil {
		return err
	}
	events, err := v.sim.Step(dt, dir)
	if err != nil {
		return err
	}
	for _, evt := range events {
		log.Printf("frame %d: %s", v.sim.Frame(), evt.Kind)
		if evt.Kind == ecs.CollisionEventGrounded && v.tone != nil {
			v.tone.play()
		}
	}
	v.snap, err = v.sim.Snapshot()
	return err
}

func (v *Viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	if width < 2 || height < 3 {
		v.screen.Show()
		return
	}

	vp := newViewport(v.snap, width, height-1)
	wall := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for _, c := range v.snap.Colliders {
		vp.fill(v.screen, c, '▒', wall)
	}
	body := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	if v.snap.Body.Grounded {
		body = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
	vp.fill(v.screen, v.snap.Body.Box, '█', body)

	b := v.snap.Body
	status := fmt.Sprintf("frame %d pos (%.1f, %.1f) grounded=%v  arrows/wasd move, q quits", v.snap.Frame, b.X, b.Y, b.Grounded)
	for i, r := range []rune(status) {
		if i >= width {
			break
		}
		v.screen.SetContent(i, height-1, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

// viewport scales the arena's bounding box into a cell grid.
type viewport struct {
	minX, maxY     float64
	scaleX, scaleY float64
	cols, rows     int
}

func newViewport(snap sim.Snapshot, cols, rows int) viewport {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range snap.Colliders {
		bb := c.BB()
		minX, minY = math.Min(minX, bb.L), math.Min(minY, bb.B)
		maxX, maxY = math.Max(maxX, bb.R), math.Max(maxY, bb.T)
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = -1, -1, 1, 1
	}
	return viewport{
		minX:   minX,
		maxY:   maxY,
		scaleX: float64(cols) / (maxX - minX),
		scaleY: float64(rows) / (maxY - minY),
		cols:   cols,
		rows:   rows,
	}
}

func (vp viewport) fill(screen tcell.Screen, b sim.Box, r rune, style tcell.Style) {
	bb := b.BB()
	x0 := int(math.Floor((bb.L - vp.minX) * vp.scaleX))
	x1 := int(math.Ceil((bb.R-vp.minX)*vp.scaleX)) - 1
	y0 := int(math.Floor((vp.maxY - bb.T) * vp.scaleY))
	y1 := int(math.Ceil((vp.maxY-bb.B)*vp.scaleY)) - 1
	for y := max(y0, 0); y <= min(y1, vp.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, vp.cols-1); x++ {
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
