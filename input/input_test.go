package input

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/config"
	"github.com/milk9111/sidestep/sim"
)

func TestLatch(t *testing.T) {
	now := time.Unix(100, 0)
	l := NewLatch(150 * time.Millisecond)
	l.now = func() time.Time { return now }

	if dir, _ := l.Direction(0, sim.Snapshot{}); dir != (cp.Vector{}) {
		t.Fatalf("nothing pressed, got %v", dir)
	}

	l.Press(KeyRight)
	l.Press(KeyUp)
	if dir, _ := l.Direction(0, sim.Snapshot{}); dir != (cp.Vector{X: 1, Y: 1}) {
		t.Fatalf("expected right+up, got %v", dir)
	}

	now = now.Add(100 * time.Millisecond)
	l.Press(KeyLeft)
	if dir, _ := l.Direction(0, sim.Snapshot{}); dir != (cp.Vector{X: 0, Y: 1}) {
		t.Fatalf("left and right held should cancel, got %v", dir)
	}

	now = now.Add(60 * time.Millisecond)
	if dir, _ := l.Direction(0, sim.Snapshot{}); dir != (cp.Vector{X: -1}) {
		t.Fatalf("right and up should have expired, got %v", dir)
	}

	l.Release()
	if l.Held(KeyLeft) {
		t.Fatalf("release should drop held keys")
	}
}

func TestScriptDirection(t *testing.T) {
	src := []byte(`
if frame < 10 { right = true }
if grounded && frame >= 10 { up = true }
if x > 100 { left = true }
`)
	s, err := NewScript("inline", src)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		frame int
		body  sim.Body
		want  cp.Vector
	}{
		{"walk", 0, sim.Body{}, cp.Vector{X: 1}},
		{"airborne after walk", 10, sim.Body{}, cp.Vector{}},
		{"grounded hop", 12, sim.Body{Grounded: true}, cp.Vector{Y: 1}},
		{"both keys cancel", 3, sim.Body{Box: sim.Box{X: 150}}, cp.Vector{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Direction(tt.frame, sim.Snapshot{Body: tt.body})
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("Direction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewScript("broken", []byte("if {")); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestEmbeddedScripts(t *testing.T) {
	for _, name := range []string{"idle", "walk_and_hop.tengo"} {
		src, err := LoadScript(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if _, err := NewScript(name, src); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}

	src, _ := LoadScript("walk_and_hop")
	s, err := NewScript("walk_and_hop", src)
	if err != nil {
		t.Fatal(err)
	}
	if dir, _ := s.Direction(250, sim.Snapshot{}); dir != (cp.Vector{X: 1}) {
		t.Fatalf("frame 250 should walk right, got %v", dir)
	}
	if dir, _ := s.Direction(400, sim.Snapshot{}); dir != (cp.Vector{X: -1}) {
		t.Fatalf("frame 400 should walk left, got %v", dir)
	}
}

func TestScriptDrivesSimulation(t *testing.T) {
	src, err := LoadScript("walk_and_hop")
	if err != nil {
		t.Fatal(err)
	}
	script, err := NewScript("walk_and_hop", src)
	if err != nil {
		t.Fatal(err)
	}
	s, err := sim.New(config.Default())
	if err != nil {
		t.Fatal(err)
	}

	for frame := 0; frame < 300; frame++ {
		snap, err := s.Snapshot()
		if err != nil {
			t.Fatal(err)
		}
		dir, err := script.Direction(frame, snap)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.Step(1.0/60, dir); err != nil {
			t.Fatal(err)
		}
	}
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if !snap.Body.Grounded {
		t.Fatalf("expected to have landed by frame 300")
	}
	if snap.Body.X != 380 {
		t.Fatalf("a second of walking right should reach the clamp, got x=%v", snap.Body.X)
	}
}
