package input

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sidestep/ecs/system"
	"github.com/milk9111/sidestep/sim"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads a script from disk, falling back to the embedded scripts
// by base name.
func LoadScript(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".tengo") {
		base += ".tengo"
	}
	data, err := ScriptsFS.ReadFile("scripts/" + base)
	if err != nil {
		return nil, fmt.Errorf("input: load script %s: %w", name, err)
	}
	return data, nil
}

// Script drives input from a tengo program run once per frame. The program
// reads frame, x, y, vx, vy and grounded, and assigns booleans to left, right
// and up. Outputs reset to false before every run.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

var scriptInputs = []string{"frame", "x", "y", "vx", "vy", "grounded"}
var scriptOutputs = []string{"left", "right", "up"}

func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	for _, v := range scriptInputs {
		_ = script.Add(v, 0)
	}
	for _, v := range scriptOutputs {
		_ = script.Add(v, false)
	}
	script.SetImports(stdlib.GetModuleMap("math", "rand", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

func (s *Script) Direction(frame int, snap sim.Snapshot) (cp.Vector, error) {
	values := map[string]any{
		"frame":    frame,
		"x":        snap.Body.X,
		"y":        snap.Body.Y,
		"vx":       snap.Body.VelocityX,
		"vy":       snap.Body.VelocityY,
		"grounded": snap.Body.Grounded,
		"left":     false,
		"right":    false,
		"up":       false,
	}
	for name, v := range values {
		if err := s.compiled.Set(name, v); err != nil {
			return cp.Vector{}, fmt.Errorf("input: %s: set %s: %w", s.name, name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return cp.Vector{}, fmt.Errorf("input: %s: frame %d: %w", s.name, frame, err)
	}
	return system.Direction(
		s.compiled.Get("left").Bool(),
		s.compiled.Get("right").Bool(),
		s.compiled.Get("up").Bool(),
	), nil
}
