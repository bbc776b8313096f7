package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sidestep/config"
	"github.com/milk9111/sidestep/ecs"
	"github.com/milk9111/sidestep/input"
	"github.com/milk9111/sidestep/sim"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	screenWidth  = 960
	screenHeight = 640
)

type Game struct {
	sim     *sim.Simulation
	cfg     config.Config
	input   input.Source
	watcher *config.Watcher
	debug   bool

	paused  bool
	pauseUI *ebitenui.UI
	face    ebtext.Face
	snap    sim.Snapshot
}

func NewGame(s *sim.Simulation, cfg config.Config, watcher *config.Watcher, debug bool) *Game {
	g := &Game{
		sim:     s,
		cfg:     cfg,
		input:   Keyboard{},
		watcher: watcher,
		debug:   debug,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
	}
	g.pauseUI = NewPauseUI(g)
	g.snap, _ = s.Snapshot()
	return g
}

func (g *Game) Update() error {
	g.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	dir, err := g.input.Direction(g.sim.Frame(), g.snap)
	if err != nil {
		return err
	}
	events, err := g.sim.Step(1/float64(ebiten.TPS()), dir)
	if err != nil {
		return err
	}
	for _, evt := range events {
		if evt.Kind == ecs.CollisionEventGrounded {
			log.Printf("frame %d: grounded on %s", g.sim.Frame(), evt.Collider)
		} else {
			log.Printf("frame %d: airborne", g.sim.Frame())
		}
	}
	g.snap, err = g.sim.Snapshot()
	return err
}

// pollConfig applies pending config writes without blocking the frame.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			cfg, err := config.Load(path)
			if err != nil {
				log.Printf("config reload: %v", err)
				continue
			}
			if err := g.sim.ApplyTuning(cfg); err != nil {
				log.Printf("config reload: %v", err)
				continue
			}
			g.cfg = cfg
			log.Printf("config reloaded from %s", path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("config watch: %v", err)
			}
		default:
			return
		}
	}
}

// restart rebuilds the simulation from the current config.
func (g *Game) restart() {
	s, err := sim.New(g.cfg)
	if err != nil {
		log.Printf("restart: %v", err)
		return
	}
	g.sim = s
	g.snap, _ = s.Snapshot()
	g.paused = false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff})

	for _, c := range g.snap.Colliders {
		fillBox(screen, c, colornames.Silver)
	}
	body := colornames.Cornflowerblue
	if g.snap.Body.Grounded {
		body = colornames.Mediumseagreen
	}
	fillBox(screen, g.snap.Body.Box, body)

	if g.debug {
		g.drawProbe(screen)
	}
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawProbe(screen *ebiten.Image) {
	for _, h := range g.snap.Body.Probe {
		x0, y0 := toScreen(h.OriginX, h.OriginY)
		x1, y1 := toScreen(h.OriginX, h.OriginY-h.Distance-g.cfg.Probe.SkinWidth)
		clr := colornames.Orange
		if h.Hit {
			clr = colornames.Crimson
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	b := g.snap.Body
	state := "airborne"
	if b.Grounded {
		state = "grounded"
	}
	msg := fmt.Sprintf("frame %d  pos (%.1f, %.1f)  vel (%.2f, %.2f)  %s  TPS %.0f",
		g.snap.Frame, b.X, b.Y, b.VelocityX, b.VelocityY, state, ebiten.ActualTPS())
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(colornames.Black)
	ebtext.Draw(screen, msg, g.face, op)
}

func fillBox(screen *ebiten.Image, b sim.Box, clr color.Color) {
	x, y := toScreen(b.X-b.Width/2, b.Y+b.Height/2)
	vector.FillRect(screen, float32(x), float32(y), float32(b.Width), float32(b.Height), clr, false)
}

// toScreen maps world coordinates (origin centered, y up) to screen pixels.
func toScreen(x, y float64) (float64, float64) {
	return x + screenWidth/2, screenHeight/2 - y
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
