//go:build ebiten

package app

import (
	"fmt"
	"time"

	"forestfire/internal/core"
	"forestfire/internal/forest"
	"forestfire/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a forest simulation to the ebiten.Game interface.
type Game struct {
	sim     *forest.Simulation
	painter *render.GridPainter
	pacer   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	hud      bool
}

// New constructs a Game for the provided simulation.
func New(sim *forest.Simulation, scale int) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		pacer:   core.NewFixedStep(sim.Config().TickPause),
		scale:   scale,
		seed:    sim.Config().Seed,
		hud:     true,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}

	due := g.pacer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	if !g.hud {
		return
	}
	c := g.sim.Census()
	state := ""
	if g.paused {
		state = "  [paused]"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\ntick %d  trees %d  burning %d%s",
		g.sim.Config().Params.Summary(), g.sim.Tick(), c.Tree, c.Burning, state))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
