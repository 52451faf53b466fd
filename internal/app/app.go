//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"iter"
	"time"

	"github.com/Nemo9439/game-of-life/internal/core"
	"github.com/Nemo9439/game-of-life/internal/render"
	"github.com/Nemo9439/game-of-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const paletteLevels = life.DefaultCap + 1

var (
	aliveColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	deadColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Game adapts a core simulation to the ebiten.Game interface. It keeps a
// mirror of the board that is only ever updated from change records.
type Game struct {
	sim     core.Sim
	mirror  *core.ByteGrid
	painter *render.GridPainter
	step    *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	lastErr  error
}

// New constructs a Game for the provided simulation and subscribes to it.
func New(sim core.Sim, scale int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		mirror:  core.NewByteGrid(size.W, size.H),
		painter: render.NewGridPainter(size.W, size.H, render.HeightPalette(paletteLevels, aliveColor, deadColor)),
		step:    core.NewFixedStep(sim.Interval()),
		scale:   scale,
		seed:    seed,
	}
	sim.Subscribe(g)
	return g
}

// Apply implements core.Listener.
func (g *Game) Apply(changes iter.Seq[life.Change]) {
	g.mirror.Apply(changes)
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
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.sim.Reseed()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.lastErr = g.sim.Toggle(y/g.scale, x/g.scale)
	}

	if (!g.paused && g.step.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current mirror.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.mirror.Cells(), g.scale)
	status := fmt.Sprintf("%s  turn %d", g.sim.Name(), g.sim.Turn())
	if g.paused {
		status += "  paused"
	}
	if g.lastErr != nil {
		status += "  " + g.lastErr.Error()
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, 14, color.White)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
