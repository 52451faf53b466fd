// Package termview renders a simulation in a terminal and feeds keyboard
// input back into it. The board is redrawn only where change records land.
package termview

import (
	"context"
	"fmt"
	"image/color"
	"iter"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Nemo9439/game-of-life/internal/core"
	"github.com/Nemo9439/game-of-life/internal/render"
	"github.com/Nemo9439/game-of-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

// cellWidth is how many terminal columns one board cell occupies.
const cellWidth = 2

var (
	aliveColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	deadColor  = color.RGBA{A: 255}
)

// View mirrors a square board onto a tcell screen.
type View struct {
	mu     sync.Mutex
	screen tcell.Screen
	n      int
	mirror *core.ByteGrid
	styles []tcell.Style

	cursorRow, cursorCol int
	status               string
}

// New returns a View for an n*n board drawn on screen. The screen must
// already be initialised.
func New(screen tcell.Screen, n int) *View {
	palette := render.HeightPalette(life.DefaultCap+1, aliveColor, deadColor)
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		styles[i] = tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack)
	}
	return &View{
		screen: screen,
		n:      n,
		mirror: core.NewByteGrid(n, n),
		styles: styles,
	}
}

// Apply implements core.Listener.
func (v *View) Apply(changes iter.Seq[life.Change]) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for ch := range changes {
		if !v.mirror.Set(ch) {
			continue
		}
		v.drawCell(ch.Key.RowCol(v.n))
	}
	v.screen.Show()
}

// Height returns the mirrored height at (row, col).
func (v *View) Height(row, col int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return int(v.mirror.At(col, row))
}

// Cursor returns the board position Enter will toggle.
func (v *View) Cursor() (row, col int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursorRow, v.cursorCol
}

// Run subscribes to sim, steps it every sim.Interval() and handles keys
// until q/Esc is pressed or ctx is cancelled.
//
//	space  pause/resume     n      single step
//	arrows move cursor      enter  toggle cell
//	e      sprinkle life    r      reset board
func (v *View) Run(ctx context.Context, sim core.Sim) error {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	var ticking sync.WaitGroup
	defer func() {
		cancel()
		ticking.Wait()
	}()

	sim.Subscribe(v)

	var paused atomic.Bool
	v.refreshStatus(sim, false)
	ticking.Add(1)
	go func() {
		defer ticking.Done()
		_ = core.Every(ctx, sim.Interval(), func() {
			if paused.Load() {
				return
			}
			sim.Step()
			v.refreshStatus(sim, false)
		})
	}()
	go func() {
		<-ctx.Done()
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if err := parent.Err(); err != nil {
				return err
			}
		case *tcell.EventResize:
			v.redraw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyUp:
				v.moveCursor(-1, 0)
			case tcell.KeyDown:
				v.moveCursor(1, 0)
			case tcell.KeyLeft:
				v.moveCursor(0, -1)
			case tcell.KeyRight:
				v.moveCursor(0, 1)
			case tcell.KeyEnter:
				row, col := v.Cursor()
				if err := sim.Toggle(row, col); err != nil {
					v.setStatus(err.Error())
				}
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return nil
				case ' ':
					paused.Store(!paused.Load())
					v.refreshStatus(sim, paused.Load())
				case 'n':
					sim.Step()
					v.refreshStatus(sim, paused.Load())
				case 'e':
					sim.Reseed()
				case 'r':
					sim.Reset(time.Now().UnixNano())
					v.refreshStatus(sim, paused.Load())
				}
			}
		}
	}
}

func (v *View) refreshStatus(sim core.Sim, paused bool) {
	state := "running"
	if paused {
		state = "paused"
	}
	v.mu.Lock()
	alive := 0
	for _, h := range v.mirror.Cells() {
		if h > 0 {
			alive++
		}
	}
	v.mu.Unlock()
	v.setStatus(fmt.Sprintf("%s  turn %d  alive %d  %s", sim.Name(), sim.Turn(), alive, state))
}

func (v *View) setStatus(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = s
	v.drawStatus()
	v.screen.Show()
}

func (v *View) moveCursor(dr, dc int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	prevRow, prevCol := v.cursorRow, v.cursorCol
	v.cursorRow = min(max(v.cursorRow+dr, 0), v.n-1)
	v.cursorCol = min(max(v.cursorCol+dc, 0), v.n-1)
	v.drawCell(prevRow, prevCol)
	v.drawCell(v.cursorRow, v.cursorCol)
	v.screen.Show()
}

func (v *View) redraw() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.screen.Clear()
	for row := 0; row < v.n; row++ {
		for col := 0; col < v.n; col++ {
			v.drawCell(row, col)
		}
	}
	v.drawStatus()
	v.screen.Sync()
}

// drawCell expects v.mu to be held.
func (v *View) drawCell(row, col int) {
	h := int(v.mirror.At(col, row))
	style := v.styles[min(h, len(v.styles)-1)]
	if row == v.cursorRow && col == v.cursorCol {
		style = style.Reverse(true)
	}
	glyph := ' '
	switch {
	case h > 9:
		glyph = '#'
	case h > 0:
		glyph = rune('0' + h)
	}
	x := col * cellWidth
	v.screen.SetContent(x, row, glyph, nil, style)
	v.screen.SetContent(x+1, row, ' ', nil, style)
}

// drawStatus expects v.mu to be held.
func (v *View) drawStatus() {
	w, _ := v.screen.Size()
	y := v.n
	x := 0
	for _, r := range v.status {
		if x >= w {
			break
		}
		v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
