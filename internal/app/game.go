//go:build ebiten

package app

import (
	"image/color"
	"log/slog"

	"snorkel/internal/core"
	"snorkel/internal/editor"
	"snorkel/internal/render"
	"snorkel/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Glyph cell size in logical pixels, matching basicfont.Face7x13.
const (
	CellW = 8
	CellH = 14
)

var (
	glyphColor  = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	emptyColor  = color.RGBA{R: 70, G: 70, B: 78, A: 255}
	cursorColor = color.NRGBA{R: 255, G: 255, B: 255, A: 90}
	selectColor = color.NRGBA{R: 90, G: 140, B: 220, A: 80}
)

// Game adapts an editor session to the ebiten.Game interface.
type Game struct {
	session *editor.Session
	painter *render.GridPainter
	status  *ui.StatusBar
	step    *core.FixedStep
	log     *slog.Logger

	palette render.Palette
	pixel   *ebiten.Image
	empty   rune
	scale   int
	seed    int64
	paused  bool

	outsideW, outsideH int
}

// New constructs a Game for the provided session.
func New(session *editor.Session, cfg *Config, log *slog.Logger) *Game {
	g := &Game{
		session: session,
		status:  ui.NewStatusBar(),
		step:    core.NewFixedStep(cfg.TPS),
		log:     log,
		palette: render.DefaultPalette(),
		empty:   cfg.Empty,
		scale:   max(cfg.Scale, 1),
		seed:    cfg.Seed,
	}
	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(color.White)
	g.painter = render.NewGridPainter(session.Grid().Cols(), session.Grid().Rows(), g.palette)
	return g
}

// Reset reinitializes the grid with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.session.Reset(seed)
}

// Update handles input and advances the grid at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.fitWindow()
	g.handleKeys()

	if !g.paused && g.step.ShouldStep() {
		g.session.NextFrame()
	}
	return nil
}

func (g *Game) handleKeys() {
	s := g.session
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.paused = !g.paused
		g.log.Info("run state changed", "paused", g.paused)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		s.NextFrame()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		s.Delete()
	}

	if ctrl {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			s.Copy()
		case inpututil.IsKeyJustPressed(ebiten.KeyV):
			s.Paste()
		case inpututil.IsKeyJustPressed(ebiten.KeyZ):
			s.Undo()
		case inpututil.IsKeyJustPressed(ebiten.KeyY):
			s.Redo()
		case inpututil.IsKeyJustPressed(ebiten.KeyR) && shift:
			g.Reset(g.seed)
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			s.ResetFrame()
		}
		return
	}

	moves := []struct {
		key    ebiten.Key
		dx, dy int
	}{
		{ebiten.KeyArrowLeft, -1, 0},
		{ebiten.KeyArrowRight, 1, 0},
		{ebiten.KeyArrowUp, 0, -1},
		{ebiten.KeyArrowDown, 0, 1},
	}
	for _, m := range moves {
		if !repeating(m.key) {
			continue
		}
		if _, active := s.Selection(); shift && !active {
			s.StartSelection()
		} else if !shift {
			s.ClearSelection()
		}
		s.Move(m.dx, m.dy)
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		s.Replace(r)
	}
}

// repeating reports a key press and its auto-repeat.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > 20 && d%3 == 0)
}

// fitWindow resizes the grid to the window, as a terminal editor follows
// its terminal.
func (g *Game) fitWindow() {
	if g.outsideW <= 0 || g.outsideH <= 0 {
		return
	}
	cols := g.outsideW / (CellW * g.scale)
	rows := (g.outsideH/g.scale - ui.Height) / CellH
	grid := g.session.Grid()
	if cols <= 0 || rows <= 0 || (cols == grid.Cols() && rows == grid.Rows()) {
		return
	}
	g.session.Resize(cols, rows)
	g.painter = render.NewGridPainter(cols, rows, g.palette)
	g.log.Debug("window resized", "rows", rows, "cols", cols)
}

// Draw renders the grid, the cursor, the selection and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.session.Grid()
	g.painter.Blit(screen, grid.Cells(), CellW, CellH)

	if sel, ok := g.session.Selection(); ok {
		g.fillRect(screen, sel.StartX*CellW, sel.StartY*CellH, sel.Width()*CellW, sel.Height()*CellH, selectColor)
	}
	cur := g.session.Cursor()
	g.fillRect(screen, cur.X*CellW, cur.Y*CellH, CellW, CellH, cursorColor)

	face := basicfont.Face7x13
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			o, _ := grid.Get(core.Coord{X: x, Y: y})
			r, ok := o.Rune()
			clr := glyphColor
			if !ok {
				r, clr = g.empty, emptyColor
			}
			text.Draw(screen, string(r), face, x*CellW, y*CellH+11, clr)
		}
	}

	line := ui.StatusLine(grid.Parameters(), cur, g.paused)
	g.status.Draw(screen, line, grid.Cols()*CellW, grid.Rows()*CellH)
}

func (g *Game) fillRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(g.pixel, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	grid := g.session.Grid()
	return grid.Cols() * CellW, grid.Rows()*CellH + ui.Height
}
