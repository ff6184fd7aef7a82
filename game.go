package gesture

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawFunc renders the content. geom is the current view transform and should
// be concatenated into every DrawImageOptions.GeoM.
type DrawFunc func(screen *ebiten.Image, geom ebiten.GeoM)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS readout in the top-left corner. The screen
	// is then repainted every frame instead of only on view changes.
	ShowFPS bool
	// EmulateTouchWithMouse lets the left mouse button act as a contact.
	EmulateTouchWithMouse bool
	// ClearColor fills the screen before each redraw. Nil means black.
	ClearColor color.Color
}

// game adapts a Controller to ebiten.Game.
type game struct {
	c    *Controller
	draw DrawFunc
	cfg  RunConfig
}

// Run opens a window and drives c from Ebitengine's game loop, calling draw
// only when the view changed. It blocks until the window is closed.
func Run(c *Controller, cfg RunConfig, draw DrawFunc) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if draw == nil {
		return fmt.Errorf("run: nil draw func")
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	// Frames with no view change keep the previous contents.
	ebiten.SetScreenClearedEveryFrame(false)

	c.source.EmulateTouchWithMouse = c.source.EmulateTouchWithMouse || cfg.EmulateTouchWithMouse
	if c.view.Viewport.Width == 0 && c.view.Viewport.Height == 0 {
		c.view.Viewport = Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}
		c.view.MarkDirty()
	}
	c.RequestRedraw()

	if err := ebiten.RunGame(newGame(c, cfg, draw)); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func newGame(c *Controller, cfg RunConfig, draw DrawFunc) *game {
	if cfg.ClearColor == nil {
		cfg.ClearColor = color.Black
	}
	return &game{c: c, draw: draw, cfg: cfg}
}

func (g *game) Update() error {
	g.c.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.c.NeedsRedraw() && !g.cfg.ShowFPS {
		return
	}
	screen.Fill(g.cfg.ClearColor)
	g.draw(screen, g.c.view.GeoM())
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	g.c.ClearRedraw()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
