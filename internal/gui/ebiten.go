//go:build ebiten

package gui

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/plexus/internal/field"
)

// DefaultBackend is used when no backend is named.
const DefaultBackend = "ebiten"

func init() { register(ebitenBackend{}) }

type ebitenBackend struct{}

func (ebitenBackend) Name() string { return "ebiten" }

func (ebitenBackend) Run(sim *field.Simulator, opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.FPS)

	err := ebiten.RunGame(&game{host: newHost(sim, opts)})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game renders at device resolution: Layout returns the raster size and
// the surface scales logical coordinates by the viewport scale.
type game struct {
	*host
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.observeSize(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
	return layoutSize(g.sim.Viewport())
}

func (g *game) Update() error {
	vp := g.sim.Viewport()
	cx, cy := ebiten.CursorPosition()
	x, y := vp.ToLogical(float64(cx), float64(cy))
	g.observePointer(x, y, field.Vec2{X: x, Y: y}.In(vp.Width, vp.Height))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.snapshot()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.toggleHUD()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.frame(time.Now(), &ebitenSurface{dst: screen, scale: float32(g.sim.Viewport().Scale)})
	if g.showHUD {
		ebitenutil.DebugPrint(screen, g.hud())
	}
}

// layoutSize is the screen size for a viewport; ebiten needs at least one
// pixel even before the field has an area.
func layoutSize(vp field.Viewport) (int, int) {
	return max(vp.RasterWidth, 1), max(vp.RasterHeight, 1)
}

type ebitenSurface struct {
	dst   *ebiten.Image
	scale float32
}

func (s *ebitenSurface) Clear(bg color.NRGBA) { s.dst.Fill(bg) }

func (s *ebitenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	k := s.scale
	vector.StrokeLine(s.dst, float32(x0)*k, float32(y0)*k, float32(x1)*k, float32(y1)*k, float32(width)*k, c, true)
}

func (s *ebitenSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	k := s.scale
	vector.DrawFilledCircle(s.dst, float32(cx)*k, float32(cy)*k, float32(r)*k, c, true)
}
