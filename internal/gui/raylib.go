//go:build !ebiten

package gui

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/plexus/internal/field"
)

// DefaultBackend is used when no backend is named.
const DefaultBackend = "raylib"

func init() { register(raylibBackend{}) }

type raylibBackend struct{}

func (raylibBackend) Name() string { return "raylib" }

// Run opens a resizable HiDPI window. With FlagWindowHighdpi raylib keeps
// screen coordinates logical, so the surface draws without scaling.
func (raylibBackend) Run(sim *field.Simulator, opts Options) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)

	app := &raylibApp{host: newHost(sim, opts)}
	for !rl.WindowShouldClose() && !app.quit {
		app.Update()
		app.Draw()
	}
	return nil
}

type raylibApp struct {
	*host
	surface raylibSurface
	quit    bool
}

func (a *raylibApp) Update() {
	a.observeSize(rl.GetScreenWidth(), rl.GetScreenHeight(), float64(rl.GetWindowScaleDPI().X))

	m := rl.GetMousePosition()
	a.observePointer(float64(m.X), float64(m.Y), rl.IsCursorOnScreen())

	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
	case rl.IsKeyPressed(rl.KeySpace):
		a.togglePause()
	case rl.IsKeyPressed(rl.KeyR):
		a.rebuild()
	case rl.IsKeyPressed(rl.KeyS):
		a.snapshot()
	case rl.IsKeyPressed(rl.KeyH):
		a.toggleHUD()
	}
}

func (a *raylibApp) Draw() {
	rl.BeginDrawing()
	a.frame(time.Now(), a.surface)
	if a.showHUD {
		rl.DrawText(a.hud(), 20, 20, 14, rl.NewColor(140, 140, 140, 255))
	}
	rl.EndDrawing()
}

// raylibSurface paints onto the current raylib frame.
type raylibSurface struct{}

func (raylibSurface) Clear(bg color.NRGBA) { rl.ClearBackground(rlColor(bg)) }

func (raylibSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	rl.DrawLineEx(rl.NewVector2(float32(x0), float32(y0)), rl.NewVector2(float32(x1), float32(y1)), float32(width), rlColor(c))
}

func (raylibSurface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(cx), float32(cy)), float32(r), rlColor(c))
}

// rlColor converts to raylib's straight-alpha color.
func rlColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
