// Package gui runs the raylib window shell around the simulation core.
package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"rulescope/internal/config"
	"rulescope/internal/render"
	"rulescope/internal/sim"
	"rulescope/internal/viewport"
)

var (
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
)

// App wires the session, the active renderer and the window together. All
// methods run on the main thread that owns the GL context.
type App struct {
	cfg      *config.Config
	logger   *zap.Logger
	session  *sim.Session
	renderer render.Renderer
	backend  render.Backend
	palette  render.Palette
	showHUD  bool
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "rulescope")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// Run opens the window, builds the app and blocks in the main loop until
// the window closes.
func Run(cfg *config.Config, logger *zap.Logger) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	app, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer app.renderer.Dispose()

	app.runLoop()
	return nil
}

func newApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	view := viewport.Derive(cfg.Width, cfg.Height,
		cfg.CellSize, cfg.CellMargin, cfg.RenderMargin)
	session, err := sim.New(view, uint8(cfg.Rule), cfg.Pattern, seed)
	if err != nil {
		return nil, err
	}
	session.SetSpeed(cfg.Speed)
	session.SetPlaying(!cfg.StartPaused)

	app := &App{
		cfg:     cfg,
		logger:  logger,
		session: session,
		backend: render.Backend(cfg.Backend),
		palette: render.DefaultPalette(),
		showHUD: true,
	}
	app.renderer = render.New(app.backend, app.palette, logger)
	app.renderer.Resize(cfg.Width, cfg.Height)
	return app, nil
}

func (a *App) runLoop() {
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}
}

func (a *App) update() {
	a.handleKeys()

	if rl.IsWindowResized() {
		a.resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	a.session.Advance(elapsed)
}

func (a *App) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.session.Toggle()
	case rl.IsKeyPressed(rl.KeyN):
		if !a.session.Playing() {
			a.session.Step()
		}
	case rl.IsKeyPressed(rl.KeyR):
		a.session.Reseed()
	case rl.IsKeyPressed(rl.KeyRight):
		a.session.SetRule(a.session.Rule() + 1)
	case rl.IsKeyPressed(rl.KeyLeft):
		a.session.SetRule(a.session.Rule() - 1)
	case rl.IsKeyPressed(rl.KeyUp):
		a.session.SetSpeed(a.session.Speed() * 2)
	case rl.IsKeyPressed(rl.KeyDown):
		a.session.SetSpeed(a.session.Speed() / 2)
	case rl.IsKeyPressed(rl.KeyB):
		a.switchBackend()
	case rl.IsKeyPressed(rl.KeyH):
		a.showHUD = !a.showHUD
	}
}

// resize is a full barrier: the session geometry and the renderer surface
// are rebuilt before the next render call.
func (a *App) resize(width, height int) {
	view := viewport.Derive(width, height,
		a.cfg.CellSize, a.cfg.CellMargin, a.cfg.RenderMargin)
	a.session.Resize(view)
	a.renderer.Resize(width, height)
	a.logger.Debug("window resized",
		zap.Int("width", width), zap.Int("height", height),
		zap.Int("cols", view.Cols), zap.Int("rows", view.Rows))
}

// switchBackend flips between the CPU and GPU renderers. The old renderer
// is disposed before the new one exists; simulation state is untouched.
func (a *App) switchBackend() {
	target := render.BackendGPU
	if a.renderer.Name() == "gpu" {
		target = render.BackendCPU
	}
	a.renderer = render.Switch(a.renderer, target, a.palette, a.logger)
	a.renderer.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
}

func (a *App) draw() {
	rl.BeginDrawing()
	a.renderer.Render(a.session.Snapshot())
	if a.showHUD {
		a.drawHUD()
	}
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	state := "playing"
	if !a.session.Playing() {
		state = "paused"
	}
	line := fmt.Sprintf("rule %d | %s | %.0f gen/s | %s | %d fps",
		a.session.Rule(), a.renderer.Name(), a.session.Speed(), state, rl.GetFPS())
	rl.DrawText(line, 10, 10, 20, colText)
	rl.DrawText("space pause  n step  r reseed  arrows rule/speed  b backend  h hud",
		10, int32(rl.GetScreenHeight())-26, 16, colTextDim)
}
