package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/san-kum/orrery/internal/interact"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/sim"
)

const (
	title     = "orrery"
	targetFPS = 60
	fontPath  = "/usr/share/fonts/liberation/LiberationSans-Regular.ttf"
	fontSize  = 32
	letterGap = 1
)

// keyNames maps raylib key codes onto the controller's key names.
var keyNames = map[int32]string{
	rl.KeySpace:      interact.KeySpace,
	rl.KeyEqual:      interact.KeyEqual,
	rl.KeyKpAdd:      interact.KeyPlus,
	rl.KeyMinus:      interact.KeyMinus,
	rl.KeyKpSubtract: interact.KeyMinus,
	rl.KeyUp:         interact.KeyUp,
	rl.KeyDown:       interact.KeyDown,
	rl.KeyR:          interact.KeyR,
	rl.KeyE:          interact.KeyE,
}

var _ scene.Surface = (*App)(nil)

// App is the raylib window backend.
type App struct {
	Sim    *sim.Simulation
	Font   rl.Font
	logger log.Logger
}

// Run opens a window sized from the settings and blocks in the frame
// loop until the window is closed.
func Run(s *sim.Simulation, logger log.Logger) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	logger = log.With(logger, "component", "gui")

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(s.Settings.WindowWidth), int32(s.Settings.WindowHeight), title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	app := &App{Sim: s, Font: loadFont(), logger: logger}
	level.Info(logger).Log("msg", "window open", "width", s.Settings.WindowWidth, "height", s.Settings.WindowHeight)
	app.RunLoop()
	level.Info(logger).Log("msg", "window closed", "frames", s.Frames)
}

// loadFont prefers Liberation Sans and falls back to raylib's built-in font.
func loadFont() rl.Font {
	font := rl.LoadFontEx(fontPath, fontSize, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.Sim.Update(float64(rl.GetFrameTime()), pollEvents())
}

func (a *App) Draw() {
	rl.BeginDrawing()
	scene.Draw(a, a.Sim)
	rl.EndDrawing()
}

// pollEvents collects this frame's clicks and key presses in arrival order.
func pollEvents() []interact.Event {
	var events []interact.Event
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		p := rl.GetMousePosition()
		events = append(events, interact.Click(float64(p.X), float64(p.Y)))
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if name, ok := keyNames[key]; ok {
			events = append(events, interact.Key(name))
		}
	}
	return events
}

func (a *App) Clear(c color.RGBA) {
	rl.ClearBackground(c)
}

func (a *App) DrawCircle(x, y, r float64, c color.RGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), c)
}

func (a *App) DrawRing(x, y, r float64, c color.RGBA) {
	rl.DrawCircleLines(int32(x), int32(y), float32(r), c)
}

func (a *App) DrawRect(x, y, w, h float64, c color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), c)
}

func (a *App) DrawRectLines(x, y, w, h, thickness float64, c color.RGBA) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), float32(thickness), c)
}

func (a *App) MeasureText(text string, size float64) float64 {
	return float64(rl.MeasureTextEx(a.Font, text, float32(size), letterGap).X)
}

func (a *App) RenderText(text string, x, y, size float64, c color.RGBA) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), letterGap, c)
}
