package scene

import (
	"image/color"
	"math"

	"github.com/san-kum/orrery/internal/interact"
	"github.com/san-kum/orrery/internal/sim"
)

var (
	White        = color.RGBA{255, 255, 255, 255}
	SunColor     = color.RGBA{255, 255, 0, 255}
	SunSpotColor = color.RGBA{255, 200, 0, 255}
	ButtonFill   = color.RGBA{50, 50, 100, 255}
	ButtonStroke = color.RGBA{100, 100, 200, 255}
)

const (
	HUDTextSize    = 24
	ButtonTextSize = 28
	HUDTop         = 60
	HUDLineHeight  = 30

	glowLayers = 3
	sunSpots   = 8
)

// OrbitColor dims a body colour for its orbit path.
func OrbitColor(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 3, c.G / 3, c.B / 3, 255}
}

// Draw renders one frame of s.
func Draw(dst Surface, s *sim.Simulation) {
	dst.Clear(s.Settings.BackgroundColor.Color())
	DrawStars(dst, s)
	DrawBodies(dst, s)
	DrawSun(dst, s)
	DrawStatus(dst, s.Status())
	DrawButtons(dst, s.Controller.Buttons)
}

// DrawStars paints the fixed background in screen space; it does not
// move with the camera.
func DrawStars(dst Surface, s *sim.Simulation) {
	for _, st := range s.Stars {
		b := st.Brightness
		dst.DrawCircle(st.X, st.Y, st.Radius, color.RGBA{b, b, b, 255})
	}
}

func DrawBodies(dst Surface, s *sim.Simulation) {
	cam := s.Camera
	for _, b := range s.System.Bodies {
		dst.DrawRing(cam.PanX, cam.PanY, cam.ScreenLength(b.OrbitRadius), OrbitColor(b.Color))
		x, y := cam.WorldToScreen(b.Position())
		dst.DrawCircle(x, y, max(cam.ScreenLength(b.Size), 1), b.Color)
	}
}

// DrawSun draws the sun at the origin with a soft glow and a ring of spots.
func DrawSun(dst Surface, s *sim.Simulation) {
	cam := s.Camera
	r := cam.ScreenLength(s.Settings.SunRadius)

	for i := glowLayers; i > 0; i-- {
		alpha := uint8(50 - i*10)
		dst.DrawCircle(cam.PanX, cam.PanY, r*(1+float64(i)*0.1), color.RGBA{255, 255, 100, alpha})
	}
	dst.DrawCircle(cam.PanX, cam.PanY, r, SunColor)

	for i := 0; i < sunSpots; i++ {
		angle := float64(i) * 2 * math.Pi / sunSpots
		x := cam.PanX + math.Cos(angle)*r*0.7
		y := cam.PanY + math.Sin(angle)*r*0.7
		dst.DrawCircle(x, y, r*0.1, SunSpotColor)
	}
}

func DrawStatus(dst Surface, lines []string) {
	for i, line := range lines {
		dst.RenderText(line, 10, float64(HUDTop+i*HUDLineHeight), HUDTextSize, White)
	}
}

// DrawButtons draws each button as a filled box with a border and a
// centered label.
func DrawButtons(dst Surface, buttons []*interact.Button) {
	for _, b := range buttons {
		r := b.Rect
		dst.DrawRect(r.X, r.Y, r.W, r.H, ButtonFill)
		dst.DrawRectLines(r.X, r.Y, r.W, r.H, 2, ButtonStroke)

		cx, cy := r.Center()
		w := dst.MeasureText(b.Label, ButtonTextSize)
		dst.RenderText(b.Label, cx-w/2, cy-ButtonTextSize/2, ButtonTextSize, White)
	}
}
