package tui

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/san-kum/orrery/internal/scene"
)

var _ scene.Surface = (*Surface)(nil)

// Surface draws window-space coordinates onto a braille canvas, scaled
// uniformly to fit and centered.
type Surface struct {
	Canvas *Canvas

	scale            float64
	offX, offY       float64
	windowW, windowH float64
}

func NewSurface(c *Canvas, windowW, windowH int) *Surface {
	s := &Surface{Canvas: c, windowW: float64(windowW), windowH: float64(windowH)}
	s.fit()
	return s
}

func (s *Surface) fit() {
	pw, ph := float64(s.Canvas.Width*2), float64(s.Canvas.Height*4)
	s.scale = math.Min(pw/s.windowW, ph/s.windowH)
	s.offX = (pw - s.windowW*s.scale) / 2
	s.offY = (ph - s.windowH*s.scale) / 2
}

// toPixel maps a window coordinate to a canvas sub-pixel.
func (s *Surface) toPixel(x, y float64) (float64, float64) {
	return s.offX + x*s.scale, s.offY + y*s.scale
}

// ToWindow maps a terminal cell back to the window coordinate at its center.
func (s *Surface) ToWindow(col, row int) (float64, float64) {
	px, py := float64(col*2)+1, float64(row*4)+2
	return (px - s.offX) / s.scale, (py - s.offY) / s.scale
}

func (s *Surface) Clear(c color.RGBA) {
	s.Canvas.Background = c
	s.Canvas.Clear()
}

func (s *Surface) DrawCircle(x, y, r float64, c color.RGBA) {
	px, py := s.toPixel(x, y)
	s.Canvas.FillCircle(px, py, r*s.scale, c)
}

func (s *Surface) DrawRing(x, y, r float64, c color.RGBA) {
	px, py := s.toPixel(x, y)
	s.Canvas.Ring(px, py, r*s.scale, c)
}

// DrawRect only outlines; solid fills would hide the braille pixels.
func (s *Surface) DrawRect(x, y, w, h float64, c color.RGBA) {
	s.DrawRectLines(x, y, w, h, 1, c)
}

func (s *Surface) DrawRectLines(x, y, w, h, _ float64, c color.RGBA) {
	x0, y0 := s.toPixel(x, y)
	x1, y1 := s.toPixel(x+w, y+h)
	ix0, iy0, ix1, iy1 := int(x0), int(y0), int(x1), int(y1)
	s.Canvas.DrawLine(ix0, iy0, ix1, iy0, c)
	s.Canvas.DrawLine(ix1, iy0, ix1, iy1, c)
	s.Canvas.DrawLine(ix1, iy1, ix0, iy1, c)
	s.Canvas.DrawLine(ix0, iy1, ix0, iy0, c)
}

// MeasureText reports the window-space width of text, one cell per rune.
func (s *Surface) MeasureText(text string, _ float64) float64 {
	return float64(utf8.RuneCountInString(text)) * 2 / s.scale
}

func (s *Surface) RenderText(text string, x, y, _ float64, c color.RGBA) {
	px, py := s.toPixel(x, y)
	s.Canvas.WriteText(int(py)/4, int(px)/2, text, c)
}
