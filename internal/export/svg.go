// Package export writes single-frame snapshots of the scene as SVG.
package export

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/sim"
)

var _ scene.Surface = (*SVG)(nil)

// glyphWidth approximates the advance of one character relative to the
// font size.
const glyphWidth = 0.5

// SVG is a scene.Surface that accumulates SVG elements.
type SVG struct {
	Width, Height int
	sb            strings.Builder
}

func NewSVG(w, h int) *SVG {
	return &SVG{Width: w, Height: h}
}

// Snapshot renders the current frame of s as a complete SVG document.
func Snapshot(s *sim.Simulation) string {
	doc := NewSVG(s.Settings.WindowWidth, s.Settings.WindowHeight)
	scene.Draw(doc, s)
	return doc.String()
}

func fill(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf(`fill="rgb(%d,%d,%d)"`, c.R, c.G, c.B)
	}
	return fmt.Sprintf(`fill="rgb(%d,%d,%d)" fill-opacity="%.3f"`, c.R, c.G, c.B, float64(c.A)/255)
}

func stroke(c color.RGBA) string {
	return fmt.Sprintf(`stroke="rgb(%d,%d,%d)"`, c.R, c.G, c.B)
}

func (s *SVG) Clear(c color.RGBA) {
	s.sb.Reset()
	fmt.Fprintf(&s.sb, `<rect width="100%%" height="100%%" %s/>`+"\n", fill(c))
}

func (s *SVG) DrawCircle(x, y, r float64, c color.RGBA) {
	fmt.Fprintf(&s.sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" %s/>`+"\n", x, y, r, fill(c))
}

func (s *SVG) DrawRing(x, y, r float64, c color.RGBA) {
	fmt.Fprintf(&s.sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" %s stroke-width="1"/>`+"\n", x, y, r, stroke(c))
}

func (s *SVG) DrawRect(x, y, w, h float64, c color.RGBA) {
	fmt.Fprintf(&s.sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>`+"\n", x, y, w, h, fill(c))
}

func (s *SVG) DrawRectLines(x, y, w, h, thickness float64, c color.RGBA) {
	fmt.Fprintf(&s.sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" %s stroke-width="%.1f"/>`+"\n",
		x, y, w, h, stroke(c), thickness)
}

func (s *SVG) MeasureText(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * glyphWidth
}

// RenderText anchors text at its top-left corner like the window backends.
func (s *SVG) RenderText(text string, x, y, size float64, c color.RGBA) {
	var esc strings.Builder
	xml.EscapeText(&esc, []byte(text))
	fmt.Fprintf(&s.sb, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" dominant-baseline="hanging" %s>%s</text>`+"\n",
		x, y, size, fill(c), esc.String())
}

func (s *SVG) String() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
%s</svg>
`, s.Width, s.Height, s.Width, s.Height, s.sb.String())
}
