// Package scene turns simulation state into immediate-mode draw calls.
//
// Backends implement [Surface]; [Draw] issues one frame against it in
// back-to-front order: background, stars, orbits and bodies, the sun, the
// status lines and finally the toolbar.
package scene

import "image/color"

// Surface is the drawing capability a rendering backend provides. All
// coordinates are screen pixels.
type Surface interface {
	Clear(c color.RGBA)
	DrawCircle(x, y, r float64, c color.RGBA)
	DrawRing(x, y, r float64, c color.RGBA)
	DrawRect(x, y, w, h float64, c color.RGBA)
	DrawRectLines(x, y, w, h, thickness float64, c color.RGBA)
	// MeasureText returns the width of text rendered at size.
	MeasureText(text string, size float64) float64
	RenderText(text string, x, y, size float64, c color.RGBA)
}
