package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const brailleBase = 0x2800

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille pixel grid with one colour per character cell.
// Sub-pixel resolution is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Background    color.RGBA

	grid   [][]rune
	colors [][]color.RGBA
	text   [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h}
	c.grid = make([][]rune, h)
	c.colors = make([][]color.RGBA, h)
	c.text = make([][]rune, h)
	for i := 0; i < h; i++ {
		c.grid[i] = make([]rune, w)
		c.colors[i] = make([]color.RGBA, w)
		c.text[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = brailleBase
			c.colors[i][j] = c.Background
			c.text[i][j] = 0
		}
	}
}

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Set lights sub-pixel (x, y) and paints its cell with col.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	row, cc, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.grid[row][cc] |= pixelMap[y%4][x%2]
	c.colors[row][cc] = c.blend(col)
}

func (c *Canvas) Lit(x, y int) bool {
	row, cc, ok := c.cell(x, y)
	if !ok {
		return false
	}
	return c.grid[row][cc]&pixelMap[y%4][x%2] != 0
}

// blend mixes translucent colours into the background; terminals have no
// alpha channel.
func (c *Canvas) blend(col color.RGBA) color.RGBA {
	if col.A == 255 {
		return col
	}
	bg, _ := colorful.MakeColor(c.Background)
	fg := colorful.Color{R: float64(col.R) / 255, G: float64(col.G) / 255, B: float64(col.B) / 255}
	r, g, b := bg.BlendRgb(fg, float64(col.A)/255).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// FillCircle lights every sub-pixel within r of (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	if r < 0.5 {
		c.Set(int(math.Round(cx)), int(math.Round(cy)), col)
		return
	}
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r {
				c.Set(x, y, col)
			}
		}
	}
}

// Ring traces the outline of a circle.
func (c *Canvas) Ring(cx, cy, r float64, col color.RGBA) {
	if r < 0.5 {
		return
	}
	steps := int(2*math.Pi*r) + 8
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		c.Set(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))), col)
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// WriteText places text over the pixel layer starting at cell (row, col).
func (c *Canvas) WriteText(row, col int, s string, fg color.RGBA) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.Width {
			c.text[row][col] = r
			c.colors[row][col] = fg
		}
		col++
	}
}

// Rune returns the character shown at a cell.
func (c *Canvas) Rune(row, col int) rune {
	if t := c.text[row][col]; t != 0 {
		return t
	}
	return c.grid[row][col]
}

// String renders the canvas, grouping runs of equal colour into a single
// styled span.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.colors[row][col] == c.colors[row][start] {
				continue
			}
			b.WriteString(c.span(row, start, col))
			start = col
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Canvas) span(row, from, to int) string {
	runes := make([]rune, 0, to-from)
	for col := from; col < to; col++ {
		runes = append(runes, c.Rune(row, col))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex(c.colors[row][from]))).Render(string(runes))
}

func hex(col color.RGBA) string {
	cf, _ := colorful.MakeColor(col)
	return cf.Hex()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
