// Package preview renders a mock flowgraph as a PNG so a theme can be
// inspected without touching the host installation.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pimpmygrc/pimpmygrc/internal/theme"
)

const (
	canvasWidth  = 720
	canvasHeight = 360

	blockWidth  = 150
	blockHeight = 56
	portSize    = 10
)

// block is one mock flowgraph node. state picks the fill color the way the
// host colors enabled/disabled/bypassed/missing/deprecated blocks.
type block struct {
	label string
	dtype string
	state string
	x, y  int
}

// mockBlocks is the fixed scene every preview renders: a small source to
// sink chain plus a disabled, a bypassed and a broken block, so all the
// interesting theme colors show up in one image.
var mockBlocks = []block{
	{label: "Signal Source", dtype: "complex", state: "enabled", x: 40, y: 60},
	{label: "Throttle", dtype: "complex", state: "bypassed", x: 290, y: 60},
	{label: "QT GUI Sink", dtype: "complex", state: "enabled", x: 530, y: 60},
	{label: "Noise Source", dtype: "float", state: "disabled", x: 40, y: 220},
	{label: "Old FFT", dtype: "float", state: "deprecated", x: 290, y: 220},
	{label: "missing_block", dtype: "byte", state: "missing", x: 530, y: 220},
}

// connections index into mockBlocks: out port of [0] into in port of [1], etc.
var connections = [][2]int{{0, 1}, {1, 2}, {3, 4}}

// Render draws the mock flowgraph with the palette's colors. Colors the
// theme doesn't define fall back to the host's stock dark look, so a
// partial palette still yields a readable image.
func Render(p *theme.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))

	bg := parseHex(p.Color("FLOWGRAPH_BACKGROUND_COLOR", "#1e1e2e"))
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	connColor := parseHex(p.Color("CONNECTION_ENABLED_COLOR", "#c0c0c0"))
	for _, c := range connections {
		from, to := mockBlocks[c[0]], mockBlocks[c[1]]
		drawConnection(img,
			from.x+blockWidth, from.y+blockHeight/2,
			to.x, to.y+blockHeight/2,
			connColor)
	}

	fontColor := parseHex(p.Color("FONT_COLOR", "#f0f0f0"))
	for _, b := range mockBlocks {
		drawBlock(img, p, b, fontColor)
	}

	drawLabel(img, 40, 28, "Flowgraph Preview", fontColor)
	return img
}

// WritePNG renders the palette and writes the image to path.
func WritePNG(path string, p *theme.Palette) error {
	f, err := os.Create(path) // #nosec G304 - user-chosen output path
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	if err := png.Encode(f, Render(p)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close preview file: %w", err)
	}
	return nil
}

func drawBlock(img *image.RGBA, p *theme.Palette, b block, fontColor color.RGBA) {
	var fill, border color.RGBA
	switch b.state {
	case "disabled":
		fill = parseHex(p.Color("BLOCK_DISABLED_COLOR", "#3a3a4a"))
		border = parseHex(p.Color("BORDER_COLOR_DISABLED", "#666666"))
	case "bypassed":
		fill = parseHex(p.Color("BLOCK_BYPASSED_COLOR", "#f5d76e"))
		border = parseHex(p.Color("BORDER_COLOR", "#444444"))
	case "missing":
		fill = parseHex(p.Color("MISSING_BLOCK_BACKGROUND_COLOR", "#552222"))
		border = parseHex(p.Color("MISSING_BLOCK_BORDER_COLOR", "#ff0000"))
	case "deprecated":
		fill = parseHex(p.Color("BLOCK_DEPRECATED_BACKGROUND_COLOR", "#554422"))
		border = parseHex(p.Color("BLOCK_DEPRECATED_BORDER_COLOR", "#ff8000"))
	default:
		fill = parseHex(p.Color("BLOCK_ENABLED_COLOR", "#2d2d44"))
		border = parseHex(p.Color("BORDER_COLOR", "#444444"))
	}

	rect := image.Rect(b.x, b.y, b.x+blockWidth, b.y+blockHeight)
	draw.Draw(img, rect, &image.Uniform{fill}, image.Point{}, draw.Src)
	drawBorder(img, rect, border)

	portColor := parseHex(p.PortColor(b.dtype, "#4ca2ff"))
	midY := b.y + blockHeight/2 - portSize/2
	drawPort(img, b.x-portSize/2, midY, portColor, border)
	drawPort(img, b.x+blockWidth-portSize/2, midY, portColor, border)

	drawLabel(img, b.x+10, b.y+24, b.label, fontColor)
	drawLabel(img, b.x+10, b.y+42, b.dtype, fontColor)
}

func drawPort(img *image.RGBA, x, y int, fill, border color.RGBA) {
	rect := image.Rect(x, y, x+portSize, y+portSize)
	draw.Draw(img, rect, &image.Uniform{fill}, image.Point{}, draw.Src)
	drawBorder(img, rect, border)
}

// drawBorder outlines rect with a one pixel frame.
func drawBorder(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.Set(x, rect.Min.Y, c)
		img.Set(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.Set(rect.Min.X, y, c)
		img.Set(rect.Max.X-1, y, c)
	}
}

// drawConnection draws a horizontal-vertical-horizontal elbow between two
// port midpoints, the way the host routes its wires.
func drawConnection(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	midX := (x1 + x2) / 2
	drawHLine(img, x1, midX, y1, c)
	drawVLine(img, midX, y1, y2, c)
	drawHLine(img, midX, x2, y2, c)
}

func drawHLine(img *image.RGBA, x1, x2, y int, c color.RGBA) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		img.Set(x, y, c)
	}
}

func drawVLine(img *image.RGBA, x, y1, y2 int, c color.RGBA) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		img.Set(x, y, c)
	}
}

func drawLabel(img *image.RGBA, x, y int, text string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// parseHex converts "#RRGGBB" to an opaque RGBA. Malformed values come out
// as mid gray rather than failing the render.
func parseHex(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
