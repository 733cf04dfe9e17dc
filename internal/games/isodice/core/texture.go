package core

import (
	"image"
	"image/color"

	platformcore "github.com/vovakirdan/isodice/internal/core"
)

// Template sentinels: pixels of exactly these colors are copied unchanged.
var (
	SentinelClear   = color.RGBA{R: 0, G: 0, B: 0, A: 0}
	SentinelOutline = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Per-channel shading applied to the replacement color.
const (
	shadeTop   = 0   // green channel
	shadeFront = -10 // red channel
	shadeRight = -50 // blue channel
)

// FacePalette is the display color of each face identifier.
var FacePalette = [FaceCount]color.RGBA{
	{R: 236, G: 239, B: 244, A: 255}, // 0: white
	{R: 224, G: 82, B: 99, A: 255},   // 1: red
	{R: 245, G: 169, B: 57, A: 255},  // 2: orange
	{R: 250, G: 220, B: 80, A: 255},  // 3: yellow
	{R: 80, G: 200, B: 120, A: 255},  // 4: green
	{R: 70, G: 130, B: 230, A: 255},  // 5: blue
}

// FaceColor returns the palette color of a face.
func FaceColor(f Face) color.RGBA {
	return FacePalette[int(f)%FaceCount]
}

// FaceTexture recolors the template for a layout: the visible top, front and
// right faces replace the green, red and blue template regions.
func FaceTexture(l Layout, template *image.RGBA) *image.RGBA {
	return Recolor(template, FaceColor(l.Top), FaceColor(l.Front), FaceColor(l.Right))
}

// Recolor returns a copy of the template with each colored pixel replaced.
// The pixel's dominant channel picks the source: green takes top unshaded,
// red takes front darkened by 10, blue takes right darkened by 50. Sentinel
// pixels are kept as they are.
func Recolor(template *image.RGBA, top, front, right color.RGBA) *image.RGBA {
	b := template.Bounds()
	out := image.NewRGBA(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := template.RGBAAt(x, y)
			if px == SentinelClear || px == SentinelOutline {
				out.SetRGBA(x, y, px)
				continue
			}

			var c color.RGBA
			switch {
			case px.G >= px.R && px.G >= px.B:
				c = shade(top, shadeTop)
			case px.R >= px.B:
				c = shade(front, shadeFront)
			default:
				c = shade(right, shadeRight)
			}
			out.SetRGBA(x, y, c)
		}
	}
	return out
}

func shade(c color.RGBA, offset int) color.RGBA {
	return color.RGBA{
		R: uint8(platformcore.Clamp(int(c.R)+offset, 0, 255)),
		G: uint8(platformcore.Clamp(int(c.G)+offset, 0, 255)),
		B: uint8(platformcore.Clamp(int(c.B)+offset, 0, 255)),
		A: c.A,
	}
}

// Template region colors.
var (
	templateTop   = color.RGBA{G: 255, A: 255}
	templateFront = color.RGBA{R: 255, A: 255}
	templateRight = color.RGBA{B: 255, A: 255}
)

// DefaultTemplate draws the element-sized cube used to texture the die and
// tiles: a top rhombus over a front face (lower left) and a right face
// (lower right), split by an outline seam.
func DefaultTemplate() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ElementWidth, ElementHeight))

	const (
		cx    = float64(ElementWidth-1) / 2 // Horizontal center
		halfW = float64(ElementWidth-1) / 2
		halfH = 5.5 // Half height of the top rhombus
		side  = 10  // Height of the side faces
	)

	for py := 0; py < ElementHeight; py++ {
		for px := 0; px < ElementWidth; px++ {
			x, y := float64(px), float64(py)
			dx := x - cx
			if dx < 0 {
				dx = -dx
			}

			// Lower edge of the rhombus at this column.
			edge := 2*halfH - dx*halfH/halfW

			switch {
			case dx/halfW+absF(y-halfH)/halfH <= 1:
				img.SetRGBA(px, py, templateTop)
			case y > edge && y <= edge+side && px == ElementWidth/2:
				img.SetRGBA(px, py, SentinelOutline)
			case y > edge && y <= edge+side && x < cx:
				img.SetRGBA(px, py, templateFront)
			case y > edge && y <= edge+side:
				img.SetRGBA(px, py, templateRight)
			default:
				img.SetRGBA(px, py, SentinelClear)
			}
		}
	}
	return img
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
