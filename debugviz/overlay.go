// Package debugviz draws a top-down picture of a frame's ranked lights. It is
// meant for snapshots and bug reports, not for the render loop.
package debugviz

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/gekko3d/mirage/lighting"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	background = color.RGBA{16, 16, 20, 255}
	gridColor  = color.RGBA{40, 40, 48, 255}
	cameraMark = color.RGBA{255, 255, 255, 255}
	textColor  = color.RGBA{220, 220, 220, 255}
	culledTint = color.RGBA{90, 90, 90, 255}
)

// Overlay maps the XZ plane around an origin onto an image. Extent is the
// world width covered by the image.
type Overlay struct {
	Width, Height int
	Extent        float64
	// MaxLights marks lights ranked past it as not uploaded.
	MaxLights int
}

func NewOverlay(size int, extent float64, maxLights int) *Overlay {
	return &Overlay{Width: size, Height: size, Extent: extent, MaxLights: maxLights}
}

// Project returns the pixel of world position p when the image is centered
// on origin. X grows right, Z grows down.
func (o *Overlay) Project(p, origin mgl64.Vec3) image.Point {
	scale := float64(o.Width) / o.Extent
	x := (p.X()-origin.X())*scale + float64(o.Width)/2
	y := (p.Z()-origin.Z())*scale + float64(o.Height)/2
	return image.Pt(int(math.Floor(x)), int(math.Floor(y)))
}

// Render draws lights in rank order: uploaded lights are filled with their
// color and numbered, the rest are drawn grey.
func (o *Overlay) Render(lights []lighting.Light, origin mgl64.Vec3) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	o.drawGrid(img)

	scale := float64(o.Width) / o.Extent
	for i := len(lights) - 1; i >= 0; i-- {
		l := lights[i]
		c := culledTint
		if i < o.MaxLights {
			c = lightColor(l)
		}
		center := o.Project(l.Position(), origin)
		r := max(int(float64(l.Mag)*scale/8), 2)
		fillDisc(img, center, r, c)
		if i < o.MaxLights {
			drawText(img, center.Add(image.Pt(r+2, 4)), strconv.Itoa(i), textColor)
		}
	}

	cam := o.Project(origin, origin)
	fillDisc(img, cam, 3, cameraMark)

	uploaded := min(len(lights), max(o.MaxLights, 0))
	drawText(img, image.Pt(4, 14), fmt.Sprintf("lights %d/%d", uploaded, len(lights)), textColor)
	return img
}

// WritePNG renders and encodes in one step.
func (o *Overlay) WritePNG(w io.Writer, lights []lighting.Light, origin mgl64.Vec3) error {
	if err := png.Encode(w, o.Render(lights, origin)); err != nil {
		return fmt.Errorf("encode light overlay: %w", err)
	}
	return nil
}

func (o *Overlay) drawGrid(img *image.RGBA) {
	step := o.Width / 8
	if step <= 0 {
		return
	}
	for x := 0; x < o.Width; x += step {
		for y := 0; y < o.Height; y++ {
			img.SetRGBA(x, y, gridColor)
		}
	}
	for y := 0; y < o.Height; y += step {
		for x := 0; x < o.Width; x++ {
			img.SetRGBA(x, y, gridColor)
		}
	}
}

func lightColor(l lighting.Light) color.RGBA {
	clamp := func(v float32) uint8 {
		return uint8(min(max(v, 0), 1) * 255)
	}
	return color.RGBA{clamp(l.R), clamp(l.G), clamp(l.B), 255}
}

func fillDisc(img *image.RGBA, c image.Point, r int, col color.RGBA) {
	b := img.Bounds()
	for y := c.Y - r; y <= c.Y+r; y++ {
		for x := c.X - r; x <= c.X+r; x++ {
			dx, dy := x-c.X, y-c.Y
			if dx*dx+dy*dy > r*r || !image.Pt(x, y).In(b) {
				continue
			}
			img.SetRGBA(x, y, col)
		}
	}
}

func drawText(img *image.RGBA, at image.Point, s string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(s)
}
