package icongen

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// coverageThreshold is the mask coverage a pixel must exceed to be painted.
// Strokes are hard-edged, so a canvas only ever holds palette colors.
const coverageThreshold = 0x80

// fillRect paints r (max exclusive) with a solid color.
func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// strokeRect draws the outline of the box whose corners r.Min and r.Max are
// both inclusive. The stroke grows inwards from the box edge by width pixels.
func strokeRect(dst draw.Image, r image.Rectangle, width int, c color.Color) {
	box := image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Max.Y+1)
	if width <= 0 || box.Empty() {
		return
	}
	if 2*width >= box.Dx() || 2*width >= box.Dy() {
		fillRect(dst, box, c)
		return
	}
	fillRect(dst, image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+width), c) // top
	fillRect(dst, image.Rect(box.Min.X, box.Max.Y-width, box.Max.X, box.Max.Y), c) // bottom
	fillRect(dst, image.Rect(box.Min.X, box.Min.Y, box.Min.X+width, box.Max.Y), c) // left
	fillRect(dst, image.Rect(box.Max.X-width, box.Min.Y, box.Max.X, box.Max.Y), c) // right
}

// lineRasterizer collects thick line segments into a coverage mask.
type lineRasterizer struct {
	z    vector.Rasterizer
	mask *image.Alpha
}

func newLineRasterizer(w, h int) *lineRasterizer {
	return &lineRasterizer{
		mask: image.NewAlpha(image.Rect(0, 0, w, h)),
	}
}

// add rasterizes seg with the given thickness. Endpoints are inclusive pixel
// coordinates and carry no cap. Across the segment the band is exactly width
// pixels: for a vertical or horizontal line centered on pixel c it covers
// [c-width/2, c-width/2+width).
func (lr *lineRasterizer) add(seg Segment, width int) {
	b := lr.mask.Bounds()
	lr.z.Reset(b.Dx(), b.Dy())

	x0, y0 := float64(seg.From.X)+0.5, float64(seg.From.Y)+0.5
	x1, y1 := float64(seg.To.X)+0.5, float64(seg.To.Y)+0.5

	ux, uy := x1-x0, y1-y0
	if l := math.Hypot(ux, uy); l > 0 {
		ux, uy = ux/l, uy/l
	} else {
		ux, uy = 1, 0
	}
	// Unit normal.
	px, py := -uy, ux

	// For vertical and horizontal segments an even width puts the band edges
	// on pixel boundaries: move the axis half a pixel towards the origin.
	if width%2 == 0 && (ux == 0 || uy == 0) {
		d := -0.5*px - 0.5*py
		x0, y0 = x0+d*px, y0+d*py
		x1, y1 = x1+d*px, y1+d*py
	}

	// Half a pixel past each end, so the end pixels are covered but nothing beyond.
	x0, y0 = x0-ux*0.5, y0-uy*0.5
	x1, y1 = x1+ux*0.5, y1+uy*0.5

	hw := float64(width) / 2
	nx, ny := px*hw, py*hw

	lr.z.MoveTo(float32(x0+nx), float32(y0+ny))
	lr.z.LineTo(float32(x1+nx), float32(y1+ny))
	lr.z.LineTo(float32(x1-nx), float32(y1-ny))
	lr.z.LineTo(float32(x0-nx), float32(y0-ny))
	lr.z.ClosePath()

	lr.z.Draw(lr.mask, b, image.Opaque, image.Point{})
}

// paint fills every sufficiently covered pixel of dst with c.
func (lr *lineRasterizer) paint(dst *image.NRGBA, c color.NRGBA) {
	b := lr.mask.Bounds().Intersect(dst.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if lr.mask.AlphaAt(x, y).A > coverageThreshold {
				dst.SetNRGBA(x, y, c)
			}
		}
	}
}
