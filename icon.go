package icongen

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/ycc/icongen/utils"
)

var (
	// Background is the corporate blue (#2E75B6) every canvas starts with.
	Background = color.NRGBA{R: 46, G: 117, B: 182, A: 255}
	// Foreground is the stroke color of the border and the glyph.
	Foreground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Size is the pixel dimension of one icon entry.
type Size struct {
	Width, Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Sizes lists the resolutions packed into the icon, smallest first.
// The first entry is the primary image of the container.
var Sizes = []Size{
	{16, 16},
	{32, 32},
	{48, 48},
	{64, 64},
	{128, 128},
	{256, 256},
}

// Segment is a line between two pixel coordinates.
type Segment struct {
	From, To image.Point
}

// IconImageSet is the ordered collection of canvases written into one container.
type IconImageSet []*image.NRGBA

// Sizes returns the dimension of every canvas in set order.
func (set IconImageSet) Sizes() []Size {
	sizes := make([]Size, 0, len(set))
	for _, img := range set {
		b := img.Bounds()
		sizes = append(sizes, Size{b.Dx(), b.Dy()})
	}
	return sizes
}

// Images returns the canvases as generic images, as expected by the encoders.
func (set IconImageSet) Images() []image.Image {
	imgs := make([]image.Image, len(set))
	for i, img := range set {
		imgs[i] = img
	}
	return imgs
}

// BorderWidth returns the inset and the stroke thickness of the border.
func BorderWidth(s Size) int {
	return utils.Max(1, s.Width/16)
}

// BorderRect returns the outline box of the border. Both corners are inclusive
// and the stroke is laid inside the box.
func BorderRect(s Size) image.Rectangle {
	bw := BorderWidth(s)
	return image.Rect(bw, bw, s.Width-bw-1, s.Height-bw-1)
}

// LineWidth returns the stroke thickness of the glyph.
func LineWidth(s Size) int {
	return utils.Max(2, s.Width/8)
}

// Center returns the pixel the glyph arms meet at.
func Center(s Size) image.Point {
	return image.Pt(s.Width/2, s.Height/2)
}

// Glyph returns the segments of the stylized "Y": left arm, right arm and stem.
// All coordinates use truncating integer division.
func Glyph(s Size) []Segment {
	c := Center(s)
	qw, qh := s.Width/4, s.Height/4

	return []Segment{
		{From: image.Pt(c.X-qw, c.Y-qh), To: c},
		{From: image.Pt(c.X+qw, c.Y-qh), To: c},
		{From: c, To: image.Pt(c.X, c.Y+qh)},
	}
}

func validateSize(s Size) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid icon size %s: dimensions must be positive", s)
	}
	if s.Width != s.Height {
		return fmt.Errorf("invalid icon size %s: icons must be square", s)
	}
	if s.Width > 256 {
		return fmt.Errorf("invalid icon size %s: the container holds at most 256x256", s)
	}
	return nil
}

// Render draws the icon at the given size: a flat background, a border
// inset by its own width and the "Y" glyph in the middle.
func Render(s Size) (*image.NRGBA, error) {
	if err := validateSize(s); err != nil {
		return nil, err
	}
	canvas := imaging.New(s.Width, s.Height, Background)

	bw := BorderWidth(s)
	strokeRect(canvas, BorderRect(s), bw, Foreground)

	lw := LineWidth(s)
	r := newLineRasterizer(s.Width, s.Height)
	for _, seg := range Glyph(s) {
		r.add(seg, lw)
	}
	r.paint(canvas, Foreground)

	return canvas, nil
}

// RenderAll renders one canvas per size, preserving the order of sizes.
func RenderAll(sizes []Size) (IconImageSet, error) {
	return (&Generator{}).render(sizes)
}
