package icongen

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_GeometryConstants(t *testing.T) {
	testCases := []struct {
		size   Size
		border int
		line   int
	}{
		{Size{16, 16}, 1, 2},
		{Size{32, 32}, 2, 4},
		{Size{48, 48}, 3, 6},
		{Size{64, 64}, 4, 8},
		{Size{128, 128}, 8, 16},
		{Size{256, 256}, 16, 32},
	}

	for _, tc := range testCases {
		t.Run(tc.size.String(), func(t *testing.T) {
			assert.Equal(t, tc.border, BorderWidth(tc.size))
			assert.Equal(t, tc.line, LineWidth(tc.size))
		})
	}

	// Tiny sizes fall back to the minimum widths.
	assert.Equal(t, 1, BorderWidth(Size{8, 8}))
	assert.Equal(t, 2, LineWidth(Size{8, 8}))
}

func TestIcon_GlyphAt16UsesIntegerDivision(t *testing.T) {
	s := Size{16, 16}
	assert.Equal(t, image.Pt(8, 8), Center(s))

	glyph := Glyph(s)
	require.Len(t, glyph, 3)

	// Left arm starts at (8-4, 8-4).
	assert.Equal(t, image.Pt(4, 4), glyph[0].From)
	assert.Equal(t, image.Pt(8, 8), glyph[0].To)
	assert.Equal(t, image.Pt(12, 4), glyph[1].From)
	assert.Equal(t, image.Pt(8, 8), glyph[1].To)
	assert.Equal(t, image.Pt(8, 8), glyph[2].From)
	assert.Equal(t, image.Pt(8, 12), glyph[2].To)
}

func TestIcon_GlyphTruncatesOddSizes(t *testing.T) {
	glyph := Glyph(Size{18, 18})
	// 18/2 = 9, 18/4 = 4
	assert.Equal(t, image.Pt(5, 5), glyph[0].From)
	assert.Equal(t, image.Pt(13, 5), glyph[1].From)
	assert.Equal(t, image.Pt(9, 13), glyph[2].To)
}

func TestIcon_BorderRect(t *testing.T) {
	assert.Equal(t, image.Rect(1, 1, 14, 14), BorderRect(Size{16, 16}))
	assert.Equal(t, image.Rect(16, 16, 239, 239), BorderRect(Size{256, 256}))
}

func TestIcon_RenderDimensionsAndBackground(t *testing.T) {
	for _, s := range Sizes {
		t.Run(s.String(), func(t *testing.T) {
			img, err := Render(s)
			require.NoError(t, err)

			assert.Equal(t, image.Rect(0, 0, s.Width, s.Height), img.Bounds())

			bw := BorderWidth(s)
			w, h := s.Width, s.Height
			outside := []image.Point{
				image.Pt(0, 0),
				image.Pt(w-1, 0),
				image.Pt(0, h-1),
				image.Pt(w-1, h-1),
				image.Pt(bw-1, h/2),
				image.Pt(w/2, bw-1),
				// inside the border, bottom left corner: far from the glyph
				image.Pt(2*bw, h-2*bw-1),
				image.Pt(w-2*bw-1, h-2*bw-1),
			}
			for _, p := range outside {
				assert.Equal(t, Background, img.NRGBAAt(p.X, p.Y), "pixel %v", p)
			}
		})
	}
}

func TestIcon_RenderBorder(t *testing.T) {
	for _, s := range Sizes {
		t.Run(s.String(), func(t *testing.T) {
			img, err := Render(s)
			require.NoError(t, err)

			bw := BorderWidth(s)
			w, h := s.Width, s.Height

			// Every pixel along the outline box is white.
			for i := bw; i <= w-bw-1; i++ {
				assert.Equal(t, Foreground, img.NRGBAAt(i, bw), "top (%d,%d)", i, bw)
				assert.Equal(t, Foreground, img.NRGBAAt(i, h-bw-1), "bottom (%d,%d)", i, h-bw-1)
				assert.Equal(t, Foreground, img.NRGBAAt(bw, i), "left (%d,%d)", bw, i)
				assert.Equal(t, Foreground, img.NRGBAAt(w-bw-1, i), "right (%d,%d)", w-bw-1, i)
			}

			// The stroke is exactly bw pixels thick, measured at the bottom left corner.
			x, y := 2*bw, h-2*bw-1
			for k := 0; k < bw; k++ {
				assert.Equal(t, Foreground, img.NRGBAAt(x, h-2*bw+k), "bottom stroke row %d", k)
				assert.Equal(t, Foreground, img.NRGBAAt(bw+k, y), "left stroke column %d", k)
			}
			assert.Equal(t, Background, img.NRGBAAt(x, y))
			assert.Equal(t, Background, img.NRGBAAt(x, h-bw))
			assert.Equal(t, Background, img.NRGBAAt(bw-1, y))
		})
	}
}

func TestIcon_RenderGlyphEndpoints(t *testing.T) {
	for _, s := range Sizes {
		t.Run(s.String(), func(t *testing.T) {
			img, err := Render(s)
			require.NoError(t, err)

			for _, seg := range Glyph(s) {
				assert.Equal(t, Foreground, img.NRGBAAt(seg.From.X, seg.From.Y), "start %v", seg.From)
				assert.Equal(t, Foreground, img.NRGBAAt(seg.To.X, seg.To.Y), "end %v", seg.To)
			}
			// Between the arms, above the center, the background shows through.
			c := Center(s)
			assert.Equal(t, Background, img.NRGBAAt(c.X, c.Y-s.Height/4))
		})
	}
}

func TestIcon_RenderStemThickness(t *testing.T) {
	for _, s := range Sizes {
		t.Run(s.String(), func(t *testing.T) {
			img, err := Render(s)
			require.NoError(t, err)

			c := Center(s)
			lw := LineWidth(s)
			y := c.Y + s.Height/8

			// The white run through the stem axis, bounded by background on both sides.
			left, right := c.X, c.X
			for left > 0 && img.NRGBAAt(left-1, y) == Foreground {
				left--
			}
			for right < s.Width-1 && img.NRGBAAt(right+1, y) == Foreground {
				right++
			}
			require.Equal(t, Foreground, img.NRGBAAt(c.X, y))
			assert.Equal(t, lw, right-left+1, "stem run [%d,%d] at row %d", left, right, y)
			assert.Equal(t, c.X-lw/2, left)

			// The stem ends on its last pixel.
			assert.Equal(t, Foreground, img.NRGBAAt(c.X, c.Y+s.Height/4))
			assert.Equal(t, Background, img.NRGBAAt(c.X, c.Y+s.Height/4+1))
		})
	}
}

func TestIcon_RenderUsesOnlyPaletteColors(t *testing.T) {
	for _, s := range Sizes {
		img, err := Render(s)
		require.NoError(t, err)

		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := img.NRGBAAt(x, y)
				if c != Background && c != Foreground {
					t.Fatalf("%s: unexpected color %v at (%d,%d)", s, c, x, y)
				}
			}
		}
	}
}

func TestIcon_RenderIsDeterministic(t *testing.T) {
	first, err := RenderAll(Sizes)
	require.NoError(t, err)
	second, err := RenderAll(Sizes)
	require.NoError(t, err)

	require.Len(t, first, len(Sizes))
	for i := range first {
		assert.Equal(t, first[i].Pix, second[i].Pix, "size %s", Sizes[i])
	}
}

func TestIcon_RenderAllKeepsOrder(t *testing.T) {
	set, err := RenderAll(Sizes)
	require.NoError(t, err)

	assert.Equal(t, Sizes, set.Sizes())
	assert.Len(t, set.Images(), len(Sizes))
	assert.Equal(t, Size{16, 16}, set.Sizes()[0])
}

func TestIcon_RenderRejectsInvalidSizes(t *testing.T) {
	for _, s := range []Size{{0, 0}, {-16, -16}, {16, 32}, {512, 512}} {
		_, err := Render(s)
		assert.Error(t, err, "size %s", s)
	}

	_, err := RenderAll(nil)
	assert.Error(t, err)
}

func TestIcon_StrokeRectFillsThickBoxes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	strokeRect(img, image.Rect(0, 0, 3, 3), 2, color.NRGBA{A: 255})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, uint8(255), img.NRGBAAt(x, y).A, "(%d,%d)", x, y)
		}
	}
}
