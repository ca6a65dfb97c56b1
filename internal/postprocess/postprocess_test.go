package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func TestDownsampleNoHalo(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	// Left half opaque white, right half fully transparent black.
	fillRect(src, image.Rect(0, 0, 8, 16), color.NRGBA{255, 255, 255, 255})

	out := Downsample(src, 4)
	require.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := out.NRGBAAt(x, y)
			if p.A > 16 {
				assert.GreaterOrEqual(t, p.R, uint8(250), "pixel %d,%d darkened", x, y)
			}
		}
	}
	assert.Equal(t, uint8(255), out.NRGBAAt(0, 2).A)
	assert.Zero(t, out.NRGBAAt(3, 2).A)
}

func TestDownsampleSmallerIsUnchanged(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	assert.Same(t, src, Downsample(src, 8))
	assert.Same(t, src, Downsample(src, 16))
	assert.Same(t, src, Downsample(src, 0))
}

func TestAlphaBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	assert.True(t, AlphaBounds(img).Empty())

	img.SetNRGBA(2, 3, color.NRGBA{A: 1})
	img.SetNRGBA(6, 4, color.NRGBA{A: 255})
	assert.Equal(t, image.Rect(2, 3, 7, 5), AlphaBounds(img))
}

func TestCropAndCenter(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	fillRect(img, image.Rect(0, 0, 10, 5), color.NRGBA{255, 0, 0, 255})

	out := CropAndCenter(img, 20, 0.5)
	require.Equal(t, image.Rect(0, 0, 20, 20), out.Bounds())
	// 10x5 scaled to 10x5 (half of 20) and centred.
	assert.Equal(t, image.Rect(5, 7, 15, 12), AlphaBounds(out))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, out.NRGBAAt(10, 9))
}

func TestCropAndCenterEmpty(t *testing.T) {
	out := CropAndCenter(image.NewNRGBA(image.Rect(0, 0, 8, 8)), 12, 0.9)
	assert.Equal(t, image.Rect(0, 0, 12, 12), out.Bounds())
	assert.True(t, AlphaBounds(out).Empty())
}

func TestFlatten(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})

	out := Flatten(img, color.NRGBA{0, 0, 255, 0})
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, out.NRGBAAt(1, 0))
}
