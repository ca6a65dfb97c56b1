package texture

import "image"

// Texture is a decoded image ready for sampling. Normalized selects whether
// texture coordinates fitted to it span 0..1 or 0..width, 0..height.
type Texture struct {
	Path       string
	img        *image.NRGBA
	normalized bool
}

// New wraps img as a normalized texture.
func New(img *image.NRGBA) *Texture {
	return &Texture{img: img, normalized: true}
}

func (t *Texture) Image() *image.NRGBA { return t.img }
func (t *Texture) Width() int          { return t.img.Rect.Dx() }
func (t *Texture) Height() int         { return t.img.Rect.Dy() }
func (t *Texture) Normalized() bool    { return t.normalized }

// SetNormalized switches between normalized and pixel addressing.
func (t *Texture) SetNormalized(on bool) { t.normalized = on }
