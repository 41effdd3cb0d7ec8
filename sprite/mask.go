package sprite

import (
	"image"
	"image/color"
)

// Mask is a square opacity raster. Masks are immutable once generated.
type Mask struct {
	size int
	pix  []uint8 // row-major alpha, size*size
}

// NewMask returns a fully transparent mask of the given size.
func NewMask(size int) *Mask {
	if size < 0 {
		size = 0
	}
	return &Mask{size: size, pix: make([]uint8, size*size)}
}

// maskFromImage extracts the alpha channel of img into a mask.
func maskFromImage(img image.Image, size int) *Mask {
	m := NewMask(size)
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < size && y < b.Dy(); y++ {
			for x := 0; x < size && x < b.Dx(); x++ {
				m.pix[y*size+x] = rgba.Pix[rgba.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
			}
		}
		return m
	}
	for y := 0; y < size && y < b.Dy(); y++ {
		for x := 0; x < size && x < b.Dx(); x++ {
			a := color.AlphaModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Alpha)
			m.pix[y*size+x] = a.A
		}
	}
	return m
}

// Size returns the mask edge length in pixels.
func (m *Mask) Size() int {
	return m.size
}

// At returns the opacity at (x, y). Out-of-range coordinates read as transparent.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		return 0
	}
	return m.pix[y*m.size+x]
}

// Coverage returns the mean opacity in [0, 1].
func (m *Mask) Coverage() float64 {
	if len(m.pix) == 0 {
		return 0
	}
	var sum int
	for _, a := range m.pix {
		sum += int(a)
	}
	return float64(sum) / float64(255*len(m.pix))
}

// Empty reports whether every pixel is fully transparent.
func (m *Mask) Empty() bool {
	for _, a := range m.pix {
		if a != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two masks hold identical pixels.
func (m *Mask) Equal(o *Mask) bool {
	if m.size != o.size {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Alpha returns the mask as an alpha image.
func (m *Mask) Alpha() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, m.size, m.size))
	copy(img.Pix, m.pix)
	return img
}

// NRGBA returns the mask as white pixels carrying the mask opacity.
// This is the texture upload format: the tint multiplies the white.
func (m *Mask) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.size, m.size))
	for i, a := range m.pix {
		o := i * 4
		img.Pix[o+0] = 255
		img.Pix[o+1] = 255
		img.Pix[o+2] = 255
		img.Pix[o+3] = a
	}
	return img
}
