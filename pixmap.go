package rectfit

import (
	"image"
	"image/color"

	"github.com/gogpu/rectfit/internal/blend"
)

// Pixmap represents a rectangular pixel buffer of straight-alpha RGBA8.
//
// A Pixmap is mutable, but the search never edits one that another
// component can see: rendering always works on a fresh clone.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// NewPixmapFilled creates a pixmap filled with c.
func NewPixmapFilled(width, height int, c Color) *Pixmap {
	p := NewPixmap(width, height)
	p.Clear(c)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// SameSize reports whether p and q have equal dimensions.
func (p *Pixmap) SameSize(q *Pixmap) bool {
	return p.width == q.width && p.height == q.height
}

// Equal reports whether p and q have equal dimensions and pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if !p.SameSize(q) {
		return false
	}
	for i := range p.data {
		if p.data[i] != q.data[i] {
			return false
		}
	}
	return true
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// PixelAt returns the color of a single pixel, or Transparent when out of
// bounds.
func (p *Pixmap) PixelAt(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Composite blends the shape's color source-over onto the pixels the shape
// covers. Pixels outside the shape are untouched.
func (p *Pixmap) Composite(s Shape) {
	r := s.Bounds().Intersect(p.Bounds())
	if r.Empty() || s.Color.A == 0 {
		return
	}
	c := s.Color
	stride := p.width * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := y*stride + r.Min.X*4
		blend.FillSpan(p.data[off:], r.Dx(), c.R, c.G, c.B, c.A)
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			src := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*width*4:(y+1)*width*4], nrgba.Pix[src:src+width*4])
		}
		return pm
	}

	for y := range height {
		for x := range width {
			pm.SetPixel(x, y, colorFromStd(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.PixelAt(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
