package imageio

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/rectfit"
)

// captionPad is the margin around caption text, in pixels.
const captionPad = 2

// Caption returns a copy of p with text drawn in white on a black strip
// along the bottom-left corner. Text that does not fit is clipped.
func Caption(p *rectfit.Pixmap, text string) *rectfit.Pixmap {
	img := p.ToImage()
	face := basicfont.Face7x13

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	width := d.MeasureString(text).Ceil() + 2*captionPad
	height := face.Metrics().Height.Ceil() + 2*captionPad

	b := img.Bounds()
	strip := image.Rect(b.Min.X, b.Max.Y-height, b.Min.X+width, b.Max.Y).Intersect(b)
	draw.Draw(img, strip, image.NewUniform(color.Black), image.Point{}, draw.Src)

	d.Dot = fixed.P(b.Min.X+captionPad, b.Max.Y-captionPad-face.Metrics().Descent.Ceil())
	d.DrawString(text)

	return rectfit.FromImage(img)
}
