package imageio

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/rectfit"
)

// Resize scales p to width x height with Catmull-Rom interpolation.
func Resize(p *rectfit.Pixmap, width, height int) (*rectfit.Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == p.Width() && height == p.Height() {
		return p.Clone(), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), xdraw.Src, nil)
	return rectfit.FromImage(dst), nil
}

// Fit scales p down so that its longer side is at most maxSide, keeping
// the aspect ratio. Images already small enough, or maxSide <= 0, are
// returned as a clone.
func Fit(p *rectfit.Pixmap, maxSide int) (*rectfit.Pixmap, error) {
	w, h := p.Width(), p.Height()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return p.Clone(), nil
	}

	if w >= h {
		h = max(1, h*maxSide/w)
		w = maxSide
	} else {
		w = max(1, w*maxSide/h)
		h = maxSide
	}
	return Resize(p, w, h)
}
