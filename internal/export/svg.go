// Package export writes accepted shape histories in vector form.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/rectfit"
)

// WriteSVG writes an SVG document of width x height that draws the
// background and then every shape in order. Shape corners are inclusive,
// so each rectangle spans its bounds' full pixel extent.
func WriteSVG(w io.Writer, width, height int, background rectfit.Color, shapes []rectfit.Shape) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+background.Hex())

	canvas.Group("shape-rendering:crispEdges")
	for _, s := range shapes {
		b := s.Bounds()
		c := s.Color
		canvas.Rect(b.Min.X, b.Min.Y, b.Dx(), b.Dy(),
			canvas.RGBA(int(c.R), int(c.G), int(c.B), float64(c.A)/255))
	}
	canvas.Gend()
	canvas.End()
}

// SaveSVG writes the SVG document to path.
func SaveSVG(path string, width, height int, background rectfit.Color, shapes []rectfit.Shape) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	WriteSVG(f, width, height, background, shapes)
	return f.Close()
}
