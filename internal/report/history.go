package report

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gogpu/rectfit"
)

// ErrNoHistory is returned when plotting an empty history.
var ErrNoHistory = errors.New("report: empty history")

// Point is the current distance after a step.
type Point struct {
	Step     int
	Distance rectfit.Distance
	Accepted bool
}

// History records the distance after every step. It is safe for
// concurrent use.
type History struct {
	mu     sync.Mutex
	points []Point
}

// NewHistory returns a history starting from the initial distance,
// recorded as step 0.
func NewHistory(initial rectfit.Distance) *History {
	return &History{points: []Point{{Step: 0, Distance: initial}}}
}

// Report implements rectfit.Reporter.
func (h *History) Report(s rectfit.StepReport) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.points = append(h.points, Point{Step: s.Step, Distance: s.After, Accepted: s.Accepted})
}

// Points returns a copy of the recorded points.
func (h *History) Points() []Point {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Point(nil), h.points...)
}

// Plot saves a line chart of distance per step to path. The image format
// follows the extension (png, svg, pdf, ...), as supported by gonum/plot.
func (h *History) Plot(title, path string) error {
	pts := h.Points()
	if len(pts) == 0 {
		return ErrNoHistory
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Distance"

	xys := make(plotter.XYs, len(pts))
	var accepted plotter.XYs
	for i, pt := range pts {
		xys[i].X = float64(pt.Step)
		xys[i].Y = float64(pt.Distance)
		if pt.Accepted {
			accepted = append(accepted, xys[i])
		}
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("report: line: %w", err)
	}
	p.Add(line)
	p.Legend.Add("distance", line)

	if len(accepted) > 0 {
		marks, err := plotter.NewScatter(accepted)
		if err != nil {
			return fmt.Errorf("report: scatter: %w", err)
		}
		marks.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(marks)
		p.Legend.Add("accepted", marks)
	}
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save plot: %w", err)
	}
	return nil
}
