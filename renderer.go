package rectfit

import (
	"github.com/gogpu/rectfit/internal/parallel"
)

// Renderer composites shapes onto a base canvas and scores the result
// against a fixed target.
//
// Render is the hot path of the search: it runs once per hill-climbing
// trial. When created WithWorkers(n) for n > 1, distance summation is split
// into row bands on a worker pool; the result is identical to the
// sequential sum.
type Renderer struct {
	target *Pixmap
	pool   *parallel.Pool
}

// NewRenderer creates a renderer for target. The renderer keeps a
// reference to target and never writes to it.
func NewRenderer(target *Pixmap, opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{target: target}
	if o.workers > 1 {
		r.pool = parallel.NewPool(o.workers)
	}
	return r
}

// Render returns a new pixmap holding s composited over base, and its
// distance to the target. Neither base nor the target is modified.
//
// Render panics with an error wrapping ErrDimensionMismatch when base
// and the target differ in size.
func (r *Renderer) Render(base *Pixmap, s Shape) (*Pixmap, Distance) {
	r.mustMatch(base)
	out := base.Clone()
	out.Composite(s)
	return out, squaredError(r.pool, out, r.target)
}

// Distance returns the distance of p to the target. It panics with an
// error wrapping ErrDimensionMismatch when sizes differ.
func (r *Renderer) Distance(p *Pixmap) Distance {
	r.mustMatch(p)
	return squaredError(r.pool, p, r.target)
}

// Close releases the worker pool, if any. The renderer stays usable and
// falls back to sequential summation.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

func (r *Renderer) mustMatch(p *Pixmap) {
	if !p.SameSize(r.target) {
		panic(dimensionError(p.width, p.height, r.target.width, r.target.height))
	}
}
