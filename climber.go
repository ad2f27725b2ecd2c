package rectfit

import (
	"context"
	"math/rand/v2"

	"github.com/gogpu/rectfit/internal/cache"
)

// DefaultSeenCapacity is the number of shapes a climb remembers in order
// to skip re-rendering duplicate proposals.
const DefaultSeenCapacity = 4096

// MutateFunc returns a new shape near s. It must not modify anything
// reachable from s and must return a shape within the model's bounds.
type MutateFunc func(rng *rand.Rand, s Shape) Shape

// Phase is one axis of local search: Trials mutations drawn with Mutate.
// A phase with zero trials is a no-op.
type Phase struct {
	Name   string
	Mutate MutateFunc
	Trials int
}

// ColorPhase returns a phase that perturbs only the shape color.
func ColorPhase(m *ShapeModel, trials int) Phase {
	return Phase{Name: "color", Mutate: m.MutateColor, Trials: trials}
}

// PositionPhase returns a phase that perturbs only the shape corners.
func PositionPhase(m *ShapeModel, trials int) Phase {
	return Phase{Name: "position", Mutate: m.MutatePosition, Trials: trials}
}

// DefaultPhases returns the color phase followed by the position phase,
// each with the given trial count.
func DefaultPhases(m *ShapeModel, trials int) []Phase {
	return []Phase{ColorPhase(m, trials), PositionPhase(m, trials)}
}

// Candidate is a shape together with the canvas it produces and that
// canvas's distance to the target.
type Candidate struct {
	Shape    Shape
	Image    *Pixmap
	Distance Distance
}

// HillClimber locally optimizes one shape over a fixed base canvas by
// running its phases in order. Within a phase a mutation replaces the best
// candidate only when its distance is strictly smaller.
//
// Every shape evaluated during a climb has a distance no smaller than the
// current best, so a proposal already seen in the same climb is rejected
// without rendering. Results are the same with or without this memory.
type HillClimber struct {
	renderer *Renderer
	rng      *rand.Rand
	phases   []Phase
	seen     *cache.Set[Shape]
}

// NewHillClimber creates a climber. The phases slice is copied.
func NewHillClimber(r *Renderer, rng *rand.Rand, phases []Phase, opts ...ClimberOption) *HillClimber {
	o := defaultClimberOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &HillClimber{
		renderer: r,
		rng:      rng,
		phases:   append([]Phase(nil), phases...),
		seen:     cache.NewSet[Shape](o.seenCapacity),
	}
}

// Climb returns the best candidate found starting from start, which must
// be the result of rendering start.Shape over base. The result may be
// start itself when no mutation improved on it.
//
// Cancellation is checked before each trial; a cancelled climb returns
// the best candidate found so far.
func (h *HillClimber) Climb(ctx context.Context, base *Pixmap, start Candidate) Candidate {
	best := start
	log := Logger()

	h.seen.Reset()
	h.seen.Add(start.Shape)

	for _, ph := range h.phases {
		improved, skipped := 0, 0
		for i := 0; i < ph.Trials; i++ {
			if ctx.Err() != nil {
				return best
			}
			shape := ph.Mutate(h.rng, best.Shape)
			if h.seen.Contains(shape) {
				skipped++
				continue
			}
			h.seen.Add(shape)

			img, dist := h.renderer.Render(base, shape)
			if dist < best.Distance {
				best = Candidate{Shape: shape, Image: img, Distance: dist}
				improved++
			}
		}
		log.Debug("rectfit: climb phase done",
			"phase", ph.Name,
			"trials", ph.Trials,
			"improved", improved,
			"duplicates", skipped,
			"distance", uint64(best.Distance))
	}

	return best
}
