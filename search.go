package rectfit

import (
	"context"
	"math/rand/v2"
	"sync"
)

// StepReport describes the outcome of one outer step.
type StepReport struct {
	// Step is the 1-based step index.
	Step int
	// Before is the current distance when the step started.
	Before Distance
	// After is the current distance when the step ended. It equals
	// Before for a rejected step.
	After Distance
	// Delta is Before - After; zero for a rejected step.
	Delta Distance
	// Accepted reports whether the step committed its shape.
	Accepted bool
	// Shape is the climbed shape, committed or not.
	Shape Shape
}

// Reporter receives one StepReport per step. It only observes the search.
type Reporter interface {
	Report(StepReport)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(StepReport)

// Report calls f(r).
func (f ReporterFunc) Report(r StepReport) { f(r) }

// SnapshotWriter persists numbered canvas snapshots. Index 0 is the
// initial canvas; later indexes are the steps that were accepted.
// Errors are logged by the search and never stop it.
type SnapshotWriter interface {
	WriteSnapshot(index int, p *Pixmap) error
}

// Result summarizes a run.
type Result struct {
	Image           *Pixmap
	Distance        Distance
	InitialDistance Distance
	Steps           int
	Accepted        int
	Shapes          []Shape
	SnapshotErrors  int
}

// Search drives the outer loop: each step samples a random shape,
// hill-climbs it over the current canvas and commits it only when the
// climbed distance is strictly below the current distance.
//
// Search is the single writer of its canvas. Step, Run and the accessors
// are safe for concurrent use; steps are serialized.
type Search struct {
	mu sync.Mutex

	cfg        Config
	background Color
	model      *ShapeModel
	renderer   *Renderer
	climber    *HillClimber
	rng        *rand.Rand
	reporter   Reporter
	snapshots  SnapshotWriter

	current  *Pixmap
	distance Distance
	initial  Distance
	shapes   []Shape
	steps    int
	snapErrs int
}

// NewSearch validates cfg and prepares a search over target. The initial
// canvas is filled with the opaque background color.
func NewSearch(target *Pixmap, cfg Config, opts ...Option) (*Search, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if target == nil || target.width <= 0 || target.height <= 0 {
		return nil, ErrEmptyTarget
	}

	o := defaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	model := NewShapeModel(target.width, target.height, cfg)
	renderer := NewRenderer(target, o.renderer...)
	bg := cfg.Background.Opaque()
	current := NewPixmapFilled(target.width, target.height, bg)
	dist := renderer.Distance(current)

	return &Search{
		cfg:        cfg,
		background: bg,
		model:      model,
		renderer:   renderer,
		climber:    NewHillClimber(renderer, o.rng, o.phases(model, cfg.ClimbSteps), o.climber...),
		rng:        o.rng,
		reporter:   o.reporter,
		snapshots:  o.snapshots,
		current:    current,
		distance:   dist,
		initial:    dist,
	}, nil
}

// Current returns a copy of the current canvas and its distance.
func (s *Search) Current() (*Pixmap, Distance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone(), s.distance
}

// Shapes returns a copy of the accepted shapes in commit order.
func (s *Search) Shapes() []Shape {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Shape(nil), s.shapes...)
}

// Step runs one outer step and returns its report.
func (s *Search) Step(ctx context.Context) StepReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step(ctx)
}

func (s *Search) step(ctx context.Context) StepReport {
	s.steps++
	rep := StepReport{Step: s.steps, Before: s.distance, After: s.distance}

	shape0 := s.model.Random(s.rng)
	img0, dist0 := s.renderer.Render(s.current, shape0)
	best := s.climber.Climb(ctx, s.current, Candidate{Shape: shape0, Image: img0, Distance: dist0})
	rep.Shape = best.Shape

	if best.Distance < s.distance {
		s.current = best.Image
		s.distance = best.Distance
		s.shapes = append(s.shapes, best.Shape)

		rep.Accepted = true
		rep.After = best.Distance
		rep.Delta = rep.Before - rep.After

		Logger().Debug("rectfit: step accepted",
			"step", rep.Step,
			"shape", best.Shape.String(),
			"distance", uint64(rep.After))
		s.writeSnapshot(rep.Step)
	}

	if s.reporter != nil {
		s.reporter.Report(rep)
	}
	return rep
}

// Run executes Config.Steps steps. The initial canvas is written as
// snapshot 0 before the first step of a fresh search. Run stops early only
// when ctx is cancelled, returning the partial result with ctx.Err().
func (s *Search) Run(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := Logger()
	log.Info("rectfit: search started",
		"width", s.model.Width,
		"height", s.model.Height,
		"steps", s.cfg.Steps,
		"climb_steps", s.cfg.ClimbSteps,
		"distance", uint64(s.distance))

	if s.steps == 0 {
		s.writeSnapshot(0)
	}

	for i := 0; i < s.cfg.Steps; i++ {
		if err := ctx.Err(); err != nil {
			log.Info("rectfit: search cancelled", "steps", s.steps, "err", err)
			return s.result(), err
		}
		s.step(ctx)
	}

	log.Info("rectfit: search finished",
		"steps", s.steps,
		"accepted", len(s.shapes),
		"distance", uint64(s.distance))
	return s.result(), nil
}

// Result returns a summary of the search so far.
func (s *Search) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result()
}

func (s *Search) result() *Result {
	return &Result{
		Image:           s.current.Clone(),
		Distance:        s.distance,
		InitialDistance: s.initial,
		Steps:           s.steps,
		Accepted:        len(s.shapes),
		Shapes:          append([]Shape(nil), s.shapes...),
		SnapshotErrors:  s.snapErrs,
	}
}

// Close releases the renderer's worker pool.
func (s *Search) Close() {
	s.renderer.Close()
}

// writeSnapshot hands a copy of the current canvas to the snapshot
// writer. Failures are logged and counted.
func (s *Search) writeSnapshot(index int) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.WriteSnapshot(index, s.current.Clone()); err != nil {
		s.snapErrs++
		Logger().Warn("rectfit: snapshot write failed", "index", index, "err", err)
	}
}

// Replay rebuilds a canvas by compositing shapes, in order, over an opaque
// background. Replaying a search's accepted shapes reproduces its canvas.
func Replay(width, height int, background Color, shapes []Shape) *Pixmap {
	p := NewPixmapFilled(width, height, background.Opaque())
	for _, s := range shapes {
		p.Composite(s)
	}
	return p
}
