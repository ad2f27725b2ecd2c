package rectfit

import "math/rand/v2"

// RendererOption configures a Renderer during creation.
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	workers int
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{workers: 1}
}

// WithWorkers sets the number of goroutines used to sum distances.
// Values below 2 keep summation on the calling goroutine.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// ClimberOption configures a HillClimber during creation.
type ClimberOption func(*climberOptions)

type climberOptions struct {
	seenCapacity int
}

func defaultClimberOptions() climberOptions {
	return climberOptions{seenCapacity: DefaultSeenCapacity}
}

// WithSeenCapacity bounds how many evaluated shapes a climb remembers.
// Zero or less renders every proposal.
func WithSeenCapacity(n int) ClimberOption {
	return func(o *climberOptions) {
		o.seenCapacity = n
	}
}

// Option configures a Search during creation.
//
// Example:
//
//	s, err := rectfit.NewSearch(target, cfg,
//	    rectfit.WithRand(rand.New(rand.NewPCG(1, 2))),
//	    rectfit.WithReporter(reporter),
//	)
type Option func(*searchOptions)

// searchOptions holds optional collaborators of a Search.
type searchOptions struct {
	rng       *rand.Rand
	reporter  Reporter
	snapshots SnapshotWriter
	phases    func(m *ShapeModel, trials int) []Phase
	renderer  []RendererOption
	climber   []ClimberOption
}

func defaultSearchOptions() searchOptions {
	return searchOptions{
		phases: DefaultPhases,
	}
}

// WithRand sets the random source for shape sampling and mutation.
// Without it, NewSearch seeds a PCG generator from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(o *searchOptions) {
		o.rng = rng
	}
}

// WithReporter sets the sink receiving one StepReport per step.
func WithReporter(r Reporter) Option {
	return func(o *searchOptions) {
		o.reporter = r
	}
}

// WithSnapshotWriter sets the writer called with the initial canvas and
// after every accepted step.
func WithSnapshotWriter(w SnapshotWriter) Option {
	return func(o *searchOptions) {
		o.snapshots = w
	}
}

// WithPhases replaces the hill-climbing phase list. build receives the
// search's shape model and Config.ClimbSteps.
func WithPhases(build func(m *ShapeModel, trials int) []Phase) Option {
	return func(o *searchOptions) {
		if build != nil {
			o.phases = build
		}
	}
}

// WithRendererOptions passes options to the search's Renderer.
func WithRendererOptions(opts ...RendererOption) Option {
	return func(o *searchOptions) {
		o.renderer = append(o.renderer, opts...)
	}
}

// WithClimberOptions passes options to the search's HillClimber.
func WithClimberOptions(opts ...ClimberOption) Option {
	return func(o *searchOptions) {
		o.climber = append(o.climber, opts...)
	}
}
