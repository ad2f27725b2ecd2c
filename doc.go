// Package rectfit approximates an image with translucent rectangles.
//
// # Overview
//
// A Search starts from an opaque background canvas and runs a fixed number
// of steps. Each step samples a random rectangle, improves it with a
// two-phase hill climb (color, then position) and commits it only when the
// result is strictly closer to the target than the current canvas.
//
// # Quick Start
//
//	target := rectfit.FromImage(img)
//
//	cfg := rectfit.DefaultConfig()
//	cfg.Steps = 500
//
//	s, err := rectfit.NewSearch(target, cfg)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	res, err := s.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	f, _ := os.Create("out.png")
//	defer f.Close()
//	_ = png.Encode(f, res.Image)
//
// # Distance
//
// The objective is the sum over all pixels and channels of the squared
// difference to the target. It is not normalized; only comparisons
// between distances matter.
//
// # Architecture
//
//   - Pixmap: straight-alpha RGBA8 canvas, compositing and distance
//   - ShapeModel: random sampling and the color/position mutators
//   - Renderer: composite one shape over a base, score the result
//   - HillClimber: ordered phases of strict-improvement trials
//   - Search: the outer step loop and acceptance test
//
// Internal packages provide blending (internal/blend), band-parallel
// summation (internal/parallel), image loading and snapshot writing
// (internal/imageio), progress reporting (internal/report) and SVG export
// (internal/export).
//
// # Randomness
//
// All sampling draws from one *rand.Rand. Pass WithRand or set
// Config.Seed to make a run reproducible.
package rectfit

// Version is the current version of the library.
const Version = "0.1.0"
