package rectfit

import (
	"fmt"
	"image"
	"math/rand/v2"
)

// Shape is an axis-aligned translucent rectangle. The corners are
// unordered; the rectangle is the bounding box of both points, corners
// included. Shape is a value: mutators return a new Shape.
type Shape struct {
	AX, AY int
	BX, BY int
	Color  Color
}

// Bounds returns the covered pixel rectangle.
func (s Shape) Bounds() image.Rectangle {
	return image.Rect(
		min(s.AX, s.BX), min(s.AY, s.BY),
		max(s.AX, s.BX)+1, max(s.AY, s.BY)+1,
	)
}

// Area returns the number of covered pixels.
func (s Shape) Area() int {
	r := s.Bounds()
	return r.Dx() * r.Dy()
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	return fmt.Sprintf("rect(%d,%d %d,%d %v)", s.AX, s.AY, s.BX, s.BY, s.Color)
}

// ShapeModel samples and mutates shapes for a fixed canvas size and fixed
// mutation radii. All randomness comes from the rng passed to each call.
type ShapeModel struct {
	Width, Height     int
	ColorMaxChange    int
	PositionMaxChange int
	AlphaMin          int
	AlphaMax          int
}

// NewShapeModel returns a model for a width x height canvas using the
// mutation and alpha parameters of cfg.
func NewShapeModel(width, height int, cfg Config) *ShapeModel {
	return &ShapeModel{
		Width:             width,
		Height:            height,
		ColorMaxChange:    cfg.ColorMaxChange,
		PositionMaxChange: cfg.PositionMaxChange,
		AlphaMin:          cfg.AlphaMin,
		AlphaMax:          cfg.AlphaMax,
	}
}

// Random samples a shape with both corners uniform over the canvas and
// every color channel uniform over its range.
func (m *ShapeModel) Random(rng *rand.Rand) Shape {
	return Shape{
		AX: rng.IntN(m.Width),
		AY: rng.IntN(m.Height),
		BX: rng.IntN(m.Width),
		BY: rng.IntN(m.Height),
		Color: Color{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
			A: uint8(m.AlphaMin + rng.IntN(m.AlphaMax-m.AlphaMin+1)),
		},
	}
}

// MutateColor returns s with each color channel moved by an independent
// delta in [-ColorMaxChange, ColorMaxChange], clamped. Geometry is kept.
func (m *ShapeModel) MutateColor(rng *rand.Rand, s Shape) Shape {
	k := m.ColorMaxChange
	s.Color = Color{
		R: uint8(clamp(int(s.Color.R)+delta(rng, k), 0, 255)),
		G: uint8(clamp(int(s.Color.G)+delta(rng, k), 0, 255)),
		B: uint8(clamp(int(s.Color.B)+delta(rng, k), 0, 255)),
		A: uint8(clamp(int(s.Color.A)+delta(rng, k), m.AlphaMin, m.AlphaMax)),
	}
	return s
}

// MutatePosition returns s with each coordinate moved by an independent
// delta in [-PositionMaxChange, PositionMaxChange], clamped to the canvas.
// Color is kept.
func (m *ShapeModel) MutatePosition(rng *rand.Rand, s Shape) Shape {
	k := m.PositionMaxChange
	s.AX = clamp(s.AX+delta(rng, k), 0, m.Width-1)
	s.AY = clamp(s.AY+delta(rng, k), 0, m.Height-1)
	s.BX = clamp(s.BX+delta(rng, k), 0, m.Width-1)
	s.BY = clamp(s.BY+delta(rng, k), 0, m.Height-1)
	return s
}

// Clamp moves every field of s into its valid range.
func (m *ShapeModel) Clamp(s Shape) Shape {
	s.AX = clamp(s.AX, 0, m.Width-1)
	s.AY = clamp(s.AY, 0, m.Height-1)
	s.BX = clamp(s.BX, 0, m.Width-1)
	s.BY = clamp(s.BY, 0, m.Height-1)
	s.Color.A = uint8(clamp(int(s.Color.A), m.AlphaMin, m.AlphaMax))
	return s
}

// Valid reports whether every field of s is within its range.
func (m *ShapeModel) Valid(s Shape) bool {
	return m.Clamp(s) == s
}

// delta draws uniformly from [-k, k]. k <= 0 yields 0.
func delta(rng *rand.Rand, k int) int {
	if k <= 0 {
		return 0
	}
	return rng.IntN(2*k+1) - k
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
