package rectfit

import (
	"image"
	"math/rand/v2"
	"testing"
)

func testModel(w, h int) *ShapeModel {
	cfg := DefaultConfig()
	cfg.ColorMaxChange = 40
	cfg.PositionMaxChange = 7
	return NewShapeModel(w, h, cfg)
}

func TestShapeBounds(t *testing.T) {
	tests := []struct {
		name string
		s    Shape
		want image.Rectangle
		area int
	}{
		{"ordered", Shape{AX: 1, AY: 2, BX: 3, BY: 5}, image.Rect(1, 2, 4, 6), 12},
		{"reversed corners", Shape{AX: 3, AY: 5, BX: 1, BY: 2}, image.Rect(1, 2, 4, 6), 12},
		{"single pixel", Shape{AX: 4, AY: 4, BX: 4, BY: 4}, image.Rect(4, 4, 5, 5), 1},
		{"vertical line", Shape{AX: 0, AY: 0, BX: 0, BY: 9}, image.Rect(0, 0, 1, 10), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
			if got := tt.s.Area(); got != tt.area {
				t.Errorf("Area() = %d, want %d", got, tt.area)
			}
		})
	}
}

// TestMutatorsClampInvariant runs the mutators 10,000+ times and checks
// every produced shape stays in range.
func TestMutatorsClampInvariant(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {4, 4}, {17, 3}, {64, 48}}
	rng := rand.New(rand.NewPCG(42, 7))

	for _, sz := range sizes {
		m := testModel(sz.w, sz.h)
		s := m.Random(rng)
		if !m.Valid(s) {
			t.Fatalf("%dx%d: Random() produced invalid shape %v", sz.w, sz.h, s)
		}
		for i := 0; i < 12000; i++ {
			if i%2 == 0 {
				s = m.MutateColor(rng, s)
			} else {
				s = m.MutatePosition(rng, s)
			}
			if !m.Valid(s) {
				t.Fatalf("%dx%d: trial %d produced invalid shape %v", sz.w, sz.h, i, s)
			}
			if s.AY >= sz.h || s.BY >= sz.h || s.AX >= sz.w || s.BX >= sz.w {
				t.Fatalf("%dx%d: shape %v outside canvas", sz.w, sz.h, s)
			}
		}
	}
}

func TestRandomUsesHeightForY(t *testing.T) {
	m := testModel(100, 3)
	rng := rand.New(rand.NewPCG(5, 5))
	for i := 0; i < 2000; i++ {
		s := m.Random(rng)
		if s.AY > 2 || s.BY > 2 {
			t.Fatalf("Random() y coordinate outside height: %v", s)
		}
	}
}

func TestRandomAlphaBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlphaMin, cfg.AlphaMax = 120, 130
	m := NewShapeModel(8, 8, cfg)
	rng := rand.New(rand.NewPCG(9, 9))
	seen := map[uint8]bool{}
	for i := 0; i < 5000; i++ {
		a := m.Random(rng).Color.A
		if a < 120 || a > 130 {
			t.Fatalf("Random() alpha = %d, want in [120, 130]", a)
		}
		seen[a] = true
	}
	if len(seen) != 11 {
		t.Errorf("Random() produced %d distinct alphas, want 11", len(seen))
	}
}

func TestMutateColorKeepsGeometry(t *testing.T) {
	m := testModel(10, 10)
	rng := rand.New(rand.NewPCG(1, 1))
	s := Shape{AX: 1, AY: 2, BX: 8, BY: 9, Color: Color{100, 100, 100, 200}}
	for i := 0; i < 1000; i++ {
		got := m.MutateColor(rng, s)
		if got.AX != s.AX || got.AY != s.AY || got.BX != s.BX || got.BY != s.BY {
			t.Fatalf("MutateColor changed geometry: %v -> %v", s, got)
		}
		for _, d := range []int{
			int(got.Color.R) - int(s.Color.R),
			int(got.Color.G) - int(s.Color.G),
			int(got.Color.B) - int(s.Color.B),
		} {
			if d < -m.ColorMaxChange || d > m.ColorMaxChange {
				t.Fatalf("MutateColor delta %d exceeds %d", d, m.ColorMaxChange)
			}
		}
	}
}

func TestMutatePositionKeepsColor(t *testing.T) {
	m := testModel(50, 50)
	rng := rand.New(rand.NewPCG(2, 2))
	s := Shape{AX: 25, AY: 25, BX: 30, BY: 30, Color: Color{1, 2, 3, 150}}
	for i := 0; i < 1000; i++ {
		got := m.MutatePosition(rng, s)
		if got.Color != s.Color {
			t.Fatalf("MutatePosition changed color: %v -> %v", s, got)
		}
		for _, d := range []int{got.AX - s.AX, got.AY - s.AY, got.BX - s.BX, got.BY - s.BY} {
			if d < -m.PositionMaxChange || d > m.PositionMaxChange {
				t.Fatalf("MutatePosition delta %d exceeds %d", d, m.PositionMaxChange)
			}
		}
	}
}

func TestMutateZeroRadiusIsIdentity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColorMaxChange, cfg.PositionMaxChange = 0, 0
	m := NewShapeModel(10, 10, cfg)
	rng := rand.New(rand.NewPCG(3, 3))
	s := m.Random(rng)
	if got := m.MutateColor(rng, s); got != s {
		t.Errorf("MutateColor with zero radius = %v, want %v", got, s)
	}
	if got := m.MutatePosition(rng, s); got != s {
		t.Errorf("MutatePosition with zero radius = %v, want %v", got, s)
	}
}

func TestMutatorsDoNotAlias(t *testing.T) {
	m := testModel(10, 10)
	rng := rand.New(rand.NewPCG(4, 4))
	s := Shape{AX: 5, AY: 5, BX: 5, BY: 5, Color: Color{128, 128, 128, 180}}
	orig := s
	_ = m.MutateColor(rng, s)
	_ = m.MutatePosition(rng, s)
	if s != orig {
		t.Errorf("mutators modified their input: %v -> %v", orig, s)
	}
}
