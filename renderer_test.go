package rectfit

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestRenderDoesNotMutateInputs(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	target := randomPixmap(rng, 9, 7)
	base := randomPixmap(rng, 9, 7)
	targetCopy, baseCopy := target.Clone(), base.Clone()

	r := NewRenderer(target)
	m := testModel(9, 7)
	for i := 0; i < 100; i++ {
		r.Render(base, m.Random(rng))
	}

	if !target.Equal(targetCopy) {
		t.Error("Render modified the target")
	}
	if !base.Equal(baseCopy) {
		t.Error("Render modified the base")
	}
}

func TestRenderMatchesComposite(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	target := randomPixmap(rng, 8, 8)
	base := NewPixmapFilled(8, 8, White)
	r := NewRenderer(target)

	s := Shape{AX: 1, AY: 6, BX: 5, BY: 2, Color: Color{40, 80, 120, 150}}
	img, dist := r.Render(base, s)

	want := base.Clone()
	want.Composite(s)
	if !img.Equal(want) {
		t.Error("Render image differs from Composite over a clone")
	}
	wantDist, _ := SquaredError(want, target)
	if dist != wantDist {
		t.Errorf("Render distance = %d, want %d", dist, wantDist)
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	target := randomPixmap(rng, 70, 90)
	base := randomPixmap(rng, 70, 90)

	seq := NewRenderer(target)
	par := NewRenderer(target, WithWorkers(4))
	defer par.Close()

	m := testModel(70, 90)
	for i := 0; i < 25; i++ {
		s := m.Random(rng)
		_, d1 := seq.Render(base, s)
		_, d2 := par.Render(base, s)
		if d1 != d2 {
			t.Fatalf("parallel distance %d != sequential %d for %v", d2, d1, s)
		}
	}

	par.Close()
	if got, want := par.Distance(base), seq.Distance(base); got != want {
		t.Errorf("closed renderer distance = %d, want %d", got, want)
	}
}

func TestRenderDimensionMismatchPanics(t *testing.T) {
	r := NewRenderer(NewPixmap(4, 4))

	defer func() {
		v := recover()
		err, ok := v.(error)
		if !ok || !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("Render panic value = %v, want ErrDimensionMismatch", v)
		}
	}()
	r.Render(NewPixmap(4, 5), Shape{})
}

func BenchmarkRender(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	target := randomPixmap(rng, 256, 256)
	base := randomPixmap(rng, 256, 256)
	r := NewRenderer(target)
	s := Shape{AX: 10, AY: 10, BX: 200, BY: 150, Color: Color{10, 20, 30, 128}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(base, s)
	}
}
