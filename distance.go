package rectfit

import (
	"math"

	"github.com/gogpu/rectfit/internal/blend"
	"github.com/gogpu/rectfit/internal/parallel"
)

// Distance is the sum over all pixels and channels of the squared
// difference between two images. It is never normalized, so only relative
// comparisons between distances to the same target are meaningful.
type Distance uint64

// RMSE returns the root-mean-square error per channel for an image with
// the given pixel count. It is for reporting only.
func (d Distance) RMSE(pixels int) float64 {
	if pixels <= 0 {
		return 0
	}
	return math.Sqrt(float64(d) / float64(pixels*4))
}

// SquaredError returns the distance between a and b. It fails with
// ErrDimensionMismatch when their sizes differ. SquaredError is symmetric
// and SquaredError(a, a) is zero.
func SquaredError(a, b *Pixmap) (Distance, error) {
	if !a.SameSize(b) {
		return 0, dimensionError(a.width, a.height, b.width, b.height)
	}
	return squaredError(nil, a, b), nil
}

// squaredError sums row bands of equally sized pixmaps, on pool when it
// is non-nil.
func squaredError(pool *parallel.Pool, a, b *Pixmap) Distance {
	stride := a.width * 4
	sum := parallel.SumBands(pool, a.height, func(y0, y1 int) uint64 {
		return blend.SquaredDiff(a.data[y0*stride:y1*stride], b.data[y0*stride:y1*stride])
	})
	return Distance(sum)
}
