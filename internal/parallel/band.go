package parallel

// MinBandRows is the smallest band height worth handing to a worker.
const MinBandRows = 16

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits rows into at most n contiguous bands of at least
// MinBandRows rows each. It returns a single band when rows is small.
func Bands(rows, n int) []Band {
	if rows <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if maxBands := rows / MinBandRows; n > maxBands {
		n = max(maxBands, 1)
	}

	bands := make([]Band, 0, n)
	per, rem := rows/n, rows%n
	y := 0
	for i := range n {
		h := per
		if i < rem {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}

// SumBands evaluates fn over every band of rows and returns the total.
// Bands are cut for one per worker; each band's sum lands in its own slot
// of a partial slice, which is folded in band order, so the total does not
// depend on the pool. With a nil or closed pool, or when rows fit in one
// band, fn runs on the caller's goroutine.
func SumBands(p *Pool, rows int, fn func(y0, y1 int) uint64) uint64 {
	workers := 1
	if p != nil {
		workers = p.Workers()
	}

	bands := Bands(rows, workers)
	if len(bands) <= 1 {
		return fn(0, rows)
	}

	partial := make([]uint64, len(bands))
	if !p.dispatch(bands, fn, partial) {
		for i, b := range bands {
			partial[i] = fn(b.Y0, b.Y1)
		}
	}

	var total uint64
	for _, s := range partial {
		total += s
	}
	return total
}
