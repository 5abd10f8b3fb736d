package sweep

import (
	"context"

	"github.com/san-kum/loopgen/internal/loop"
)

// Grid is a fluidity × softness parameter sweep over a base input.
type Grid struct {
	Fluidity []float64
	Softness []float64
}

// Cell is one evaluated grid point.
type Cell struct {
	Fluidity float64
	Softness float64
	Score    float64
}

// Range builds n evenly spaced values over [lo, hi], endpoints included.
func Range(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	vals := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	return vals
}

// Run generates every grid point concurrently and scores each result. The
// score function must be safe to call from the calling goroutine only; it
// is applied after all generations complete.
func (g Grid) Run(ctx context.Context, base loop.Input, score func(loop.Result) float64) []Cell {
	inputs := make([]loop.Input, 0, len(g.Fluidity)*len(g.Softness))
	cells := make([]Cell, 0, cap(inputs))

	for _, fl := range g.Fluidity {
		for _, so := range g.Softness {
			in := base
			in.Fluidity = fl
			in.Softness = so
			inputs = append(inputs, in)
			cells = append(cells, Cell{Fluidity: fl, Softness: so})
		}
	}

	results := loop.GenerateBatch(ctx, inputs)
	for i := range cells {
		cells[i].Score = score(results[i])
	}
	return cells
}

// Best returns the cell with the lowest score.
func Best(cells []Cell) Cell {
	if len(cells) == 0 {
		return Cell{}
	}
	best := cells[0]
	for _, c := range cells[1:] {
		if c.Score < best.Score {
			best = c
		}
	}
	return best
}
