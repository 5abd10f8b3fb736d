package sweep

import (
	"context"
	"testing"

	"github.com/san-kum/loopgen/internal/analysis"
	"github.com/san-kum/loopgen/internal/loop"
)

func TestRangeEndpoints(t *testing.T) {
	vals := Range(0, 1, 5)

	if len(vals) != 5 {
		t.Fatalf("expected 5 values, got %d", len(vals))
	}
	if vals[0] != 0 || vals[4] != 1 {
		t.Errorf("endpoints should be included: %v", vals)
	}
}

func TestRangeSinglePoint(t *testing.T) {
	vals := Range(0.3, 0.9, 1)
	if len(vals) != 1 || vals[0] != 0.3 {
		t.Errorf("expected just the lower bound, got %v", vals)
	}
}

func TestGridRunCoversAllCells(t *testing.T) {
	grid := Grid{
		Fluidity: Range(0.2, 0.8, 3),
		Softness: Range(0, 0.4, 2),
	}

	in := loop.DefaultInput()
	in.FrameCount = 12
	in.WarmupPeriods = 2

	cells := grid.Run(context.Background(), in, analysis.MeanSampleError)

	if len(cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(cells))
	}
	for _, c := range cells {
		if c.Score < 0 {
			t.Errorf("score should be non-negative: %+v", c)
		}
	}
}

func TestBestPicksLowestScore(t *testing.T) {
	cells := []Cell{
		{Fluidity: 0.1, Score: 3},
		{Fluidity: 0.5, Score: 1},
		{Fluidity: 0.9, Score: 2},
	}

	if best := Best(cells); best.Fluidity != 0.5 {
		t.Errorf("expected the fluidity=0.5 cell, got %+v", best)
	}
}

func TestBestEmpty(t *testing.T) {
	if best := Best(nil); best != (Cell{}) {
		t.Errorf("expected zero cell, got %+v", best)
	}
}
