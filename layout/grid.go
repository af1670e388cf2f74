package layout

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/uvalign/uv"
)

// Cell holds the UVs of both ends of one loop pair.
type Cell [2]uv.Vec2

// GridOptions controls StraightenGrid.
type GridOptions struct {
	// Transmission relays every cell of every row. When false only the
	// first cell of each row is moved.
	Transmission bool

	// LevelRatios, when non-nil, gives the vertical fraction for each level
	// instead of uniform level/levels spacing. Levels past the end of the
	// table use its last entry.
	LevelRatios []float64
}

// Level returns the vertical level of cell i in a row. Cell 0 is the
// selected edge; cells 2k-1 and 2k are the same edge seen from the two
// faces on either side of it, so they share level k.
func Level(i int) int {
	return (i + 1) / 2
}

// StraightenGrid lays out rows of cells as a parallelogram.
//
// The base point is end 0 of the first cell of the first row. The
// horizontal vector runs from the base to end 1 of the first cell of the
// last row, and the vertical vector from the base to end 0 of the last cell
// of the first row. End e of the cell at row r and level k moves to
//
//	base + (r+e)/rows * h + f(k) * v
//
// where f(k) is k divided by the row's level count, or LevelRatios[k].
func StraightenGrid(rows [][]Cell, opts GridOptions) ([][]Cell, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	out := make([][]Cell, len(rows))
	for r, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyGrid, r)
		}
		out[r] = append([]Cell(nil), row...)
	}

	nrows := float64(len(rows))
	first := rows[0]
	base := first[0][0]
	h := rows[len(rows)-1][0][1].Sub(base)
	v := first[len(first)-1][0].Sub(base)

	for r, row := range out {
		if !opts.Transmission {
			row[0][0] = base.Add(h.Mul(float64(r) / nrows))
			row[0][1] = base.Add(h.Mul(float64(r+1) / nrows))
			continue
		}
		levels := Level(len(row) - 1)
		for c := range row {
			vf := verticalFraction(Level(c), levels, opts.LevelRatios)
			for e := 0; e < 2; e++ {
				row[c][e] = base.Add(h.Mul(float64(r+e) / nrows)).Add(v.Mul(vf))
			}
		}
	}
	return out, nil
}

func verticalFraction(level, levels int, ratios []float64) float64 {
	if ratios != nil {
		if level >= len(ratios) {
			level = len(ratios) - 1
		}
		return ratios[level]
	}
	if levels == 0 {
		return 0
	}
	return float64(level) / float64(levels)
}

// CumulativeRatios turns per-step distances into the fraction of the total
// distance reached at each step. The result has len(steps)+1 entries,
// starting at 0 and ending at 1.
func CumulativeRatios(steps []float64) ([]float64, error) {
	acc := make([]float64, len(steps)+1)
	floats.CumSum(acc[1:], steps)
	total := acc[len(acc)-1]
	if total <= 0 {
		return nil, fmt.Errorf("%w: zero total distance", ErrDegenerateGeometry)
	}
	floats.Scale(1/total, acc)
	acc[len(acc)-1] = 1
	return acc, nil
}
