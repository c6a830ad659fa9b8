package palette

import "fmt"

// Finalize applies a render style to the raw grid and returns a new grid of the same shape.
// The raw grid is never modified.
func Finalize(style RenderStyle, raw Grid) (Grid, error) {
	if raw.Empty() {
		return nil, ErrEmptyGrid
	}

	switch style {
	case Basic:
		return raw.Clone(), nil
	case PairwiseGradient:
		return pairwise(raw, func(gradient float64) (float64, float64) {
			return gradient, 1 - gradient
		}), nil
	case InversePairwiseGradient:
		return pairwise(raw, func(gradient float64) (float64, float64) {
			return 1 - gradient, gradient
		}), nil
	default:
		return nil, fmt.Errorf("unknown render style %d", style)
	}
}

// pairwise blends each swatch with its right-hand neighbor, wrapping the last column onto the first.
// weights maps a row's gradient to the (current, next) weights.
func pairwise(raw Grid, weights func(gradient float64) (current, next float64)) Grid {
	rows, cols := raw.Rows(), raw.Cols()
	step := 1.0 / float64(rows)

	final := NewGrid(rows, cols)
	for j := range raw {
		cw, nw := weights(step*float64(j) + step/2)
		for i := range raw[j] {
			cur, next := raw[j][i], raw[j][(i+1)%cols]
			final[j][i] = Color{
				R: mix(cur.R, next.R, cw, nw),
				G: mix(cur.G, next.G, cw, nw),
				B: mix(cur.B, next.B, cw, nw),
			}
		}
	}

	return final
}

func mix(a, b uint8, wa, wb float64) uint8 {
	return uint8(float64(a)*wa + float64(b)*wb)
}
