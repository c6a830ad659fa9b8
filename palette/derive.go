package palette

import (
	"fmt"
	"math"
)

// DeriveHues computes n hues for the given style, each shifted by offset.
// The offset is applied in full to every hue, so callers can recompute freely without compounding it.
func DeriveHues(style HueStyle, n int, offset float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrHueCount, n)
	}

	hues := make([]float64, n)
	switch style {
	case Linear:
		step := 1.0 / float64(n)
		for i := range hues {
			hues[i] = step*float64(i) + offset
		}
	case Radial:
		for i := range hues {
			x := float64(i) / float64(n)
			hues[i] = (math.Sqrt(1-x*x)+(1-x))*0.5 + offset
		}
	default:
		return nil, fmt.Errorf("unknown hue style %d", style)
	}

	return hues, nil
}

// DeriveValueIDs computes n evenly spaced value IDs spanning [0,2].
//
// A value ID of 0 is black, 1 is the pure hue and 2 is white. Below 1 the
// brightness ramps up at full saturation; above 1 the saturation falls away
// at full brightness.
func DeriveValueIDs(n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrValueCount, n)
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = float64(2*i) / float64(n-1)
	}

	return values, nil
}
