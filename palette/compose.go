package palette

import "github.com/samber/lo"

// TintWeightChannel is the channel whose ratio weights the raw color in every channel's tint blend.
const TintWeightChannel = Red

// Blend selects the weighting used when mixing the tint into a composed color.
type Blend int

const (
	// WeightedByTintChannel weights every channel by the TintWeightChannel ratio.
	WeightedByTintChannel Blend = iota
	// PerChannel weights each channel by its own ratio.
	PerChannel
)

// DefaultBlend is the blend used unless configured otherwise.
const DefaultBlend = WeightedByTintChannel

// Composer turns (hue, value ID) pairs into concrete colors using frozen adjustment factors.
type Composer struct {
	Saturation float64
	Brightness float64
	Tint       Tint
	Blend      Blend
}

// Compose is the composer with the default blend.
func Compose(hue, valueID, saturation, brightness float64, tint Tint) Color {
	return Composer{
		Saturation: saturation,
		Brightness: brightness,
		Tint:       tint,
		Blend:      DefaultBlend,
	}.Compose(hue, valueID)
}

// Compose maps one hue and value ID to a color.
func (c Composer) Compose(hue, valueID float64) Color {
	var base Color
	if valueID > 1 {
		base = HSB(hue, (2-valueID)*c.Saturation, c.Brightness)
	} else {
		base = HSB(hue, c.Saturation, valueID*c.Brightness)
	}

	return Color{
		R: c.blend(base.R, Red),
		G: c.blend(base.G, Green),
		B: c.blend(base.B, Blue),
	}
}

// blend mixes one raw channel with its tint level. Both terms truncate toward zero before summing.
func (c Composer) blend(raw uint8, channel Channel) uint8 {
	weight := TintWeightChannel
	if c.Blend == PerChannel {
		weight = channel
	}

	delta := int(c.Tint.Ratio(channel) * 255)
	kept := int(float64(raw) * (1 - c.Tint.Ratio(weight)))

	return uint8(lo.Clamp(delta+kept, 0, 255))
}

// Grid composes every (value, hue) pair into a grid indexed [value][hue].
func (c Composer) Grid(hues, valueIDs []float64) (Grid, error) {
	if len(hues) == 0 || len(valueIDs) == 0 {
		return nil, ErrEmptyGrid
	}

	grid := NewGrid(len(valueIDs), len(hues))
	for j, valueID := range valueIDs {
		for i, hue := range hues {
			grid[j][i] = c.Compose(hue, valueID)
		}
	}

	return grid, nil
}
