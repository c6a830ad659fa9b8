package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/export"
	"github.com/swatch-cli/swatch/palette"
)

type Options struct {
	Out    io.Writer
	Params engine.Params
	Engine []engine.Option
	Export export.Options
	// Json prints the palette document instead of the exported path.
	Json bool
}

// ParseTint reads "r,g,b" levels. Missing trailing channels are zero.
func ParseTint(description string) (palette.Tint, error) {
	var tint palette.Tint
	if strings.TrimSpace(description) == "" {
		return tint, nil
	}

	parts := strings.Split(description, ",")
	if len(parts) > 3 {
		return tint, fmt.Errorf("tint %q has more than 3 channels", description)
	}

	channels := []palette.Channel{palette.Red, palette.Green, palette.Blue}
	for i, part := range parts {
		level, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return tint, fmt.Errorf("invalid %s tint %q", channels[i], part)
		}
		tint = tint.WithLevel(channels[i], float64(level))
	}

	return tint, nil
}

// ParseParams builds run parameters from flag values, matching style names fuzzily.
func ParseParams(hueStyle string, hues, values, saturation, brightness int, tint, renderStyle string, offsetSteps int) (engine.Params, error) {
	var (
		params engine.Params
		err    error
	)

	if params.HueStyle, err = palette.ParseHueStyle(hueStyle); err != nil {
		return params, err
	}
	if params.RenderStyle, err = palette.ParseRenderStyle(renderStyle); err != nil {
		return params, err
	}
	if params.Tint, err = ParseTint(tint); err != nil {
		return params, err
	}

	params.Hues = hues
	params.Values = values
	params.Saturation = saturation
	params.Brightness = brightness
	params.OffsetSteps = offsetSteps

	return params, params.Validate()
}
