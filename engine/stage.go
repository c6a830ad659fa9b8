// Package engine drives a palette wizard run: it owns the stage sequence, the selection bounds and every confirmed parameter.
package engine

import "strconv"

// Stage is one step of the wizard. Stages only ever advance.
type Stage int

const (
	PickHueStyle Stage = iota
	PickHueCount
	PickValueCount
	AdjustSaturation
	AdjustBrightness
	AdjustTints
	PickRenderStyle
	// Done is reached after the render style is confirmed; the final grid is ready for export.
	Done
)

// stageText holds what the front-ends show for a stage.
type stageText struct {
	name   string
	prompt string
	hint   string
}

const (
	adjustHint = "Use LEFT / RIGHT to adjust. Press ENTER to submit."
	tintHint   = "Use UP / DOWN to cycle RGB. Use LEFT / RIGHT to adjust. Press ENTER to submit."
)

var stageTexts = map[Stage]stageText{
	PickHueStyle:     {"pick-hue-style", "Which style of palette derivation?", adjustHint},
	PickHueCount:     {"pick-hue-count", "How many different hues?", adjustHint},
	PickValueCount:   {"pick-value-count", "How many swatches for each hue?", adjustHint},
	AdjustSaturation: {"adjust-saturation", "Adjust the saturation as needed:", adjustHint},
	AdjustBrightness: {"adjust-brightness", "Adjust the brightness as needed:", adjustHint},
	AdjustTints:      {"adjust-tints", "Adjust RGB tint", tintHint},
	PickRenderStyle:  {"pick-render-style", "Which style of rendering finalization?", adjustHint},
	Done:             {"done", "Palette finished", ""},
}

func (s Stage) String() string {
	if t, ok := stageTexts[s]; ok {
		return t.name
	}
	return "stage(" + strconv.Itoa(int(s)) + ")"
}

// Prompt is the question asked while the stage is active.
func (s Stage) Prompt() string {
	return stageTexts[s].prompt
}

// Hint describes the controls that apply to the stage.
func (s Stage) Hint() string {
	return stageTexts[s].hint
}

// Stages lists every interactive stage in order.
func Stages() []Stage {
	return []Stage{
		PickHueStyle,
		PickHueCount,
		PickValueCount,
		AdjustSaturation,
		AdjustBrightness,
		AdjustTints,
		PickRenderStyle,
	}
}
