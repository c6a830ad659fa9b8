package mini

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/util"
)

const offsetMessage = "Shift the hues (steps of 0.025, negative to go back):"

func tintMessage(c palette.Channel) string {
	return fmt.Sprintf("%s tint level (multiple of 5, at most 255):", util.Capitalize(c.String()))
}

func (m *mini) handleHueStyle(s engine.Snapshot) (engine.Script, error) {
	index, err := selectIndex(s.Stage.Prompt(), labels(palette.HueStyles()), s.SelectionValue)
	if err != nil {
		return nil, err
	}
	return append(engine.Seek(s.SelectionValue, index), engine.Confirm), nil
}

func (m *mini) handleHueCount(s engine.Snapshot) (engine.Script, error) {
	count, err := askInt(s.Stage.Prompt(), s.SelectionValue, intIn(s.SelectionMin, s.SelectionMax))
	if err != nil {
		return nil, err
	}

	steps, err := askInt(offsetMessage, 0, intIn(-40, 40))
	if err != nil {
		return nil, err
	}

	var script engine.Script
	if steps >= 0 {
		script = engine.Repeat(engine.CycleNext, steps)
	} else {
		script = engine.Repeat(engine.CyclePrev, -steps)
	}
	script = append(script, engine.Seek(s.SelectionValue, count)...)
	return append(script, engine.Confirm), nil
}

func (m *mini) handleValueCount(s engine.Snapshot) (engine.Script, error) {
	count, err := askInt(s.Stage.Prompt(), s.SelectionValue, intIn(s.SelectionMin, s.SelectionMax))
	if err != nil {
		return nil, err
	}
	return append(engine.Seek(s.SelectionValue, count), engine.Confirm), nil
}

// handleFactor covers saturation and brightness, both picked in tenths.
func (m *mini) handleFactor(s engine.Snapshot) (engine.Script, error) {
	options := make([]string, 0, s.SelectionMax-s.SelectionMin+1)
	for v := s.SelectionMin; v <= s.SelectionMax; v++ {
		options = append(options, fmt.Sprintf("%d%%", v*10))
	}

	index, err := selectIndex(s.Stage.Prompt(), options, s.SelectionValue-s.SelectionMin)
	if err != nil {
		return nil, err
	}
	return append(engine.Seek(s.SelectionValue, s.SelectionMin+index), engine.Confirm), nil
}

// handleTints asks for red, green and blue in turn, starting from the selected channel.
func (m *mini) handleTints(s engine.Snapshot) (engine.Script, error) {
	var script engine.Script

	channel := s.Channel
	for i := 0; i < 3; i++ {
		current := s.Tint.Level(channel)
		level, err := askInt(tintMessage(channel), int(current), tintLevel)
		if err != nil {
			return nil, err
		}

		script = append(script, engine.TintScript(current, float64(level))...)
		channel = channel.Next()
	}

	return append(script, engine.Confirm), nil
}

func (m *mini) handleRenderStyle(s engine.Snapshot) (engine.Script, error) {
	index, err := selectIndex(s.Stage.Prompt(), labels(palette.RenderStyles()), s.SelectionValue)
	if err != nil {
		return nil, err
	}
	return append(engine.Seek(s.SelectionValue, index), engine.Confirm), nil
}

func askInt(message string, def int, validate survey.Validator) (int, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: strconv.Itoa(def),
	}
	if err := ask(prompt, &answer, survey.WithValidator(validate)); err != nil {
		return 0, err
	}

	if err := validate(answer); err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(answer))
}

func intIn(min, max int) survey.Validator {
	return func(ans interface{}) error {
		v, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(ans)))
		if err != nil {
			return fmt.Errorf("%q is not a number", ans)
		}
		if v < min || v > max {
			return fmt.Errorf("%d is not between %d and %d", v, min, max)
		}
		return nil
	}
}

// tintLevel accepts multiples of 5 up to 255. Negative levels are allowed, as decreases have no floor.
func tintLevel(ans interface{}) error {
	v, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(ans)))
	if err != nil {
		return fmt.Errorf("%q is not a number", ans)
	}
	if v%5 != 0 {
		return fmt.Errorf("%d is not a multiple of 5", v)
	}
	if v > 255 {
		return fmt.Errorf("%d is above 255", v)
	}
	return nil
}
