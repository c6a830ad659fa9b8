package engine

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/palette"
)

const (
	hueOffsetStep = 0.025
	tintStep      = 5.0
	tintCeiling   = 255.0
)

// Machine is the state of one wizard run.
// It is not safe for concurrent use; producers on other goroutines talk to it through a Queue.
type Machine struct {
	stage     Stage
	selection Selection

	hueStyle  palette.HueStyle
	hueOffset float64
	hues      []float64

	valueIDs []float64

	saturation float64
	brightness float64

	tint    palette.Tint
	channel palette.Channel
	blend   palette.Blend

	raw         palette.Grid
	renderStyle palette.RenderStyle
	final       palette.Grid

	err error
}

// Option configures a Machine.
type Option func(*Machine)

// WithBlend selects how the tint is mixed into composed colors.
func WithBlend(blend palette.Blend) Option {
	return func(m *Machine) {
		m.blend = blend
	}
}

// New starts a run at PickHueStyle.
func New(options ...Option) *Machine {
	m := &Machine{
		stage: PickHueStyle,
		selection: Selection{
			Value: 0,
			Min:   0,
			Max:   len(palette.HueStyles()) - 1,
		},
		blend: palette.DefaultBlend,
	}

	for _, option := range options {
		option(m)
	}

	return m
}

// Stage returns the active stage.
func (m *Machine) Stage() Stage {
	return m.stage
}

// Selection returns the active selection.
func (m *Machine) Selection() Selection {
	return m.selection
}

// Done reports whether the final grid has been produced.
func (m *Machine) Done() bool {
	return m.stage == Done
}

// Err returns the precondition violation that stopped the run, if any.
func (m *Machine) Err() error {
	return m.err
}

// Final returns the finalized grid once the run is done.
func (m *Machine) Final() mo.Option[palette.Grid] {
	if m.stage != Done {
		return mo.None[palette.Grid]()
	}
	return mo.Some(m.final.Clone())
}

// Update applies one tick worth of commands in the fixed order
// Increase, Decrease, CycleNext, CyclePrev, Confirm.
func (m *Machine) Update(cmds Commands) {
	if m.stage == Done || m.err != nil {
		return
	}

	if cmds.Has(Increase) {
		m.increase()
	}
	if cmds.Has(Decrease) {
		m.decrease()
	}
	if cmds.Has(CycleNext) {
		m.cycle(1)
	}
	if cmds.Has(CyclePrev) {
		m.cycle(-1)
	}
	if cmds.Has(Confirm) {
		m.confirm()
	}

	m.reevaluateHues()
}

func (m *Machine) increase() {
	if m.stage != AdjustTints {
		m.selection.Step(1)
		return
	}

	level := lo.Clamp(m.tint.Level(m.channel)+tintStep, 0, tintCeiling)
	m.tint = m.tint.WithLevel(m.channel, level)
}

// decrease lowers the tint without a floor; only increases are clamped.
func (m *Machine) decrease() {
	if m.stage != AdjustTints {
		m.selection.Step(-1)
		return
	}

	m.tint = m.tint.WithLevel(m.channel, m.tint.Level(m.channel)-tintStep)
}

func (m *Machine) cycle(direction int) {
	if m.stage == AdjustTints {
		if direction > 0 {
			m.channel = m.channel.Next()
		} else {
			m.channel = m.channel.Prev()
		}
		return
	}

	// hues do not exist before a style is picked
	if m.stage <= PickHueStyle {
		return
	}

	delta := float64(direction) * hueOffsetStep
	for i := range m.hues {
		m.hues[i] += delta
	}
	m.hueOffset += delta
}

// reevaluateHues keeps the hue set in step with the hue count selection.
func (m *Machine) reevaluateHues() {
	if m.stage != PickHueCount || len(m.hues) == m.selection.Value {
		return
	}

	hues, err := palette.DeriveHues(m.hueStyle, m.selection.Value, m.hueOffset)
	if err != nil {
		m.fail(err)
		return
	}
	m.hues = hues
}

// transition describes what confirming a stage does.
type transition struct {
	next      Stage
	capture   func(m *Machine) error
	selection mo.Option[Selection]
}

var transitions = map[Stage]transition{
	PickHueStyle: {
		next:      PickHueCount,
		capture:   (*Machine).captureHueStyle,
		selection: mo.Some(Selection{Value: 1, Min: 1, Max: 28}),
	},
	PickHueCount: {
		next:      PickValueCount,
		capture:   func(*Machine) error { return nil },
		selection: mo.Some(Selection{Value: 3, Min: 3, Max: 8}),
	},
	PickValueCount: {
		next:      AdjustSaturation,
		capture:   (*Machine).captureValueIDs,
		selection: mo.Some(Selection{Value: 10, Min: 1, Max: 10}),
	},
	AdjustSaturation: {
		next: AdjustBrightness,
		capture: func(m *Machine) error {
			m.saturation = factor(m.selection.Value)
			return nil
		},
		selection: mo.Some(Selection{Value: 10, Min: 1, Max: 10}),
	},
	AdjustBrightness: {
		next: AdjustTints,
		capture: func(m *Machine) error {
			m.brightness = factor(m.selection.Value)
			return nil
		},
		selection: mo.None[Selection](),
	},
	AdjustTints: {
		next:      PickRenderStyle,
		capture:   (*Machine).captureRaw,
		selection: mo.Some(Selection{Value: 0, Min: 0, Max: len(palette.RenderStyles()) - 1}),
	},
	PickRenderStyle: {
		next:      Done,
		capture:   (*Machine).captureFinal,
		selection: mo.None[Selection](),
	},
}

func (m *Machine) confirm() {
	t, ok := transitions[m.stage]
	if !ok {
		return
	}

	if err := t.capture(m); err != nil {
		m.fail(err)
		return
	}

	log.Debugf("stage %s confirmed with %d, entering %s", m.stage, m.selection.Value, t.next)

	m.stage = t.next
	if s, ok := t.selection.Get(); ok {
		m.selection = s
	}
}

func (m *Machine) captureHueStyle() error {
	m.hueStyle = palette.HueStyles()[m.selection.Value]
	// a single hue at the current offset until the count changes
	m.hues = []float64{m.hueOffset}
	return nil
}

func (m *Machine) captureValueIDs() error {
	valueIDs, err := palette.DeriveValueIDs(m.selection.Value)
	if err != nil {
		return err
	}
	m.valueIDs = valueIDs
	return nil
}

func (m *Machine) captureRaw() error {
	raw, err := m.composer().Grid(m.hues, m.valueIDs)
	if err != nil {
		return fmt.Errorf("compose raw grid: %w", err)
	}
	m.raw = raw
	return nil
}

func (m *Machine) captureFinal() error {
	style := palette.RenderStyles()[m.selection.Value]
	final, err := palette.Finalize(style, m.raw)
	if err != nil {
		return fmt.Errorf("finalize %s: %w", style, err)
	}
	m.renderStyle = style
	m.final = final
	return nil
}

func (m *Machine) composer() palette.Composer {
	return palette.Composer{
		Saturation: m.saturation,
		Brightness: m.brightness,
		Tint:       m.tint,
		Blend:      m.blend,
	}
}

func (m *Machine) fail(err error) {
	log.Errorf("stage %s: %v", m.stage, err)
	m.err = err
}

func factor(selection int) float64 {
	return float64(selection) / 10
}
