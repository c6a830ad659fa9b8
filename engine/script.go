package engine

import (
	"fmt"

	"github.com/swatch-cli/swatch/palette"
)

// Script is a sequence of commands played one per tick, so no command is coalesced away.
type Script []Command

// Seek returns the commands that move a selection from one value to another.
func Seek(from, to int) Script {
	var script Script
	for ; from < to; from++ {
		script = append(script, Increase)
	}
	for ; from > to; from-- {
		script = append(script, Decrease)
	}
	return script
}

// Repeat returns cmd n times.
func Repeat(cmd Command, n int) Script {
	script := make(Script, 0, max(n, 0))
	for i := 0; i < n; i++ {
		script = append(script, cmd)
	}
	return script
}

// Play pushes each command through a queue and ticks the machine once per command.
func (s Script) Play(m *Machine) {
	var queue Queue
	for _, cmd := range s {
		queue.Push(cmd)
		m.Update(queue.Drain())
	}
}

// Params are the answers to every stage of a run.
type Params struct {
	HueStyle    palette.HueStyle
	Hues        int
	Values      int
	Saturation  int // 1..10, tenths
	Brightness  int // 1..10, tenths
	Tint        palette.Tint
	RenderStyle palette.RenderStyle
	// OffsetSteps shifts every hue by OffsetSteps * 0.025; negative values shift backwards.
	OffsetSteps int
}

// DefaultParams mirror the selection each stage starts with.
func DefaultParams() Params {
	return Params{
		HueStyle:    palette.Linear,
		Hues:        1,
		Values:      3,
		Saturation:  10,
		Brightness:  10,
		RenderStyle: palette.Basic,
	}
}

// Validate checks every answer against the wizard bounds.
func (p Params) Validate() error {
	bounded := []struct {
		name          string
		value, lo, hi int
	}{
		{"hue style", int(p.HueStyle), 0, len(palette.HueStyles()) - 1},
		{"hue count", p.Hues, 1, 28},
		{"value count", p.Values, 3, 8},
		{"saturation", p.Saturation, 1, 10},
		{"brightness", p.Brightness, 1, 10},
		{"render style", int(p.RenderStyle), 0, len(palette.RenderStyles()) - 1},
	}
	for _, b := range bounded {
		if b.value < b.lo || b.value > b.hi {
			return fmt.Errorf("%s %d out of range [%d,%d]", b.name, b.value, b.lo, b.hi)
		}
	}

	for _, c := range []palette.Channel{palette.Red, palette.Green, palette.Blue} {
		level := p.Tint.Level(c)
		if level != float64(int(level)) || int(level)%int(tintStep) != 0 {
			return fmt.Errorf("%s tint %v is not a multiple of %v", c, level, tintStep)
		}
		if level > tintCeiling {
			return fmt.Errorf("%s tint %v exceeds %v", c, level, tintCeiling)
		}
	}

	return nil
}

// TintScript adjusts the selected channel from its current level to target, then moves to the next channel.
func TintScript(current, target float64) Script {
	script := Seek(int(current/tintStep), int(target/tintStep))
	return append(script, CycleNext)
}

// Plan returns the script that answers every stage of a fresh run with p and confirms the last one.
func Plan(p Params) (Script, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var script Script
	add := func(parts ...Script) {
		for _, part := range parts {
			script = append(script, part...)
		}
	}

	add(Seek(0, int(p.HueStyle)), Script{Confirm})

	if p.OffsetSteps >= 0 {
		add(Repeat(CycleNext, p.OffsetSteps))
	} else {
		add(Repeat(CyclePrev, -p.OffsetSteps))
	}
	add(Seek(1, p.Hues), Script{Confirm})

	add(Seek(3, p.Values), Script{Confirm})
	add(Seek(10, p.Saturation), Script{Confirm})
	add(Seek(10, p.Brightness), Script{Confirm})

	for _, c := range []palette.Channel{palette.Red, palette.Green, palette.Blue} {
		add(TintScript(0, p.Tint.Level(c)))
	}
	add(Script{Confirm})

	add(Seek(0, int(p.RenderStyle)), Script{Confirm})

	return script, nil
}

// Run plays the plan for p on a fresh machine and returns it.
func Run(p Params, options ...Option) (*Machine, error) {
	script, err := Plan(p)
	if err != nil {
		return nil, err
	}

	m := New(options...)
	script.Play(m)

	if err := m.Err(); err != nil {
		return m, err
	}
	if !m.Done() {
		return m, fmt.Errorf("run stopped at %s", m.Stage())
	}
	return m, nil
}
