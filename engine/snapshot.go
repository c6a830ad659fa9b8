package engine

import (
	"fmt"

	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/util"
)

// Snapshot is a read-only copy of a Machine, safe to hand to renderers and exporters.
type Snapshot struct {
	Stage          Stage
	SelectionValue int
	SelectionMin   int
	SelectionMax   int

	HueStyle  palette.HueStyle
	HueOffset float64
	Hues      []float64
	ValueIDs  []float64

	Saturation float64
	Brightness float64

	Tint    palette.Tint
	Channel palette.Channel

	RenderStyle palette.RenderStyle
	Raw         palette.Grid
	Final       palette.Grid

	// Preview is the grid a renderer should show for the active stage and selection.
	Preview palette.Grid

	Err error
}

// Snapshot copies the current state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Stage:          m.stage,
		SelectionValue: m.selection.Value,
		SelectionMin:   m.selection.Min,
		SelectionMax:   m.selection.Max,
		HueStyle:       m.hueStyle,
		HueOffset:      m.hueOffset,
		Hues:           append([]float64(nil), m.hues...),
		ValueIDs:       append([]float64(nil), m.valueIDs...),
		Saturation:     m.saturation,
		Brightness:     m.brightness,
		Tint:           m.tint,
		Channel:        m.channel,
		RenderStyle:    m.renderStyle,
		Raw:            m.raw.Clone(),
		Final:          m.final.Clone(),
		Preview:        m.preview(),
		Err:            m.err,
	}
}

// preview composes the grid for the active stage, using the selection that is not yet confirmed.
func (m *Machine) preview() palette.Grid {
	full := palette.Composer{Saturation: 1, Brightness: 1, Blend: m.blend}

	switch m.stage {
	case PickHueCount:
		grid, _ := full.Grid(m.hues, []float64{1})
		return grid
	case PickValueCount:
		valueIDs, err := palette.DeriveValueIDs(m.selection.Value)
		if err != nil {
			return nil
		}
		grid, _ := full.Grid(m.hues, valueIDs)
		return grid
	case AdjustSaturation:
		c := full
		c.Saturation = factor(m.selection.Value)
		grid, _ := c.Grid(m.hues, m.valueIDs)
		return grid
	case AdjustBrightness:
		c := full
		c.Saturation = m.saturation
		c.Brightness = factor(m.selection.Value)
		grid, _ := c.Grid(m.hues, m.valueIDs)
		return grid
	case AdjustTints:
		grid, _ := m.composer().Grid(m.hues, m.valueIDs)
		return grid
	case PickRenderStyle:
		grid, _ := palette.Finalize(palette.RenderStyles()[m.selection.Value], m.raw)
		return grid
	case Done:
		return m.final.Clone()
	default:
		return nil
	}
}

// Label describes the current selection the way the wizard displays it.
func (s Snapshot) Label() string {
	switch s.Stage {
	case PickHueStyle:
		return "Selected style: " + palette.HueStyles()[s.SelectionValue].Label()
	case PickHueCount:
		return fmt.Sprintf("Hue count: %d", s.SelectionValue)
	case PickValueCount:
		return fmt.Sprintf("Value swatch count: %d", s.SelectionValue)
	case AdjustSaturation:
		return fmt.Sprintf("Saturation level: %d%%", s.SelectionValue*10)
	case AdjustBrightness:
		return fmt.Sprintf("Brightness level: %d%%", s.SelectionValue*10)
	case AdjustTints:
		return fmt.Sprintf("%s tint level: %.1f%%", util.Capitalize(s.Channel.String()), s.Tint.Level(s.Channel))
	case PickRenderStyle:
		return "Selected style: " + palette.RenderStyles()[s.SelectionValue].Label()
	case Done:
		return "Render style: " + s.RenderStyle.Label()
	default:
		return ""
	}
}
