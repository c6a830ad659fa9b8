package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/style"
)

type statefulKeymap struct {
	state state
	stage engine.Stage

	increase, decrease,
	cycleNext, cyclePrev,
	confirm,
	terminate,
	copyHex,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(s state) {
	k.state = s
}

func (k *statefulKeymap) setStage(s engine.Stage) {
	k.stage = s
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "increase"),
		),
		decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "decrease"),
		),
		cycleNext: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "shift hues"),
		),
		cyclePrev: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "shift hues back"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("submit")),
		),
		terminate: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		copyHex: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy hex"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// commands maps the wizard bindings to engine commands.
func (k *statefulKeymap) commands() []struct {
	binding key.Binding
	command engine.Command
} {
	return []struct {
		binding key.Binding
		command engine.Command
	}{
		{k.increase, engine.Increase},
		{k.decrease, engine.Decrease},
		{k.cycleNext, engine.CycleNext},
		{k.cyclePrev, engine.CyclePrev},
		{k.confirm, engine.Confirm},
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	switch k.state {
	case wizardState:
		switch k.stage {
		case engine.PickHueStyle:
			return h(k.increase, k.decrease, k.confirm, k.terminate),
				h(k.increase, k.decrease, k.confirm, k.terminate, k.showHelp)
		case engine.AdjustTints:
			next := withDescription(k.cycleNext, "next channel")
			prev := withDescription(k.cyclePrev, "previous channel")
			return h(k.increase, k.decrease, next, k.confirm, k.terminate),
				h(k.increase, k.decrease, next, prev, k.confirm, k.copyHex, k.terminate, k.showHelp)
		default:
			return h(k.increase, k.decrease, k.cycleNext, k.confirm, k.terminate),
				h(k.increase, k.decrease, k.cycleNext, k.cyclePrev, k.confirm, k.copyHex, k.terminate, k.showHelp)
		}
	case errorState:
		return h(k.terminate), h(k.terminate)
	default:
		return h(), h()
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
