// Package tui runs the palette wizard as a full screen terminal program.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/export"
	"github.com/swatch-cli/swatch/internal/ui"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/util"
)

type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	machine  *engine.Machine
	queue    *engine.Queue
	snapshot engine.Snapshot
	tick     time.Duration

	helpC    help.Model
	spinnerC spinner.Model
	notifier *ui.Model

	outcome   export.Outcome
	lastError error

	width, height int

	options *Options
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
}

// refresh takes a new snapshot after the machine has been updated.
func (b *statefulBubble) refresh() {
	b.snapshot = b.machine.Snapshot()
	b.keymap.setStage(b.snapshot.Stage)
}

func newBubble(options *Options) *statefulBubble {
	tick := time.Duration(viper.GetInt(key.TUITickMs)) * time.Millisecond
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}

	bubble := statefulBubble{
		keymap:   newStatefulKeymap(),
		machine:  engine.New(options.Engine...),
		queue:    &engine.Queue{},
		tick:     tick,
		notifier: &ui.Model{},
		options:  options,
	}

	bubble.helpC = help.New()
	bubble.helpC.ShowAll = false

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.setState(wizardState)
	bubble.refresh()

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}

// Options configure one interactive run.
type Options struct {
	Export export.Options
	Engine []engine.Option
}
