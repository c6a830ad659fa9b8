package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swatch-cli/swatch/export"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/internal/ui"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/util"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

type tickMsg time.Time

type exportedMsg struct {
	result *export.Result
	err    error
}

func (b *statefulBubble) Init() tea.Cmd {
	return b.waitForTick()
}

func (b *statefulBubble) waitForTick() tea.Cmd {
	return tea.Tick(b.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.terminate) {
			// the export finishes first; exportedMsg quits
			if b.state == exportingState {
				return b, tea.Batch(cmds...)
			}
			b.outcome.Terminated = b.outcome.Result == nil
			return b, tea.Quit
		}

		if b.state == wizardState {
			cmds = append(cmds, b.updateWizard(msg))
		}
	case tickMsg:
		if b.state == wizardState {
			cmds = append(cmds, b.onTick())
		}
	case spinner.TickMsg:
		if b.state == exportingState {
			var cmd tea.Cmd
			b.spinnerC, cmd = b.spinnerC.Update(msg)
			cmds = append(cmds, cmd)
		}
	case exportedMsg:
		b.outcome.Result = msg.result
		b.outcome.Err = msg.err
		return b, tea.Quit
	}

	return b, tea.Batch(cmds...)
}

// updateWizard only queues commands; the machine sees them on the next tick.
func (b *statefulBubble) updateWizard(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return nil
	case key.Matches(msg, b.keymap.copyHex):
		return b.copyHex()
	}

	for _, c := range b.keymap.commands() {
		if key.Matches(msg, c.binding) {
			b.queue.Push(c.command)
		}
	}
	return nil
}

func (b *statefulBubble) onTick() tea.Cmd {
	if cmds := b.queue.Drain(); !cmds.Empty() {
		b.machine.Update(cmds)
		b.refresh()
	}

	if err := b.machine.Err(); err != nil {
		b.raiseError(err)
		return nil
	}

	if b.machine.Done() {
		log.Infof("palette finished with %s, exporting to %s", b.snapshot.RenderStyle, b.options.Export.Path)
		b.setState(exportingState)
		return tea.Batch(b.spinnerC.Tick, b.export())
	}

	return b.waitForTick()
}

func (b *statefulBubble) export() tea.Cmd {
	snapshot := b.snapshot
	options := b.options.Export

	return func() tea.Msg {
		result, err := export.Run(snapshot, options)
		return exportedMsg{result: result, err: err}
	}
}

func (b *statefulBubble) copyHex() tea.Cmd {
	grid := b.snapshot.Preview
	if grid.Empty() {
		return ui.Notify("Nothing to copy yet")
	}

	rows := make([]string, 0, grid.Rows())
	for _, row := range grid.Hex() {
		rows = append(rows, strings.Join(row, " "))
	}

	if err := clipboardWriteAll(strings.Join(rows, "\n")); err != nil {
		log.Warnf("clipboard: %v", err)
		return ui.Notify(icon.Get(icon.Fail) + " " + err.Error())
	}

	return ui.Notify(fmt.Sprintf("%s Copied %s", icon.Get(icon.Success), util.Quantify(grid.Rows()*grid.Cols(), "color", "colors")))
}
