// Package mini runs the palette wizard as a sequence of line prompts.
package mini

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/export"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/util"
)

// ask is swapped out in tests.
var ask = survey.AskOne

type Options struct {
	Export export.Options
	Engine []engine.Option
	Out    io.Writer
}

type mini struct {
	machine *engine.Machine
	out     io.Writer
	width   int
}

func newMini(options *Options) *mini {
	m := &mini{
		machine: engine.New(options.Engine...),
		out:     options.Out,
		width:   80,
	}
	if m.out == nil {
		m.out = os.Stdout
	}
	if w, _, err := util.TerminalSize(); err == nil {
		m.width = w
	}
	return m
}

// Run asks for every stage, then exports the palette.
func Run(options *Options) (*export.Outcome, error) {
	m := newMini(options)

	for !m.machine.Done() {
		if err := m.handleStage(); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return &export.Outcome{Terminated: true}, nil
			}
			return nil, err
		}

		if err := m.machine.Err(); err != nil {
			return nil, err
		}
	}

	return m.export(options.Export), nil
}

func (m *mini) handleStage() error {
	snapshot := m.machine.Snapshot()

	var (
		script engine.Script
		err    error
	)

	switch snapshot.Stage {
	case engine.PickHueStyle:
		script, err = m.handleHueStyle(snapshot)
	case engine.PickHueCount:
		script, err = m.handleHueCount(snapshot)
	case engine.PickValueCount:
		script, err = m.handleValueCount(snapshot)
	case engine.AdjustSaturation, engine.AdjustBrightness:
		script, err = m.handleFactor(snapshot)
	case engine.AdjustTints:
		script, err = m.handleTints(snapshot)
	case engine.PickRenderStyle:
		script, err = m.handleRenderStyle(snapshot)
	default:
		return fmt.Errorf("unexpected stage %s", snapshot.Stage)
	}

	if err != nil {
		return err
	}

	script.Play(m.machine)
	log.Debugf("mini: %s answered with %d commands", snapshot.Stage, len(script))

	m.printPreview(m.machine.Snapshot())
	return nil
}

func (m *mini) export(options export.Options) *export.Outcome {
	erase := util.PrintErasable(fmt.Sprintf("%s Exporting to %s", icon.Get(icon.Progress), options.Path))
	result, err := export.Run(m.machine.Snapshot(), options)
	erase()

	if err != nil {
		fmt.Fprintf(m.out, "%s %s\n", style.Fg(style.ErrorColor)(icon.Get(icon.Fail)), err)
		return &export.Outcome{Result: result, Err: err}
	}

	fmt.Fprintf(m.out, "%s Palette exported to %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), result.Describe())
	return &export.Outcome{Result: result}
}

// printPreview draws the grid the next stage starts from, lightest row first.
func (m *mini) printPreview(s engine.Snapshot) {
	grid := s.Preview
	if grid.Empty() {
		return
	}

	cell := strings.Repeat(" ", util.Max(1, util.Min(4, m.width/grid.Cols())))
	for j := grid.Rows() - 1; j >= 0; j-- {
		var sb strings.Builder
		for _, c := range grid[j] {
			sb.WriteString(style.Swatch(c.Hex()).Render(cell))
		}
		fmt.Fprintln(m.out, sb.String())
	}
	fmt.Fprintln(m.out, style.Faint(s.Label()))
}

func labels[T interface{ Label() string }](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label()
	}
	return out
}

func selectIndex(message string, options []string, current int) (int, error) {
	var index int
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: options[current],
	}
	if err := ask(prompt, &index); err != nil {
		return 0, err
	}
	if index < 0 || index >= len(options) {
		return 0, fmt.Errorf("no option %d", index)
	}
	return index, nil
}
