package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/engine"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

const maxSwatchWidth = 6

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case wizardState:
		output = b.viewWizard()
	case exportingState:
		output = b.viewExporting()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewWizard() string {
	s := b.snapshot

	lines := []string{
		style.Title(s.Stage.Prompt()),
		"",
		style.Bold(s.Label()),
	}

	if s.Stage == engine.AdjustTints {
		lines = append(lines, b.viewTints())
	} else {
		lines = append(lines, b.viewSelection())
	}

	lines = append(lines, "")
	lines = append(lines, b.viewGrid(s.Preview)...)
	lines = append(lines, "", style.Faint(s.Stage.Hint()))

	return b.renderLines(viper.GetBool(key.TUIShowHelp), lines)
}

func (b *statefulBubble) viewSelection() string {
	s := b.snapshot
	accent := style.Fg(style.AccentColor)

	var sb strings.Builder
	for v := s.SelectionMin; v <= s.SelectionMax; v++ {
		if v == s.SelectionValue {
			sb.WriteString(accent("●"))
		} else {
			sb.WriteString(style.Faint("·"))
		}
	}
	return sb.String()
}

func (b *statefulBubble) viewTints() string {
	s := b.snapshot

	parts := make([]string, 0, 3)
	for _, c := range []palette.Channel{palette.Red, palette.Green, palette.Blue} {
		text := fmt.Sprintf("%s %.0f", strings.ToUpper(c.String()[:1]), s.Tint.Level(c))
		if c == s.Channel {
			text = style.Fg(style.AccentColor)(icon.Get(icon.Tint) + " " + text)
		} else {
			text = style.Faint(text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "  ")
}

// viewGrid draws the lightest row on top, the way the palette is usually read.
func (b *statefulBubble) viewGrid(grid palette.Grid) []string {
	if grid.Empty() {
		return []string{style.Faint("no preview yet")}
	}

	width := util.Max(1, util.Min(maxSwatchWidth, b.width/grid.Cols()))
	if b.width == 0 {
		width = 2
	}
	cell := strings.Repeat(" ", width)

	lines := make([]string, 0, grid.Rows())
	for j := grid.Rows() - 1; j >= 0; j-- {
		var sb strings.Builder
		for _, c := range grid[j] {
			sb.WriteString(style.Swatch(c.Hex()).Render(cell))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

func (b *statefulBubble) viewExporting() string {
	return b.renderLines(false, []string{
		style.Title("Exporting"),
		"",
		b.spinnerC.View() + " " + icon.Get(icon.Export) + " " + b.options.Export.Path,
	})
}

func (b *statefulBubble) viewError() string {
	body := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true).Render(b.lastError.Error())
	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " The palette could not be derived:",
		"",
		wrap.String(body, util.Max(b.width, 20)),
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
