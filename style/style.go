// Package style composes lipgloss styles for CLI and TUI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/swatch-cli/swatch/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer applying a foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Tag renders s as a padded colored block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

var (
	Title      = Tag(color.New("230"), color.New("62"))
	ErrorTitle = Tag(color.New("230"), color.Red)
)

// Swatch renders s on a true-color #rrggbb background with a readable foreground.
func Swatch(hex string) lipgloss.Style {
	return Colored(color.Contrast(hex), lipgloss.Color(hex))
}
