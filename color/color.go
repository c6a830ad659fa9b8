// Package color holds the terminal colors used by swatch output.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI palette, follows the user's terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

var Orange = New("#ffb703")

// Contrast picks black or white, whichever reads better on top of the given #rrggbb background.
func Contrast(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return New("#ffffff")
	}

	l, _, _ := c.Lab()
	if l > 0.6 {
		return New("#000000")
	}
	return New("#ffffff")
}
