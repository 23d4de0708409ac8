// Package color names the ANSI palette the CLI renders with.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps a terminal color value for use in lipgloss styles.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// The basic 8 colors, resolved by the terminal's own theme.
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

// Bright variants.
var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
	HiWhite  = New("15")
	HiBlack  = New("16")
)
