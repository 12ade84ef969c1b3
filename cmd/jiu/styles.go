// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/PRO-2684/jiu/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple, used for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for descriptions and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red.
	ColorError = lipgloss.Color("#EF4444")

	// ColorHighlight is blue, used for recipe names.
	ColorHighlight = lipgloss.Color("#3B82F6")

	// ColorSymbol is ANSI magenta, used for argument quantifier symbols.
	ColorSymbol = lipgloss.Color("5")

	// ColorArgument is ANSI cyan, used for argument names.
	ColorArgument = lipgloss.Color("6")
)

// styles holds the lipgloss styles bound to one output stream. Building them
// from a renderer lets JIU_COLOR force or suppress colors per stream.
type styles struct {
	renderer *lipgloss.Renderer

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
	Recipe   lipgloss.Style
	Symbol   lipgloss.Style
	Argument lipgloss.Style
	Muted    lipgloss.Style
}

func newStyles(w io.Writer, mode config.ColorMode) *styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}

	return &styles{
		renderer: r,
		Title:    r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Subtitle: r.NewStyle().Bold(true).Foreground(ColorMuted),
		Error:    r.NewStyle().Bold(true).Foreground(ColorError),
		Recipe:   r.NewStyle().Bold(true).Foreground(ColorHighlight),
		Symbol:   r.NewStyle().Foreground(ColorSymbol),
		Argument: r.NewStyle().Foreground(ColorArgument),
		Muted:    r.NewStyle().Foreground(ColorMuted),
	}
}

// colored reports whether the bound stream receives ANSI colors.
func (s *styles) colored() bool {
	return s.renderer.ColorProfile() != termenv.Ascii
}

// glamourStyle picks the glamour style matching the stream.
func (s *styles) glamourStyle() string {
	if !s.colored() {
		return "notty"
	}
	if s.renderer.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
