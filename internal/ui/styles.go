package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// This file centralizes the lipgloss styles used by the terminal output.

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
	best    lipgloss.Style
	caption lipgloss.Style
}

// newRenderer returns a lipgloss renderer bound to w. Colour is detected from
// w (plain text for pipes and buffers) unless noColor forces it off.
func newRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1).
			MarginTop(1),

		header: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")). // Light purple
			Padding(0, 1),

		cell: r.NewStyle().
			Foreground(lipgloss.Color("252")). // Light Gray
			Padding(0, 1).
			Align(lipgloss.Right),

		border: r.NewStyle().
			Foreground(lipgloss.Color("63")), // Purple-ish

		best: r.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Right),

		caption: r.NewStyle().
			Foreground(lipgloss.Color("241")). // Dim
			Italic(true),
	}
}
