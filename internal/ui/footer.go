package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterView renders the command help line for whatever pane is active. It
// only ever reads the command list handed to it.
type FooterView struct {
	width int
}

func NewFooterView() *FooterView {
	return &FooterView{}
}

func (f *FooterView) SetWidth(width int) {
	f.width = width
}

func (f *FooterView) Render(commands []string) string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	divider := dividerStyle.Render(strings.Repeat("─", max(f.width, 1)))
	helpText := helpStyle.Render(strings.Join(commands, " • "))

	return lipgloss.JoinVertical(lipgloss.Left, divider, helpText)
}
