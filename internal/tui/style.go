package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var titleStyle = func() lipgloss.Style {
	b := lipgloss.NormalBorder()
	return lipgloss.NewStyle().BorderStyle(b).Padding(0, 1)
}

func textGreen(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Render(s)
}

func textRed(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")).Render(s)
}

func (m *Model) titleBar(t string) string {
	titleBox := titleStyle().Render(t)
	dividerLength := m.width - lipgloss.Width(titleBox)
	return lipgloss.JoinHorizontal(lipgloss.Center, titleBox, line(dividerLength))
}

func (m *Model) appFooter() string {
	return m.titleBar("C: Copy Results | Q/ESC: Exit")
}

func line(w int) string {
	if w < 0 {
		w = 0
	}
	return strings.Repeat("─", w)
}
