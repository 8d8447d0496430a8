// Package tui shows query results in a scrollable terminal viewport.
package tui

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	title   string
	content string
	status  string

	viewport viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
}

// Show runs the results viewer until the user exits.
func Show(title, content string) error {
	p := tea.NewProgram(newModel(title, content), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal interface: %w", err)
	}
	return nil
}

func newModel(title, content string) *Model {
	return &Model{title: title, content: content}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			cmds = append(cmds, tea.Quit)
		case "c":
			m.copyToClipboard()
		}
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	views := []string{m.titleBar(m.title), m.viewport.View(), m.statusLine(), m.appFooter()}
	return lipgloss.JoinVertical(lipgloss.Top, views...)
}

func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h
	chromeHeight := lipgloss.Height(m.titleBar(m.title)) + lipgloss.Height(m.statusLine()) + lipgloss.Height(m.appFooter())
	viewportHeight := h - chromeHeight

	if !m.ready {
		m.viewport = viewport.New(w, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = viewportHeight
	}
	m.viewport.SetContent(m.content)
}

func (m *Model) statusLine() string {
	return m.status
}

func (m *Model) copyToClipboard() {
	re := regexp.MustCompile(`\x1B(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)
	plaintext := re.ReplaceAllString(m.content, "")
	if err := clipboard.WriteAll(plaintext); err != nil {
		slog.Error("copying results to clipboard", "error", err)
		m.status = textRed("couldn't copy results to clipboard")
		return
	}
	slog.Debug("copied results to clipboard")
	m.status = textGreen("copied results to clipboard")
}
