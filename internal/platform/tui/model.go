// Package tui provides the Bubble Tea host for the 2048 game.
// It maps keys to directions, drives the session one move per key press and
// renders the published outcome.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/session"
)

// Model is the Bubble Tea model for a 2048 game.
type Model struct {
	session  *session.Session
	outcome  session.Outcome
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a model driving sess.
func NewModel(sess *session.Session, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		session: sess,
		outcome: sess.Outcome(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Each direction key is one full turn.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "turn", m.outcome.Turn, "max", m.outcome.Max, "status", m.outcome.Status)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NewGame):
		m.session.Reset()
		m.outcome = m.session.Outcome()
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.outcome = m.session.ApplyMove(dir)
	}
	return m, nil
}

// Outcome returns the last outcome published to the view.
func (m Model) Outcome() session.Outcome {
	return m.outcome
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	settings := m.session.Settings()
	width := cellWidth(settings.WinningValue, m.outcome.Max)

	parts := []string{
		RenderHUD(m.outcome, settings.WinningValue),
		RenderBoard(m.outcome.Grid, width, m.outcome.Spawned),
	}
	if banner := RenderBanner(m.outcome, settings.WinningValue); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, m.help.View(m.keys))

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Run starts the Bubble Tea program for sess.
func Run(sess *session.Session, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(sess, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
