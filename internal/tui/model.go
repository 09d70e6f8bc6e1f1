// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tokitype/internal/session"
)

// Model implements the Bubble Tea typing UI around a session.
type Model struct {
	session *session.Session
	screen  session.Screen
	now     func() time.Time

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel constructs a typing TUI model for s.
func NewModel(s *session.Session) *Model {
	h := help.New()
	h.Styles.ShortKey = footerStyle
	h.Styles.ShortDesc = footerStyle
	h.Styles.ShortSeparator = footerStyle
	m := &Model{
		session: s,
		screen:  session.ScreenGame,
		now:     time.Now,
		keys:    defaultKeys,
		help:    h,
	}
	if s.Complete() {
		m.screen = session.ScreenResults
	}
	return m
}

// Session returns the session driven by the model.
func (m *Model) Session() *session.Session {
	return m.session
}

// Screen returns the screen currently shown.
func (m *Model) Screen() session.Screen {
	return m.screen
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.session.Done() {
		return tea.Quit
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.session.Done() {
			return m, nil
		}
		now := m.now()
		for _, k := range classifyKey(msg, m.keys) {
			switch m.session.Handle(k, now) {
			case session.OutcomeAborted:
				log.Printf("session aborted at word %d/%d", m.session.Index(), m.session.Len())
				return m, tea.Quit
			case session.OutcomeComplete:
				log.Printf("session complete in %s", m.session.Total())
				m.screen = session.ScreenResults
				return m, tea.Quit
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.screen != session.ScreenGame || m.session.Done() {
		return ""
	}
	frame := m.session.Frame()
	styled := buildStyledRunes(frame.Line, cursorIndex(m.session))
	prompt := promptStyle.Render(frame.Prompt)
	if m.width == 0 || m.height == 0 {
		return prompt + "\n\n" + renderStyledRunes(styled)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	line := wrapStyledRunes(styled, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, promptStyle.Width(contentWidth).Render(frame.Prompt), "", line),
	)
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	if m.session.Len() == 0 {
		return ""
	}
	word := m.session.Index() + 1
	if word > m.session.Len() {
		word = m.session.Len()
	}
	progress := footerStyle.Render(fmt.Sprintf("Word %d/%d", word, m.session.Len()))
	return progress + footerStyle.Render("  ·  ") + m.help.View(m.keys)
}
