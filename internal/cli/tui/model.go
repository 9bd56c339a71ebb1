// Package tui renders a study session in the terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/study"
)

const (
	defaultWidth = 60
	maxCardWidth = 72
)

// Model is the bubbletea model for one study session.
type Model struct {
	title    string
	session  study.Session[domain.Card]
	rng      study.Rand
	keys     keyMap
	help     help.Model
	progress progress.Model
	width    int
}

// New builds a model over cards. A nil rng uses the global source.
func New(title string, cards []domain.Card, rng study.Rand) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = defaultWidth

	return Model{
		title:    title,
		session:  study.New(cards, rng),
		rng:      rng,
		keys:     defaultKeys,
		help:     help.New(),
		progress: bar,
		width:    defaultWidth,
	}
}

// Session exposes the current session state.
func (m Model) Session() study.Session[domain.Card] { return m.session }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-4, maxCardWidth)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Reshuffle):
			m.session = m.session.Reshuffle(m.rng)
			return m, nil
		}

		if next, handled := m.session.HandleKey(study.ParseKey(msg.String())); handled {
			m.session = next
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	card, ok := m.session.Current()
	if !ok {
		b.WriteString(emptyStyle.Render(study.EmptyMessage))
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Quit}))
		return b.String()
	}

	face, text := "Front", card.Front
	if m.session.Flipped() {
		face, text = "Back", card.Back
	}

	b.WriteString(counterStyle.Render(m.session.Progress()))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(float64(m.session.Index()+1) / float64(m.session.Len())))
	b.WriteString("\n\n")

	width := min(max(m.width-4, 20), maxCardWidth)
	body := lipgloss.JoinVertical(lipgloss.Center, faceStyle.Render(face), "", text)
	b.WriteString(cardStyle.Width(width).Render(body))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
