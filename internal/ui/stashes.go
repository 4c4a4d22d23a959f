package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkerr/twig/internal/models"
)

type stashesLoadedMsg struct {
	stashes []models.Stash
	err     error
}

// StashListView is a read-only pane over the stash reflog.
type StashListView struct {
	backend Backend
	stashes []models.Stash
	cursor  int
	err     string
	width   int
	height  int
}

func NewStashListView(backend Backend) *StashListView {
	return &StashListView{backend: backend}
}

func (s *StashListView) Init() tea.Cmd {
	return s.loadStashes()
}

func (s *StashListView) loadStashes() tea.Cmd {
	return func() tea.Msg {
		stashes, err := s.backend.Stashes()
		return stashesLoadedMsg{stashes: stashes, err: err}
	}
}

func (s *StashListView) Update(msg tea.Msg) (*StashListView, tea.Cmd) {
	switch msg := msg.(type) {
	case stashesLoadedMsg:
		s.err = ""
		if msg.err != nil {
			s.err = msg.err.Error()
			return s, nil
		}
		s.stashes = msg.stashes
		if s.cursor >= len(s.stashes) {
			s.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if s.cursor < len(s.stashes)-1 {
				s.cursor++
			}

		case "k", "up":
			if s.cursor > 0 {
				s.cursor--
			}

		case "r":
			return s, s.loadStashes()
		}

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// Commands lists the key bindings available in this pane, for the footer.
func (s *StashListView) Commands() []string {
	return []string{"↑/↓: navigate", "r: refresh"}
}

func (s *StashListView) View() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("cyan")).
		Bold(true).
		MarginBottom(1)

	idStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("yellow"))

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	errStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("red")).
		Bold(true)

	var out strings.Builder

	header := fmt.Sprintf("Stashes (%d)", len(s.stashes))
	out.WriteString(headerStyle.Render(header) + "\n")

	if len(s.stashes) == 0 && s.err == "" {
		out.WriteString(messageStyle.Render("No stashes") + "\n")
	}

	for i, stash := range s.stashes {
		line := idStyle.Render(stash.ID) + " " + messageStyle.Render(stash.Message)
		if i == s.cursor {
			line = "▸ " + line
		} else {
			line = "  " + line
		}
		out.WriteString(line + "\n")
	}

	if s.err != "" {
		out.WriteString("\n" + errStyle.Render("Error: "+s.err) + "\n")
	}

	return out.String()
}
