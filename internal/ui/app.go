package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkerr/twig/internal/config"
)

type errMsg struct {
	err error
}

type pane int

const (
	branchesPane pane = iota
	stashesPane
)

// Model is the root bubbletea model composing the panes and the footer.
type Model struct {
	branches *BranchListView
	stashes  *StashListView
	footer   *FooterView
	active   pane
	width    int
	height   int
}

func NewModel(cfg config.Config, backend Backend) Model {
	return Model{
		branches: NewBranchListView(backend, cfg.ShowUpstreams),
		stashes:  NewStashListView(backend),
		footer:   NewFooterView(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.branches.Init(),
		m.stashes.Init(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keys apply unless the name input is capturing text.
		if !m.branches.InputActive() {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "tab":
				if m.active == branchesPane {
					m.active = stashesPane
				} else {
					m.active = branchesPane
				}
				return m, nil
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Key events go to the active pane only.
		if m.active == branchesPane {
			m.branches, cmd = m.branches.Update(msg)
		} else {
			m.stashes, cmd = m.stashes.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.footer.SetWidth(msg.Width)
		m.branches, _ = m.branches.Update(msg)
		m.stashes, _ = m.stashes.Update(msg)
		return m, nil
	}

	// Everything else is an async result; both panes see it and pick out
	// their own message types.
	var cmds []tea.Cmd
	m.branches, cmd = m.branches.Update(msg)
	cmds = append(cmds, cmd)
	m.stashes, cmd = m.stashes.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	header := m.renderHeader()

	var content string
	if m.active == branchesPane {
		content = m.branches.View()
	} else {
		content = m.stashes.View()
	}

	footer := m.footer.Render(m.commands())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		footer,
	)
}

func (m Model) commands() []string {
	var commands []string
	if m.active == branchesPane {
		commands = m.branches.Commands()
	} else {
		commands = m.stashes.Commands()
	}
	if !m.branches.InputActive() {
		commands = append(commands, "tab: switch pane", "q: quit")
	}
	return commands
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("170")).
		MarginRight(2)

	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("green")).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	branchesTab := inactiveStyle.Render("Branches")
	stashesTab := inactiveStyle.Render("Stashes")
	if m.active == branchesPane {
		branchesTab = activeStyle.Render("Branches")
	} else {
		stashesTab = activeStyle.Render("Stashes")
	}

	title := titleStyle.Render("🌿 twig")
	headerLine := lipgloss.JoinHorizontal(lipgloss.Top, title, branchesTab, "  ", stashesTab)
	divider := dividerStyle.Render(strings.Repeat("─", max(m.width, 1)))

	return lipgloss.JoinVertical(lipgloss.Left, headerLine, divider)
}
