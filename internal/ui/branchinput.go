package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type branchInputDoneMsg struct {
	name string
}

type branchInputCancelMsg struct{}

// BranchInputView captures a new branch name. Validity is recomputed on
// every keystroke: the draft must be non-empty, must not collide with an
// existing branch, and must pass git's branch-name grammar. Enter is a no-op
// until the last computed validity is true.
type BranchInputView struct {
	textInput textinput.Model
	taken     func(string) bool
	grammar   func(string) (bool, error)
	valid     bool
	checked   bool // validity is unknown until the first keystroke
	lastValue string
}

func NewBranchInputView(taken func(string) bool, grammar func(string) (bool, error)) *BranchInputView {
	ti := textinput.New()
	ti.Placeholder = "feature/my-branch"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	return &BranchInputView{
		textInput: ti,
		taken:     taken,
		grammar:   grammar,
	}
}

func (b *BranchInputView) Init() tea.Cmd {
	return textinput.Blink
}

func (b *BranchInputView) Update(msg tea.Msg) (*BranchInputView, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			if b.CanSubmit() {
				name := b.Value()
				return b, func() tea.Msg { return branchInputDoneMsg{name: name} }
			}
			return b, nil
		case "esc":
			return b, func() tea.Msg { return branchInputCancelMsg{} }
		}
	}

	b.textInput, cmd = b.textInput.Update(msg)
	if b.textInput.Value() != b.lastValue {
		b.revalidate()
	}
	return b, cmd
}

func (b *BranchInputView) revalidate() {
	name := b.textInput.Value()
	b.lastValue = name
	b.checked = true

	// Uniqueness is a local lookup; only the grammar check goes to git.
	if name == "" || b.taken(name) {
		b.valid = false
		return
	}
	ok, err := b.grammar(name)
	b.valid = err == nil && ok
}

// Value returns the current draft name.
func (b *BranchInputView) Value() string {
	return b.textInput.Value()
}

// Valid reports the last computed validity.
func (b *BranchInputView) Valid() bool {
	return b.checked && b.valid
}

// CanSubmit reports whether enter would issue a create request.
func (b *BranchInputView) CanSubmit() bool {
	return b.Valid()
}

func (b *BranchInputView) View() string {
	promptStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	invalidStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("red"))

	view := promptStyle.Render("New branch: ") + b.textInput.View()
	if b.checked && !b.valid && b.Value() != "" {
		view += " " + invalidStyle.Render("✗")
	}
	return view
}
