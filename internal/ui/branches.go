package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkerr/twig/internal/models"
)

// Backend is the set of repository operations the views need. Each call is
// one independent unit of work; failures carry a human-readable reason and
// are never fatal to the session.
type Backend interface {
	LocalBranches() ([]models.Branch, error)
	Checkout(name string) error
	ValidateName(name string) (bool, error)
	Create(name string) error
	Delete(name string) error
	Stashes() ([]models.Stash, error)
}

type branchMode int

const (
	modeSelection branchMode = iota
	modeInput
)

// branchItem wraps a branch with its UI-only flags.
type branchItem struct {
	branch            models.Branch
	stagedForDeletion bool
	draft             bool // in-progress creation, not yet in the repository
	validName         bool // meaningful only while draft
}

type branchesLoadedMsg struct {
	branches []models.Branch
}

type checkoutDoneMsg struct {
	name string
}

type branchDeletedMsg struct {
	name string
}

type batchDeleteDoneMsg struct {
	deleted  []string
	failures []string
}

type branchCreatedMsg struct {
	name        string
	checkoutErr error
}

// BranchListView owns the branch list, the selection cursor, the mode and
// the error slot. Nothing else mutates them.
type BranchListView struct {
	backend       Backend
	items         []branchItem
	cursor        int
	mode          branchMode
	input         *BranchInputView
	err           string
	showUpstreams bool
	width         int
	height        int
}

func NewBranchListView(backend Backend, showUpstreams bool) *BranchListView {
	return &BranchListView{
		backend:       backend,
		showUpstreams: showUpstreams,
	}
}

func (b *BranchListView) Init() tea.Cmd {
	return b.loadBranches()
}

func (b *BranchListView) loadBranches() tea.Cmd {
	return func() tea.Msg {
		branches, err := b.backend.LocalBranches()
		if err != nil {
			return errMsg{err}
		}
		return branchesLoadedMsg{branches}
	}
}

// InputActive reports whether keystrokes currently feed the name input.
func (b *BranchListView) InputActive() bool {
	return b.mode == modeInput
}

func (b *BranchListView) Update(msg tea.Msg) (*BranchListView, tea.Cmd) {
	switch msg := msg.(type) {
	case branchesLoadedMsg:
		items := make([]branchItem, 0, len(msg.branches))
		for _, branch := range msg.branches {
			items = append(items, branchItem{branch: branch})
		}
		b.items = items
		b.cursor = 0
		return b, nil

	case checkoutDoneMsg:
		b.setHead(msg.name)
		return b, nil

	case branchDeletedMsg:
		for i, item := range b.items {
			if item.branch.Name == msg.name {
				b.items = append(b.items[:i], b.items[i+1:]...)
				break
			}
		}
		b.clampCursor()
		return b, nil

	case batchDeleteDoneMsg:
		deleted := make(map[string]bool, len(msg.deleted))
		for _, name := range msg.deleted {
			deleted[name] = true
		}
		// Remove highest index first so pending removals stay valid.
		for i := len(b.items) - 1; i >= 0; i-- {
			if deleted[b.items[i].branch.Name] {
				b.items = append(b.items[:i], b.items[i+1:]...)
			}
		}
		b.clampCursor()
		if len(msg.failures) > 0 {
			b.err = strings.Join(msg.failures, "; ")
		}
		return b, nil

	case branchCreatedMsg:
		item := branchItem{branch: models.Branch{Name: msg.name}}
		if msg.checkoutErr == nil {
			for i := range b.items {
				b.items[i].branch.Head = false
			}
			item.branch.Head = true
		} else {
			// The branch exists either way; only the switch failed.
			b.err = msg.checkoutErr.Error()
		}
		b.items = append(b.items, item)
		sort.SliceStable(b.items, func(i, j int) bool {
			return b.items[i].branch.Name < b.items[j].branch.Name
		})
		for i, it := range b.items {
			if it.branch.Name == msg.name {
				b.cursor = i
				break
			}
		}
		return b, nil

	case branchInputDoneMsg:
		b.discardDraft()
		b.mode = modeSelection
		if msg.name == "" || b.nameTaken(msg.name) {
			// The input gate should have blocked this; no backend call.
			return b, nil
		}
		return b, b.createBranch(msg.name)

	case branchInputCancelMsg:
		b.discardDraft()
		b.mode = modeSelection
		return b, nil

	case errMsg:
		b.err = msg.err.Error()
		return b, nil

	case tea.KeyMsg:
		// Any action clears the previous error.
		b.err = ""

		if b.mode == modeInput {
			var cmd tea.Cmd
			b.input, cmd = b.input.Update(msg)
			b.syncDraft()
			return b, cmd
		}
		return b.handleSelectionKey(msg)

	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	}

	// Cursor blink and friends still reach the focused input.
	if b.mode == modeInput && b.input != nil {
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return b, cmd
	}

	return b, nil
}

func (b *BranchListView) handleSelectionKey(msg tea.KeyMsg) (*BranchListView, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		b.selectNext()

	case "k", "up":
		b.selectPrevious()

	case "c":
		return b, b.checkoutSelected()

	case "C":
		b.startCreate()
		return b, b.input.Init()

	case "d":
		b.stageSelected(!b.selectedStaged())

	case "D":
		b.stageSelected(false)

	case "ctrl+d":
		return b, b.deleteStaged()

	case "delete", "backspace":
		return b, b.deleteSelected()

	case "r":
		return b, b.loadBranches()
	}

	return b, nil
}

// clampCursor pulls an out-of-range cursor back onto the last valid item.
func (b *BranchListView) clampCursor() {
	if len(b.items) == 0 {
		b.cursor = 0
		return
	}
	if b.cursor >= len(b.items) {
		b.cursor = len(b.items) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

func (b *BranchListView) selectNext() {
	if len(b.items) == 0 {
		return
	}
	b.clampCursor()
	if b.cursor == len(b.items)-1 {
		b.cursor = 0
		return
	}
	b.cursor++
}

func (b *BranchListView) selectPrevious() {
	if len(b.items) == 0 {
		return
	}
	b.clampCursor()
	if b.cursor == 0 {
		b.cursor = len(b.items) - 1
		return
	}
	b.cursor--
}

func (b *BranchListView) selected() *branchItem {
	if b.cursor >= 0 && b.cursor < len(b.items) {
		return &b.items[b.cursor]
	}
	return nil
}

func (b *BranchListView) selectedStaged() bool {
	item := b.selected()
	return item != nil && item.stagedForDeletion
}

// stageSelected toggles the deletion stage on the selected branch. The
// checked-out branch is never stageable; this is what keeps batch deletion
// away from it.
func (b *BranchListView) stageSelected(staged bool) {
	item := b.selected()
	if item == nil || item.draft {
		return
	}
	if item.branch.Head {
		return
	}
	item.stagedForDeletion = staged
}

// setHead marks name as the checked-out branch and clears every other head
// flag; exactly one branch is head at a time.
func (b *BranchListView) setHead(name string) {
	for i := range b.items {
		b.items[i].branch.Head = b.items[i].branch.Name == name
		if b.items[i].branch.Head {
			b.items[i].stagedForDeletion = false
		}
	}
}

func (b *BranchListView) checkoutSelected() tea.Cmd {
	item := b.selected()
	if item == nil || item.draft {
		return nil
	}
	name := item.branch.Name
	return func() tea.Msg {
		if err := b.backend.Checkout(name); err != nil {
			return errMsg{err}
		}
		return checkoutDoneMsg{name}
	}
}

func (b *BranchListView) deleteSelected() tea.Cmd {
	item := b.selected()
	if item == nil || item.draft {
		return nil
	}
	name := item.branch.Name
	return func() tea.Msg {
		// On failure the list stays untouched, so the same delete can
		// simply be retried.
		if err := b.backend.Delete(name); err != nil {
			return errMsg{err}
		}
		return branchDeletedMsg{name}
	}
}

// deleteStaged deletes every staged branch, one backend call at a time. One
// branch failing does not stop the rest; survivors keep their stage flag.
func (b *BranchListView) deleteStaged() tea.Cmd {
	var names []string
	for _, item := range b.items {
		if item.stagedForDeletion {
			names = append(names, item.branch.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return func() tea.Msg {
		var deleted, failures []string
		for _, name := range names {
			if err := b.backend.Delete(name); err != nil {
				failures = append(failures, err.Error())
				continue
			}
			deleted = append(deleted, name)
		}
		return batchDeleteDoneMsg{deleted: deleted, failures: failures}
	}
}

func (b *BranchListView) startCreate() {
	b.input = NewBranchInputView(b.nameTaken, b.backend.ValidateName)
	b.items = append(b.items, branchItem{draft: true})
	b.cursor = len(b.items) - 1
	b.mode = modeInput
}

// nameTaken reports whether name matches an existing branch exactly.
func (b *BranchListView) nameTaken(name string) bool {
	for _, item := range b.items {
		if !item.draft && item.branch.Name == name {
			return true
		}
	}
	return false
}

// syncDraft mirrors the input value onto the draft item.
func (b *BranchListView) syncDraft() {
	for i := range b.items {
		if b.items[i].draft {
			b.items[i].branch.Name = b.input.Value()
			b.items[i].validName = b.input.Valid()
		}
	}
}

func (b *BranchListView) discardDraft() {
	for i := len(b.items) - 1; i >= 0; i-- {
		if b.items[i].draft {
			b.items = append(b.items[:i], b.items[i+1:]...)
		}
	}
	b.clampCursor()
}

func (b *BranchListView) createBranch(name string) tea.Cmd {
	return func() tea.Msg {
		if err := b.backend.Create(name); err != nil {
			return errMsg{err}
		}
		// Creation implies switching to the new branch, but the switch is
		// best effort: the branch stays in the list if it fails.
		return branchCreatedMsg{name: name, checkoutErr: b.backend.Checkout(name)}
	}
}

// Commands lists the key bindings available right now, for the footer.
func (b *BranchListView) Commands() []string {
	if b.mode == modeInput {
		return []string{"enter: create", "esc: cancel"}
	}

	commands := []string{"↑/↓: navigate", "c: checkout", "C: new branch"}
	if b.selectedStaged() {
		commands = append(commands, "d: unstage")
	} else {
		commands = append(commands, "d: stage for deletion")
	}
	commands = append(commands,
		"ctrl+d: delete staged",
		"del: delete",
		"r: refresh",
	)
	return commands
}

func (b *BranchListView) View() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("cyan")).
		Bold(true).
		MarginBottom(1)

	branchStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("white"))

	headStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("green")).
		Bold(true)

	stagedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("red"))

	upstreamStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	goneStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("yellow"))

	errStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("red")).
		Bold(true)

	if len(b.items) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("Loading branches...")
	}

	var out strings.Builder

	header := fmt.Sprintf("Local Branches (%d)", len(b.items))
	out.WriteString(headerStyle.Render(header) + "\n")

	for i, item := range b.items {
		var line string

		switch {
		case item.draft:
			line = "  " + b.input.View()

		case item.branch.Head:
			line = "* " + headStyle.Render(item.branch.Name)

		case item.stagedForDeletion:
			line = "  " + stagedStyle.Render(item.branch.Name+" (staged)")

		default:
			line = "  " + branchStyle.Render(item.branch.Name)
		}

		if b.showUpstreams && !item.draft && item.branch.Upstream != "" {
			line += " " + upstreamStyle.Render(fmt.Sprintf("[%s]", item.branch.Upstream))
			if item.branch.Gone {
				line += " " + goneStyle.Render("(gone)")
			}
		}

		if i == b.cursor {
			line = "▸ " + line
		} else {
			line = "  " + line
		}

		out.WriteString(line + "\n")
	}

	if b.err != "" {
		out.WriteString("\n" + errStyle.Render("Error: "+b.err) + "\n")
	}

	return out.String()
}
