package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Johannes-Berggren/gonebranch/internal/git"
	"github.com/Johannes-Berggren/gonebranch/internal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BranchService is the git surface the branch view needs.
type BranchService interface {
	ListBranches(ctx context.Context) ([]models.BranchLine, error)
	DeleteBranch(ctx context.Context, name string, force bool) error
	PruneGone(ctx context.Context, opts git.PruneOptions) ([]models.BranchLine, error)
}

type BranchView struct {
	service  BranchService
	force    bool
	keys     keyMap
	branches []models.BranchLine
	loaded   bool
	cursor   int
	width    int
	height   int
}

// NewBranchView returns a view over service. force is used when pruning.
func NewBranchView(service BranchService, force bool) *BranchView {
	return &BranchView{
		service: service,
		force:   force,
		keys:    defaultKeyMap(),
	}
}

type branchesLoadedMsg struct {
	branches []models.BranchLine
}

type branchDeletedMsg struct {
	name string
}

type branchesPrunedMsg struct {
	deleted []models.BranchLine
}

func (b *BranchView) Init() tea.Cmd {
	return b.loadBranches()
}

func (b *BranchView) loadBranches() tea.Cmd {
	return func() tea.Msg {
		branches, err := b.service.ListBranches(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return branchesLoadedMsg{branches}
	}
}

func (b *BranchView) deleteBranch(name string, force bool) tea.Cmd {
	return func() tea.Msg {
		if err := b.service.DeleteBranch(context.Background(), name, force); err != nil {
			return errMsg{err}
		}
		return branchDeletedMsg{name}
	}
}

func (b *BranchView) pruneGone() tea.Cmd {
	return func() tea.Msg {
		deleted, err := b.service.PruneGone(context.Background(), git.PruneOptions{Force: b.force})
		if err != nil {
			return errMsg{err}
		}
		return branchesPrunedMsg{deleted}
	}
}

func (b *BranchView) Update(msg tea.Msg) (*BranchView, tea.Cmd) {
	switch msg := msg.(type) {
	case branchesLoadedMsg:
		b.branches = msg.branches
		b.loaded = true
		if b.cursor >= len(b.branches) {
			b.cursor = max(len(b.branches)-1, 0)
		}

	case branchDeletedMsg, branchesPrunedMsg:
		return b, b.loadBranches()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Down):
			if b.cursor < len(b.branches)-1 {
				b.cursor++
			}

		case key.Matches(msg, b.keys.Up):
			if b.cursor > 0 {
				b.cursor--
			}

		case key.Matches(msg, b.keys.Top):
			b.cursor = 0

		case key.Matches(msg, b.keys.Bottom):
			b.cursor = max(len(b.branches)-1, 0)

		case key.Matches(msg, b.keys.Delete):
			if sel := b.SelectedBranch(); sel != nil {
				return b, b.deleteBranch(sel.Name, false)
			}

		case key.Matches(msg, b.keys.ForceDelete):
			if sel := b.SelectedBranch(); sel != nil {
				return b, b.deleteBranch(sel.Name, true)
			}

		case key.Matches(msg, b.keys.Prune):
			return b, b.pruneGone()

		case key.Matches(msg, b.keys.Refresh):
			return b, b.loadBranches()
		}

	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	}

	return b, nil
}

// GoneCount returns how many loaded branches have a deleted upstream.
func (b *BranchView) GoneCount() int {
	return len(git.GoneBranches(b.branches))
}

func (b *BranchView) View() string {
	if !b.loaded {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("Loading branches...")
	}
	if len(b.branches) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("No local branches")
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("cyan")).
		Bold(true).
		MarginBottom(1)

	branchStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("white"))

	goneStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("red")).
		Bold(true)

	hashStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("yellow"))

	commentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	selectedStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("238"))

	nameWidth := 0
	for _, branch := range b.branches {
		nameWidth = max(nameWidth, lipgloss.Width(branch.Name))
	}

	var out strings.Builder

	header := fmt.Sprintf("Branches (%d local, %d gone)", len(b.branches), b.GoneCount())
	out.WriteString(headerStyle.Render(header) + "\n")

	for i, branch := range b.branches {
		name := branch.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(branch.Name))

		var line string
		if branch.IsGone() {
			line = goneStyle.Render(name)
		} else {
			line = branchStyle.Render(name)
		}

		line += " " + hashStyle.Render(string(branch.Hash))

		if branch.IsGone() {
			line += " " + goneStyle.Render("[gone]")
		}

		if branch.Comment != "" {
			line += " " + commentStyle.Render(branch.Comment)
		}

		if i == b.cursor {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}

		out.WriteString(line + "\n")
	}

	return out.String()
}

func (b *BranchView) SelectedBranch() *models.BranchLine {
	if b.cursor >= 0 && b.cursor < len(b.branches) {
		return &b.branches[b.cursor]
	}
	return nil
}
