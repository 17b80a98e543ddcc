package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type errMsg struct {
	err error
}

type Model struct {
	width      int
	height     int
	branchView *BranchView
	help       help.Model
	keys       keyMap
	err        error
	notice     string
}

func NewModel(service BranchService, force bool) Model {
	return Model{
		branchView: NewBranchView(service, force),
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.branchView.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if msg.String() == "?" {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		// Any key clears the last message.
		m.err = nil
		m.notice = ""

	case errMsg:
		m.err = msg.err
		return m, nil

	case branchDeletedMsg:
		m.notice = fmt.Sprintf("Deleted %s", msg.name)

	case branchesPrunedMsg:
		m.notice = fmt.Sprintf("Pruned %d gone branches", len(msg.deleted))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	m.branchView, cmd = m.branchView.Update(msg)

	return m, cmd
}

func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.branchView.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("170")).
		MarginRight(2)

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	title := titleStyle.Render("gonebranch")
	divider := dividerStyle.Render(strings.Repeat("─", m.width))

	return lipgloss.JoinVertical(lipgloss.Left, title, divider)
}

func (m Model) renderFooter() string {
	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("red"))

	noticeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("green"))

	lines := []string{dividerStyle.Render(strings.Repeat("─", m.width))}
	if m.err != nil {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice))
	}
	lines = append(lines, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
