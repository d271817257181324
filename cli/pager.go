// cli/pager.go
// Package: cli
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/mcpreport/report"
)

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// pagerModel is the Bubble Tea model that scrolls a generated summary.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// Init initializes the Bubble Tea model. The pager has no startup
// commands.
func (m *pagerModel) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages, delegating scrolling to the
// viewport.
func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the header, the scrollable summary, and a help line
// with the current scroll position.
func (m *pagerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := headerStyle.Render(fmt.Sprintf("Run: %s", m.title))
	help := helpStyle.Render(fmt.Sprintf(" %3.0f%%  (↑/↓ to scroll, q to quit)", m.viewport.ScrollPercent()*100))
	return header + "\n\n" + m.viewport.View() + "\n" + help
}

// StartPager loads the generated summary for a run directory and
// displays it in a scrollable viewport. It errors if the summary has
// not been generated yet.
func StartPager(runDir string) error {
	path := filepath.Join(runDir, report.SummaryFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s (run 'summarize' first): %w", path, err)
	}

	m := &pagerModel{title: filepath.Base(runDir), content: string(b)}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("could not run pager: %w", err)
	}
	return nil
}
