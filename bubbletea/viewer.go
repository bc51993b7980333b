// Package bubbletea provides a terminal pager for highlighted scripts
// using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scriptview"
)

// Model is the Bubble Tea model for paging through a script.
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewModel creates a pager for the given title line and rendered
// script content.
func NewModel(title, content string) Model {
	return Model{title: title, content: content}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := lipHeight(m.headerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if header := m.headerView(); header != "" {
		return header + "\n" + m.viewport.View()
	}
	return m.viewport.View()
}

func (m Model) headerView() string {
	if m.title == "" {
		return ""
	}
	return m.title
}

// lipHeight counts the rendered lines of a block.
func lipHeight(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// Viewer implements scriptview.Viewer using a Bubble Tea TUI.
type Viewer struct{}

// NewViewer creates a new Viewer.
func NewViewer() *Viewer {
	return &Viewer{}
}

// Compile-time interface verification.
var _ scriptview.Viewer = (*Viewer)(nil)

// View displays the content and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, title, content string) error {
	m := NewModel(title, content)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
