package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/decoy/internal/report"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	tuiConflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// resolveModel is the Bubble Tea model for browsing resolution results.
type resolveModel struct {
	view     report.View
	styles   report.Styles
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newResolveModel(v report.View) resolveModel {
	h := help.New()
	styles := report.DefaultStyles()
	content := renderResolveContent(v, styles)
	return resolveModel{
		view:    v,
		styles:  styles,
		help:    h,
		keys:    defaultKeyMap,
		content: content,
	}
}

func renderResolveContent(v report.View, styles report.Styles) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Decoy Resolution: %s — %d identit(ies), %d conflict(s)",
			v.Package, len(v.Identities), len(v.Conflicts))))
	sb.WriteString("\n\n")

	for _, id := range v.Identities {
		header := fmt.Sprintf("=== %s (%s, %s) ===", id.Name, id.Kind, id.Class)
		sb.WriteString(tuiHeaderStyle.Render(header))
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(
			fmt.Sprintf("    contracts: %s", strings.Join(id.Contracts, ", "))))
		sb.WriteString("\n")

		// Build signatures table.
		rows := make([][]string, 0, len(id.Signatures))
		for _, sig := range id.Signatures {
			shape := sig.Shape
			if len(shape) > 54 {
				shape = shape[:51] + "..."
			}
			rows = append(rows, []string{sig.Key, shape})
		}

		classStyle := styles.ClassStyle(id.Class)
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tuiBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tuiHeaderStyle
				}
				if col == 0 {
					return classStyle
				}
				return lipgloss.NewStyle()
			}).
			Headers("KEY", "SIGNATURE").
			Rows(rows...)

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	if len(v.Conflicts) > 0 {
		sb.WriteString(tuiConflictStyle.Render("=== CONFLICTS ==="))
		sb.WriteString("\n")
		for _, c := range v.Conflicts {
			sb.WriteString(tuiConflictStyle.Render(fmt.Sprintf("    %s", c.Message)))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m resolveModel) Init() tea.Cmd {
	return nil
}

func (m resolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m resolveModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveResolve launches the Bubble Tea TUI for browsing
// resolution results.
func runInteractiveResolve(v report.View) error {
	model := newResolveModel(v)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
