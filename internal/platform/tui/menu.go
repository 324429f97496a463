package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/parkour/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff69b4"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffb6c1")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff69b4")).
			Padding(0, 1)
)

// levelMenu is the level-select table shown on the menu screen.
type levelMenu struct {
	table table.Model
	count int
}

func newLevelMenu(levels []config.LevelConfig, height int) levelMenu {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 24},
		{Title: "Goal", Width: 14},
		{Title: "Speed", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(min(len(levels)+1, max(height-10, 3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#e91e63")).
		Bold(false)
	t.SetStyles(s)

	m := levelMenu{table: t}
	m.setLevels(levels)
	return m
}

// setLevels replaces the rows, keeping the cursor in range.
func (m *levelMenu) setLevels(levels []config.LevelConfig) {
	rows := make([]table.Row, len(levels))
	for i, l := range levels {
		goal := fmt.Sprintf("%d %s", l.Target, l.Glyph)
		if l.DressUp {
			goal = fmt.Sprintf("%d items", l.Target)
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			l.Glyph + " " + l.Name,
			goal,
			strconv.FormatFloat(l.Speed, 'f', 1, 64),
		}
	}
	m.table.SetRows(rows)
	m.count = len(levels)
	if m.table.Cursor() >= m.count {
		m.table.SetCursor(max(m.count-1, 0))
	}
}

// Selected returns the 0-based index of the highlighted level.
func (m levelMenu) Selected() int {
	return m.table.Cursor()
}

// Select moves the highlight to the given level.
func (m *levelMenu) Select(idx int) {
	if idx >= 0 && idx < m.count {
		m.table.SetCursor(idx)
	}
}

func (m levelMenu) Update(msg tea.Msg) (levelMenu, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m levelMenu) View(width int, help string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, titleStyle.Render("♛  P A R K O U R   P R I N C E S S  ♛")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, subtitleStyle.Render("Jump, double jump and collect your way through every world")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, panelStyle.Render(m.table.View())))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, helpStyle.Render(help)))
	return b.String()
}

// victoryView renders the end-of-run screen.
func victoryView(width, levels int, help string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, titleStyle.Render("♛  You are a Parkour Princess!  ♛")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, subtitleStyle.Render(fmt.Sprintf("All %d worlds complete", levels))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, helpStyle.Render(help)))
	return b.String()
}
