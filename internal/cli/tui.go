package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	pio "github.com/facetpager/facetpager/pkg/io"
)

// List styles
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// PageListModel - Interactive page assignment browser
// =============================================================================

// PageListModel is the bubbletea model for browsing the page assignment.
type PageListModel struct {
	Manifest pio.Manifest
	Cursor   int
	Height   int
	Offset   int
}

// NewPageListModel creates a new page list model.
func NewPageListModel(m pio.Manifest) PageListModel {
	return PageListModel{
		Manifest: m,
		Cursor:   0,
		Height:   15,
		Offset:   0,
	}
}

func (m PageListModel) Init() tea.Cmd {
	return nil
}

func (m PageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Manifest.Pages)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PageListModel) View() string {
	var b strings.Builder

	title := m.Manifest.Title
	if title == "" {
		title = "Page Assignment"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%dx%d grid · %s scales · ↑/↓ navigate  q quit",
		m.Manifest.NRow, m.Manifest.NCol, m.Manifest.Scales)))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Manifest.Pages) {
		end = len(m.Manifest.Pages)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		pg := m.Manifest.Pages[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		levels := strings.Join(pg.Levels, ", ")
		if levels == "" {
			levels = "—"
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d of %d", pg.Index, pg.Total),
			levels,
			fmt.Sprintf("%d", pg.Rows),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Page", "Levels", "Rows").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx >= len(m.Manifest.Pages) {
				return lipgloss.NewStyle()
			}
			if actualIdx == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Manifest.Pages))))

	return b.String()
}
