package ui

// browse.go provides an optional table view over one decoded page.
// Selecting a row returns the record so the caller can dump it.

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thesavant42/rickdex/internal/models"
)

const browseHeight = 15

// PageTable holds the table columns and rows for a page, plus the records behind each row
type PageTable struct {
	Columns []table.Column
	Rows    []table.Row
	Records []any
}

// BuildPageTable flattens a decoded page into table rows
func BuildPageTable(page any) (PageTable, error) {
	var pt PageTable

	switch p := page.(type) {
	case *models.CharacterPage:
		pt.Columns = []table.Column{
			{Title: "ID", Width: 5},
			{Title: "Name", Width: 28},
			{Title: "Status", Width: 9},
			{Title: "Species", Width: 12},
			{Title: "Gender", Width: 9},
			{Title: "Location", Width: 30},
		}
		for _, c := range p.Results {
			pt.Rows = append(pt.Rows, table.Row{
				strconv.FormatInt(c.ID, 10), c.Name, string(c.Status), string(c.Species), string(c.Gender), c.Location.Name,
			})
			pt.Records = append(pt.Records, c)
		}

	case *models.EpisodePage:
		pt.Columns = []table.Column{
			{Title: "ID", Width: 5},
			{Title: "Code", Width: 8},
			{Title: "Name", Width: 36},
			{Title: "Air Date", Width: 20},
			{Title: "Characters", Width: 10},
		}
		for _, e := range p.Results {
			pt.Rows = append(pt.Rows, table.Row{
				strconv.FormatInt(e.ID, 10), e.Episode, e.Name, e.AirDate, strconv.Itoa(len(e.Characters)),
			})
			pt.Records = append(pt.Records, e)
		}

	case *models.LocationPage:
		pt.Columns = []table.Column{
			{Title: "ID", Width: 5},
			{Title: "Name", Width: 30},
			{Title: "Type", Width: 16},
			{Title: "Dimension", Width: 26},
			{Title: "Residents", Width: 9},
		}
		for _, l := range p.Results {
			pt.Rows = append(pt.Rows, table.Row{
				strconv.FormatInt(l.ID, 10), l.Name, l.Type, l.Dimension, strconv.Itoa(len(l.Residents)),
			})
			pt.Records = append(pt.Records, l)
		}

	default:
		return pt, fmt.Errorf("cannot browse %T", page)
	}

	return pt, nil
}

// browseModel is a single-table selector over one page of records
type browseModel struct {
	table    table.Model
	title    string
	selected int // -1 = cancelled
	quitting bool
}

func newBrowseModel(title string, pt PageTable) browseModel {
	t := table.New(
		table.WithColumns(pt.Columns),
		table.WithRows(pt.Rows),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = SelectedStyle
	t.SetStyles(s)

	// SetHeight counts the header lines, so add them back to show every row
	visible := min(browseHeight, max(len(pt.Rows), 1))
	t.SetHeight(visible + lipgloss.Height(s.Header.Render(pt.Columns[0].Title)))

	return browseModel{
		table:    t,
		title:    title,
		selected: -1,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.selected = -1
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if len(m.table.Rows()) > 0 {
				m.selected = m.table.Cursor()
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(AccentStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(HintStyle.Render("↑/↓: navigate | Enter: show record | Esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// Browse shows the page in a table and returns the chosen record.
// Returns ErrCancelled if the user quits without choosing.
func Browse(title string, page any) (any, error) {
	pt, err := BuildPageTable(page)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(newBrowseModel(title, pt), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("browse error: %w", err)
	}

	idx := finalModel.(browseModel).selected
	if idx < 0 || idx >= len(pt.Records) {
		return nil, ErrCancelled
	}
	return pt.Records[idx], nil
}
