package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table is a bordered table rendered with lipgloss.
type Table struct {
	headers []string
	rows    [][]string
	styles  *Styles
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		styles:  GetStyles(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// WithStyles sets the styles used for headers and borders.
func (t *Table) WithStyles(styles *Styles) *Table {
	t.styles = styles
	return t
}

// String renders the table as a string.
func (t *Table) String() string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.styles.Border).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.styles.Header
			}
			return lipgloss.NewStyle()
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}
