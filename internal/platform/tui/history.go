package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// historyRows is how many finished runs the menu shows.
const historyRows = 5

// RunRecord describes one finished run of a level.
type RunRecord struct {
	Level   int
	Outcome string
	Score   int
	Total   int
	Elapsed time.Duration
}

func (r RunRecord) row(n int) table.Row {
	return table.Row{
		fmt.Sprintf("%d", n),
		fmt.Sprintf("%d", r.Level),
		r.Outcome,
		fmt.Sprintf("%d/%d", r.Score, r.Total),
		fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
	}
}

// newHistoryTable builds a read-only table of the most recent runs,
// newest first.
func newHistoryTable(records []RunRecord) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 5},
		{Title: "Outcome", Width: 9},
		{Title: "Bonuses", Width: 7},
		{Title: "Time", Width: 6},
	}

	rows := make([]table.Row, 0, historyRows)
	for i := len(records) - 1; i >= 0 && len(rows) < historyRows; i-- {
		rows = append(rows, records[i].row(i+1))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
		table.WithFocused(false),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Cell
	t.SetStyles(styles)
	return t
}
