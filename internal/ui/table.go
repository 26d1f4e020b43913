package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rogersnm/tick/internal/model"
)

// RenderItemTable renders items in the order given.
func RenderItemTable(items []model.Item, th Theme) string {
	if len(items) == 0 {
		return "No tasks found."
	}
	rows := make([][]string, len(items))
	for i, it := range items {
		mark := " "
		if it.Completed {
			mark = "x"
		}
		rows[i] = []string{
			strconv.FormatInt(it.ID, 10),
			mark,
			it.Text,
			it.CreatedAt.Format("2006-01-02"),
		}
	}
	t := table.New().
		Headers("ID", "", "Task", "Created").
		Rows(rows...).
		BorderStyle(th.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return th.Header
			}
			if row >= 0 && row < len(items) && items[row].Completed {
				return th.Done
			}
			return th.Pending
		})
	return t.Render()
}

// RenderCounts renders the active/completed footer line.
func RenderCounts(active, completed int, th Theme) string {
	return th.Count.Render(fmt.Sprintf("%d active, %d completed", active, completed))
}
