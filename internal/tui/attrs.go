package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the table for the current attrs mode.
func (m *Model) refreshAttrs() {
	var cols []table.Column
	var rows []table.Row
	switch m.attrsMode {
	case attrsRejected:
		cols, rows = m.rejectedTable()
	default:
		cols, rows = m.pointsTable()
	}
	if len(rows) == 0 {
		// Do not touch table internals here to avoid re-render during SetColumns
		m.showAttrs = false
		if m.attrsMode == attrsRejected {
			m.status = "no rejected records"
		} else {
			m.status = "no points loaded"
		}
		return
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
}

func (m *Model) pointsTable() ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "name", Width: 24},
		{Title: "lat", Width: 11},
		{Title: "lon", Width: 12},
	}
	rows := make([]table.Row, 0, m.coll.Len())
	for i, p := range m.coll.Points {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			truncate(p.Name, 24),
			strconv.FormatFloat(p.Lat, 'f', 6, 64),
			strconv.FormatFloat(p.Lon, 'f', 6, 64),
		})
	}
	return cols, rows
}

func (m *Model) rejectedTable() ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "record", Width: 7},
		{Title: "reason", Width: 20},
		{Title: "detail", Width: 18},
		{Title: "raw", Width: 30},
	}
	rows := make([]table.Row, 0, len(m.rejected))
	for _, r := range m.rejected {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.Index+1),
			r.Reason,
			truncate(r.Detail, 18),
			truncate(r.Raw, 30),
		})
	}
	return cols, rows
}
