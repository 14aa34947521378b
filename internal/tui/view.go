package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"waymap/internal/ingest"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lay := m.layout()
	contentWidth, contentHeight := lay.contentW, lay.contentH
	mapWidth, mapHeight := lay.mapW, lay.mapH

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	// Header
	title := titleStyle.Render(" waymap ─ terminal waypoint map ")
	src := dimStyle.Render(" " + sourceLabel(m.source) + " ")
	header := lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(lipgloss.JoinHorizontal(lipgloss.Top, title, src))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	if m.showAttrs {
		// Render attributes table centered in the map area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	} else {
		var content string
		if m.pasteMode {
			// size textarea to map area
			m.ta.SetWidth(mapWidth)
			m.ta.SetHeight(min(mapHeight, 12))
			content = m.ta.View()
		} else {
			content = m.renderMap(mapWidth, mapHeight)
		}
		// plain map canvas: no border, no background highlight
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(content)
	}

	// Build inspect popup box (center-left overlay, not in map column)
	popup := ""
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := max(20, min(48, contentWidth/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, lipgloss.Height(box), lipgloss.Left, lipgloss.Center, box)
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	if m.state == ingest.StateFailed {
		status = errStyle.Render(" " + m.status + " ")
	}
	// pointer position and hovered point at bottom-right
	coords := ""
	if m.hoverHasGeo {
		text := fmt.Sprintf("lat=%.5f lon=%.5f", m.hoverLat, m.hoverLon)
		if m.hoverIdx >= 0 && m.hoverIdx < m.coll.Len() {
			if name := m.coll.Points[m.hoverIdx].Name; name != "" {
				text = truncate(name, 20) + "  " + text
			}
		}
		coords = dimStyle.Render(padRight("  "+text, 2))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, status+dimStyle.Render(fmt.Sprintf(" z%d %s", m.view.Zoom, m.state)), help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Top, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	// Compose UI with popup overlay between header and body
	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"f fit",
		"r reload",
		"Tab files",
		"p paste",
		"a points",
		"e rejected",
		"i inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
