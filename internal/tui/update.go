package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// hoverRadius is how close, in micro-pixels, the pointer must be to a
// marker to highlight it.
const hoverRadius = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lay := m.layout()
		m.mapW, m.mapH = lay.mapW, lay.mapH
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, lay.contentH-2)
		}
		m.applyFit()
	case loadedMsg:
		m.applyLoad(msg)
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "ctrl+s":
				text := m.ta.Value()
				if strings.TrimSpace(text) == "" {
					m.status = "paste: empty"
					return m, nil
				}
				m.pasteMode = false
				m.ta.Blur()
				m.pasteLoad(text)
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.inspectPopup = ""
			if m.showAttrs {
				m.showAttrs = false
				return m, nil
			}
		case "+", "=":
			if m.view.ZoomIn() {
				m.status = m.zoomStatus()
			}
		case "-", "_":
			if m.view.ZoomOut() {
				m.status = m.zoomStatus()
			}
		case "f":
			if m.coll.Extent.Valid {
				e := m.coll.Extent
				m.fitPending = &e
				m.applyFit()
				m.status = m.zoomStatus()
			}
		case "r":
			if m.loading {
				m.status = "load in progress"
				return m, nil
			}
			return m, m.startLoad()
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				lay := m.layout()
				m.l.SetSize(sidebarWidth-2, lay.contentH-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "a", "e":
			mode := attrsPoints
			if msg.String() == "e" {
				mode = attrsRejected
			}
			if m.showAttrs && m.attrsMode == mode {
				m.showAttrs = false
				return m, nil
			}
			m.showAttrs = true
			m.attrsMode = mode
			m.refreshAttrs()
			return m, nil
		case "i":
			m.inspect()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					return m, m.openFile(it)
				}
			}
		case "up", "down", "left", "right":
			if m.showAttrs || m.showSidebar {
				break
			}
			switch msg.String() {
			case "up":
				m.view.Pan(0, -4)
			case "down":
				m.view.Pan(0, 4)
			case "left":
				m.view.Pan(-4, 0)
			case "right":
				m.view.Pan(4, 0)
			}
		}
		if m.showAttrs {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	case tea.MouseMsg:
		lay := m.layout()
		if cx, cy, ok := lay.inMap(msg.X, msg.Y); ok {
			m.hovering = true
			m.hoverCellX, m.hoverCellY = cx, cy
			m.hoverLat, m.hoverLon = m.cellToLatLon(cx, cy, lay.mapW, lay.mapH)
			m.hoverHasGeo = true
			m.hoverIdx, _ = m.nearest(cx*2+1, cy*4+2, lay.mapW, lay.mapH, hoverRadius)
			if msg.Action == tea.MouseActionPress {
				switch msg.Button {
				case tea.MouseButtonWheelUp:
					m.view.ZoomIn()
					m.status = m.zoomStatus()
				case tea.MouseButtonWheelDown:
					m.view.ZoomOut()
					m.status = m.zoomStatus()
				}
			}
		} else {
			m.hovering = false
			m.hoverHasGeo = false
			m.hoverIdx = -1
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) zoomStatus() string {
	labels := "off"
	if m.view.LabelsVisible() {
		labels = "on"
	}
	return fmt.Sprintf("zoom: %d  labels: %s", m.view.Zoom, labels)
}

// inspect opens a popup for the point nearest the viewport center.
func (m *Model) inspect() {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	idx, ok := m.nearest(w, h*2, w, h, max(w, h)*4)
	if !ok {
		m.inspectPopup = "no point in view"
		m.status = m.inspectPopup
		return
	}
	p := m.coll.Points[idx]
	name := p.Name
	if name == "" {
		name = "(unlabeled)"
	}
	ext := m.coll.Extent
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("lat: %.6f  lon: %.6f", p.Lat, p.Lon),
		fmt.Sprintf("point %d of %d", idx+1, m.coll.Len()),
		fmt.Sprintf("source: %s", sourceLabel(m.source)),
		fmt.Sprintf("extent: [%.5f, %.5f, %.5f, %.5f]", ext.MinLon, ext.MinLat, ext.MaxLon, ext.MaxLat),
		fmt.Sprintf("rejected: %d", len(m.rejected)),
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup (esc closes)"
}
