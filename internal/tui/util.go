package tui

import "strings"

const sidebarWidth = 28

// mapLayout is the screen geometry shared by View and the mouse handler.
type mapLayout struct {
	contentW int
	contentH int
	originX  int
	originY  int
	mapW     int
	mapH     int
}

func (m Model) layout() mapLayout {
	headerHeight := 1
	footerHeight := 2
	lay := mapLayout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		originY:  headerHeight,
	}
	side := 0
	if m.showSidebar {
		side = sidebarWidth
		lay.originX = sidebarWidth + 1
	}
	lay.mapW = max(10, lay.contentW-side-1)
	lay.mapH = lay.contentH
	return lay
}

// inMap converts a screen cell to a map cell.
func (l mapLayout) inMap(x, y int) (cx, cy int, ok bool) {
	cx, cy = x-l.originX, y-l.originY
	if cx < 0 || cy < 0 || cx >= l.mapW || cy >= l.mapH {
		return 0, 0, false
	}
	return cx, cy, true
}

func padRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
