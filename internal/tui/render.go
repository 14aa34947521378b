package tui

import (
	"strings"

	"waymap/internal/mapview"
)

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellMarker
	cellLabel
	cellHover
)

type canvas struct {
	w, h  int
	runes [][]rune
	kinds [][]cellKind
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), kinds: make([][]cellKind, h)}
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", w))
		c.kinds[y] = make([]cellKind, w)
	}
	return c
}

func (c *canvas) put(x, y int, r rune, k cellKind) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.kinds[y][x] = k
}

// free reports whether cells x..x+n on row y are all blank.
func (c *canvas) free(x, y, n int) bool {
	if y < 0 || y >= c.h || x < 0 || x+n > c.w {
		return false
	}
	for i := x; i < x+n; i++ {
		if c.kinds[y][i] != cellBlank {
			return false
		}
	}
	return true
}

// renderMap draws the map into a w by h cell string.
func (m Model) renderMap(w, h int) string {
	return m.paint(m.drawMap(w, h))
}

// drawMap places markers, labels (only when the zoom allows them) and the
// hover highlight on a w by h cell canvas.
func (m Model) drawMap(w, h int) *canvas {
	c := newCanvas(w, h)
	br := newBrailleBuf(w, h)
	wMic, hMic := w*2, h*4

	type placed struct{ cx, cy int }
	var marks []placed
	for _, p := range m.coll.Points {
		mx, my := m.view.Project(p.Lat, p.Lon, wMic, hMic)
		if !mapview.Visible(mx, my, wMic, hMic) {
			marks = append(marks, placed{-1, -1})
			continue
		}
		br.setPixel(mx, my)
		marks = append(marks, placed{mx / 2, my / 4})
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if br.set(x, y) {
				c.put(x, y, br.glyph(x, y), cellMarker)
			}
		}
	}

	if m.view.LabelsVisible() {
		// first come first served; a label that would overlap is dropped
		for i, p := range m.coll.Points {
			mk := marks[i]
			if mk.cx < 0 || !p.Labeled() {
				continue
			}
			text := []rune(" " + truncate(p.Name, 24))
			n := len(text)
			for _, pos := range [][2]int{{mk.cx + 1, mk.cy}, {mk.cx - n, mk.cy}, {mk.cx + 1, mk.cy - 1}} {
				if c.free(pos[0], pos[1], n) {
					for j, r := range text {
						c.put(pos[0]+j, pos[1], r, cellLabel)
					}
					break
				}
			}
		}
	}

	if m.hovering && m.hoverIdx >= 0 && m.hoverIdx < len(marks) {
		if mk := marks[m.hoverIdx]; mk.cx >= 0 {
			c.put(mk.cx, mk.cy, '◯', cellHover)
		}
	}
	return c
}

func (c *canvas) count(k cellKind) int {
	n := 0
	for _, row := range c.kinds {
		for _, kk := range row {
			if kk == k {
				n++
			}
		}
	}
	return n
}

// paint joins the canvas rows, styling runs of equal cell kind.
func (m Model) paint(c *canvas) string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.kinds[y][x] == c.kinds[y][start] {
				continue
			}
			seg := string(c.runes[y][start:x])
			switch c.kinds[y][start] {
			case cellMarker:
				seg = m.styles.marker.Render(seg)
			case cellLabel:
				seg = m.styles.label.Render(seg)
			case cellHover:
				seg = m.styles.hover.Render(seg)
			}
			sb.WriteString(seg)
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// nearest returns the index of the visible point closest to micro-pixel
// mx, my within maxDist micro-pixels.
func (m Model) nearest(mx, my, w, h, maxDist int) (int, bool) {
	wMic, hMic := w*2, h*4
	best, bestD := -1, maxDist*maxDist+1
	for i, p := range m.coll.Points {
		px, py := m.view.Project(p.Lat, p.Lon, wMic, hMic)
		if !mapview.Visible(px, py, wMic, hMic) {
			continue
		}
		dx, dy := px-mx, py-my
		if d := dx*dx + dy*dy; d < bestD {
			best, bestD = i, d
		}
	}
	return best, best >= 0
}

// cellToLatLon converts a map cell to the coordinate under its center.
func (m Model) cellToLatLon(cx, cy, w, h int) (lat, lon float64) {
	return m.view.Unproject(cx*2+1, cy*4+2, w*2, h*4)
}
