package tui

// brailleBits maps a micro-pixel (row, column) inside a cell to its dot.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[my%4][mx%2]
}

// set reports whether any micro-pixel of cell cx, cy is lit.
func (b *brailleBuf) set(cx, cy int) bool {
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return false
	}
	return b.m[cy][cx] != 0
}

// glyph returns the braille rune for cell cx, cy.
func (b *brailleBuf) glyph(cx, cy int) rune {
	return rune(0x2800 + int(b.m[cy][cx]))
}
