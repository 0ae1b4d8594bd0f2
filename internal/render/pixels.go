package render

import "image/color"

// fillPaletteRGBA converts palette-indexed cells into RGBA pixels in buf.
// Indices outside the palette fall back to entry 0, which is the Empty state
// for forest palettes. An empty palette clears buf to transparent black. It
// reports false, leaving buf untouched, when buf cannot hold every cell.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) bool {
	if len(buf) < 4*len(cells) {
		return false
	}
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return true
	}
	for i, c := range cells {
		col := palette[0]
		if int(c) < len(palette) {
			col = palette[c]
		}
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
	return true
}
