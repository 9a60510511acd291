package render

// Glyphs holds the characters used for active and inactive cells.
type Glyphs struct {
	On  byte
	Off byte
}

// Glyph returns the character for a single cell value.
func (g Glyphs) Glyph(c uint8) byte {
	if c != 0 {
		return g.On
	}
	return g.Off
}

// FillGlyphs converts binary cell data (0/1) into characters in buf. buf must
// be at least len(cells) long.
func FillGlyphs(buf []byte, cells []uint8, g Glyphs) {
	for i, c := range cells {
		if c != 0 {
			buf[i] = g.On
			continue
		}
		buf[i] = g.Off
	}
}

// Fill sets every byte of buf to b.
func Fill(buf []byte, b byte) {
	for i := range buf {
		buf[i] = b
	}
}

// Row renders cells as a string using g.
func Row(cells []uint8, g Glyphs) string {
	buf := make([]byte, len(cells))
	FillGlyphs(buf, cells, g)
	return string(buf)
}
