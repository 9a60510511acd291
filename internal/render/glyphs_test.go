package render

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

var glyphs = Glyphs{On: '#', Off: '.'}

func TestRow(t *testing.T) {
	assert.Equal(t, "#..#", Row([]uint8{1, 0, 0, 1}, glyphs))
	assert.Equal(t, "", Row(nil, glyphs))
	assert.Equal(t, byte('#'), glyphs.Glyph(3))
}

func TestFill(t *testing.T) {
	buf := make([]byte, 3)
	Fill(buf, 'x')
	assert.Equal(t, "xxx", string(buf))
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestColorStylerKeepsGlyphs(t *testing.T) {
	s := NewColorStyler(lipgloss.DefaultRenderer(), glyphs, "#FF6B6B", "#666666")
	row := "..##.#..."
	assert.Equal(t, row, ansi.ReplaceAllString(s.Style(row), ""))
	assert.Equal(t, "", s.Style(""))
	assert.Equal(t, row, Plain{}.Style(row))
}
