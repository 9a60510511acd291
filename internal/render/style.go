package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styler decorates a rendered row for terminal output.
type Styler interface {
	Style(row string) string
}

// Plain leaves rows untouched.
type Plain struct{}

// Style returns row unchanged.
func (Plain) Style(row string) string { return row }

// ColorStyler paints runs of active and inactive glyphs with separate styles.
type ColorStyler struct {
	glyphs Glyphs
	on     lipgloss.Style
	off    lipgloss.Style
}

// NewColorStyler builds a ColorStyler using r for colour profile detection.
// onColor and offColor are lipgloss colour strings ("#FAFAFA", "212"); an empty
// offColor leaves inactive glyphs unstyled.
func NewColorStyler(r *lipgloss.Renderer, g Glyphs, onColor, offColor string) *ColorStyler {
	s := &ColorStyler{
		glyphs: g,
		on:     r.NewStyle().Bold(true).Foreground(lipgloss.Color(onColor)),
		off:    r.NewStyle(),
	}
	if offColor != "" {
		s.off = s.off.Foreground(lipgloss.Color(offColor))
	}
	return s
}

// Style renders each maximal run of equal glyphs with its style.
func (s *ColorStyler) Style(row string) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i] == row[start] {
			continue
		}
		run := row[start:i]
		if row[start] == s.glyphs.On {
			b.WriteString(s.on.Render(run))
		} else {
			b.WriteString(s.off.Render(run))
		}
		start = i
	}
	return b.String()
}
