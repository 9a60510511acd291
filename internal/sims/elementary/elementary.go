package elementary

import (
	"go.uber.org/zap"

	"textca/internal/core"
	"textca/internal/render"
)

const (
	// MinRule is the smallest rule number for every neighbourhood.
	MinRule int64 = 0
	// MaxRule3 is the largest rule number with a 3-cell neighbourhood.
	MaxRule3 int64 = 1<<8 - 1
	// MaxRule5 is the largest rule number with a 5-cell neighbourhood.
	MaxRule5 int64 = 1<<32 - 1
	// DefaultRule is used when the requested rule is rejected at construction.
	DefaultRule int64 = 126

	// MinDisplayWidth is the narrowest accepted display width.
	MinDisplayWidth = 21
	// MaxDisplayWidth is the widest accepted display width.
	MaxDisplayWidth = 121
	// DefaultDisplayWidth is the width set at construction.
	DefaultDisplayWidth = 99

	// OnGlyph is the character rendered for an active cell.
	OnGlyph byte = '*'
	// OffGlyph is the character rendered for an inactive cell.
	OffGlyph byte = ' '
)

// Glyphs is the glyph pair used by Render.
var Glyphs = render.Glyphs{On: OnGlyph, Off: OffGlyph}

// Engine is a one-dimensional automaton on a conceptually infinite tape.
// Create engines with New or NewWithConfig; the zero value has no rule table.
//
// Only a finite window of the tape is tracked. Everything outside it is
// assumed to be one uniform state, the boundary, so its own neighbourhood is
// always all-0 or all-1 and its next state follows from the rule table alone.
// Cells near the window edge read the boundary as their outer neighbours.
type Engine struct {
	n        Neighborhood
	rule     RuleTable
	cur      []uint8
	nxt      []uint8
	pad      []uint8
	boundary uint8
	width    int
	limit    int
	tick     int
}

// New creates an engine for neighbourhood n seeded with a single active cell.
// A rejected rule falls back to DefaultRule; only an unsupported neighbourhood
// is an error.
func New(rule int64, n Neighborhood) (*Engine, error) {
	if !n.Valid() {
		return nil, ValidateRule(n, rule)
	}
	e := &Engine{n: n, width: MaxDisplayWidth}
	if !e.SetRule(rule) {
		Logger().Warn("falling back to default rule",
			zap.Int64("requested", rule),
			zap.Int64("rule", DefaultRule),
			zap.Stringer("neighborhood", n))
		e.SetRule(DefaultRule)
	}
	e.ResetFirstGeneration()
	e.SetDisplayWidth(DefaultDisplayWidth)
	return e, nil
}

// NewWithConfig creates an engine and applies cfg. Invalid width or limit
// values keep the engine defaults; use Config.Validate to reject them upfront.
func NewWithConfig(cfg Config) (*Engine, error) {
	e, err := New(cfg.Rule, cfg.Neighborhood)
	if err != nil {
		return nil, err
	}
	if cfg.Width != 0 {
		e.SetDisplayWidth(cfg.Width)
	}
	e.SetTrackedLimit(cfg.Limit)
	return e, nil
}

// SetRule decodes rule into the rule table. On rejection the previous table
// is kept and false is returned.
func (e *Engine) SetRule(rule int64) bool {
	table, err := DecodeRule(e.n, rule)
	if err != nil {
		Logger().Debug("rule rejected", zap.Int64("rule", rule), zap.Error(err))
		return false
	}
	e.rule = table
	return true
}

// SetDisplayWidth sets the number of glyphs per rendered row. The width must
// be odd and within [MinDisplayWidth, MaxDisplayWidth].
func (e *Engine) SetDisplayWidth(width int) bool {
	if err := ValidateDisplayWidth(width); err != nil {
		Logger().Debug("display width rejected", zap.Int("width", width), zap.Error(err))
		return false
	}
	e.width = width
	return true
}

// SetTrackedLimit bounds the tracked window to limit cells, centred on the
// tape. Zero tracks the full generation. Cells beyond the limit are dropped,
// which turns states near the window edge into an approximation.
func (e *Engine) SetTrackedLimit(limit int) bool {
	if err := ValidateTrackedLimit(limit); err != nil {
		Logger().Debug("tracked limit rejected", zap.Int("limit", limit), zap.Error(err))
		return false
	}
	e.limit = limit
	e.clip()
	return true
}

// ResetFirstGeneration restores a single active cell on an inactive tape.
func (e *Engine) ResetFirstGeneration() {
	e.cur = append(e.cur[:0], 1)
	e.boundary = 0
	e.tick = 0
}

// Propagate advances the tape by one generation. The generation grows by
// n-1 cells: n-1 boundary cells are added on each side and only positions
// with a full neighbourhood are evaluated.
func (e *Engine) Propagate() {
	if !e.n.Valid() {
		return
	}
	k := int(e.n)
	edge := 2 * e.n.Radius()
	total := len(e.cur) + 2*edge

	e.pad = resize(e.pad, total)
	for i := 0; i < edge; i++ {
		e.pad[i] = e.boundary
		e.pad[total-1-i] = e.boundary
	}
	copy(e.pad[edge:], e.cur)

	e.nxt = resize(e.nxt, total-edge)
	for x := range e.nxt {
		// Leftmost neighbour is the most significant bit.
		idx := 0
		for _, c := range e.pad[x : x+k] {
			idx = idx<<1 | int(c)
		}
		e.nxt[x] = e.rule.Outcome(idx)
	}
	e.cur, e.nxt = e.nxt, e.cur

	e.boundary = e.rule.Uniform(e.boundary)
	e.tick++
	e.clip()
}

// Render returns the current generation as exactly DisplayWidth glyphs. A
// short generation is centred and padded with the boundary glyph; a long one
// is cropped to its centre. Odd leftovers go to the right in both cases.
func (e *Engine) Render() string {
	row := make([]byte, e.width)
	n := len(e.cur)
	if n <= e.width {
		left := (e.width - n) / 2
		fill := Glyphs.Glyph(e.boundary)
		render.Fill(row[:left], fill)
		render.FillGlyphs(row[left:], e.cur, Glyphs)
		render.Fill(row[left+n:], fill)
		return string(row)
	}
	start := (n - e.width) / 2
	render.FillGlyphs(row, e.cur[start:start+e.width], Glyphs)
	return string(row)
}

// Run renders count generations, passing each row to emit before advancing.
// It stops at the first error from emit.
func (e *Engine) Run(count int, emit func(row string) error) error {
	for i := 0; i < count; i++ {
		if err := emit(e.Render()); err != nil {
			return err
		}
		e.Propagate()
	}
	return nil
}

// Rule returns the active rule table.
func (e *Engine) Rule() RuleTable { return e.rule }

// Neighborhood returns the neighbourhood width fixed at construction.
func (e *Engine) Neighborhood() Neighborhood { return e.n }

// DisplayWidth returns the configured row width.
func (e *Engine) DisplayWidth() int { return e.width }

// TrackedLimit returns the tracked window bound, zero when unbounded.
func (e *Engine) TrackedLimit() int { return e.limit }

// Boundary returns the assumed state of the tape outside the tracked window.
func (e *Engine) Boundary() uint8 { return e.boundary }

// Len returns the number of tracked cells.
func (e *Engine) Len() int { return len(e.cur) }

// Tick returns the number of generations advanced since the last reset.
func (e *Engine) Tick() int { return e.tick }

// Name returns the simulation identifier.
func (e *Engine) Name() string {
	return Config{Neighborhood: e.n}.Name()
}

// Size reports the tracked generation as a single row.
func (e *Engine) Size() core.Size { return core.Size{W: len(e.cur), H: 1} }

// Cells returns a copy of the current generation.
func (e *Engine) Cells() []uint8 { return append([]uint8(nil), e.cur...) }

// Reset restarts from the first generation. The start state is fixed, so the
// seed is ignored.
func (e *Engine) Reset(seed int64) { e.ResetFirstGeneration() }

// Step advances one generation.
func (e *Engine) Step() { e.Propagate() }

func (e *Engine) clip() {
	if e.limit == 0 || len(e.cur) <= e.limit {
		return
	}
	start := (len(e.cur) - e.limit) / 2
	copy(e.cur, e.cur[start:start+e.limit])
	e.cur = e.cur[:e.limit]
}

func resize(buf []uint8, n int) []uint8 {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]uint8, n, 2*n)
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("elementary5", func(cfg map[string]string) (core.Sim, error) {
		base := DefaultConfig()
		base.Neighborhood = Neighborhood5
		return NewWithConfig(applyMap(base, cfg))
	})
}
