package elementary

import (
	"strconv"

	"textca/internal/core"
)

// Parameters describes the engine's current settings and tape state.
func (e *Engine) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("rule", "Rule number", e.rule.Number()),
				stringParam("bits", "Neighborhood", e.n.String()),
				intParam("patterns", "Rule table entries", int64(e.rule.Size())),
			},
		},
		{
			Name: "Display",
			Params: []core.Parameter{
				intParam("width", "Display width", int64(e.width)),
				stringParam("on", "Active glyph", strconv.Quote(string(OnGlyph))),
				stringParam("off", "Inactive glyph", strconv.Quote(string(OffGlyph))),
			},
		},
		{
			Name:    "Tape",
			Summary: "cells outside the tracked window share the boundary state",
			Params: []core.Parameter{
				intParam("tick", "Generation", int64(e.tick)),
				intParam("length", "Tracked cells", int64(len(e.cur))),
				intParam("limit", "Tracked limit", int64(e.limit)),
				intParam("boundary", "Boundary state", int64(e.boundary)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the integer settings accepted by SetIntParameter.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rule", Label: "Rule number", Type: core.ParamTypeInt, Step: 1, Min: MinRule, Max: e.n.MaxRule(), HasMin: true, HasMax: true},
		{Key: "width", Label: "Display width", Type: core.ParamTypeInt, Step: 2, Min: MinDisplayWidth, Max: MaxDisplayWidth, HasMin: true, HasMax: true},
		{Key: "limit", Label: "Tracked limit", Type: core.ParamTypeInt, Step: 2, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates rule, width or limit.
func (e *Engine) SetIntParameter(key string, value int64) bool {
	switch key {
	case "rule":
		return e.SetRule(value)
	case "width", "limit":
		v := int(value)
		if int64(v) != value {
			return false
		}
		if key == "width" {
			return e.SetDisplayWidth(v)
		}
		return e.SetTrackedLimit(v)
	}
	return false
}

func intParam(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
