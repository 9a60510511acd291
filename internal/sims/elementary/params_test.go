package elementary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textca/internal/core"
)

func paramValue(snap core.ParameterSnapshot, key string) (string, bool) {
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}

func TestParameters(t *testing.T) {
	e := newEngine(t, 126, Neighborhood3)
	e.Propagate()

	snap := e.Parameters()
	for key, want := range map[string]string{
		"rule":     "126",
		"bits":     "3-cell",
		"patterns": "8",
		"width":    "99",
		"tick":     "1",
		"length":   "3",
		"boundary": "0",
		"on":       `"*"`,
	} {
		got, ok := paramValue(snap, key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
}

func TestSetIntParameter(t *testing.T) {
	e := newEngine(t, 126, Neighborhood5)
	var setter core.IntParameterSetter = e

	assert.True(t, setter.SetIntParameter("rule", 1<<20))
	assert.Equal(t, int64(1<<20), e.Rule().Number())
	assert.True(t, setter.SetIntParameter("width", 41))
	assert.Equal(t, 41, e.DisplayWidth())
	assert.False(t, setter.SetIntParameter("width", 42))
	assert.True(t, setter.SetIntParameter("limit", 151))
	assert.False(t, setter.SetIntParameter("seed", 1))

	controls := e.ParameterControls()
	require.Len(t, controls, 3)
	assert.Equal(t, MaxRule5, controls[0].Max)
}
