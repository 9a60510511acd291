package elementary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	c := FromMap(nil)
	assert.Equal(t, DefaultConfig(), c)

	c = FromMap(map[string]string{"bits": "32", "rule": "4000000000", "width": "21", "limit": "201"})
	assert.Equal(t, Neighborhood5, c.Neighborhood)
	assert.Equal(t, int64(4000000000), c.Rule)
	assert.Equal(t, 21, c.Width)
	assert.Equal(t, 201, c.Limit)
	require.NoError(t, c.Validate())
}

func TestConfigMap(t *testing.T) {
	c := DefaultConfig()
	c.Neighborhood = Neighborhood5
	c.Rule = 1 << 30
	c.Limit = 151
	assert.Equal(t, c, FromMap(c.Map()))
	assert.Equal(t, "elementary5", c.Name())
	assert.Equal(t, "elementary", DefaultConfig().Name())
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	c := FromMap(map[string]string{"bits": "4", "rule": "256", "width": "22", "limit": "abc"})
	assert.Equal(t, DefaultConfig(), c)

	c = FromMap(map[string]string{"rule": "12.5"})
	assert.Equal(t, DefaultRule, c.Rule)
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())

	c.Rule = 256
	assert.ErrorIs(t, c.Validate(), ErrRuleOutOfRange)

	c = DefaultConfig()
	c.Width = 100
	assert.ErrorIs(t, c.Validate(), ErrDisplayWidthInvalid)

	c = DefaultConfig()
	c.Limit = 3
	assert.ErrorIs(t, c.Validate(), ErrTrackedLimitInvalid)
}

func TestNewWithConfig(t *testing.T) {
	c := DefaultConfig()
	c.Rule = 90
	c.Width = 31
	c.Limit = 125
	e, err := NewWithConfig(c)
	require.NoError(t, err)
	assert.Equal(t, int64(90), e.Rule().Number())
	assert.Equal(t, 31, e.DisplayWidth())
	assert.Equal(t, 125, e.TrackedLimit())
}
