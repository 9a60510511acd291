package elementary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRuleBits(t *testing.T) {
	table, err := DecodeRule(Neighborhood3, 126)
	require.NoError(t, err)
	assert.Equal(t, 8, table.Size())
	assert.Equal(t, int64(126), table.Number())

	want := []uint8{0, 1, 1, 1, 1, 1, 1, 0}
	for i, outcome := range want {
		assert.Equal(t, outcome, table.Outcome(i), "pattern %d", i)
	}
}

func TestDecodeRuleFiveCell(t *testing.T) {
	table, err := DecodeRule(Neighborhood5, MaxRule5)
	require.NoError(t, err)
	require.Equal(t, 32, table.Size())
	for i := 0; i < table.Size(); i++ {
		assert.Equal(t, uint8(1), table.Outcome(i), "pattern %d", i)
	}

	table, err = DecodeRule(Neighborhood5, 1<<31)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), table.Outcome(31))
	assert.Equal(t, uint8(0), table.Outcome(30))
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name string
		n    Neighborhood
		rule int64
		err  error
	}{
		{"min", Neighborhood3, 0, nil},
		{"max 3-cell", Neighborhood3, 255, nil},
		{"above 3-cell", Neighborhood3, 256, ErrRuleOutOfRange},
		{"negative", Neighborhood3, -1, ErrRuleOutOfRange},
		{"256 fits 5-cell", Neighborhood5, 256, nil},
		{"max 5-cell", Neighborhood5, 4294967295, nil},
		{"above 5-cell", Neighborhood5, 4294967296, ErrRuleOutOfRange},
		{"bad neighborhood", Neighborhood(4), 1, ErrNeighborhood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRule(tt.n, tt.rule)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestUniform(t *testing.T) {
	table, err := DecodeRule(Neighborhood3, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), table.Uniform(0))
	assert.Equal(t, uint8(0), table.Uniform(1))
}

func TestParseNeighborhood(t *testing.T) {
	for _, s := range []string{"3", "8", "8-bit", " 8 "} {
		n, err := ParseNeighborhood(s)
		require.NoError(t, err, s)
		assert.Equal(t, Neighborhood3, n, s)
	}
	for _, s := range []string{"5", "32", "32-bit"} {
		n, err := ParseNeighborhood(s)
		require.NoError(t, err, s)
		assert.Equal(t, Neighborhood5, n, s)
	}
	_, err := ParseNeighborhood("16")
	assert.ErrorIs(t, err, ErrNeighborhood)
}
