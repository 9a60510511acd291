package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSim struct{}

func (stubSim) Name() string   { return "stub" }
func (stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64)    {}
func (stubSim) Step()          {}
func (stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	Register("nil", nil)
	_, ok := Lookup("nil")
	assert.False(t, ok)

	Register("stub", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	f, ok := Lookup("stub")
	require.True(t, ok)
	sim, err := f(nil)
	require.NoError(t, err)
	assert.Equal(t, "stub", sim.Name())
	assert.Contains(t, Names(), "stub")
	assert.NotContains(t, Names(), "")
}

func TestPacerDisabled(t *testing.T) {
	p := NewPacer(0)
	assert.Zero(t, p.Step())
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Wait(context.Background()))
	}
}

func TestPacerSpacing(t *testing.T) {
	p := NewPacer(100)
	require.Equal(t, 10*time.Millisecond, p.Step())

	start := time.Now()
	for i := 0; i < 4; i++ {
		require.NoError(t, p.Wait(context.Background()))
	}
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestPacerCancelled(t *testing.T) {
	p := NewPacer(1)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Wait(ctx))
	cancel()
	assert.ErrorIs(t, p.Wait(ctx), context.Canceled)
}
