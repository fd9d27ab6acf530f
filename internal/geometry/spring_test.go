package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpringPreset(t *testing.T) {
	for _, name := range []string{"default", "gentle", "wobbly", "stiff"} {
		s, ok := SpringPreset(name)
		require.True(t, ok, name)
		assert.Positive(t, s.Stiffness)
		assert.Positive(t, s.Damping)
		assert.Positive(t, s.Mass)
	}

	_, ok := SpringPreset("nope")
	assert.False(t, ok)
}

func TestSpring_ConvergesToTarget(t *testing.T) {
	s := DefaultSpring()
	pos, vel := 300.0, 0.0

	const dt = 1.0 / 60
	for i := 0; i < 600; i++ {
		pos, vel = s.Step(pos, vel, 0, dt)
		if s.Settled(pos, vel, 0) {
			break
		}
	}

	assert.True(t, s.Settled(pos, vel, 0), "spring did not settle: pos=%v vel=%v", pos, vel)
	assert.InDelta(t, 0, pos, 0.1)
}

func TestSpring_ZeroMassDoesNotExplode(t *testing.T) {
	s := Spring{Stiffness: 380, Damping: 36}
	pos, vel := s.Step(100, 0, 0, 1.0/60)
	assert.Less(t, pos, 100.0)
	assert.Less(t, vel, 0.0)
}
