package geometry

import "math"

// Spring describes the damped harmonic motion used to animate sheets toward
// their resting position after a release or snap change.
type Spring struct {
	Stiffness float64 `mapstructure:"stiffness" yaml:"stiffness" toml:"stiffness"`
	Damping   float64 `mapstructure:"damping" yaml:"damping" toml:"damping"`
	Mass      float64 `mapstructure:"mass" yaml:"mass" toml:"mass"`
}

// Named spring configurations accepted wherever a Spring is configured.
var springPresets = map[string]Spring{
	"default": {Stiffness: 380, Damping: 36, Mass: 1},
	"gentle":  {Stiffness: 170, Damping: 26, Mass: 1},
	"wobbly":  {Stiffness: 280, Damping: 18, Mass: 1},
	"stiff":   {Stiffness: 500, Damping: 42, Mass: 1},
}

// SpringPreset returns the named preset, or false if the name is unknown.
func SpringPreset(name string) (Spring, bool) {
	s, ok := springPresets[name]
	return s, ok
}

// DefaultSpring returns the spring used when nothing is configured.
func DefaultSpring() Spring {
	return springPresets["default"]
}

// Step advances the simulation by dt seconds using semi-implicit Euler and
// returns the new position and velocity. Position units are whatever the
// caller animates in; the spring pulls position toward target.
func (s Spring) Step(position, velocity, target, dt float64) (float64, float64) {
	mass := s.Mass
	if mass <= 0 {
		mass = 1
	}
	accel := (-s.Stiffness*(position-target) - s.Damping*velocity) / mass
	velocity += accel * dt
	position += velocity * dt
	return position, velocity
}

// Settled reports whether the motion is close enough to target to stop
// animating.
func (s Spring) Settled(position, velocity, target float64) bool {
	return math.Abs(position-target) < 0.1 && math.Abs(velocity) < 0.1
}
