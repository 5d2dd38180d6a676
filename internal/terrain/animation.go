package terrain

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Animation maps a tick counter to a render offset.
// Implementations must be pure: the same tick always yields the same offset.
type Animation func(tick int) core.Vector2

// Animation kinds accepted by NewAnimation.
const (
	AnimNone  = ""
	AnimBob   = "bob"   // vertical sine motion
	AnimSway  = "sway"  // horizontal sine motion
	AnimOrbit = "orbit" // circular motion
)

// NewAnimation builds a named animation. Amplitude is in world units and
// period in ticks. AnimNone returns a nil Animation.
func NewAnimation(kind string, amplitude float64, period int) (Animation, error) {
	if kind == AnimNone {
		return nil, nil
	}
	if period <= 0 {
		return nil, fmt.Errorf("terrain: animation %q: period must be positive, got %d", kind, period)
	}

	phase := func(tick int) float64 {
		return 2 * math.Pi * float64(tick%period) / float64(period)
	}

	switch kind {
	case AnimBob:
		return func(tick int) core.Vector2 {
			return core.Vec2(0, amplitude*math.Sin(phase(tick)))
		}, nil
	case AnimSway:
		return func(tick int) core.Vector2 {
			return core.Vec2(amplitude*math.Sin(phase(tick)), 0)
		}, nil
	case AnimOrbit:
		return func(tick int) core.Vector2 {
			p := phase(tick)
			return core.Vec2(amplitude*math.Cos(p), amplitude*math.Sin(p))
		}, nil
	default:
		return nil, fmt.Errorf("terrain: %w %q", ErrUnknownAnimation, kind)
	}
}
