package shimmer

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Easing maps linear progress t in [0, 1] to eased progress in [0, 1].
// Easings used by the driver must be monotone and hit 0 and 1 at the ends so
// the value never leaves the sweep range.
type Easing func(t float64) float64

// Linear advances at constant speed.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseInOut accelerates then decelerates (smoothstep).
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// Spring returns an easing that follows a critically damped spring with the
// given angular frequency, sampled in the given number of steps. Critical
// damping never overshoots, so the curve stays within [0, 1]; the final
// sample is pinned to 1.
func Spring(angularFrequency float64, steps int) Easing {
	if steps < 2 {
		steps = 2
	}
	spring := harmonica.NewSpring(1/float64(steps-1), angularFrequency, 1.0)
	curve := make([]float64, steps)
	pos, vel := 0.0, 0.0
	for i := 1; i < steps; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
		curve[i] = clamp01(pos)
	}
	// Normalise so the curve reaches exactly 1 at the end.
	if last := curve[steps-1]; last > 0 {
		for i := range curve {
			curve[i] /= last
		}
	}
	curve[steps-1] = 1

	return func(t float64) float64 {
		t = clamp01(t)
		pos := t * float64(steps-1)
		i := int(math.Floor(pos))
		if i >= steps-1 {
			return 1
		}
		frac := pos - float64(i)
		return curve[i] + (curve[i+1]-curve[i])*frac
	}
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
