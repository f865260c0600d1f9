package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

const Tau = 2 * math.Pi

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// NudgeFactor is the fraction of the remaining distance covered by an
// exponential decay of the given rate over dt seconds.
func NudgeFactor(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// SmoothNudge eases current toward target without overshooting.
func SmoothNudge(current, target, rate, dt float64) float64 {
	return current + (target-current)*NudgeFactor(rate, dt)
}

// WrapAngle maps an angle into (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, Tau)
	if a <= 0 {
		a += Tau
	}
	return a - math.Pi
}

// SmoothNudgeAngle eases an angle toward target along the shorter arc. The
// result is not wrapped, so free-running yaw accumulation is preserved.
func SmoothNudgeAngle(current, target, rate, dt float64) float64 {
	delta := WrapAngle(target - current)
	return current + delta*NudgeFactor(rate, dt)
}

// Heading returns the yaw that points along dir on the XZ plane.
func Heading(dir cp.Vector) float64 {
	return math.Atan2(dir.Y, dir.X)
}

// Forward returns the unit facing for yaw on the XZ plane.
func Forward(yaw float64) cp.Vector {
	return cp.ForAngle(yaw)
}

// ElasticOut eases t in [0,1] with an overshooting spring that settles at 1.
func ElasticOut(t float64) float64 {
	t = Clamp01(t)
	if t == 0 || t == 1 {
		return t
	}
	const c4 = Tau / 3
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}
