package animation

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// Panel motion curves, matching the CSS timing functions of the zoom and
// slide animations.
var (
	EaseOutCirc   = CubicBezier(0.08, 0.82, 0.17, 1)
	EaseInOutCirc = CubicBezier(0.78, 0.14, 0.15, 0.86)
	EaseOutQuint  = CubicBezier(0.23, 1, 0.32, 1)
	EaseInQuint   = CubicBezier(0.755, 0.05, 0.855, 0.06)
)

// Tween adapts c to gween's easing signature.
func (c Curve) Tween() ease.TweenFunc {
	return func(t, begin, change, duration float32) float32 {
		if duration <= 0 {
			return begin + change
		}
		return begin + change*float32(c(float64(t/duration)))
	}
}

// CubicBezier returns the curve of CSS cubic-bezier(x1, y1, x2, y2). The
// curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Solve x(u) = t with Newton steps, then bisection if the slope
		// flattens out.
		u := t
		for i := 0; i < 8; i++ {
			dx := bezier(x1, x2, u) - t
			if math.Abs(dx) < 1e-7 {
				return bezier(y1, y2, clampUnit(u))
			}
			slope := bezierSlope(x1, x2, u)
			if math.Abs(slope) < 1e-7 {
				break
			}
			u -= dx / slope
		}

		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			dx := bezier(x1, x2, u) - t
			if math.Abs(dx) < 1e-7 {
				break
			}
			if dx > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

// bezier evaluates one coordinate of the curve with fixed end points.
func bezier(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
