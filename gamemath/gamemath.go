// Package gamemath holds the pure geometry and steering math shared by
// the simulation systems. Everything here is side-effect free so the
// functions test in isolation.
package gamemath

import "math"

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// AngleTo returns the heading from one point to another. ok is false
// when the points coincide and no heading exists.
func AngleTo(fromX, fromY, toX, toY float64) (angle float64, ok bool) {
	dx := toX - fromX
	dy := toY - fromY
	if math.Hypot(dx, dy) < 1e-6 {
		return 0, false
	}
	return math.Atan2(dy, dx), true
}

// TurnToward rotates a heading toward a target by at most step radians,
// taking the short way around.
func TurnToward(current, target, step float64) float64 {
	diff := math.Mod(target-current, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	}
	if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	if math.Abs(diff) <= step {
		return target
	}
	if diff > 0 {
		return current + step
	}
	return current - step
}

// AABBOverlap reports whether two axis-aligned boxes intersect.
func AABBOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// PointSegmentDistance is the distance from point p to segment ab.
func PointSegmentDistance(px, py, ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-9 {
		return math.Hypot(px-ax, py-ay)
	}
	t := Clamp(((px-ax)*dx+(py-ay)*dy)/lenSq, 0, 1)
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// InAnnulus reports whether a point lies on a ring of the given radius
// and thickness around a center.
func InAnnulus(px, py, cx, cy, radius, thickness float64) bool {
	dist := math.Hypot(px-cx, py-cy)
	return math.Abs(dist-radius) <= thickness/2
}
