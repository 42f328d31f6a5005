package geom

import "math"

// PointBlank is the distance under which a target counts as inside any arc.
const PointBlank = 0.1

// SphereIntersect reports whether two spheres overlap. Touching spheres do
// not intersect.
func SphereIntersect(a Vec3, ra float64, b Vec3, rb float64) bool {
	return a.Dist(b) < ra+rb
}

// InArc reports whether target lies within rng of origin and inside the
// cone of total angle arc around facing. The angle is measured in 3D.
func InArc(origin, facing Vec3, arc, rng float64, target Vec3) bool {
	d := origin.Dist(target)
	if d > rng {
		return false
	}
	if d < PointBlank {
		return true
	}

	f, ok := facing.Normalize()
	if !ok {
		return false
	}
	dir := target.Sub(origin).Scale(1 / d)
	return math.Acos(Clamp(f.Dot(dir), -1, 1)) < arc/2
}

// NearestInCone returns the candidate closest to origin among those passing
// InArc. The first candidate wins on equal distance.
func NearestInCone[T any](origin, facing Vec3, candidates []T, pos func(T) Vec3, arc, rng float64) (T, bool) {
	var (
		best  T
		found bool
		bestD = math.Inf(1)
	)
	for _, c := range candidates {
		p := pos(c)
		if !InArc(origin, facing, arc, rng, p) {
			continue
		}
		if d := origin.Dist(p); d < bestD {
			best, bestD, found = c, d, true
		}
	}
	return best, found
}

// PredictPosition extrapolates a linearly moving point t seconds ahead.
func PredictPosition(pos, vel Vec3, t float64) Vec3 {
	return pos.Add(vel.Scale(t))
}

// StepPlanar moves from toward to along the ground plane by at most step,
// keeping from's height. It never overshoots the target.
func StepPlanar(from, to Vec3, step float64) Vec3 {
	a, b := from.Planar2(), to.Planar2()
	d := b.Sub(a)
	l := d.Length()
	if l < epsilon || step <= 0 {
		if step > 0 {
			return FromPlanar(b, from.Y)
		}
		return from
	}
	if l <= step {
		return FromPlanar(b, from.Y)
	}
	return FromPlanar(a.Add(d.Mult(step/l)), from.Y)
}

// PlanarDirection is the unit ground-plane direction from a to b.
func PlanarDirection(a, b Vec3) (Vec3, bool) {
	return b.Sub(a).Planar().Normalize()
}
