package gamemath

import "math"

// SegmentAABB tests the segment (x0,y0)->(x0+dx,y0+dy) against the box
// [minX,maxX]x[minY,maxY] with the slab method. t is the entry fraction along
// the segment in [0,1]; a segment starting inside the box hits at t = 0.
// Touching an edge counts as a hit.
func SegmentAABB(x0, y0, dx, dy, minX, minY, maxX, maxY float64) (bool, float64) {
	tmin := 0.0
	tmax := 1.0

	if !slab(x0, dx, minX, maxX, &tmin, &tmax) {
		return false, 0
	}
	if !slab(y0, dy, minY, maxY, &tmin, &tmax) {
		return false, 0
	}
	return true, tmin
}

func slab(origin, delta, min, max float64, tmin, tmax *float64) bool {
	if delta == 0 {
		return origin >= min && origin <= max
	}
	inv := 1 / delta
	t1 := (min - origin) * inv
	t2 := (max - origin) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	*tmin = math.Max(*tmin, t1)
	*tmax = math.Min(*tmax, t2)
	return *tmin <= *tmax
}
