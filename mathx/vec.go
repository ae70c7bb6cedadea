package mathx

import "math"

// Normalize scales (x, y) to unit length. The zero vector stays zero.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// DistSq returns the squared distance between (ax, ay) and (bx, by).
// Squared form avoids the sqrt in the hot comparison loops.
func DistSq(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return dx*dx + dy*dy
}

// Lerp interpolates from a toward b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
