// pkg/hexgrid/round.go
package hexgrid

import "math"

// Round snaps fractional axial coordinates to the nearest valid hex.
// All three cube axes are rounded independently, then the axis with the
// largest rounding error is recomputed from the other two so that
// q + r + s == 0 holds again. Tie precedence is q, then r, then s: q is
// recomputed only when its error strictly exceeds both others, r only
// when its error strictly exceeds s's.
func Round(q, r float64) Hex {
	s := -q - r

	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	default:
		// s carries the largest error; recomputing it from q and r
		// needs no correction to the axial pair we return.
	}

	return Hex{Q: int(rq), R: int(rr)}
}
