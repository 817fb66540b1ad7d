// pkg/hexgrid/hex.go
package hexgrid

// Hex is an axial coordinate (Q, R) on a pointy-top hex grid.
// The third cube coordinate is implied: S = -Q - R.
type Hex struct {
	Q, R int
}

// S returns the implied third cube coordinate, so Q + R + S == 0.
func (h Hex) S() int {
	return -h.Q - h.R
}

// NeighborDirections defines the 6 possible directions from a hex, starting
// from East and going counter-clockwise. This order is load-bearing for any
// ring-walk or angle-to-direction logic built on top of it.
var NeighborDirections = [6]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Neighbors returns the 6 adjacent hexes in NeighborDirections order.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range NeighborDirections {
		result[i] = Hex{Q: h.Q + dir.Q, R: h.R + dir.R}
	}
	return result
}

// Add returns the sum of two hex vectors.
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Sub returns the difference of two hex vectors.
func (h Hex) Sub(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{Q: h.Q * factor, R: h.R * factor}
}

// Distance returns the number of steps between two hexes.
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

// FromOffset converts odd-row-shifted offset coordinates to axial.
// Odd rows are shifted right by half a hex. Exact inverse of ToOffset
// for all integers; row&1 keeps parity correct for negative rows.
func FromOffset(col, row int) Hex {
	return Hex{Q: col - (row-(row&1))/2, R: row}
}

// ToOffset converts axial coordinates back to odd-row-shifted offset.
func (h Hex) ToOffset() (col, row int) {
	return h.Q + (h.R-(h.R&1))/2, h.R
}

// ToWorld converts the hex to world-space coordinates of its center
// (pointy-top orientation). hexSize must be positive.
func (h Hex) ToWorld(hexSize float64) (x, y float64) {
	x = hexSize * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y = hexSize * (3.0 / 2.0 * float64(h.R))
	return
}

// FromWorld converts a world-space position to the nearest hex.
func FromWorld(x, y, hexSize float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*y) / hexSize
	r := (2.0 / 3 * y) / hexSize
	return Round(q, r)
}

// Lerp linearly interpolates between two hexes and snaps to the grid.
func (a Hex) Lerp(b Hex, t float64) Hex {
	q := float64(a.Q)*(1-t) + float64(b.Q)*t
	r := float64(a.R)*(1-t) + float64(b.R)*t
	return Round(q, r)
}

// LineTo returns the hexes on the straight line between two hexes,
// inclusive of both endpoints.
func (h Hex) LineTo(end Hex) []Hex {
	n := h.Distance(end)
	if n == 0 {
		return []Hex{h}
	}
	results := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 1.0 / float64(n) * float64(i)
		results = append(results, h.Lerp(end, t))
	}
	return results
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt3 is √3, the width of a pointy-top hex in units of its size.
const Sqrt3 = 1.7320508075688772935274463415059
