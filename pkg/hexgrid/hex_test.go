package hexgrid

import (
	"math/rand"
	"testing"
)

func TestCubeInvariant(t *testing.T) {
	coords := []Hex{
		{0, 0}, {1, 0}, {0, 1}, {-1, 1}, {3, -7}, {-12, 5}, {100, -42},
	}
	for _, c := range coords {
		if c.Q+c.R+c.S() != 0 {
			t.Errorf("q+r+s != 0 for %v (s=%d)", c, c.S())
		}
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		h := Round(rng.Float64()*40-20, rng.Float64()*40-20)
		if h.Q+h.R+h.S() != 0 {
			t.Fatalf("Round produced invalid hex %v", h)
		}
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	for row := -6; row <= 6; row++ {
		for col := -6; col <= 6; col++ {
			h := FromOffset(col, row)
			if h.Q+h.R+h.S() != 0 {
				t.Fatalf("FromOffset(%d, %d) broke invariant: %v", col, row, h)
			}
			gotCol, gotRow := h.ToOffset()
			if gotCol != col || gotRow != row {
				t.Errorf("offset round-trip (%d, %d) -> %v -> (%d, %d)",
					col, row, h, gotCol, gotRow)
			}
		}
	}
}

func TestWorldRoundTrip(t *testing.T) {
	sizes := []float64{1, 7.5, 19, 64}
	for _, size := range sizes {
		for q := -8; q <= 8; q++ {
			for r := -8; r <= 8; r++ {
				c := Hex{Q: q, R: r}
				x, y := c.ToWorld(size)
				if got := FromWorld(x, y, size); got != c {
					t.Fatalf("world round-trip failed for %v at size %v: got %v", c, size, got)
				}
			}
		}
	}
}

func TestNeighbors(t *testing.T) {
	coords := []Hex{{0, 0}, {2, -1}, {-4, 7}}
	for _, c := range coords {
		neighbors := c.Neighbors()
		if len(neighbors) != 6 {
			t.Fatalf("expected 6 neighbors, got %d", len(neighbors))
		}
		seen := make(map[Hex]struct{}, 6)
		for _, n := range neighbors {
			if c.Distance(n) != 1 {
				t.Errorf("neighbor %v of %v is not adjacent", n, c)
			}
			// Symmetry: c must appear among n's neighbors.
			found := false
			for _, back := range n.Neighbors() {
				if back == c {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("neighbor symmetry broken between %v and %v", c, n)
			}
			seen[n] = struct{}{}
		}
		if len(seen) != 6 {
			t.Errorf("neighbors of %v are not distinct", c)
		}
	}
}

func TestNeighborOrderFixed(t *testing.T) {
	want := [6]Hex{{2, 0}, {2, -1}, {1, -1}, {0, 0}, {0, 1}, {1, 1}}
	got := Hex{1, 0}.Neighbors()
	if got != want {
		t.Fatalf("neighbor enumeration order changed: got %v, want %v", got, want)
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b Hex
		want int
	}{
		{"same", Hex{3, -2}, Hex{3, -2}, 0},
		{"adjacent", Hex{0, 0}, Hex{1, 0}, 1},
		{"straight_line", Hex{0, 0}, Hex{4, 0}, 4},
		{"diagonal", Hex{0, 0}, Hex{2, -5}, 5},
		{"negative", Hex{-3, 1}, Hex{2, -2}, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Distance(c.b); got != c.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
			}
			if got := c.b.Distance(c.a); got != c.want {
				t.Errorf("Distance is not symmetric for %v, %v", c.a, c.b)
			}
		})
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		a := Hex{rng.Intn(21) - 10, rng.Intn(21) - 10}
		b := Hex{rng.Intn(21) - 10, rng.Intn(21) - 10}
		c := Hex{rng.Intn(21) - 10, rng.Intn(21) - 10}
		if a.Distance(c) > a.Distance(b)+b.Distance(c) {
			t.Fatalf("triangle inequality violated for %v, %v, %v", a, b, c)
		}
	}
}

func TestRoundTiePrecedence(t *testing.T) {
	cases := []struct {
		name string
		q, r float64
		want Hex
	}{
		// Errors: q=0.5, r=0.5, s=0. q is not strictly largest, r beats s,
		// so r is recomputed from q and s.
		{"q_r_tied", 0.5, 0.5, Hex{1, 0}},
		// Errors: q=0.5, r=0.25, s=0.25. q strictly largest, recomputed.
		{"q_strictly_largest", 0.5, 0.25, Hex{1, 0}},
		// Exact integers round to themselves.
		{"exact", 3, -2, Hex{3, -2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Round(c.q, c.r)
			if got != c.want {
				t.Errorf("Round(%v, %v) = %v, want %v", c.q, c.r, got, c.want)
			}
			if got.Q+got.R+got.S() != 0 {
				t.Errorf("Round(%v, %v) broke invariant: %v", c.q, c.r, got)
			}
		})
	}
}

func TestLineTo(t *testing.T) {
	line := Hex{0, 0}.LineTo(Hex{3, 0})
	if len(line) != 4 {
		t.Fatalf("expected 4 hexes on line, got %d", len(line))
	}
	if line[0] != (Hex{0, 0}) || line[3] != (Hex{3, 0}) {
		t.Errorf("line endpoints wrong: %v", line)
	}
	for i := 1; i < len(line); i++ {
		if line[i-1].Distance(line[i]) != 1 {
			t.Errorf("line is not contiguous at %d: %v", i, line)
		}
	}

	if self := (Hex{2, 2}).LineTo(Hex{2, 2}); len(self) != 1 || self[0] != (Hex{2, 2}) {
		t.Errorf("degenerate line should contain only the endpoint, got %v", self)
	}
}
