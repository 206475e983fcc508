package plane

import "math"

// Coord is a single exact coordinate value C1 + Cr3·√3.
type Coord struct {
	C1, Cr3 int
}

// NewCoord builds the coordinate c1 + cr3·√3.
func NewCoord(c1, cr3 int) Coord {
	return Coord{C1: c1, Cr3: cr3}
}

// Integer builds the coordinate c1 with no irrational part.
func Integer(c1 int) Coord {
	return Coord{C1: c1}
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{C1: c.C1 + o.C1, Cr3: c.Cr3 + o.Cr3}
}

// Sub returns c − o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{C1: c.C1 - o.C1, Cr3: c.Cr3 - o.Cr3}
}

// Mul returns the exact product c·o, using (√3)² = 3.
func (c Coord) Mul(o Coord) Coord {
	return Coord{
		C1:  c.C1*o.C1 + 3*c.Cr3*o.Cr3,
		Cr3: c.C1*o.Cr3 + c.Cr3*o.C1,
	}
}

// Sign reports −1, 0 or +1 for the sign of c, exactly. When the two
// terms disagree in sign, comparing c1² against 3·cr3² settles which
// dominates without ever leaving the integers.
func (c Coord) Sign() int {
	if c.C1 == 0 && c.Cr3 == 0 {
		return 0
	}
	if c.C1 >= 0 && c.Cr3 >= 0 {
		return +1
	}
	if c.C1 <= 0 && c.Cr3 <= 0 {
		return -1
	}

	if c.C1*c.C1 > 3*c.Cr3*c.Cr3 {
		if c.C1 < 0 {
			return -1
		}
		return +1
	}
	if c.Cr3 < 0 {
		return -1
	}
	return +1
}

// Abs returns |c|.
func (c Coord) Abs() Coord {
	s := c.Sign()
	return Coord{C1: c.C1 * s, Cr3: c.Cr3 * s}
}

// Cmp compares c against o, returning −1, 0 or +1.
func (c Coord) Cmp(o Coord) int {
	return c.Sub(o).Sign()
}

// Float64 converts c for display scaling. This is the only lossy
// operation in the package; nothing downstream of tile placement ever
// feeds it back in.
func (c Coord) Float64() float64 {
	return float64(c.C1) + float64(c.Cr3)*math.Sqrt(3)
}
