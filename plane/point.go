package plane

// Point represents an exact point in the plane as an integer linear
// combination of {1, d, d², d³}, where d = exp(iπ/6). Coeffs[k] is the
// coefficient of dᵏ. Point is comparable, so it can be used directly as
// a map key and tested with ==.
type Point struct {
	Coeffs [4]int
}

// NewPoint builds a Point from its four basis coefficients.
func NewPoint(c0, c1, c2, c3 int) Point {
	return Point{Coeffs: [4]int{c0, c1, c2, c3}}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	var r Point
	for i := range r.Coeffs {
		r.Coeffs[i] = p.Coeffs[i] + q.Coeffs[i]
	}
	return r
}

// Sub returns p − q.
func (p Point) Sub(q Point) Point {
	var r Point
	for i := range r.Coeffs {
		r.Coeffs[i] = p.Coeffs[i] - q.Coeffs[i]
	}
	return r
}

// mulByD multiplies p by d, using the identity d⁴ = d² − 1 (the minimal
// polynomial of d is d⁴ − d² + 1).
func (p Point) mulByD() Point {
	var r Point
	r.Coeffs[0] = -p.Coeffs[3]
	r.Coeffs[1] = p.Coeffs[0]
	r.Coeffs[2] = p.Coeffs[1] + p.Coeffs[3]
	r.Coeffs[3] = p.Coeffs[2]
	return r
}

// Mul returns the ring product p·q. Treating points as complex numbers,
// multiplying by a rotation constant rotates and scales exactly.
func (p Point) Mul(q Point) Point {
	var r Point
	// Horner's rule downward from q's d³ term.
	for j := range r.Coeffs {
		r.Coeffs[j] = p.Coeffs[j] * q.Coeffs[3]
	}
	for i := 2; i >= 0; i-- {
		r = r.mulByD()
		for j := range r.Coeffs {
			r.Coeffs[j] += p.Coeffs[j] * q.Coeffs[i]
		}
	}
	return r
}

// Rot returns the Point representing a rotation of s steps of 30° about
// the origin, i.e. dˢ. Any int is accepted; s is reduced modulo 12.
func Rot(s int) Point {
	s %= 12
	if s < 0 {
		s += 12
	}

	r := NewPoint(1, 0, 0, 0)
	dPower := NewPoint(0, 1, 0, 0)
	for {
		if s&1 != 0 {
			r = r.Mul(dPower)
		}
		s >>= 1
		if s == 0 {
			return r
		}
		dPower = dPower.Mul(dPower)
	}
}

// X extracts the exact x coordinate of p.
// Re(1)=1, Re(d)=√3/2, Re(d²)=1/2, Re(d³)=0; values are kept doubled so
// they stay integral.
func (p Point) X() Coord {
	return Coord{C1: 2*p.Coeffs[0] + p.Coeffs[2], Cr3: p.Coeffs[1]}
}

// Y extracts the exact y coordinate of p, doubled like X.
func (p Point) Y() Coord {
	return Coord{C1: 2*p.Coeffs[3] + p.Coeffs[1], Cr3: p.Coeffs[2]}
}
