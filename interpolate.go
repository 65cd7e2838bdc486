package shamir

// point is a (x, y-vector) sample used for interpolation, the Go analog of
// original_source/src/math.rs's ShareWithX<POLY> / (GF256, Share) pairs.
type point struct {
	x Elem
	y []Elem
}

// interpolateAtZero reconstructs the secret bytes via Lagrange
// interpolation at x=0, per spec.md §4.3.3. pts must be non-empty, all
// pts[i].y must have equal length, and all pts[i].x must be pairwise
// distinct (a duplicate x would divide by zero below; the façade's
// distinct-bytes dedup is what guarantees this in practice).
func interpolateAtZero(field *Field, pts []point) []byte {
	secretLen := len(pts[0].y)
	weights := make([]Elem, len(pts))
	for i, pi := range pts {
		w := Elem(1)
		for j, pj := range pts {
			if i == j {
				continue
			}
			w = field.Mul(w, field.Div(pj.x, field.Add(pj.x, pi.x)))
		}
		weights[i] = w
	}
	out := make([]byte, secretLen)
	for b := 0; b < secretLen; b++ {
		var acc Elem
		for i, p := range pts {
			acc = field.Add(acc, field.Mul(p.y[b], weights[i]))
		}
		out[b] = acc
	}
	return out
}

// interpolateAt evaluates the Lagrange polynomial implied by pts at an
// arbitrary target x, per spec.md §4.3.4.
func interpolateAt(field *Field, pts []point, target Elem) []Elem {
	n := len(pts[0].y)
	out := make([]Elem, n)
	for b := 0; b < n; b++ {
		var acc Elem
		for i, pi := range pts {
			basis := Elem(1)
			for j, pj := range pts {
				if i == j {
					continue
				}
				num := field.Add(target, pj.x)
				den := field.Add(pi.x, pj.x)
				basis = field.Mul(basis, field.Div(num, den))
			}
			acc = field.Add(acc, field.Mul(pi.y[b], basis))
		}
		out[b] = acc
	}
	return out
}

// reshareAt computes the share that would have been issued at target,
// given at least 2 and at most 255 existing shares. Violating that
// precondition is a programmer error (the façade is responsible for never
// calling this with an out-of-range share count) and panics rather than
// returning an error, matching spec.md §7's classification of this as an
// unrecoverable precondition violation.
func reshareAt(field *Field, pts []point, target Elem) *Share {
	if len(pts) < 2 || len(pts) > 255 {
		panic("shamir: reshare requires between 2 and 255 shares")
	}
	y := interpolateAt(field, pts, target)
	return newShare(target, y)
}
