package shamir

import (
	"fmt"
	"io"
)

// polynomial holds a secret-embedding polynomial's coefficients, ordered
// from highest degree to lowest; the last element is always the constant
// term and equals the secret byte it was built for. It is never exposed
// outside this package.
type polynomial []Elem

// randomPolynomial builds the polynomial for one secret byte: degree k-1,
// constant term = constant, with k-1 random high coefficients drawn from
// rng. If k is 1 the polynomial is just [constant] and no randomness is
// consumed.
func randomPolynomial(constant Elem, k int, rng io.Reader) (polynomial, error) {
	if k == 1 {
		return polynomial{constant}, nil
	}
	buf := make([]byte, k-1)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("shamir: reading random coefficients: %w", err)
	}
	poly := make(polynomial, 0, k)
	for i := len(buf) - 1; i >= 0; i-- {
		poly = append(poly, buf[i])
	}
	poly = append(poly, constant)
	return poly, nil
}

// evaluate computes the polynomial's value at x via Horner's scheme,
// folding coefficients in their stored highest-to-lowest order.
func (p polynomial) evaluate(field *Field, x Elem) Elem {
	var acc Elem
	for _, c := range p {
		acc = field.Add(field.Mul(acc, x), c)
	}
	return acc
}

// destroy wipes the polynomial's coefficients in place when zeroize_memory
// is enabled; it is a no-op otherwise.
func (p polynomial) destroy() {
	if !zeroizeEnabled {
		return
	}
	wipeBytes(p)
}
