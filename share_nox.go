//go:build !share_x

package shamir

// Share is a point on the dealer's hidden polynomials, carrying only the
// y-coordinate for each byte of the secret. Its evaluation coordinate x is
// implicit: the caller's 1-based position for the share within whatever
// collection it appears in. Its wire encoding is [y...].
type Share struct {
	Y      []Elem
	locked bool
}

// newShare builds a Share. x is accepted for symmetry with the share_x
// variant's constructor but is not stored: this variant's x is always
// derived from the share's position, never carried on the value itself.
func newShare(x Elem, y []Elem) *Share {
	s := &Share{Y: y}
	if zeroizeEnabled {
		s.locked = mlock(s.Y)
	}
	armFinalizer(s)
	return s
}

// Bytes serializes s as [y...].
func (s *Share) Bytes() []byte {
	out := make([]byte, len(s.Y))
	copy(out, s.Y)
	return out
}

// ParseShare decodes a share previously produced by Bytes. It fails with
// ErrTooShort if b is shorter than 2 bytes, the same serialization floor
// the share_x variant enforces (there, 1 byte of x plus at least 1 byte of
// y; here, at least 2 bytes of y).
func ParseShare(b []byte) (*Share, error) {
	if len(b) < 2 {
		return nil, ErrTooShort
	}
	y := append([]Elem(nil), b...)
	return newShare(0, y), nil
}

// zeroExtra is a no-op in this variant: there is no extra field beyond Y.
func zeroExtra(s *Share) {}

// xFor returns the evaluation coordinate for s: idx, the share's 1-based
// ordinal within the caller's collection (counting absent slots).
func xFor(s *Share, idx int) Elem {
	return Elem(idx)
}
