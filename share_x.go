//go:build share_x

package shamir

// Share is a point on the dealer's hidden polynomials: the evaluation
// coordinate x, carried explicitly, together with the y-coordinate for
// each byte of the secret. Its wire encoding is [x, y...].
type Share struct {
	X      Elem
	Y      []Elem
	locked bool
}

// newShare builds a Share carrying the given x explicitly.
func newShare(x Elem, y []Elem) *Share {
	s := &Share{X: x, Y: y}
	if zeroizeEnabled {
		s.locked = mlock(s.Y)
	}
	armFinalizer(s)
	return s
}

// Bytes serializes s as [x, y...].
func (s *Share) Bytes() []byte {
	out := make([]byte, 0, len(s.Y)+1)
	out = append(out, s.X)
	out = append(out, s.Y...)
	return out
}

// ParseShare decodes a share previously produced by Bytes. It fails with
// ErrTooShort if b does not contain at least an x-byte and one y-byte.
func ParseShare(b []byte) (*Share, error) {
	if len(b) < 2 {
		return nil, ErrTooShort
	}
	y := append([]Elem(nil), b[1:]...)
	return newShare(b[0], y), nil
}

// zeroExtra clears fields that only exist in this build variant.
func zeroExtra(s *Share) {
	s.X = 0
}

// xFor returns the evaluation coordinate for s. In the share_x variant this
// is simply the carried X field; idx (the share's 1-based position in some
// caller-supplied collection) is ignored.
func xFor(s *Share, idx int) Elem {
	return s.X
}
