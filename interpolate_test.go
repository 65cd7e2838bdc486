package shamir

import (
	"bytes"
	"testing"
)

func buildShares(t *testing.T, field *Field, secretByte Elem, k, n int, seed byte) []point {
	t.Helper()
	rng := bytes.NewReader(bytes.Repeat([]byte{seed}, k-1))
	poly, err := randomPolynomial(secretByte, k, rng)
	if err != nil {
		t.Fatalf("randomPolynomial: %v", err)
	}
	d := newDealer(field, []polynomial{poly})
	pts := make([]point, 0, n)
	for i := 0; i < n; i++ {
		s, ok := d.Next()
		if !ok {
			t.Fatalf("dealer exhausted early at i=%d", i)
		}
		pts = append(pts, point{x: xFor(s, i+1), y: s.Y})
	}
	return pts
}

func TestInterpolateAtZeroRecoversConstant(t *testing.T) {
	field, err := NewField(PolyReedSolomon)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	pts := buildShares(t, field, 185, 10, 10, 0x42)
	got := interpolateAtZero(field, pts)
	if len(got) != 1 || got[0] != 185 {
		t.Fatalf("interpolateAtZero = %v, want [185]", got)
	}
}

// T7: reshare idempotence — reshared share at x = i (one of the inputs)
// equals the original share's y at that x.
func TestReshareIdempotence(t *testing.T) {
	field, err := NewField(PolyAES)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	pts := buildShares(t, field, 185, 8, 8, 0x11)
	for _, p := range pts {
		reshared := reshareAt(field, pts, p.x)
		if !bytes.Equal(reshared.Y, p.y) {
			t.Fatalf("reshare at x=%d: y=%v, want %v", p.x, reshared.Y, p.y)
		}
	}
}

// T8: reshared shares recombine to the original secret.
func TestReshareThenRecover(t *testing.T) {
	field, err := NewField(PolyAES)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	const k = 5
	pts := buildShares(t, field, 77, k, k, 0x07)

	resharedPts := make([]point, 0, k+3)
	for t2 := k + 1; t2 <= k+1+k-1; t2++ {
		s := reshareAt(field, pts, Elem(t2))
		resharedPts = append(resharedPts, point{x: Elem(t2), y: s.Y})
	}
	got := interpolateAtZero(field, resharedPts)
	if len(got) != 1 || got[0] != 77 {
		t.Fatalf("interpolateAtZero(reshared) = %v, want [77]", got)
	}
}

func TestReshareAtPanicsOnArityViolation(t *testing.T) {
	field, err := NewField(PolyAES)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("reshareAt with 1 point did not panic")
		}
	}()
	reshareAt(field, []point{{x: 1, y: []Elem{1}}}, 2)
}
