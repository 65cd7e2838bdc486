package shamir

import "runtime"

// Dealer is the lazy evaluator iterator described in spec.md §3/§4.3.2: it
// owns a set of per-secret-byte polynomials (materialized eagerly so it
// never retains the caller's RNG) and yields one Share per call to Next,
// for x = 1, 2, ..., 255 in order. It is finite and not restartable.
type Dealer struct {
	field *Field
	polys []polynomial
	x     int
	done  bool
}

// newDealer wraps polys (one polynomial per secret byte) into a Dealer
// ready to emit shares starting at x=1.
func newDealer(field *Field, polys []polynomial) *Dealer {
	d := &Dealer{field: field, polys: polys}
	if zeroizeEnabled {
		runtime.SetFinalizer(d, (*Dealer).Destroy)
	}
	return d
}

// Next produces the next share in x order, or (nil, false) once all 255
// shares have been emitted. It does not block and never errors: all
// randomness was already consumed when the Dealer was constructed.
func (d *Dealer) Next() (*Share, bool) {
	if d.done || d.x >= 255 {
		d.done = true
		return nil, false
	}
	d.x++
	x := Elem(d.x)
	y := make([]Elem, len(d.polys))
	for i, p := range d.polys {
		y[i] = p.evaluate(d.field, x)
	}
	return newShare(x, y), true
}

// Take drains up to n shares from d, stopping early if the sequence is
// exhausted first.
func (d *Dealer) Take(n int) []*Share {
	out := make([]*Share, 0, n)
	for i := 0; i < n; i++ {
		s, ok := d.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

// Destroy wipes every polynomial the dealer owns when zeroize_memory is
// enabled. It is a no-op otherwise, and safe to call more than once.
func (d *Dealer) Destroy() {
	if !zeroizeEnabled {
		return
	}
	for _, p := range d.polys {
		p.destroy()
	}
	d.polys = nil
	runtime.SetFinalizer(d, nil)
}
