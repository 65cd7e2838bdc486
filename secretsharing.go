// Package shamir implements Shamir's Secret Sharing over GF(2^8),
// parameterized by the choice of irreducible degree-8 polynomial. A secret
// byte string is split into shares such that any k of them reconstruct it
// while any k-1 reveal no information about it; k existing shares can also
// be reshared into a share at a new index without ever reconstructing the
// secret.
//
// This is unauthenticated Shamir: the dealer is trusted, and there is no
// verifiability of shares. There is no persistence or transport layer; the
// entire secret and every share are held fully in memory.
package shamir

import (
	"crypto/rand"
	"io"
	"log/slog"
)

// SecretSharing is parameterized by a GF(2^8) field and a threshold k. It
// holds no mutable state after construction and is safe to use
// concurrently from multiple goroutines.
type SecretSharing struct {
	field     *Field
	threshold int
	logger    *slog.Logger
}

// New constructs a SecretSharing over the field defined by poly, requiring
// threshold shares to reconstruct. poly must be one of ValidPolynomials and
// threshold must be in [1, 255].
func New(poly Poly, threshold int, opts ...Option) (*SecretSharing, error) {
	if threshold < 1 || threshold > 255 {
		return nil, ErrInvalidThreshold
	}
	field, err := NewField(poly)
	if err != nil {
		return nil, err
	}
	s := &SecretSharing{
		field:     field,
		threshold: threshold,
		logger:    discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Threshold returns k, the number of shares required to reconstruct.
func (s *SecretSharing) Threshold() int {
	return s.threshold
}

// Field returns the GF(2^8) field this SecretSharing was constructed with.
func (s *SecretSharing) Field() *Field {
	return s.field
}

// DealerRNG builds one random polynomial per byte of secret (constant term
// = that byte, degree threshold-1, upper coefficients drawn from rng) and
// returns the lazy Dealer sequence over them. secret may be empty, in
// which case the resulting shares have empty y-vectors (rejected by
// ParseShare as too short); callers are expected to supply at least one
// secret byte.
func (s *SecretSharing) DealerRNG(secret []byte, rng io.Reader) (*Dealer, error) {
	polys := make([]polynomial, len(secret))
	for i, b := range secret {
		p, err := randomPolynomial(b, s.threshold, rng)
		if err != nil {
			return nil, err
		}
		polys[i] = p
	}
	s.logger.Debug("shamir: dealer created",
		"secretLen", len(secret), "threshold", s.threshold, "poly", s.field.Poly())
	return newDealer(s.field, polys), nil
}

// Dealer is the std convenience binding DealerRNG to the process' default
// cryptographic RNG (crypto/rand). Go has no no_std mode, so unlike
// spec.md's std feature toggle this is always available; DealerRNG remains
// the RNG-explicit primitive it wraps.
func (s *SecretSharing) Dealer(secret []byte) (*Dealer, error) {
	return s.DealerRNG(secret, rand.Reader)
}

// Recover reconstructs the secret from shares, a collection whose elements
// are each either a present share or a nil "absent slot." It fails with
// UnequalShareLength if present shares disagree on y-length, or with
// InsufficientShares if fewer than s.threshold distinct shares (by
// canonical byte serialization) are present.
func (s *SecretSharing) Recover(shares []*Share) ([]byte, error) {
	pts, _, err := s.collect(shares)
	if err != nil {
		return nil, err
	}
	if len(pts) < s.threshold {
		return nil, ErrInsufficientShares
	}
	s.logger.Debug("shamir: recover", "presentDistinct", len(pts), "threshold", s.threshold)
	return interpolateAtZero(s.field, pts), nil
}

// RecoverShares takes a length-n collection of optional shares (positions
// are 1-based; position i corresponds to x=i in the No-X variant) and
// returns a length-n sequence of shares reindexed at 1..n. It fails with
// WrongLength if len(shares) != n, UnequalShareLength on mismatched
// y-lengths, or InsufficientShares if fewer than s.threshold distinct
// shares are present.
func (s *SecretSharing) RecoverShares(shares []*Share, n int) ([]*Share, error) {
	if len(shares) != n {
		return nil, ErrWrongLength
	}
	pts, _, err := s.collect(shares)
	if err != nil {
		return nil, err
	}
	if len(pts) < s.threshold {
		return nil, ErrInsufficientShares
	}
	s.logger.Debug("shamir: recoverShares", "n", n, "presentDistinct", len(pts), "threshold", s.threshold)

	if s.threshold == 1 {
		out := make([]*Share, n)
		for i := 0; i < n; i++ {
			src := pts[i%len(pts)]
			out[i] = newShare(Elem(i+1), append([]Elem(nil), src.y...))
		}
		return out, nil
	}

	out := make([]*Share, n)
	for t := 1; t <= n; t++ {
		out[t-1] = reshareAt(s.field, pts, Elem(t))
	}
	return out, nil
}

// collect scans shares (nil entries are absent slots) and returns the
// distinct-by-bytes points found, each with the x given by xFor (the carried
// x in the share_x variant, otherwise the 1-based position counting absent
// slots), per spec.md §4.4.3/§4.4.4.
func (s *SecretSharing) collect(shares []*Share) ([]point, int, error) {
	seen := make(map[string]struct{}, len(shares))
	pts := make([]point, 0, len(shares))
	shareLen := -1
	present := 0

	for i, sh := range shares {
		if sh == nil {
			continue
		}
		present++
		if shareLen == -1 {
			shareLen = len(sh.Y)
		} else if len(sh.Y) != shareLen {
			return nil, present, ErrUnequalShareLength
		}
		key := shareKey(sh)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pts = append(pts, point{x: xFor(sh, i+1), y: sh.Y})
	}
	return pts, present, nil
}
