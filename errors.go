package shamir

import "errors"

var (
	// ErrTooShort is returned when a share's wire encoding is shorter than
	// 2 bytes.
	ErrTooShort = errors.New("shamir: share is too short")

	// ErrUnequalShareLength is returned when the present shares passed to
	// Recover or RecoverShares do not all carry the same number of
	// y-bytes.
	ErrUnequalShareLength = errors.New("shamir: shares have unequal length")

	// ErrInsufficientShares is returned when fewer distinct shares than
	// the configured threshold are available to reconstruct the secret.
	ErrInsufficientShares = errors.New("shamir: insufficient shares to meet threshold")

	// ErrWrongLength is returned when the number of share slots passed to
	// RecoverShares does not match the requested output count n.
	ErrWrongLength = errors.New("shamir: share slot count does not match n")

	// ErrInvalidPolynomial is returned when NewField or New is given a
	// Poly that is not one of ValidPolynomials.
	ErrInvalidPolynomial = errors.New("shamir: polynomial is not a valid degree-8 irreducible over GF(2)")

	// ErrInvalidThreshold is returned when New is given a threshold
	// outside [1, 255].
	ErrInvalidThreshold = errors.New("shamir: threshold must be between 1 and 255")
)
