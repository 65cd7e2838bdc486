//go:build !zeroize_memory

package shamir

// zeroizeEnabled is false by default: no page-locking, no wiping. Build
// with `-tags zeroize_memory` to enable it (see zeroize_on.go).
const zeroizeEnabled = false
