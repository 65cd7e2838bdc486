package shamir

import "runtime"

// share.go holds the behavior common to both Share variants (share_x /
// !share_x). The field layout itself lives in share_x.go and share_nox.go,
// selected at build time with //go:build tags, the same mechanism the
// teacher uses to select OS-specific code (mlock_unix.go / mlock_windows.go).

// wipeBytes overwrites b with zeros in place.
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// armFinalizer attaches a best-effort finalizer that destroys s if the
// caller never calls Destroy explicitly, mirroring the teacher's
// SecureBytes safety net. It is a no-op when zeroize_memory is disabled.
func armFinalizer(s *Share) {
	if zeroizeEnabled {
		runtime.SetFinalizer(s, (*Share).Destroy)
	}
}

// Destroy wipes the share's y-bytes (and, for the share_x variant, its x
// coordinate) and unlocks any page-locked memory. It is a no-op unless the
// zeroize_memory build tag is enabled, and safe to call more than once.
func (s *Share) Destroy() {
	if !zeroizeEnabled {
		return
	}
	if s.locked {
		munlock(s.Y)
		s.locked = false
	}
	wipeBytes(s.Y)
	zeroExtra(s)
	s.Y = nil
	runtime.SetFinalizer(s, nil)
}

// shareKey returns the canonical wire-format bytes of s as a map key, used
// to detect distinct shares by value rather than by pointer identity.
func shareKey(s *Share) string {
	return string(s.Bytes())
}
