//go:build !windows

package shamir

import "golang.org/x/sys/unix"

// mlock attempts to lock the memory region containing data so it is never
// paged to swap. Returns true if successful, false otherwise (locking is
// best-effort; failure to lock does not prevent the later wipe).
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

// munlock unlocks a region previously locked by mlock.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munlock(data)
}
