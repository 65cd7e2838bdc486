package shamir

import (
	"io"
	"log/slog"
)

// discardLogger is the default logger for a SecretSharing that was not
// given one via WithLogger: it emits nothing, the same default posture as
// the teacher's own Logger when its level is Off.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Option configures a SecretSharing at construction time. This is the only
// per-instance (as opposed to build-time) configuration surface the
// library has.
type Option func(*SecretSharing)

// WithLogger attaches a structured logger to a SecretSharing. Debug-level
// spans are emitted for dealer construction and recovery attempts (share
// counts, threshold, byte lengths); secret and share contents are never
// logged. A nil logger is treated the same as not passing this option.
func WithLogger(logger *slog.Logger) Option {
	return func(s *SecretSharing) {
		if logger != nil {
			s.logger = logger
		}
	}
}
