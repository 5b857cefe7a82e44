// Package identity provides access to the effective user and group identity
// of the current process, as used for POSIX permission evaluation.
package identity

import (
	"os"
)

// Identity encodes the effective user and group identity under which
// permission checks are evaluated.
type Identity struct {
	// UID is the effective user ID.
	UID int
	// GID is the effective group ID.
	GID int
}

// UnavailableError indicates that the ambient identity of the current process
// could not be determined, typically because the platform doesn't have a
// meaningful notion of POSIX user and group IDs.
type UnavailableError struct{}

// Error implements error.
func (e *UnavailableError) Error() string {
	return "ambient process identity unavailable"
}

// Current returns the ambient effective identity of the current process. It
// returns an UnavailableError if the platform doesn't report meaningful
// effective user and group IDs (e.g. on Windows, where they are reported as
// -1).
func Current() (*Identity, error) {
	// Query effective IDs.
	uid := os.Geteuid()
	gid := os.Getegid()

	// Watch for platforms where these IDs aren't meaningful.
	if uid < 0 || gid < 0 {
		return nil, &UnavailableError{}
	}

	// Success.
	return &Identity{UID: uid, GID: gid}, nil
}
