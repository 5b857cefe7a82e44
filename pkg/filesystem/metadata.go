package filesystem

import (
	"time"
)

// Metadata encodes information about a filesystem entry.
type Metadata struct {
	// Name is the base name of the filesystem entry.
	Name string
	// Mode is the mode of the filesystem entry.
	Mode Mode
	// Size is the size of the filesystem entry in bytes.
	Size uint64
	// ModificationTime is the modification time of the filesystem entry.
	ModificationTime time.Time
	// UID is the ID of the user that owns the filesystem entry. It is nil if
	// ownership information is unavailable, which is always the case on
	// Windows and can be the case on POSIX systems if the underlying stat
	// information cannot be accessed in its raw form.
	UID *int
	// GID is the ID of the group that owns the filesystem entry. It is nil
	// under the same conditions as UID.
	GID *int
}
