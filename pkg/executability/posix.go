package executability

import (
	"github.com/mutagen-io/executability/pkg/filesystem"
	"github.com/mutagen-io/executability/pkg/identity"
)

// executableByPosix determines executability using POSIX permission bits. Only
// regular files are ever considered executable. The metadata must carry
// ownership information, otherwise a MetadataUnavailableError is returned.
//
// The bit tests are evaluated in a fixed order (others, group, user,
// superuser) and shouldn't be reordered or algebraically simplified. In
// particular, the superuser branch intentionally doesn't re-test the
// others-execute bit, because that case is already handled by the first
// branch.
func executableByPosix(metadata *filesystem.Metadata, who *identity.Identity) (bool, error) {
	// Only regular files can be executable.
	if !metadata.Mode.IsRegularFile() {
		return false, nil
	}

	// Verify that ownership information is present.
	if metadata.UID == nil {
		return false, &MetadataUnavailableError{Attribute: "uid"}
	} else if metadata.GID == nil {
		return false, &MetadataUnavailableError{Attribute: "gid"}
	}

	// Check if the file is world-executable.
	if metadata.Mode&filesystem.ModePermissionOthersExecute != 0 {
		return true, nil
	}

	// Check if the file is group-executable and owned by our group.
	if metadata.Mode&filesystem.ModePermissionGroupExecute != 0 && who.GID == *metadata.GID {
		return true, nil
	}

	// Check if the file is user-executable and owned by us.
	if metadata.Mode&filesystem.ModePermissionUserExecute != 0 && who.UID == *metadata.UID {
		return true, nil
	}

	// The superuser can execute any file with at least one user or group
	// execute bit set, regardless of who owns it.
	userOrGroupExecute := filesystem.ModePermissionUserExecute | filesystem.ModePermissionGroupExecute
	if metadata.Mode&userOrGroupExecute != 0 && who.UID == 0 {
		return true, nil
	}

	// The file is not executable by this identity.
	return false, nil
}
