package executability

import (
	"errors"
	"testing"

	"github.com/mutagen-io/executability/pkg/filesystem"
	"github.com/mutagen-io/executability/pkg/identity"
)

// regularFileMetadata creates metadata for a regular file with the specified
// permissions and ownership.
func regularFileMetadata(permissions filesystem.Mode, uid, gid int) *filesystem.Metadata {
	return &filesystem.Metadata{
		Name: "test",
		Mode: filesystem.ModeTypeFile | permissions,
		UID:  &uid,
		GID:  &gid,
	}
}

func TestPosixWorldExecutable(t *testing.T) {
	// A world-executable file should be executable by any identity.
	metadata := regularFileMetadata(0001, 100, 100)
	identities := []*identity.Identity{
		{UID: 0, GID: 0},
		{UID: 100, GID: 100},
		{UID: 5000, GID: 5000},
	}
	for _, who := range identities {
		if executable, err := executableByPosix(metadata, who); err != nil {
			t.Fatal("permission evaluation failed:", err)
		} else if !executable {
			t.Error("world-executable file not executable by identity:", who)
		}
	}
}

func TestPosixGroupExecutable(t *testing.T) {
	metadata := regularFileMetadata(0010, 100, 200)

	// A matching group should be able to execute.
	if executable, err := executableByPosix(metadata, &identity.Identity{UID: 300, GID: 200}); err != nil {
		t.Fatal("permission evaluation failed:", err)
	} else if !executable {
		t.Error("group-executable file not executable by owning group")
	}

	// A non-matching group should not.
	if executable, err := executableByPosix(metadata, &identity.Identity{UID: 300, GID: 300}); err != nil {
		t.Fatal("permission evaluation failed:", err)
	} else if executable {
		t.Error("group-executable file executable by non-owning group")
	}
}

func TestPosixUserExecutable(t *testing.T) {
	metadata := regularFileMetadata(0100, 100, 200)

	// The owning user should be able to execute.
	if executable, err := executableByPosix(metadata, &identity.Identity{UID: 100, GID: 300}); err != nil {
		t.Fatal("permission evaluation failed:", err)
	} else if !executable {
		t.Error("user-executable file not executable by owning user")
	}

	// A non-owning user should not.
	if executable, err := executableByPosix(metadata, &identity.Identity{UID: 300, GID: 300}); err != nil {
		t.Fatal("permission evaluation failed:", err)
	} else if executable {
		t.Error("user-executable file executable by non-owning user")
	}
}

func TestPosixSuperuserBypass(t *testing.T) {
	superuser := &identity.Identity{UID: 0, GID: 0}

	// The superuser should be able to execute a user-executable file that it
	// doesn't own.
	if executable, err := executableByPosix(regularFileMetadata(0100, 100, 200), superuser); err != nil {
		t.Fatal("permission evaluation failed:", err)
	} else if !executable {
		t.Error("user-executable file not executable by superuser")
	}

	// The same applies for a group-executable file.
	if executable, err := executableByPosix(regularFileMetadata(0010, 100, 200), superuser); err != nil {
		t.Fatal("permission evaluation failed:", err)
	} else if !executable {
		t.Error("group-executable file not executable by superuser")
	}

	// A file with no execute bits should not be executable, even by the
	// superuser.
	if executable, err := executableByPosix(regularFileMetadata(0000, 100, 200), superuser); err != nil {
		t.Fatal("permission evaluation failed:", err)
	} else if executable {
		t.Error("non-executable file executable by superuser")
	}
}

func TestPosixNoExecuteBits(t *testing.T) {
	// A file with full read/write permissions but no execute bits should not
	// be executable by anyone other than the superuser.
	metadata := regularFileMetadata(0666, 100, 200)
	identities := []*identity.Identity{
		{UID: 100, GID: 200},
		{UID: 5000, GID: 5000},
	}
	for _, who := range identities {
		if executable, err := executableByPosix(metadata, who); err != nil {
			t.Fatal("permission evaluation failed:", err)
		} else if executable {
			t.Error("file without execute bits executable by identity:", who)
		}
	}
}

func TestPosixNonRegularFile(t *testing.T) {
	// A directory should never be executable under this predicate, even with
	// every permission bit set.
	uid := 100
	gid := 100
	metadata := &filesystem.Metadata{
		Name: "test",
		Mode: filesystem.ModeTypeDirectory | 0777,
		UID:  &uid,
		GID:  &gid,
	}
	if executable, err := executableByPosix(metadata, &identity.Identity{UID: 100, GID: 100}); err != nil {
		t.Fatal("permission evaluation failed:", err)
	} else if executable {
		t.Error("directory evaluated as executable")
	}
}

func TestPosixMissingOwnership(t *testing.T) {
	// Metadata without ownership information should yield a
	// MetadataUnavailableError naming the missing attribute.
	gid := 100
	metadata := &filesystem.Metadata{
		Name: "test",
		Mode: filesystem.ModeTypeFile | 0777,
		GID:  &gid,
	}
	if _, err := executableByPosix(metadata, &identity.Identity{UID: 100, GID: 100}); err == nil {
		t.Fatal("permission evaluation succeeded without ownership information")
	} else {
		var unavailable *MetadataUnavailableError
		if !errors.As(err, &unavailable) {
			t.Fatal("permission evaluation failed with unexpected error type:", err)
		} else if unavailable.Attribute != "uid" {
			t.Error("missing attribute does not match expected:", unavailable.Attribute)
		}
	}
}

func TestPosixMissingGroupOwnership(t *testing.T) {
	uid := 100
	metadata := &filesystem.Metadata{
		Name: "test",
		Mode: filesystem.ModeTypeFile | 0777,
		UID:  &uid,
	}
	if _, err := executableByPosix(metadata, &identity.Identity{UID: 100, GID: 100}); err == nil {
		t.Fatal("permission evaluation succeeded without group ownership information")
	} else {
		var unavailable *MetadataUnavailableError
		if !errors.As(err, &unavailable) {
			t.Fatal("permission evaluation failed with unexpected error type:", err)
		} else if unavailable.Attribute != "gid" {
			t.Error("missing attribute does not match expected:", unavailable.Attribute)
		}
	}
}
