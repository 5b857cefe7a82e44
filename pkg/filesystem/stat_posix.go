// +build !windows

package filesystem

import (
	"os"
	"path/filepath"
	"syscall"
)

// QueryMetadata grabs metadata for the filesystem entry at the specified path,
// following symbolic links. Errors from the underlying stat operation are
// returned unmodified, so callers can classify them using os.IsNotExist and
// os.IsPermission.
func QueryMetadata(path string) (*Metadata, error) {
	// Perform the stat operation.
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	// Convert the result.
	return NewMetadataFromFileInfo(path, info), nil
}

// NewMetadataFromFileInfo converts an os.FileInfo into a Metadata instance,
// extracting mode and ownership information from the raw stat structure if
// available. If the raw structure can't be accessed (e.g. because the
// os.FileInfo comes from a non-stat source), then the mode is reconstructed
// from the portable FileMode representation and ownership is left unset.
func NewMetadataFromFileInfo(path string, info os.FileInfo) *Metadata {
	// Create the base metadata.
	result := &Metadata{
		Name:             filepath.Base(path),
		Size:             uint64(info.Size()),
		ModificationTime: info.ModTime(),
	}

	// Extract raw stat information if possible, falling back to a
	// reconstruction of the mode from its portable representation.
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		uid := int(stat.Uid)
		gid := int(stat.Gid)
		result.Mode = Mode(stat.Mode)
		result.UID = &uid
		result.GID = &gid
	} else {
		result.Mode = Mode(info.Mode().Perm())
		if info.Mode().IsDir() {
			result.Mode |= ModeTypeDirectory
		} else if info.Mode()&os.ModeSymlink != 0 {
			result.Mode |= ModeTypeSymbolicLink
		} else if info.Mode().IsRegular() {
			result.Mode |= ModeTypeFile
		}
	}

	// Success.
	return result
}
