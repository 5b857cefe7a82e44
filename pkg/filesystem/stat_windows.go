package filesystem

import (
	"os"
	"path/filepath"
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

// NewMetadataFromFileInfo converts an os.FileInfo into a Metadata instance. On
// Windows, ownership information is not available, so the UID and GID fields
// are always left unset.
func NewMetadataFromFileInfo(path string, info os.FileInfo) *Metadata {
	return &Metadata{
		Name:             filepath.Base(path),
		Mode:             Mode(info.Mode()),
		Size:             uint64(info.Size()),
		ModificationTime: info.ModTime(),
	}
}
