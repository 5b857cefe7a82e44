package executability

import (
	"path/filepath"
	"strings"

	"github.com/mutagen-io/executability/pkg/filesystem"
)

// executableByExtension determines executability by matching the path's
// extension against a list of executable extensions, mirroring Windows
// execution rules. Only regular files are ever considered executable. A nil
// extension list means the environment doesn't define one, in which case
// every regular file is treated as executable. Matching is case-insensitive
// on both sides.
func executableByExtension(metadata *filesystem.Metadata, path string, extensions []string) bool {
	// Only regular files can be executable.
	if !metadata.Mode.IsRegularFile() {
		return false
	}

	// If the environment doesn't define an extension list, then treat every
	// regular file as executable.
	if extensions == nil {
		return true
	}

	// Extract and normalize the path's extension. This will include the
	// leading dot and will be empty if the path has no extension.
	extension := strings.ToLower(filepath.Ext(path))

	// Check for membership in the extension list.
	for _, candidate := range extensions {
		if extension == strings.ToLower(candidate) {
			return true
		}
	}
	return false
}
