package executability

import (
	"os"
	"sync"

	"github.com/mutagen-io/executability/pkg/environment"
	"github.com/mutagen-io/executability/pkg/filesystem"
)

// executableExtensionsOnce guards the parsing of executableExtensions.
var executableExtensionsOnce sync.Once

// executableExtensions is the process-wide executable extension list, parsed
// once from the PATHEXT environment variable. It is nil if PATHEXT is unset
// or empty, and is treated as immutable once parsed.
var executableExtensions []string

// evaluate determines executability of the file described by metadata using
// Windows extension rules. Identity overrides in options are ignored on
// Windows.
func evaluate(metadata *filesystem.Metadata, path string, options *QueryOptions) (bool, error) {
	// Load the process-wide extension list on first use.
	executableExtensionsOnce.Do(func() {
		executableExtensions = environment.ExecutableExtensions(os.Getenv("PATHEXT"))
	})

	// Apply the extension rule.
	return executableByExtension(metadata, path, executableExtensions), nil
}
