package executability

import (
	"context"
	"os"

	"github.com/mutagen-io/executability/pkg/filesystem"
)

// IsExecutable determines whether or not the current process would be
// permitted to execute the file at the specified path. The options parameter
// may be nil, in which case default options are used. If the path doesn't
// exist (or can't be accessed due to permissions) and the MayNotExist option
// is set, then a false result is returned instead of an error.
func IsExecutable(path string, options *QueryOptions) (bool, error) {
	metadata, err := filesystem.QueryMetadata(path)
	return decide(metadata, err, path, options)
}

// IsExecutableContext is a context-aware variant of IsExecutable. The
// metadata query is the only point at which the operation can block, and thus
// the only point at which context cancellation is honored. Once metadata has
// been acquired, the remaining evaluation is purely computational.
func IsExecutableContext(ctx context.Context, path string, options *QueryOptions) (bool, error) {
	metadata, err := filesystem.QueryMetadataContext(ctx, path)
	return decide(metadata, err, path, options)
}

// decide applies the error suppression policy to the result of a metadata
// query and dispatches successful results to the platform-appropriate rule.
func decide(metadata *filesystem.Metadata, err error, path string, options *QueryOptions) (bool, error) {
	// Fall back to default options.
	if options == nil {
		options = &QueryOptions{}
	}

	// Handle metadata query failures. Only nonexistence and inaccessibility
	// are ever suppressed, and only on request; every other failure
	// propagates to the caller unmodified.
	if err != nil {
		if options.MayNotExist && (os.IsNotExist(err) || os.IsPermission(err)) {
			options.Logger.Debugf("treating %s as non-executable: %v", path, err)
			return false, nil
		}
		return false, err
	}

	// Dispatch to the platform rule.
	result, err := evaluate(metadata, path, options)
	if err != nil {
		return false, err
	}

	// Success.
	options.Logger.Tracef("executability of %s: %t", path, result)
	return result, nil
}
