package executability

import (
	"github.com/mutagen-io/executability/pkg/logging"
)

// QueryOptions controls the behavior of a single executability query. A nil
// *QueryOptions value is valid and equivalent to a pointer to a zero-valued
// QueryOptions. Queries never modify the options they're given.
type QueryOptions struct {
	// MayNotExist indicates that a path which doesn't exist, or which can't
	// be accessed due to permissions, should yield a false result instead of
	// an error.
	MayNotExist bool
	// UID, if non-nil, overrides the effective user ID used for POSIX
	// permission evaluation. It has no effect on Windows.
	UID *int
	// GID, if non-nil, overrides the effective group ID used for POSIX
	// permission evaluation. It has no effect on Windows.
	GID *int
	// Logger is the logger used to trace query decisions. It may be nil, in
	// which case no tracing is performed.
	Logger *logging.Logger
}
