package executability

import (
	"fmt"
)

// MetadataUnavailableError indicates that file metadata lacks an attribute
// required for POSIX permission evaluation, most likely because the metadata
// source or the underlying filesystem is not POSIX-compliant. It is never
// converted to a false result, regardless of query options.
type MetadataUnavailableError struct {
	// Attribute is the name of the missing metadata attribute.
	Attribute string
}

// Error implements error.
func (e *MetadataUnavailableError) Error() string {
	return fmt.Sprintf("required file metadata attribute unavailable: %s", e.Attribute)
}
