// +build !windows

package executability

import (
	"github.com/pkg/errors"

	"github.com/mutagen-io/executability/pkg/filesystem"
	"github.com/mutagen-io/executability/pkg/identity"
)

// evaluate determines executability of the file described by metadata using
// POSIX permission semantics. The evaluation identity is taken from the
// option overrides where present, with the ambient process identity filling
// in any component that isn't overridden. The ambient identity is only
// queried if actually needed.
func evaluate(metadata *filesystem.Metadata, path string, options *QueryOptions) (bool, error) {
	// Resolve the evaluation identity.
	var who *identity.Identity
	if options.UID != nil && options.GID != nil {
		who = &identity.Identity{UID: *options.UID, GID: *options.GID}
	} else {
		ambient, err := identity.Current()
		if err != nil {
			return false, errors.Wrap(err, "unable to resolve process identity")
		}
		who = &identity.Identity{UID: ambient.UID, GID: ambient.GID}
		if options.UID != nil {
			who.UID = *options.UID
		}
		if options.GID != nil {
			who.GID = *options.GID
		}
	}

	// Apply the permission rule.
	return executableByPosix(metadata, who)
}
