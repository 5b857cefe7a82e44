// Package environment provides parsing facilities for environment-derived
// configuration.
package environment

import (
	"strings"
)

// ExecutableExtensions parses a PATHEXT-style semicolon-delimited extension
// list (e.g. ".COM;.EXE;.BAT") into its individual extensions, dropping any
// empty entries and preserving the relative order of the remainder. It returns
// nil for an empty value, which callers should treat the same as the list
// being entirely absent.
func ExecutableExtensions(pathext string) []string {
	// Split the list into entries.
	entries := strings.Split(pathext, ";")

	// Filter out empty entries.
	var result []string
	for _, entry := range entries {
		if entry != "" {
			result = append(result, entry)
		}
	}

	// Done.
	return result
}
