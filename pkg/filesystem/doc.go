// Package filesystem provides file metadata retrieval with the attributes
// needed for executability evaluation, in particular raw permission bits and
// ownership information not exposed by the Go standard library's os.FileInfo.
package filesystem
