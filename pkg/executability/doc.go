// Package executability determines whether or not the current process would
// be permitted to execute a given file. On POSIX systems the determination is
// based on the file's permission bits and ownership; on Windows it is based on
// the file's extension and the PATHEXT environment variable.
package executability
