// Package pathname provides allocation-aware joining and splitting of
// pathname strings without touching the filesystem.
//
// Both operations work on in-memory character sequences only: no stat, no
// readlink, no cleaning of interior "./", "../" or duplicate '/'. Callers
// that need full normalization should use path.Clean() instead.
package pathname

const (
	// Dot - the relative name of a directory with respect to itself.
	Dot = "."

	// slashSeparator - slash separator for unix.
	slashSeparator = "/"
)

// stripDotSlash removes every leading "./" prefix from s, two characters at
// a time. A lone remaining "." is kept, so "././." strips to ".".
func stripDotSlash(s string) string {
	for len(s) >= 2 && s[0] == '.' && s[1] == '/' {
		s = s[2:]
	}
	return s
}
