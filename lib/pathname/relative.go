package pathname

// RelativeName breaks a pathname string into the file name or subdirectory
// path below the base directory dir.
//
// Similar to the GNU version of basename(3), but relative to an arbitrary
// base directory rather than the last path component. Leading "./" prefixes
// are stripped from both inputs, a dir of "." contributes nothing as a
// base, and a single trailing '/' on dir is ignored for the comparison. A
// prefix match only counts when the next character of path is '/' or the
// end of the string, so dir "/usr" does not match path "/usress".
//
// If dir is not a base of path the (stripped) path is returned unchanged;
// if dir covers all of path the result is the Dot constant:
//
//	path       dir     result
//	/usr/lib   /       /usr/lib
//	/usr/lib   /usr    lib
//	/usr       /usr    .
//	/          /usr    /
//	.          /usr    .
//	..         /usr    ..
//
// RelativeName never allocates: the result is a view into path or the Dot
// constant, valid for as long as path is.
func RelativeName(path, dir string) string {
	path = stripDotSlash(path)
	dir = stripDotSlash(dir)

	if dir == Dot {
		dir = ""
	}
	if n := len(dir); n > 0 && dir[n-1] == '/' {
		dir = dir[:n-1]
	}

	if len(dir) > 0 && len(path) >= len(dir) && path[:len(dir)] == dir {
		rest := path[len(dir):]
		if len(rest) == 0 || rest[0] == '/' {
			for len(rest) > 0 && rest[0] == '/' {
				rest = rest[1:]
			}
			if len(rest) == 0 {
				return Dot
			}
			return rest
		}
		// Partial-segment match, e.g. dir "/usr" against path "/usress".
	}

	if len(path) == 0 {
		return Dot
	}
	return path
}
