package pathname

import (
	bufferPool "github.com/libp2p/go-buffer-pool"
)

// Join combines a base directory path and a subdirectory path or file name
// into a single pathname string, with a pool-backed Buffer sized up front
// so each call costs one allocation for the result and no buffer growth.
//
// A duplicate '/' between path and name is dropped and a missing one is
// filled in. An input that is exactly "." counts as empty, leading "./"
// prefixes are stripped from both inputs, and leading '/' characters are
// stripped from name. If both inputs normalize to nothing the result is
// ".".
//
// Interior "./", "../" and duplicate '/' are not parsed, and ".." segments
// are carried through untouched:
//
//	path    name    result
//	/usr    lib     /usr/lib
//	/usr    .       /usr
//	/usr    ..      /usr/..
//	.       lib     lib
//	..      lib     ../lib
//	.       .       .
//	..      ..      ../..
func Join(path, name string) string {
	if path == Dot {
		path = ""
	}
	if name == Dot {
		name = ""
	}

	name = stripDotSlash(name)
	path = stripDotSlash(path)
	for len(name) > 0 && name[0] == '/' {
		name = name[1:]
	}

	if len(path) == 0 && len(name) == 0 {
		return Dot
	}

	slash := len(path) > 0 && len(name) > 0 && path[len(path)-1] != '/'

	size := len(path) + len(name)
	if slash {
		size += len(slashSeparator)
	}

	dst := bufferPool.NewBuffer(nil)
	dst.Grow(size)
	defer dst.Reset()

	//nolint:errcheck
	//goland:noinspection GoUnhandledErrorResult
	dst.WriteString(path)
	if slash {
		dst.WriteString(slashSeparator)
	}
	dst.WriteString(name)

	return dst.String()
}
