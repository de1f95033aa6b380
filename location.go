package typeid

import (
	"runtime"
	"strconv"
	"strings"
)

// Location tags the site that registered a type. The content is opaque:
// equality and ordering are byte-wise over the wrapped string.
type Location struct {
	s string
}

// NewLocation wraps s without validating it.
func NewLocation(s string) Location {
	return Location{s: s}
}

// Here returns the location of its caller.
func Here() Location {
	return Caller(1)
}

// Caller returns the location of the frame skip levels above its caller,
// as "file:line". An unknown frame yields the zero Location.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}

	return Location{s: file + ":" + strconv.Itoa(line)}
}

// String returns the wrapped string unchanged.
func (l Location) String() string {
	return l.s
}

// IsZero reports whether l wraps the empty string.
func (l Location) IsZero() bool {
	return l.s == ""
}

// Equal reports whether l and other wrap identical strings.
func (l Location) Equal(other Location) bool {
	return l.s == other.s
}

// Compare orders locations lexicographically.
func (l Location) Compare(other Location) int {
	return strings.Compare(l.s, other.s)
}
