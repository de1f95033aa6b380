package typeid

import (
	"reflect"
	"slices"
	"strings"

	"github.com/mpyw/typeid/internal/resolver"
	"github.com/mpyw/typeid/internal/typename"
)

// Wrapper is implemented by owning wrapper types that should share the
// identity of the type they wrap. WrappedType must work on a zero value and
// return the wrapped type, typically reflect.TypeFor of a type parameter.
type Wrapper interface {
	WrappedType() reflect.Type
}

// Identity names a type. Values are immutable and safe to copy, compare
// and hash from any goroutine. The zero Identity names no type.
type Identity struct {
	name  string
	token resolver.Token
}

// Of returns the identity of T.
func Of[T any]() Identity {
	return OfType(reflect.TypeFor[T]())
}

// OfType returns the identity of t. OfType(nil) returns the zero Identity.
func OfType(t reflect.Type) Identity {
	token := resolver.Resolve(t)
	if token.IsZero() {
		return Identity{}
	}

	return Identity{
		name:  typename.Scope(typename.Qualified(token.Type()), typename.Sep),
		token: token,
	}
}

// Name returns the scope-level name used for ordering: the qualified name
// with its final segment dropped. It is coarser than the type and two
// distinct types may share it.
func (id Identity) Name() string {
	return id.name
}

// Type returns the canonical type, or nil for the zero Identity.
func (id Identity) Type() reflect.Type {
	return id.token.Type()
}

// String returns the qualified name of the canonical type.
func (id Identity) String() string {
	return typename.Qualified(id.token.Type())
}

// IsZero reports whether id names no type.
func (id Identity) IsZero() bool {
	return id.token.IsZero()
}

// Equal reports whether id and other name the same type.
// Names are not consulted.
func (id Identity) Equal(other Identity) bool {
	return id.token == other.token
}

// Compare returns -1, 0 or +1 ordering by name, then by token.
func (id Identity) Compare(other Identity) int {
	if c := strings.Compare(id.name, other.name); c != 0 {
		return c
	}

	return id.token.Compare(other.token)
}

// Less reports whether id sorts before other.
func (id Identity) Less(other Identity) bool {
	return id.Compare(other) < 0
}

// Sort sorts ids in place by [Identity.Compare].
func Sort(ids []Identity) {
	slices.SortFunc(ids, Identity.Compare)
}
