package resolver

import (
	"cmp"
	"reflect"
)

// maxUnwrap bounds canonicalization so wrappers pointing at each other
// cannot loop forever.
const maxUnwrap = 64

// wrapper mirrors typeid.Wrapper.
type wrapper interface {
	WrappedType() reflect.Type
}

var wrapperType = reflect.TypeFor[wrapper]()

// Token is an opaque identity for a canonical type.
// The zero Token names no type.
type Token struct {
	typ reflect.Type
}

// Resolve returns the token for t after canonicalization.
func Resolve(t reflect.Type) Token {
	return Token{typ: Canonical(t)}
}

// Type returns the canonical type the token names, or nil for the zero Token.
func (t Token) Type() reflect.Type {
	return t.typ
}

// IsZero reports whether t names no type.
func (t Token) IsZero() bool {
	return t.typ == nil
}

// Compare orders tokens by type descriptor address. The zero Token sorts first.
func (t Token) Compare(other Token) int {
	return cmp.Compare(t.addr(), other.addr())
}

func (t Token) addr() uintptr {
	if t.typ == nil {
		return 0
	}

	return reflect.ValueOf(t.typ).Pointer()
}

// Canonical strips pointers and wrapper types from t.
func Canonical(t reflect.Type) reflect.Type {
	for range maxUnwrap {
		if t == nil {
			return nil
		}

		if t.Kind() == reflect.Pointer {
			// *W unwraps to W before any WrappedType method is consulted.
			t = t.Elem()
			continue
		}

		inner, ok := unwrap(t)
		if !ok || inner == nil || inner == t {
			return t
		}

		t = inner
	}

	return t
}

// unwrap calls WrappedType on a zero value of t when t, or *t, is a wrapper.
func unwrap(t reflect.Type) (reflect.Type, bool) {
	// Interface types satisfy Implements when their method set includes
	// WrappedType, but there is no value to call it on.
	if t.Kind() == reflect.Interface {
		return nil, false
	}

	if t.Implements(wrapperType) {
		w, ok := reflect.Zero(t).Interface().(wrapper)
		if !ok {
			return nil, false
		}

		return safeWrapped(w)
	}

	if reflect.PointerTo(t).Implements(wrapperType) {
		w, ok := reflect.New(t).Interface().(wrapper)
		if !ok {
			return nil, false
		}

		return safeWrapped(w)
	}

	return nil, false
}

// safeWrapped treats a wrapper that panics on a zero receiver as not a wrapper.
func safeWrapped(w wrapper) (inner reflect.Type, ok bool) {
	defer func() {
		if recover() != nil {
			inner, ok = nil, false
		}
	}()

	return w.WrappedType(), true
}
