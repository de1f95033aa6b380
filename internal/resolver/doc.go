// Package resolver produces identity tokens for Go types.
//
// # Contract
//
// [Resolve] returns a [Token] such that:
//   - two calls with the same type return equal tokens;
//   - calls with distinct canonical types return unequal tokens;
//   - tokens are comparable, usable as map keys, and totally ordered by
//     [Token.Compare];
//   - the order is stable for one process only. It follows the addresses
//     of runtime type descriptors and changes between builds.
//
// Go types carry no lifetime parameters, so every type is a valid input.
//
// # Canonicalization
//
// Before a token is produced the type passes through [Canonical], which
// repeatedly unwraps:
//
//	*T, **T                 -> T
//	W (implements Wrapper)  -> W.WrappedType()
//
// A wrapper is any type with a WrappedType() reflect.Type method, on a value
// or pointer receiver. It must return the type it owns:
//
//	type Shared[T any] struct{ p *T }
//
//	func (Shared[T]) WrappedType() reflect.Type { return reflect.TypeFor[T]() }
//
// Canonical(Shared[Widget]) and Canonical(*Widget) are both Widget.
package resolver
