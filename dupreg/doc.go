// Package dupreg provides a go/analysis based analyzer that reports types
// registered more than once.
//
// A registrar is a generic function whose first type argument is the type
// being registered. Mark one with a directive:
//
//	//typeid:registrar
//	func Register[T any](opts ...Option) { ... }
//
// or name it on the command line:
//
//	dupreg -registrar=example.com/schema.Register ./...
//
// Registered types are canonicalized the way typeid.Of canonicalizes them,
// so Register[Widget], Register[*Widget] and Register[Shared[Widget]] all
// register Widget when Shared implements typeid.Wrapper. The second of
// these is reported:
//
//	type example.com/app.Widget is already registered at app/schema.go:12:2
//
// Registrations are shared with importing packages through facts, so a
// package re-registering a type from a dependency is reported too. A
// //typeid:ignore directive on the same or previous line suppresses a
// report.
package dupreg
