// Package typeid provides a canonical identity for Go types, intended as a
// registry key in type-reflection and schema-export systems.
//
// # Identity
//
// [Of] names a type:
//
//	id := typeid.Of[modA.Widget]()
//	id.Name()    // "github.com/x/modA"
//	id.String()  // "github.com/x/modA.Widget"
//
// Identities differ from plain reflect.Type in three ways:
//   - owning wrappers resolve to the type they own, so Of[*Widget],
//     Of[**Widget] and Of[Shared[Widget]] (see [Wrapper]) all equal
//     Of[Widget];
//   - [Identity.Equal] looks only at the resolved type, never at the name;
//   - [Identity.Compare] is a total order that sorts by scope name first,
//     so output grouped by package comes out the same way every time.
//
// Ties between identities sharing a scope are broken by an in-process
// token. That part of the order is consistent within one run and not
// across builds.
//
// # Location
//
// [Location] is an opaque registration-site tag used in diagnostics such
// as "already registered at ...". Its content is never parsed:
//
//	loc := typeid.NewLocation("schema/widget.go:42:1")
//	loc.String()  // "schema/widget.go:42:1"
//
// [Here] and [Caller] build one from the calling frame.
package typeid
