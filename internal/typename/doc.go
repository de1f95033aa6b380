// Package typename renders fully-qualified type names and derives the
// scope-level canonical name used for ordering identities.
//
// # Qualified Names
//
// [Qualified] renders a reflect.Type using import paths rather than package
// names, matching what types.TypeString produces with a nil qualifier:
//
//	Qualified(reflect.TypeFor[modA.Widget]())    // "github.com/x/modA.Widget"
//	Qualified(reflect.TypeFor[[]modA.Widget]())  // "[]github.com/x/modA.Widget"
//	Qualified(reflect.TypeFor[int]())            // "int"
//
// # Scope Truncation
//
// [Scope] drops the final path segment of a qualified name:
//
//	Scope("github.com/x/modA.Widget", ".")   // "github.com/x/modA"
//	Scope("modA::modB::Widget", "::")        // "modA::modB"
//	Scope("int", ".")                        // "int" (no separator)
//
// Separators nested inside bracket pairs are skipped, so the type arguments
// of an instantiated generic never decide the scope:
//
//	Scope("github.com/x/modA.Box[github.com/x/modB.Inner]", ".")  // "github.com/x/modA"
package typename
