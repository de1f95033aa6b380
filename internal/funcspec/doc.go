// Package funcspec provides function specification parsing and matching.
//
// # Specification Format
//
// A function specification has the format:
//
//	pkg/path.FuncName           # Package-level function
//	pkg/path.TypeName.Method    # Method on type
//
// Examples:
//
//	example.com/schema.Register
//	example.com/schema.Registry.Add
//
// Use [ParseList] for the comma-separated form accepted by the -registrar
// flag.
//
// # Matching Generic Calls
//
// Registrars are generic, so a call site refers to an instantiation:
//
//	schema.Register[Widget]()
//	schema.Register[Widget, Meta](meta)
//	(schema.Register[Widget])()
//
// [ExtractFunc] resolves all of these to the *types.Func used at the call,
// [Spec.Matches] compares against its generic origin, and [TypeArgs]
// returns the explicit or inferred type arguments from
// types.Info.Instances.
package funcspec
