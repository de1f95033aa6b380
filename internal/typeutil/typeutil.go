// Package typeutil canonicalizes go/types types the way the typeid resolver
// canonicalizes reflect types.
package typeutil

import (
	"go/types"

	"github.com/mpyw/typeid/internal/typename"
)

const (
	reflectPkgPath = "reflect"
	wrapperMethod  = "WrappedType"
	maxUnwrap      = 64
)

// Canonical strips pointers and single-parameter wrapper types from t.
func Canonical(t types.Type) types.Type {
	for range maxUnwrap {
		if t == nil {
			return nil
		}

		t = types.Unalias(t)

		// Defined pointer types (type P *T) unwrap too, as reflect sees
		// them as pointer kinds.
		if ptr, ok := t.Underlying().(*types.Pointer); ok {
			t = ptr.Elem()
			continue
		}

		inner, ok := WrappedArg(t)
		if !ok || types.Identical(inner, t) {
			return t
		}

		t = inner
	}

	return t
}

// WrappedArg returns the type argument of t if t is an instantiated generic
// type with exactly one type argument and a WrappedType() reflect.Type
// method on its value or pointer receiver.
func WrappedArg(t types.Type) (types.Type, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}

	args := named.TypeArgs()
	if args.Len() != 1 {
		return nil, false
	}

	if _, isIface := named.Underlying().(*types.Interface); isIface {
		return nil, false
	}

	obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(named), true, nil, wrapperMethod)
	fn, ok := obj.(*types.Func)
	if !ok || !returnsReflectType(fn) {
		return nil, false
	}

	return args.At(0), true
}

// returnsReflectType checks for the signature func() reflect.Type.
func returnsReflectType(fn *types.Func) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	return isNamedType(sig.Results().At(0).Type(), reflectPkgPath, "Type")
}

// isNamedType checks if the type matches the given package path and type name.
func isNamedType(t types.Type, pkgPath, typeName string) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return obj.Pkg().Path() == pkgPath && obj.Name() == typeName
}

// Qualified returns the fully-qualified name of t.
func Qualified(t types.Type) string {
	return types.TypeString(t, nil)
}

// Scope returns the scope-level name of t, matching typeid.Identity.Name.
func Scope(t types.Type) string {
	return typename.Scope(Qualified(t), typename.Sep)
}

// HasTypeParam reports whether t mentions a type parameter, as happens for
// registrations inside generic code.
func HasTypeParam(t types.Type) bool {
	return anyComponent(t, func(c types.Type) bool {
		_, ok := c.(*types.TypeParam)
		return ok
	})
}

// LocalObjects returns the function-local named types t mentions, in the
// order they are encountered. Such types share a qualified name with any
// same-named type declared in another function.
func LocalObjects(t types.Type) []*types.TypeName {
	var locals []*types.TypeName

	anyComponent(t, func(c types.Type) bool {
		named, ok := c.(*types.Named)
		if !ok {
			return false
		}

		if obj := named.Obj(); isLocal(obj) {
			locals = append(locals, obj)
		}

		return false
	})

	return locals
}

func isLocal(obj *types.TypeName) bool {
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return obj.Parent() != nil && obj.Parent() != obj.Pkg().Scope()
}

// anyComponent reports whether pred holds for t or any type it is composed
// of. Named types contribute their type arguments, not their underlying
// type, so the walk terminates on recursive types.
func anyComponent(t types.Type, pred func(types.Type) bool) bool {
	if t == nil {
		return false
	}

	t = types.Unalias(t)
	if pred(t) {
		return true
	}

	switch t := t.(type) {
	case *types.Pointer:
		return anyComponent(t.Elem(), pred)
	case *types.Slice:
		return anyComponent(t.Elem(), pred)
	case *types.Array:
		return anyComponent(t.Elem(), pred)
	case *types.Chan:
		return anyComponent(t.Elem(), pred)
	case *types.Map:
		return anyComponent(t.Key(), pred) || anyComponent(t.Elem(), pred)
	case *types.Named:
		args := t.TypeArgs()
		for i := range args.Len() {
			if anyComponent(args.At(i), pred) {
				return true
			}
		}
	case *types.Tuple:
		for i := range t.Len() {
			if anyComponent(t.At(i).Type(), pred) {
				return true
			}
		}
	case *types.Signature:
		return anyComponent(t.Params(), pred) || anyComponent(t.Results(), pred)
	case *types.Struct:
		for i := range t.NumFields() {
			if anyComponent(t.Field(i).Type(), pred) {
				return true
			}
		}
	case *types.Interface:
		for i := range t.NumExplicitMethods() {
			if anyComponent(t.ExplicitMethod(i).Type(), pred) {
				return true
			}
		}
		for i := range t.NumEmbeddeds() {
			if anyComponent(t.EmbeddedType(i), pred) {
				return true
			}
		}
	case *types.Union:
		for i := range t.Len() {
			if anyComponent(t.Term(i).Type(), pred) {
				return true
			}
		}
	}

	return false
}
