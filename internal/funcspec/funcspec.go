// Package funcspec parses function specifications and matches them against
// generic call sites.
package funcspec

import (
	"go/ast"
	"go/types"
	"strings"
	"unicode"

	"golang.org/x/tools/go/analysis"
)

// Spec holds parsed components of a function specification.
// Format: "pkg/path.Func" or "pkg/path.Type.Method".
type Spec struct {
	PkgPath  string
	TypeName string // empty for package-level functions
	FuncName string
}

// Parse parses a single function specification string into components.
func Parse(s string) Spec {
	lastDot := strings.LastIndex(s, ".")
	if lastDot == -1 {
		return Spec{FuncName: s}
	}

	spec := Spec{FuncName: s[lastDot+1:]}
	prefix := s[:lastDot]

	// Type names start with uppercase; package path elements rarely do.
	if secondLastDot := strings.LastIndex(prefix, "."); secondLastDot != -1 {
		possibleType := prefix[secondLastDot+1:]
		if possibleType != "" && !strings.Contains(possibleType, "/") && unicode.IsUpper(rune(possibleType[0])) {
			spec.TypeName = possibleType
			spec.PkgPath = prefix[:secondLastDot]

			return spec
		}
	}

	spec.PkgPath = prefix

	return spec
}

// ParseList parses a comma-separated list of specifications, skipping
// blank entries.
func ParseList(s string) []Spec {
	if s == "" {
		return nil
	}

	var specs []Spec

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		specs = append(specs, Parse(part))
	}

	return specs
}

// FullName returns the specification in its flag format.
func (s Spec) FullName() string {
	var b strings.Builder

	if s.PkgPath != "" {
		b.WriteString(s.PkgPath)
		b.WriteByte('.')
	}

	if s.TypeName != "" {
		b.WriteString(s.TypeName)
		b.WriteByte('.')
	}

	b.WriteString(s.FuncName)

	return b.String()
}

// Matches checks if fn, or the generic function it instantiates, matches
// this specification.
func (s Spec) Matches(fn *types.Func) bool {
	if fn == nil {
		return false
	}

	fn = fn.Origin()

	if fn.Name() != s.FuncName {
		return false
	}

	pkg := fn.Pkg()
	if pkg == nil || pkg.Path() != s.PkgPath {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return false
	}

	recv := sig.Recv()
	if s.TypeName == "" {
		return recv == nil
	}

	if recv == nil {
		return false
	}

	recvType := recv.Type()
	if ptr, ok := recvType.(*types.Pointer); ok {
		recvType = ptr.Elem()
	}

	named, ok := types.Unalias(recvType).(*types.Named)
	if !ok {
		return false
	}

	return named.Obj().Name() == s.TypeName
}

// MatchesAny checks if fn matches any of specs.
func MatchesAny(specs []Spec, fn *types.Func) bool {
	for _, spec := range specs {
		if spec.Matches(fn) {
			return true
		}
	}

	return false
}

// Callee returns the function identifier of a call, looking through
// parentheses and explicit instantiation. Returns nil for calls of
// function values or conversions.
func Callee(call *ast.CallExpr) *ast.Ident {
	fun := ast.Unparen(call.Fun)

	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	switch f := fun.(type) {
	case *ast.Ident:
		return f
	case *ast.SelectorExpr:
		return f.Sel
	}

	return nil
}

// ExtractFunc extracts the types.Func from a call expression.
// Returns nil if the callee cannot be determined statically.
func ExtractFunc(pass *analysis.Pass, call *ast.CallExpr) *types.Func {
	ident := Callee(call)
	if ident == nil {
		return nil
	}

	fn, _ := pass.TypesInfo.Uses[ident].(*types.Func)

	return fn
}

// TypeArgs returns the type arguments of a generic call, whether explicit
// or inferred. For a method of a generic type the receiver's type arguments
// are returned. Returns nil for non-generic calls.
func TypeArgs(pass *analysis.Pass, call *ast.CallExpr) *types.TypeList {
	ident := Callee(call)
	if ident == nil {
		return nil
	}

	if inst, ok := pass.TypesInfo.Instances[ident]; ok {
		return inst.TypeArgs
	}

	fn, ok := pass.TypesInfo.Uses[ident].(*types.Func)
	if !ok {
		return nil
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return nil
	}

	recvType := sig.Recv().Type()
	if ptr, ok := recvType.(*types.Pointer); ok {
		recvType = ptr.Elem()
	}

	named, ok := types.Unalias(recvType).(*types.Named)
	if !ok || named.TypeArgs().Len() == 0 {
		return nil
	}

	return named.TypeArgs()
}
