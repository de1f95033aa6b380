// Package registrar handles //typeid:registrar directives and the
// -registrar flag.
package registrar

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/typeid/internal/funcspec"
)

// Fact marks a function declared as a registrar, so packages importing it
// recognize its call sites.
type Fact struct {
	Name string // qualified function name
}

// AFact implements analysis.Fact.
func (*Fact) AFact() {}

func (*Fact) String() string { return "registrar" }

// Map tracks functions that register the type given as their first type
// argument.
type Map struct {
	pass     *analysis.Pass
	local    map[*types.Func]struct{} // from directives
	external []funcspec.Spec          // from -registrar flag
}

// IsRegistrar checks if a function is marked as a registrar.
func (m *Map) IsRegistrar(fn *types.Func) bool {
	if m == nil || fn == nil {
		return false
	}

	fn = fn.Origin()

	if _, ok := m.local[fn]; ok {
		return true
	}

	if funcspec.MatchesAny(m.external, fn) {
		return true
	}

	return m.pass != nil && fn.Pkg() != m.pass.Pkg && m.pass.ImportObjectFact(fn, new(Fact))
}

// Len returns the number of registrars declared locally or named by flag.
// Registrars imported through facts are not counted.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.local) + len(m.external)
}

// Build scans files for functions marked with the directive and parses the
// -registrar flag value.
func Build(pass *analysis.Pass, externalRegistrars string) *Map {
	m := &Map{
		pass:     pass,
		local:    make(map[*types.Func]struct{}),
		external: funcspec.ParseList(externalRegistrars),
	}

	for _, file := range pass.Files {
		buildRegistrarsForFile(pass, file, m.local)
	}

	return m
}

// buildRegistrarsForFile scans a single file for registrar directives.
// A directive applies to the function declared on the following line, or
// to any function whose doc comment contains it.
func buildRegistrarsForFile(pass *analysis.Pass, file *ast.File, m map[*types.Func]struct{}) {
	directiveLines := make(map[int]bool)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if isRegistrarComment(c.Text) {
				directiveLines[pass.Fset.Position(c.Pos()).Line] = true
			}
		}
	}

	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}

		funcLine := pass.Fset.Position(funcDecl.Pos()).Line
		if !directiveLines[funcLine-1] && !hasDirective(funcDecl.Doc) {
			continue
		}

		fn, ok := pass.TypesInfo.ObjectOf(funcDecl.Name).(*types.Func)
		if !ok {
			continue
		}

		m[fn] = struct{}{}
		pass.ExportObjectFact(fn, &Fact{Name: fn.FullName()})
	}
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if isRegistrarComment(c.Text) {
			return true
		}
	}

	return false
}

// isRegistrarComment checks if a comment is a registrar directive.
func isRegistrarComment(text string) bool {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, "typeid:registrar")

	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}
