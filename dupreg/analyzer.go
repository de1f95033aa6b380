package dupreg

import (
	"errors"
	"flag"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/typeid"
	"github.com/mpyw/typeid/internal/directives/ignore"
	"github.com/mpyw/typeid/internal/directives/registrar"
	"github.com/mpyw/typeid/internal/funcspec"
	"github.com/mpyw/typeid/internal/registry"
	"github.com/mpyw/typeid/internal/typeutil"
)

// Flags for the analyzer.
var (
	registrars   string
	crossPackage bool
	summary      bool
)

func init() {
	Analyzer.Flags.StringVar(&registrars, "registrar", "",
		"comma-separated list of registrar functions whose first type argument is registered (e.g., pkg.Func or pkg.Type.Method)")
	Analyzer.Flags.BoolVar(&crossPackage, "cross-package", true,
		"also report registrations that repeat a registration made in an imported package")
	Analyzer.Flags.BoolVar(&summary, "summary", false,
		"report the types each package registers, in identity order")
}

// Analyzer reports duplicate type registrations.
var Analyzer = &analysis.Analyzer{
	Name:      "dupreg",
	Doc:       "reports types registered more than once under the same typeid identity",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	Run:       run,
	Flags:     flag.FlagSet{},
	FactTypes: []analysis.Fact{new(registrar.Fact), new(registrations)},
}

// ErrNoInspector is returned when the inspect analyzer result is missing.
var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	// Generated files register types but are never reported on
	skipFiles := buildSkipFiles(pass)

	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	regs := registrar.Build(pass, registrars)

	reg := registry.New()
	if crossPackage {
		importSites(pass, reg)
	}

	checkCalls(pass, insp, regs, reg, ignoreMaps, skipFiles)

	exportSites(pass, reg)

	if summary {
		reportSummary(pass, reg)
	}

	reportUnusedIgnores(pass, ignoreMaps)

	return nil, nil
}

// buildSkipFiles creates a set of filenames to skip.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			skipFiles[pass.Fset.Position(file.Pos()).Filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// checkCalls records every registrar call in source order and reports
// those whose type was already registered.
func checkCalls(
	pass *analysis.Pass,
	insp *inspector.Inspector,
	regs *registrar.Map,
	reg *registry.Registry,
	ignoreMaps map[string]ignore.Map,
	skipFiles map[string]bool,
) {
	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		site, ok := registration(pass, regs, call)
		if !ok {
			return
		}

		prev, added := reg.Add(site)
		if added {
			return
		}

		posn := pass.Fset.Position(call.Pos())
		if skipFiles[posn.Filename] {
			return
		}

		if m := ignoreMaps[posn.Filename]; m != nil && m.ShouldIgnore(posn.Line) {
			return
		}

		pass.Reportf(call.Pos(), "type %s is already registered at %s", site.Type, prev.Location)
	})
}

// registration builds the site for a registrar call. Calls whose type
// depends on a type parameter register nothing statically known.
func registration(pass *analysis.Pass, regs *registrar.Map, call *ast.CallExpr) (registry.Site, bool) {
	if !regs.IsRegistrar(funcspec.ExtractFunc(pass, call)) {
		return registry.Site{}, false
	}

	args := funcspec.TypeArgs(pass, call)
	if args == nil || args.Len() == 0 {
		return registry.Site{}, false
	}

	typ := typeutil.Canonical(args.At(0))
	if typeutil.HasTypeParam(typ) {
		return registry.Site{}, false
	}

	site := registry.Site{
		Type:     typeutil.Qualified(typ),
		Scope:    typeutil.Scope(typ),
		PkgPath:  pass.Pkg.Path(),
		Location: typeid.NewLocation(pass.Fset.Position(call.Pos()).String()),
	}

	// Same-named types declared in different functions print alike;
	// their declaration sites tell them apart.
	if locals := typeutil.LocalObjects(typ); len(locals) > 0 {
		var key strings.Builder
		key.WriteString(site.Type)
		for _, obj := range locals {
			key.WriteString("@")
			key.WriteString(pass.Fset.Position(obj.Pos()).String())
		}

		site.Key = key.String()
		site.Local = true
	}

	return site, true
}

// reportSummary lists the package's own registrations at its package clause.
func reportSummary(pass *analysis.Pass, reg *registry.Registry) {
	local := reg.SitesIn(pass.Pkg.Path())
	if len(local) == 0 || len(pass.Files) == 0 {
		return
	}

	names := make([]string, len(local))
	for i, s := range local {
		names[i] = s.Type
	}

	pass.Reportf(pass.Files[0].Package, "registers %s", strings.Join(names, ", "))
}

// reportUnusedIgnores reports ignore directives that suppressed nothing.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map) {
	for _, ignoreMap := range ignoreMaps {
		for _, unused := range ignoreMap.Unused() {
			pass.Reportf(unused.Pos(), "unused typeid:ignore directive")
		}
	}
}
