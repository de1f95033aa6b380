package dupreg

import (
	"fmt"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/typeid"
	"github.com/mpyw/typeid/internal/registry"
)

// registrations is the package fact listing a package's registration sites.
type registrations struct {
	Sites []factSite
}

type factSite struct {
	Type     string
	Scope    string
	Location string
}

func (*registrations) AFact() {}

func (r *registrations) String() string {
	return fmt.Sprintf("registrations=%d", len(r.Sites))
}

// importSites seeds reg with the registrations of every dependency.
// Packages are visited in path order so the surviving site of a type
// registered by two dependencies does not depend on fact order.
func importSites(pass *analysis.Pass, reg *registry.Registry) {
	facts := pass.AllPackageFacts()
	slices.SortFunc(facts, func(a, b analysis.PackageFact) int {
		return strings.Compare(pkgPath(a.Package), pkgPath(b.Package))
	})

	for _, f := range facts {
		r, ok := f.Fact.(*registrations)
		if !ok {
			continue
		}

		for _, s := range r.Sites {
			reg.Add(registry.Site{
				Type:     s.Type,
				Scope:    s.Scope,
				PkgPath:  pkgPath(f.Package),
				Location: typeid.NewLocation(s.Location),
			})
		}
	}
}

// exportSites publishes the sites first registered by this package whose
// types other packages can name.
func exportSites(pass *analysis.Pass, reg *registry.Registry) {
	local := reg.Exportable(pass.Pkg.Path())
	if len(local) == 0 {
		return
	}

	fact := &registrations{Sites: make([]factSite, len(local))}
	for i, s := range local {
		fact.Sites[i] = factSite{
			Type:     s.Type,
			Scope:    s.Scope,
			Location: s.Location.String(),
		}
	}

	pass.ExportPackageFact(fact)
}

func pkgPath(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}

	return pkg.Path()
}
