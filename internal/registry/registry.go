package registry

import (
	"cmp"
	"slices"

	"github.com/mpyw/typeid"
)

// Site is one registration of a type.
type Site struct {
	Type     string          // qualified name of the canonical type
	Key      string          // identity key; Type when empty
	Scope    string          // scope-level name, as typeid.Identity.Name
	PkgPath  string          // package containing the registration
	Location typeid.Location // file:line:column of the call
	Local    bool            // type mentions a function-local declaration
}

func (s Site) key() string {
	if s.Key != "" {
		return s.Key
	}

	return s.Type
}

// Compare orders sites by scope, then type, then location.
func (s Site) Compare(other Site) int {
	return cmp.Or(
		cmp.Compare(s.Scope, other.Scope),
		cmp.Compare(s.Type, other.Type),
		s.Location.Compare(other.Location),
	)
}

// Registry holds the first registration site of each canonical type.
type Registry struct {
	sites map[string]Site
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{sites: make(map[string]Site)}
}

// Add records site unless its type is already registered, in which case
// the earlier site is returned with ok set to false.
func (r *Registry) Add(site Site) (prev Site, ok bool) {
	if prev, exists := r.sites[site.key()]; exists {
		return prev, false
	}

	r.sites[site.key()] = site

	return Site{}, true
}

// Lookup returns the registration site for an identity key, which is the
// qualified type name for package-level types.
func (r *Registry) Lookup(typ string) (Site, bool) {
	site, ok := r.sites[typ]
	return site, ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.sites)
}

// Sites returns all sites in identity order.
func (r *Registry) Sites() []Site {
	sites := make([]Site, 0, len(r.sites))
	for _, site := range r.sites {
		sites = append(sites, site)
	}

	slices.SortFunc(sites, Site.Compare)

	return sites
}

// SitesIn returns the sites registered from pkgPath in identity order.
func (r *Registry) SitesIn(pkgPath string) []Site {
	return slices.DeleteFunc(r.Sites(), func(s Site) bool {
		return s.PkgPath != pkgPath
	})
}

// Exportable returns the sites of pkgPath that other packages can refer
// to. Function-local types are invisible outside their package.
func (r *Registry) Exportable(pkgPath string) []Site {
	return slices.DeleteFunc(r.SitesIn(pkgPath), func(s Site) bool {
		return s.Local
	})
}
