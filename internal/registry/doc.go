// Package registry tracks type registration sites for duplicate detection.
//
// # Overview
//
// Each [Site] records where a canonical type was registered. The registry
// keeps only the first site per type; a later [Registry.Add] for the same
// type returns the earlier site so the caller can report both:
//
//	reg := registry.New()
//	reg.Add(registry.Site{Type: "example.com/a.Widget", Location: loc1})
//	prev, ok := reg.Add(registry.Site{Type: "example.com/a.Widget", Location: loc2})
//	// ok == false, prev.Location == loc1
//
// Types are keyed by their qualified canonical name, which is stable across
// packages and analysis runs, so sites imported from facts compare equal to
// local ones. A type built from function-local declarations carries a
// [Site.Key] that adds the declarations' positions, since two functions may
// each declare their own T; such sites are left out of [Registry.Exportable].
//
// # Ordering
//
// [Registry.Sites] returns sites sorted by [Site.Compare]: scope name first,
// like typeid.Identity, then the full type name. The static order needs no
// in-process token and is the same on every run.
package registry
