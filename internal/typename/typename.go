package typename

import (
	"reflect"
	"strconv"
	"strings"
)

// Sep is the scope separator in Go qualified names.
const Sep = "."

// Qualified returns the fully-qualified name of t.
func Qualified(t reflect.Type) string {
	if t == nil {
		return ""
	}

	if name := t.Name(); name != "" {
		if pkg := t.PkgPath(); pkg != "" {
			return pkg + "." + name
		}

		return name
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + Qualified(t.Elem())
	case reflect.Slice:
		return "[]" + Qualified(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + Qualified(t.Elem())
	case reflect.Map:
		return "map[" + Qualified(t.Key()) + "]" + Qualified(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + Qualified(t.Elem())
		case reflect.SendDir:
			return "chan<- " + Qualified(t.Elem())
		default:
			return "chan " + Qualified(t.Elem())
		}
	default:
		return t.String()
	}
}

// Scope returns name truncated before the last sep found outside any
// bracket pair. A name without such a separator is returned unmodified.
func Scope(name, sep string) string {
	if idx := lastTopLevel(name, sep); idx >= 0 {
		return name[:idx]
	}

	return name
}

// lastTopLevel returns the index of the last sep at bracket depth zero,
// or -1 if there is none.
func lastTopLevel(name, sep string) int {
	if sep == "" {
		return -1
	}

	last := -1
	depth := 0

	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '[', '(', '{':
			depth++
			continue
		case ']', ')', '}':
			if depth > 0 {
				depth--
			}
			continue
		}

		if depth == 0 && strings.HasPrefix(name[i:], sep) {
			last = i
			i += len(sep) - 1
		}
	}

	return last
}
