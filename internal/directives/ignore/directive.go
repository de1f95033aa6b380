// Package ignore handles //typeid:ignore directives.
package ignore

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

const prefix = "typeid:ignore"

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos    token.Pos
	reason string
	used   bool
}

// Pos returns the position of the directive comment.
func (e *Entry) Pos() token.Pos {
	return e.pos
}

// Reason returns the text after " - ", if any.
func (e *Entry) Reason() string {
	return e.reason
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			reason, ok := parseIgnoreComment(c.Text)
			if !ok {
				continue
			}

			line := fset.Position(c.Pos()).Line
			m[line] = &Entry{pos: c.Pos(), reason: reason}
		}
	}

	return m
}

// parseIgnoreComment reports whether text is an ignore directive and
// returns its reason.
//
// Supported formats:
//   - //typeid:ignore
//   - //typeid:ignore - reason
//   - // typeid:ignore // reason
func parseIgnoreComment(text string) (string, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, prefix)
	if !ok {
		return "", false
	}

	// Reject longer words such as typeid:ignored.
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}

	rest = strings.TrimSpace(rest)

	for _, marker := range []string{"- ", "//"} {
		if after, found := strings.CutPrefix(rest, marker); found {
			return strings.TrimSpace(after), true
		}
	}

	if rest == "-" {
		return "", true
	}

	return rest, true
}

// ShouldIgnore reports whether line, or the line above it, carries an
// ignore directive, marking the directive as used.
func (m Map) ShouldIgnore(line int) bool {
	for _, l := range []int{line, line - 1} {
		if entry := m[l]; entry != nil {
			entry.used = true
			return true
		}
	}

	return false
}

// Unused returns the directives that suppressed nothing, in source order.
func (m Map) Unused() []*Entry {
	var unused []*Entry

	for _, entry := range m {
		if !entry.used {
			unused = append(unused, entry)
		}
	}

	slices.SortFunc(unused, func(a, b *Entry) int {
		return int(a.pos) - int(b.pos)
	})

	return unused
}
