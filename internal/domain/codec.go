// Package domain contains the rename engine and the name/path/convention
// logic it is built from.
package domain

import (
	"strings"
	"unicode"

	m "github.com/spacebat/railmv/internal/model"
)

// Decamelize converts a namespace-qualified symbol into its relative path
// form: "::" becomes "/", and each CamelCase segment becomes
// lowercase_underscore ("Admin::FooBar" -> "admin/foo_bar"). Pure string
// work; the file system is never consulted.
func Decamelize(sym m.Symbol) m.Path {
	segments := sym.Segments()
	parts := make([]string, 0, len(segments))

	for _, seg := range segments {
		parts = append(parts, decamelizeSegment(seg))
	}

	return m.Path(strings.Join(parts, "/"))
}

// Camelize is the inverse of Decamelize: "/" becomes "::", and each
// lowercase_underscore segment becomes CamelCase
// ("admin/foo_bar" -> "Admin::FooBar").
func Camelize(path m.Path) m.Symbol {
	raw := strings.Split(string(path), "/")
	parts := make([]string, 0, len(raw))

	for _, seg := range raw {
		parts = append(parts, camelizeSegment(seg))
	}

	return m.Symbol(strings.Join(parts, m.SymbolSeparator))
}

func decamelizeSegment(seg string) string {
	var b strings.Builder

	runes := []rune(seg)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 && startsUpperRun(runes, i) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// startsUpperRun reports whether position i begins a new uppercase run:
// either the previous rune is not uppercase, or an acronym run ends here
// ("HTMLParser" -> "html_parser").
func startsUpperRun(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func camelizeSegment(seg string) string {
	var b strings.Builder

	upperNext := true
	for _, r := range seg {
		if r == '_' {
			upperNext = true
			continue
		}

		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
