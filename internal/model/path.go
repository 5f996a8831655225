// Package model holds the plain data types shared by the railmv domain,
// adapter and controller layers.
package model

import "strings"

// Path represents a file system path relative to the project root, using
// forward slashes regardless of platform.
type Path string

// Symbol represents a namespace-qualified class or module name, with
// segments joined by "::" (e.g. "Admin::UsersController").
type Symbol string

// SymbolSeparator joins the segments of a Symbol.
const SymbolSeparator = "::"

// Segments splits the symbol into its namespace segments.
func (s Symbol) Segments() []string {
	if s == "" {
		return nil
	}

	return strings.Split(string(s), SymbolSeparator)
}

// Base returns the path's final element (including any extension).
func (p Path) Base() string {
	str := string(p)
	if i := strings.LastIndexByte(str, '/'); i >= 0 {
		return str[i+1:]
	}

	return str
}

// Dir returns the path up to, but excluding, the final element. The root
// of the project is represented as ".".
func (p Path) Dir() Path {
	str := string(p)
	if i := strings.LastIndexByte(str, '/'); i >= 0 {
		return Path(str[:i])
	}

	return "."
}

// BaseName returns the final element with everything from the first dot
// onward removed. Layout files are matched on this ("application.html.erb"
// has base name "application").
func (p Path) BaseName() string {
	base := p.Base()
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}

	return base
}

// ExtChain returns everything from the first dot of the final element
// onward, including the leading dot ("application.html.erb" -> ".html.erb").
func (p Path) ExtChain() string {
	base := p.Base()
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[i:]
	}

	return ""
}
