package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/spacebat/railmv/internal/model"
)

func TestDecamelize(t *testing.T) {
	tests := []struct {
		name string
		sym  m.Symbol
		want m.Path
	}{
		{"single word", "Person", "person"},
		{"camel humps", "FooBar", "foo_bar"},
		{"namespace", "Admin::UsersController", "admin/users_controller"},
		{"deep namespace", "Foo::Bar::Quux", "foo/bar/quux"},
		{"acronym run", "HTMLParser", "html_parser"},
		{"trailing acronym", "ParserXML", "parser_xml"},
		{"digits", "Iso8601", "iso8601"},
		{"already lower", "users", "users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decamelize(tt.sym))
		})
	}
}

func TestCamelize(t *testing.T) {
	tests := []struct {
		name string
		path m.Path
		want m.Symbol
	}{
		{"single word", "person", "Person"},
		{"underscores", "foo_bar", "FooBar"},
		{"slashes", "admin/users_controller", "Admin::UsersController"},
		{"deep", "foo/bar/quux", "Foo::Bar::Quux"},
		{"digits", "iso8601", "Iso8601"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Camelize(tt.path))
		})
	}
}

func TestCodecRoundTrips(t *testing.T) {
	symbols := []m.Symbol{
		"Person",
		"FooBar",
		"Admin::UsersController",
		"Foo::Bar::Quux",
		"Iso8601",
	}

	for _, sym := range symbols {
		assert.Equal(t, sym, Camelize(Decamelize(sym)), "symbol round trip %s", sym)
	}

	paths := []m.Path{
		"person",
		"foo_bar",
		"admin/users_controller",
		"foo/bar/quux",
		"iso8601",
	}

	for _, path := range paths {
		assert.Equal(t, path, Decamelize(Camelize(path)), "path round trip %s", path)
	}
}
