package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolSegments(t *testing.T) {
	assert.Equal(t, []string{"Admin", "UsersController"}, Symbol("Admin::UsersController").Segments())
	assert.Equal(t, []string{"Person"}, Symbol("Person").Segments())
	assert.Nil(t, Symbol("").Segments())
}

func TestPathBaseDir(t *testing.T) {
	tests := []struct {
		path Path
		base string
		dir  Path
	}{
		{"app/models/person.rb", "person.rb", "app/models"},
		{"person.rb", "person.rb", "."},
		{"app/views/layouts/users.html.erb", "users.html.erb", "app/views/layouts"},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.base, tt.path.Base())
			assert.Equal(t, tt.dir, tt.path.Dir())
		})
	}
}

func TestPathBaseNameExtChain(t *testing.T) {
	tests := []struct {
		path Path
		name string
		ext  string
	}{
		{"app/views/layouts/users.html.erb", "users", ".html.erb"},
		{"app/views/layouts/users.rhtml", "users", ".rhtml"},
		{"app/models/person.rb", "person", ".rb"},
		{"README", "README", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.name, tt.path.BaseName())
			assert.Equal(t, tt.ext, tt.path.ExtChain())
		})
	}
}
