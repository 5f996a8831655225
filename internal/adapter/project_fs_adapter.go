// Package adapter contains filesystem, editor and document-cache adapters
// for the railmv CLI.
package adapter

import (
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/spacebat/railmv/internal/model"
)

// SkipDir tells Walk to prune the current directory. Re-exported so the
// domain layer does not import path/filepath for a sentinel.
var SkipDir = fs.SkipDir

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into
// the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// ProjectFSAdapter abstracts filesystem operations the domain layer relies
// on when scanning and renaming project files. It hides direct `os` access
// so the rename logic can be tested against a temp tree or a double.
type ProjectFSAdapter interface {
	// Walk traverses the tree rooted at root, depth-first.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Rename moves a file or directory.
	Rename(from, to m.Path) error

	// Stat returns metadata for a path so the domain can check existence
	// or distinguish files from directories.
	Stat(path m.Path) (os.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error

	// Join joins path elements into a single path.
	Join(elem ...string) m.Path

	// Rel returns the relative path from base to target.
	Rel(base, target m.Path) (m.Path, error)
}

// LocalProjectFSAdapter is the os-backed implementation of
// ProjectFSAdapter. Paths are interpreted relative to the process working
// directory, which the CLI pins to the project root.
type LocalProjectFSAdapter struct{}

// NewLocalProjectFSAdapter constructs a LocalProjectFSAdapter ready to be
// wired into the rename engine.
func NewLocalProjectFSAdapter() *LocalProjectFSAdapter {
	return &LocalProjectFSAdapter{}
}

// Walk iterates over all files and directories under root.
func (a *LocalProjectFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalProjectFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to the given path.
func (a *LocalProjectFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// Rename moves a file or directory.
func (a *LocalProjectFSAdapter) Rename(from, to m.Path) error {
	return os.Rename(string(from), string(to))
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalProjectFSAdapter) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadDir lists directory entries.
func (a *LocalProjectFSAdapter) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// MkdirAll creates the directory path and any missing parents.
func (a *LocalProjectFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// Join joins path elements with the platform separator.
func (a *LocalProjectFSAdapter) Join(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// Rel returns the relative path from base to target.
func (a *LocalProjectFSAdapter) Rel(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
