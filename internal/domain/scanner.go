package domain

import (
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/spacebat/railmv/internal/adapter"
	m "github.com/spacebat/railmv/internal/model"
)

// ProjectScanner enumerates project files under a set of root directories.
// Results are recomputed on every call: the file system is the source of
// truth and may change between operations.
type ProjectScanner struct {
	fs   adapter.ProjectFSAdapter
	conv *m.Conventions
}

// NewProjectScanner constructs a scanner over the given conventions.
func NewProjectScanner(fs adapter.ProjectFSAdapter, conv *m.Conventions) *ProjectScanner {
	return &ProjectScanner{fs: fs, conv: conv}
}

// ListFiles walks each root recursively and returns the regular files
// found, relative to the scan invocation root. Directories whose name
// starts with a dot are pruned entirely. Discovery is best-effort:
// unreadable roots and walk errors yield fewer files, never a propagated
// fault. The result is sorted so one scan produces a stable order.
func (s *ProjectScanner) ListFiles(roots []m.Path) []m.Path {
	var (
		mu    sync.Mutex
		files []m.Path
	)

	// Roots are walked concurrently; this is read-only discovery, the
	// mutating phases stay strictly sequential.
	var g errgroup.Group

	for _, root := range roots {
		root := root
		g.Go(func() error {
			var found []m.Path

			_ = s.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return nil
				}

				if info.IsDir() {
					if hiddenName(info.Name()) && m.Path(path) != root {
						return adapter.SkipDir
					}

					return nil
				}

				found = append(found, m.Path(path))

				return nil
			})

			mu.Lock()
			files = append(files, found...)
			mu.Unlock()

			return nil
		})
	}

	// Walk errors are swallowed per root, so the group never fails.
	_ = g.Wait()

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files
}

// ListSourceFiles is ListFiles over the default source roots, filtered to
// recognized source files.
func (s *ProjectScanner) ListSourceFiles() []m.Path {
	return s.FilterSource(s.ListFiles(s.conv.SourceRoots))
}

// FilterSource keeps files whose extension is on the allow-list and drops
// generated shadow files (e.g. syntax-check copies a tool writes next to
// the real source).
func (s *ProjectScanner) FilterSource(files []m.Path) []m.Path {
	kept := make([]m.Path, 0, len(files))

	for _, f := range files {
		if !s.allowedExt(f) || s.generated(f) {
			continue
		}

		kept = append(kept, f)
	}

	return kept
}

// ListClassFiles keeps only class-defining files (the primary code
// extension) from the default source roots.
func (s *ProjectScanner) ListClassFiles() []m.Path {
	files := s.ListSourceFiles()
	kept := make([]m.Path, 0, len(files))

	for _, f := range files {
		if strings.HasSuffix(string(f), s.conv.ClassExt) {
			kept = append(kept, f)
		}
	}

	return kept
}

func (s *ProjectScanner) allowedExt(f m.Path) bool {
	name := f.Base()

	for _, ext := range s.conv.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

func (s *ProjectScanner) generated(f m.Path) bool {
	name := f.Base()
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}

	for _, suffix := range s.conv.GeneratedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}

func hiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
