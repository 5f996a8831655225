package adapter

import (
	"fmt"
	"os"

	m "github.com/spacebat/railmv/internal/model"
)

// Document is one in-memory copy of a project file.
type Document struct {
	Path    m.Path
	Content []byte

	dirty bool
	// storeOwned is true when the store loaded this document itself.
	// Store-owned, untouched documents may be released after a scan;
	// documents registered by the caller (e.g. mirrored editor buffers)
	// are never evicted by the core.
	storeOwned bool
}

// Dirty reports whether the document has unwritten modifications.
func (d *Document) Dirty() bool {
	return d.dirty
}

// DocumentStore is a file-handle cache keyed by path. The rewriter reuses
// an already-open copy when one exists and loads fresh otherwise, so a
// scan over many candidate files does not leave an unbounded number of
// copies open as a side effect.
//
// The store is not safe for concurrent use; rename operations are
// strictly sequential.
type DocumentStore struct {
	fs   ProjectFSAdapter
	docs map[m.Path]*Document
}

// NewDocumentStore constructs an empty store backed by the given adapter.
func NewDocumentStore(fs ProjectFSAdapter) *DocumentStore {
	return &DocumentStore{
		fs:   fs,
		docs: make(map[m.Path]*Document),
	}
}

// Register adds a caller-owned document, typically mirroring a buffer the
// user already has open. The store will reuse it but never release it.
func (s *DocumentStore) Register(path m.Path, content []byte) *Document {
	doc := &Document{Path: path, Content: content}
	s.docs[path] = doc

	return doc
}

// Load returns the document for path, reusing an open copy when present.
// The second return value reports whether the document was freshly loaded
// (and is therefore store-owned and releasable).
func (s *DocumentStore) Load(path m.Path) (*Document, bool, error) {
	if doc, ok := s.docs[path]; ok {
		return doc, false, nil
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, false, err
	}

	doc := &Document{Path: path, Content: content, storeOwned: true}
	s.docs[path] = doc

	return doc, true, nil
}

// Release drops a store-owned, unmodified document. Caller-registered or
// dirty documents are kept.
func (s *DocumentStore) Release(path m.Path) {
	doc, ok := s.docs[path]
	if !ok {
		return
	}

	if doc.storeOwned && !doc.dirty {
		delete(s.docs, path)
	}
}

// Apply replaces the document's content and marks it dirty.
func (s *DocumentStore) Apply(path m.Path, content []byte) error {
	doc, ok := s.docs[path]
	if !ok {
		return fmt.Errorf("apply to unopened document %s", path)
	}

	doc.Content = content
	doc.dirty = true

	return nil
}

// Flush writes a dirty document back to disk. Write errors are fatal to
// the surrounding operation and are surfaced, never swallowed.
func (s *DocumentStore) Flush(path m.Path) error {
	doc, ok := s.docs[path]
	if !ok || !doc.dirty {
		return nil
	}

	perm := os.FileMode(0o644)
	if info, err := s.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := s.fs.WriteFile(path, doc.Content, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	doc.dirty = false

	return nil
}

// Rekey moves a document to a new path after the underlying file was
// renamed, keeping any caller ownership intact.
func (s *DocumentStore) Rekey(from, to m.Path) {
	doc, ok := s.docs[from]
	if !ok {
		return
	}

	delete(s.docs, from)
	doc.Path = to
	s.docs[to] = doc
}

// Open reports whether a document is currently held for path.
func (s *DocumentStore) Open(path m.Path) bool {
	_, ok := s.docs[path]

	return ok
}
