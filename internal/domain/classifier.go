package domain

import (
	"strings"

	m "github.com/spacebat/railmv/internal/model"
)

// ArtifactClassifier maps project file paths to the artifact kind and
// symbol they define, using the ordered prefix table of the conventions.
type ArtifactClassifier struct {
	conv    *m.Conventions
	scanner *ProjectScanner
}

// NewArtifactClassifier constructs a classifier over the given conventions.
func NewArtifactClassifier(scanner *ProjectScanner, conv *m.Conventions) *ArtifactClassifier {
	return &ArtifactClassifier{conv: conv, scanner: scanner}
}

// Classify matches path against the known location prefixes, first match
// wins. A path under a nested namespace directory can conceptually fit
// several roles; the fixed table order decides, it is not a conflict.
// Returns ok=false when no prefix matches or the file is not a class
// file: not every project file defines a class.
func (c *ArtifactClassifier) Classify(path m.Path) (m.Kind, m.Symbol, bool) {
	str := string(path)
	if !strings.HasSuffix(str, c.conv.ClassExt) {
		return "", "", false
	}

	for _, dir := range c.conv.ClassDirs {
		if !strings.HasPrefix(str, dir.Prefix) {
			continue
		}

		rest := strings.TrimSuffix(strings.TrimPrefix(str, dir.Prefix), c.conv.ClassExt)
		if rest == "" {
			return "", "", false
		}

		return dir.Kind, Camelize(m.Path(rest)), true
	}

	return "", "", false
}

// ListClassFiles returns every class-defining project file together with
// its classification. Files under no known prefix are omitted.
func (c *ArtifactClassifier) ListClassFiles() []m.ClassifiedFile {
	paths := c.scanner.ListClassFiles()
	files := make([]m.ClassifiedFile, 0, len(paths))

	for _, p := range paths {
		kind, sym, ok := c.Classify(p)
		if !ok {
			continue
		}

		files = append(files, m.ClassifiedFile{Path: p, Kind: kind, Symbol: sym})
	}

	return files
}
