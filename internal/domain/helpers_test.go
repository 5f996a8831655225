package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spacebat/railmv/internal/adapter"
	"github.com/spacebat/railmv/internal/controller"
	m "github.com/spacebat/railmv/internal/model"
)

// scriptedUI feeds pre-recorded answers to the confirmation port. When
// the decision script runs out, decisionErr (if set) is returned as a
// prompt failure, otherwise the answer defaults to quit.
type scriptedUI struct {
	confirms    []bool
	decisions   []controller.Decision
	decisionErr error

	prompts      []string
	replacements []m.Replacement
}

func (s *scriptedUI) ConfirmAction(prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)

	if len(s.confirms) == 0 {
		return true, nil
	}

	answer := s.confirms[0]
	s.confirms = s.confirms[1:]

	return answer, nil
}

func (s *scriptedUI) ConfirmReplacement(rep m.Replacement) (controller.Decision, error) {
	s.replacements = append(s.replacements, rep)

	if len(s.decisions) == 0 {
		return controller.DecisionQuit, s.decisionErr
	}

	decision := s.decisions[0]
	s.decisions = s.decisions[1:]

	return decision, nil
}

func (s *scriptedUI) Infof(string, ...any)                 {}
func (s *scriptedUI) DisplayTrace([]m.TraceEvent)          {}
func (s *scriptedUI) DisplayClassFiles([]m.ClassifiedFile) {}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(content)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

type fixture struct {
	ui       *scriptedUI
	docs     *adapter.DocumentStore
	scanner  *ProjectScanner
	rewriter *ReferenceRewriter
	engine   *RenameEngine
}

// newFixture chdirs into a fresh temp project root and wires the full
// engine stack over it.
func newFixture(t *testing.T, interactive bool) *fixture {
	t.Helper()
	chdir(t, t.TempDir())

	conv := m.DefaultConventions()
	fs := adapter.NewLocalProjectFSAdapter()
	docs := adapter.NewDocumentStore(fs)
	ui := &scriptedUI{}
	scanner := NewProjectScanner(fs, conv)
	classifier := NewArtifactClassifier(scanner, conv)
	rewriter := NewReferenceRewriter(docs, ui)
	engine := NewRenameEngine(fs, docs, ui, adapter.NoopEditor{}, scanner, classifier, rewriter, conv, interactive)

	return &fixture{
		ui:       ui,
		docs:     docs,
		scanner:  scanner,
		rewriter: rewriter,
		engine:   engine,
	}
}
