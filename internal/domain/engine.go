package domain

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/spacebat/railmv/internal/adapter"
	"github.com/spacebat/railmv/internal/controller"
	m "github.com/spacebat/railmv/internal/model"
)

// RenameEngine orchestrates rename operations: file moves, the
// declaration rewrite inside the moved file, and the project-wide
// reference rewrites. Every operation runs the same phase sequence
// (validating, moving, rewriting) and none of them rolls back: a fatal
// error or a declined prompt leaves all completed steps applied. That is
// a deliberate simplicity tradeoff, surfaced to callers through the
// typed result rather than silently papered over.
type RenameEngine struct {
	fs         adapter.ProjectFSAdapter
	docs       *adapter.DocumentStore
	ui         controller.UI
	editor     adapter.Editor
	scanner    *ProjectScanner
	classifier *ArtifactClassifier
	rewriter   *ReferenceRewriter
	conv       *m.Conventions

	// interactive gates the irrevocable-action prompt and per-occurrence
	// confirmations; without it every rewrite is a batch replace-all.
	interactive bool
}

// NewRenameEngine wires a rename engine from its collaborators.
func NewRenameEngine(
	fs adapter.ProjectFSAdapter,
	docs *adapter.DocumentStore,
	ui controller.UI,
	editor adapter.Editor,
	scanner *ProjectScanner,
	classifier *ArtifactClassifier,
	rewriter *ReferenceRewriter,
	conv *m.Conventions,
	interactive bool,
) *RenameEngine {
	return &RenameEngine{
		fs:          fs,
		docs:        docs,
		ui:          ui,
		editor:      editor,
		scanner:     scanner,
		classifier:  classifier,
		rewriter:    rewriter,
		conv:        conv,
		interactive: interactive,
	}
}

// RenameClass moves a class file to a new convention-conforming location,
// rewrites its class/module declaration, and (interactively) offers a
// project-wide rewrite of the old symbol.
func (e *RenameEngine) RenameClass(from, to m.Path) (m.RenameResult, error) {
	res := m.RenameResult{Phase: m.PhaseValidating}

	_, fromSym, ok := e.classifier.Classify(from)
	if !ok {
		res.Phase = m.PhaseAborted
		return res, fmt.Errorf("%s: %w", from, m.ErrInvalidPath)
	}

	_, toSym, ok := e.classifier.Classify(to)
	if !ok {
		res.Phase = m.PhaseAborted
		return res, fmt.Errorf("%s: %w", to, m.ErrInvalidPath)
	}

	if err := e.begin(fmt.Sprintf("Rename class %s to %s?", fromSym, toSym)); err != nil {
		res.Phase = m.PhaseAborted
		return res, err
	}

	res.Phase = m.PhaseMoving

	if err := e.moveFile(from, to, &res); err != nil {
		res.Phase = m.PhaseAborted
		return res, err
	}

	res.Phase = m.PhaseRewriting

	if err := e.rewriteDeclaration(to, fromSym, toSym, &res); err != nil {
		res.Phase = m.PhaseAborted
		return res, err
	}

	// Usage rewriting is offered only on the interactive path; the
	// programmatic variant stops at the declaration.
	if e.interactive {
		outcome, err := e.rewriter.ReplaceAcrossFiles(
			wordPattern(string(fromSym)), string(toSym), e.scanner.ListSourceFiles(), true)
		res.Rewrites.Merge(outcome)

		if err != nil {
			res.Phase = m.PhaseAborted
			return res, err
		}
	}

	return e.finish(res)
}

// RenameLayout renames every layout file whose base name matches, keeping
// the extension chain, then rewrites the base name across the whole
// project. Layout names are lowercase-sensitive identifiers, so the
// rewrite is exact-case.
func (e *RenameEngine) RenameLayout(fromBase, toBase string) (m.RenameResult, error) {
	res := m.RenameResult{Phase: m.PhaseValidating}

	if fromBase == "" || toBase == "" {
		res.Phase = m.PhaseAborted
		return res, fmt.Errorf("layout name must not be empty: %w", m.ErrInvalidSymbol)
	}

	if err := e.begin(fmt.Sprintf("Rename layout %s to %s?", fromBase, toBase)); err != nil {
		res.Phase = m.PhaseAborted
		return res, err
	}

	res.Phase = m.PhaseMoving

	if _, err := e.moveLayoutFiles(fromBase, toBase, &res); err != nil {
		res.Phase = m.PhaseAborted
		return res, err
	}

	res.Phase = m.PhaseRewriting

	outcome, err := e.rewriter.ReplaceAcrossFiles(
		literalPattern(fromBase), toBase, e.scanner.ListSourceFiles(), e.interactive)
	res.Rewrites.Merge(outcome)

	if err != nil {
		res.Phase = m.PhaseAborted
		return res, err
	}

	return e.finish(res)
}

// RenameController renames a controller and all of its companions: the
// controller class, its tests and helper, the views directory, and the
// default layout. Missing companions are skipped. Two scoped rewrite
// passes follow, one for the camelized name and one for the decamelized
// path fragment (the latter additionally covering the routes file).
func (e *RenameEngine) RenameController(fromName, toName string) (m.RenameResult, error) {
	res := m.RenameResult{Phase: m.PhaseValidating}

	fromUnder := string(Decamelize(m.Symbol(fromName)))
	toUnder := string(Decamelize(m.Symbol(toName)))

	if fromUnder == "" || toUnder == "" {
		res.Phase = m.PhaseAborted
		return res, fmt.Errorf("controller name must not be empty: %w", m.ErrInvalidSymbol)
	}

	fromCamel := string(Camelize(m.Path(fromUnder)))
	toCamel := string(Camelize(m.Path(toUnder)))

	if err := e.begin(fmt.Sprintf("Rename controller %s to %s?", fromCamel, toCamel)); err != nil {
		res.Phase = m.PhaseAborted
		return res, err
	}

	res.Phase = m.PhaseMoving

	for _, comp := range e.conv.Companions {
		fromFile := e.conv.CompanionPath(comp, fromUnder)
		toFile := e.conv.CompanionPath(comp, toUnder)

		if _, err := e.fs.Stat(fromFile); err != nil {
			// Missing companions are skipped, only the primary target is
			// required to exist.
			res.Trace = append(res.Trace, m.TraceEvent{Op: m.TraceSkip, From: fromFile, Note: "missing"})
			continue
		}

		if err := e.renameClassFile(fromFile, toFile, &res); err != nil {
			res.Phase = m.PhaseAborted
			return res, err
		}
	}

	if err := e.moveViewsDir(fromUnder, toUnder, &res); err != nil {
		res.Phase = m.PhaseAborted
		return res, err
	}

	// A controller rename implies its default layout, present or not.
	layoutMoves, err := e.moveLayoutFiles(fromUnder, toUnder, &res)
	if err != nil {
		res.Phase = m.PhaseAborted
		return res, err
	}

	res.Phase = m.PhaseRewriting

	if layoutMoves > 0 {
		if done, err := e.runPass(&res, literalPattern(fromUnder), toUnder, e.scanner.ListSourceFiles()); done {
			return res, err
		}
	}

	// Controller references are plain substring rewrites: "Users" must
	// also hit "UsersController" and "users" the "users/..." fragments.
	scoped := e.scanner.FilterSource(e.scanner.ListFiles(e.conv.RewriteScope))

	if done, err := e.runPass(&res, literalPattern(fromCamel), toCamel, scoped); done {
		return res, err
	}

	routed := scoped
	if _, err := e.fs.Stat(e.conv.RoutesFile); err == nil {
		routed = append(routed[:len(routed):len(routed)], e.conv.RoutesFile)
	}

	if done, err := e.runPass(&res, literalPattern(fromUnder), toUnder, routed); done {
		return res, err
	}

	return e.finish(res)
}

// runPass executes one rewrite pass and folds its outcome into the
// result. done is true when the operation should stop here, either on a
// fatal error or a user abort.
func (e *RenameEngine) runPass(res *m.RenameResult, pattern *regexp.Regexp, replacement string, candidates []m.Path) (bool, error) {
	outcome, err := e.rewriter.ReplaceAcrossFiles(pattern, replacement, candidates, e.interactive)
	res.Rewrites.Merge(outcome)

	if err != nil {
		res.Phase = m.PhaseAborted
		return true, err
	}

	if outcome.Aborted {
		res.Phase = m.PhaseAborted
		e.reload()

		return true, nil
	}

	return false, nil
}

// begin asks for the irrevocable-action acknowledgment (interactive only)
// and flushes pending editor buffers so no unsaved edit is lost when
// files are moved or reloaded underneath the editor.
func (e *RenameEngine) begin(prompt string) error {
	if e.interactive {
		ok, err := e.ui.ConfirmAction(prompt)
		if err != nil {
			return err
		}

		if !ok {
			return m.ErrUserAborted
		}
	}

	if err := e.editor.SaveAll(); err != nil {
		return fmt.Errorf("save editor buffers: %w", err)
	}

	return nil
}

func (e *RenameEngine) finish(res m.RenameResult) (m.RenameResult, error) {
	if res.Rewrites.Aborted {
		res.Phase = m.PhaseAborted
	} else {
		res.Phase = m.PhaseDone
	}

	e.reload()

	return res, nil
}

func (e *RenameEngine) reload() {
	if err := e.editor.ReloadChanged(); err != nil {
		slog.Warn("editor reload failed", "error", err)
	}
}

// moveFile moves the primary rename target. The source must exist and the
// destination must not; earlier moves of a multi-file operation are not
// undone when this fails.
func (e *RenameEngine) moveFile(from, to m.Path, res *m.RenameResult) error {
	if _, err := e.fs.Stat(from); err != nil {
		return fmt.Errorf("%s: %w", from, m.ErrFileMissing)
	}

	if _, err := e.fs.Stat(to); err == nil {
		return fmt.Errorf("%s: %w", to, m.ErrFileConflict)
	}

	if err := e.fs.MkdirAll(to.Dir(), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", to.Dir(), err)
	}

	if err := e.fs.Rename(from, to); err != nil {
		return fmt.Errorf("move %s to %s: %w", from, to, err)
	}

	e.docs.Rekey(from, to)
	res.Trace = append(res.Trace, m.TraceEvent{Op: m.TraceMove, From: from, To: to})

	return nil
}

// renameClassFile moves one class file and rewrites its declaration. Used
// both for the primary target of RenameClass and for controller
// companions; companions that are not classifiable are moved as-is.
func (e *RenameEngine) renameClassFile(from, to m.Path, res *m.RenameResult) error {
	_, fromSym, fromOK := e.classifier.Classify(from)
	_, toSym, toOK := e.classifier.Classify(to)

	if err := e.moveFile(from, to, res); err != nil {
		return err
	}

	if !fromOK || !toOK {
		return nil
	}

	return e.rewriteDeclaration(to, fromSym, toSym, res)
}

// rewriteDeclaration rewrites the symbol token of the first
// `class Foo`/`module Foo` line of the moved file, keeping the keyword. A
// missing declaration is reported as a warning, not silently ignored: it
// indicates a miscategorized file. The move is never undone for it.
func (e *RenameEngine) rewriteDeclaration(path m.Path, fromSym, toSym m.Symbol, res *m.RenameResult) error {
	doc, fresh, err := e.docs.Load(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	pattern := declarationPattern(fromSym)

	idx := pattern.FindIndex(doc.Content)
	if idx == nil {
		if fresh {
			e.docs.Release(path)
		}

		warning := fmt.Sprintf("%s: %v (expected %s)", path, m.ErrDefinitionNotFound, fromSym)
		res.Warnings = append(res.Warnings, warning)
		slog.Warn("declaration not found in moved file", "path", path, "symbol", fromSym)

		return nil
	}

	// The pattern ends exactly at the symbol, so the token occupies the
	// match's tail.
	start := idx[1] - len(fromSym)
	content := splice(doc.Content, start, idx[1], string(toSym))

	if err := e.docs.Apply(path, content); err != nil {
		return err
	}

	if err := e.docs.Flush(path); err != nil {
		return err
	}

	res.Trace = append(res.Trace, m.TraceEvent{
		Op:   m.TraceRewrite,
		From: path,
		Note: fmt.Sprintf("declaration %s -> %s", fromSym, toSym),
	})

	return nil
}

// moveLayoutFiles renames every layouts-directory file whose base name
// (before the first dot) matches, preserving the extension chain. Returns
// the number of files moved; zero matches is a valid no-op.
func (e *RenameEngine) moveLayoutFiles(fromBase, toBase string, res *m.RenameResult) (int, error) {
	entries, err := e.fs.ReadDir(e.conv.LayoutsDir)
	if err != nil {
		// No layouts directory means no layouts to rename.
		return 0, nil
	}

	moved := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := m.Path(entry.Name())
		if name.BaseName() != fromBase {
			continue
		}

		from := e.fs.Join(string(e.conv.LayoutsDir), entry.Name())
		to := e.fs.Join(string(e.conv.LayoutsDir), toBase+name.ExtChain())

		if _, err := e.fs.Stat(to); err == nil {
			return moved, fmt.Errorf("%s: %w", to, m.ErrFileConflict)
		}

		if err := e.fs.Rename(from, to); err != nil {
			return moved, fmt.Errorf("move %s to %s: %w", from, to, err)
		}

		e.docs.Rekey(from, to)
		res.Trace = append(res.Trace, m.TraceEvent{Op: m.TraceMove, From: from, To: to})
		moved++
	}

	return moved, nil
}

// moveViewsDir renames the controller's views subdirectory when present.
func (e *RenameEngine) moveViewsDir(fromUnder, toUnder string, res *m.RenameResult) error {
	from := e.conv.ViewsPath(fromUnder)

	info, err := e.fs.Stat(from)
	if err != nil || !info.IsDir() {
		return nil
	}

	to := e.conv.ViewsPath(toUnder)
	if _, err := e.fs.Stat(to); err == nil {
		return fmt.Errorf("%s: %w", to, m.ErrFileConflict)
	}

	if err := e.fs.Rename(from, to); err != nil {
		return fmt.Errorf("move %s to %s: %w", from, to, err)
	}

	res.Trace = append(res.Trace, m.TraceEvent{Op: m.TraceMoveDir, From: from, To: to})

	return nil
}

func wordPattern(literal string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(literal) + `\b`)
}

func literalPattern(literal string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(literal))
}

func declarationPattern(sym m.Symbol) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^\s*(?:class|module)\s+` + regexp.QuoteMeta(string(sym)) + `\b`)
}
