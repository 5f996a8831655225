package domain

import (
	"bytes"
	"log/slog"
	"regexp"
	"unicode/utf8"

	"github.com/spacebat/railmv/internal/adapter"
	"github.com/spacebat/railmv/internal/controller"
	m "github.com/spacebat/railmv/internal/model"
)

// ReferenceRewriter performs a project-wide search-and-replace, file by
// file in scan order. It is an early-exit batch operation, not a
// transaction: a declined replacement halts everything immediately, and
// files rewritten before the abort stay rewritten. Single-threaded by
// design; callers must not run two passes over overlapping file sets
// concurrently.
type ReferenceRewriter struct {
	docs *adapter.DocumentStore
	ui   controller.UI
}

// NewReferenceRewriter constructs a rewriter over the given document store.
func NewReferenceRewriter(docs *adapter.DocumentStore, ui controller.UI) *ReferenceRewriter {
	return &ReferenceRewriter{docs: docs, ui: ui}
}

// ReplaceAcrossFiles applies pattern -> replacement over the candidates.
// With confirm set, every occurrence is offered to the confirmation port;
// without it, each matching file gets a batch replace-all. Unmatched
// files that had to be loaded fresh are released again so a scan does not
// pile up open documents. Read failures skip the file; write failures are
// fatal and surfaced.
func (r *ReferenceRewriter) ReplaceAcrossFiles(
	pattern *regexp.Regexp,
	replacement string,
	candidates []m.Path,
	confirm bool,
) (m.ReplaceOutcome, error) {
	var outcome m.ReplaceOutcome

	for _, path := range candidates {
		doc, fresh, err := r.docs.Load(path)
		if err != nil {
			slog.Debug("skipping unreadable candidate", "path", path, "error", err)
			continue
		}

		outcome.Scanned++

		if !pattern.Match(doc.Content) {
			if fresh {
				r.docs.Release(path)
			}

			continue
		}

		applied, aborted, err := r.replaceInFile(pattern, replacement, path, doc.Content, confirm)

		if applied > 0 {
			outcome.Changed = append(outcome.Changed, path)
			outcome.Replacements += applied
		} else if fresh {
			// Matched but nothing was applied (e.g. the user quit at the
			// first occurrence); the fresh load is not worth keeping open.
			r.docs.Release(path)
		}

		if err != nil {
			return outcome, err
		}

		if aborted {
			outcome.Aborted = true
			outcome.AbortedAt = path

			return outcome, nil
		}
	}

	return outcome, nil
}

// replaceInFile runs one confirmable replace-all pass from the top of the
// file. Applied replacements are flushed to disk before returning, even
// when the user quits partway through the file.
func (r *ReferenceRewriter) replaceInFile(
	pattern *regexp.Regexp,
	replacement string,
	path m.Path,
	content []byte,
	confirm bool,
) (applied int, aborted bool, err error) {
	if !confirm {
		applied = len(pattern.FindAllIndex(content, -1))
		content = pattern.ReplaceAll(content, []byte(replacement))

		return applied, false, r.flush(path, content)
	}

	offset := 0

	for {
		loc := pattern.FindIndex(content[offset:])
		if loc == nil {
			break
		}

		start, end := offset+loc[0], offset+loc[1]
		matched := content[start:end]
		expanded := pattern.ReplaceAllString(string(matched), replacement)

		decision, decErr := r.ui.ConfirmReplacement(pendingReplacement(path, content, start, end, pattern.String(), expanded))
		if decErr != nil {
			// Replacements already approved in this file stay applied.
			if applied > 0 {
				if err := r.flush(path, content); err != nil {
					return applied, true, err
				}
			}

			return applied, true, decErr
		}

		switch decision {
		case controller.DecisionReplace:
			content = splice(content, start, end, expanded)
			offset = start + len(expanded)
			applied++

			// Step past a zero-width match replaced by nothing, the way
			// regexp.ReplaceAll does, so the scan cannot stall on it.
			if end == start && len(expanded) == 0 {
				_, size := utf8.DecodeRune(content[offset:])
				offset += size
			}

		case controller.DecisionAll:
			rest := pattern.ReplaceAll(content[start:], []byte(replacement))
			applied += len(pattern.FindAllIndex(content[start:], -1))
			content = append(content[:start:start], rest...)
			offset = len(content)

		case controller.DecisionQuit:
			aborted = true
		}

		if aborted || offset >= len(content) {
			break
		}
	}

	if applied > 0 {
		if err := r.flush(path, content); err != nil {
			return applied, aborted, err
		}
	}

	return applied, aborted, nil
}

func (r *ReferenceRewriter) flush(path m.Path, content []byte) error {
	if err := r.docs.Apply(path, content); err != nil {
		return err
	}

	return r.docs.Flush(path)
}

func splice(content []byte, start, end int, repl string) []byte {
	out := make([]byte, 0, len(content)-(end-start)+len(repl))
	out = append(out, content[:start]...)
	out = append(out, repl...)
	out = append(out, content[end:]...)

	return out
}

// pendingReplacement builds the prompt payload for one occurrence: its
// line number, the current line text and the line as it would read after
// the replacement.
func pendingReplacement(path m.Path, content []byte, start, end int, pattern, expanded string) m.Replacement {
	lineStart := bytes.LastIndexByte(content[:start], '\n') + 1

	lineEnd := end + bytes.IndexByte(content[end:], '\n')
	if lineEnd < end {
		lineEnd = len(content)
	}

	line := bytes.Count(content[:start], []byte{'\n'}) + 1
	lineText := string(content[lineStart:lineEnd])
	newText := string(content[lineStart:start]) + expanded + string(content[end:lineEnd])

	return m.Replacement{
		File:     path,
		Line:     line,
		LineText: lineText,
		Pattern:  pattern,
		NewText:  newText,
	}
}
