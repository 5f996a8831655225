// Package controller provides the user-facing confirmation and display
// ports for the railmv CLI.
package controller

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/spacebat/railmv/internal/model"
)

// Decision is the user's answer to a single pending replacement.
type Decision int

// Replacement decisions. Declining is not a per-occurrence skip: it halts
// the whole batch pass at the current position.
const (
	// DecisionReplace applies this occurrence and asks again for the next.
	DecisionReplace Decision = iota

	// DecisionAll applies this and every remaining occurrence in the
	// current file without asking.
	DecisionAll

	// DecisionQuit declines: the batch pass stops here, keeping every
	// replacement already applied.
	DecisionQuit
)

// UI is the confirmation/prompt port the rename engine depends on. The
// core never blocks on console specifics, only on this abstract yes/no
// and per-occurrence decision stream, which lets tests and the
// non-interactive mode run fully automated.
type UI interface {
	// ConfirmAction asks for the explicit irrevocable-action
	// acknowledgment required before any mutating operation.
	ConfirmAction(prompt string) (bool, error)

	// ConfirmReplacement asks whether to apply one occurrence.
	ConfirmReplacement(rep m.Replacement) (Decision, error)

	// Infof prints a progress line.
	Infof(format string, args ...any)

	// DisplayTrace renders the steps of a completed rename operation.
	DisplayTrace(trace []m.TraceEvent)

	// DisplayClassFiles renders the classified project files.
	DisplayClassFiles(files []m.ClassifiedFile)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewUI picks the UI implementation: the Bubble Tea prompt when attached
// to a terminal, plain cobra output otherwise. assumeYes short-circuits
// every confirmation.
func NewUI(cmd *cobra.Command, tty bool, assumeYes bool) UI {
	simple := NewSimpleUI(cmd, assumeYes)
	if tty && !assumeYes {
		return NewTUI(simple)
	}

	return simple
}
