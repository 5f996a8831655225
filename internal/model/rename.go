package model

// Phase tracks how far a rename operation has progressed. Phases advance
// strictly forward; there is no rollback, so an operation that stops in
// PhaseAborted leaves every already-completed step applied.
type Phase int

// Rename operation phases.
const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseMoving
	PhaseRewriting
	PhaseDone
	PhaseAborted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseMoving:
		return "moving"
	case PhaseRewriting:
		return "rewriting"
	case PhaseDone:
		return "done"
	case PhaseAborted:
		return "aborted"
	}

	return "unknown"
}

// TraceOp identifies the kind of step recorded in a rename trace.
type TraceOp string

// Trace operations.
const (
	TraceMove    TraceOp = "move"
	TraceMoveDir TraceOp = "move-dir"
	TraceRewrite TraceOp = "rewrite"
	TraceSkip    TraceOp = "skip"
)

// TraceEvent records one completed (or skipped) step of a rename
// operation, in execution order.
type TraceEvent struct {
	Op   TraceOp
	From Path
	To   Path
	Note string
}

// RenameResult is the outcome of one rename operation. Warnings carry
// non-fatal findings such as a missing declaration line; the presence of a
// warning does not undo any step already listed in the trace.
type RenameResult struct {
	Phase    Phase
	Trace    []TraceEvent
	Warnings []string
	Rewrites ReplaceOutcome
}

// Replacement describes a single pending occurrence presented to the
// confirmation port during an interactive rewrite pass.
type Replacement struct {
	File     Path
	Line     int
	LineText string
	Pattern  string
	NewText  string
}

// ReplaceOutcome is the typed result of a batch rewrite pass. The pass is
// early-exit rather than transactional: when Aborted is true, files listed
// in Changed were rewritten before the abort and remain rewritten, while
// candidates after AbortedAt were never touched.
type ReplaceOutcome struct {
	Scanned      int
	Changed      []Path
	Replacements int
	Aborted      bool
	AbortedAt    Path
}

// Merge folds another outcome into this one, preserving the abort marker
// of whichever pass aborted first.
func (o *ReplaceOutcome) Merge(other ReplaceOutcome) {
	o.Scanned += other.Scanned
	o.Changed = append(o.Changed, other.Changed...)
	o.Replacements += other.Replacements

	if !o.Aborted && other.Aborted {
		o.Aborted = true
		o.AbortedAt = other.AbortedAt
	}
}
