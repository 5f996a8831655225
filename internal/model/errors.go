package model

import "errors"

// Rename operations fail with one of these sentinels, usually wrapped with
// additional context. There is no rollback: a fatal error mid-operation
// leaves earlier steps applied, and callers are expected to re-run to
// completion or reconcile by hand.
var (
	// ErrInvalidPath means a path does not match any known artifact
	// location and no symbol can be derived from it.
	ErrInvalidPath = errors.New("path does not match any known artifact location")

	// ErrInvalidSymbol means a symbol cannot be mapped back to a file path.
	ErrInvalidSymbol = errors.New("symbol does not map to a known artifact location")

	// ErrFileConflict means the destination of a move already exists.
	ErrFileConflict = errors.New("destination file already exists")

	// ErrFileMissing means an expected source file is absent. Fatal for a
	// primary rename target, non-fatal (skip) for companion files.
	ErrFileMissing = errors.New("source file does not exist")

	// ErrDefinitionNotFound means a moved class file contains no matching
	// class/module declaration line. The move itself stands.
	ErrDefinitionNotFound = errors.New("no class or module declaration found")

	// ErrUserAborted means the user declined a confirmation prompt.
	// Completed steps remain applied.
	ErrUserAborted = errors.New("aborted by user")
)
