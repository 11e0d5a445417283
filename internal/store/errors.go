package store

import "fmt"

// Exit codes promised by the CLI contract.
const (
	ExitOK           = 0
	ExitMissingDep   = 1
	ExitMissingStore = 2
)

// StoreError reports that the database file is missing or unreadable.
// It maps to exit code 2.
type StoreError struct {
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("database not found or unreadable at %s: %v", e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ExitCode implements the coded-error convention used by the CLI.
func (e *StoreError) ExitCode() int { return ExitMissingStore }

// EngineError reports that the embedded SQLite engine failed to initialize
// or open a connection. It maps to exit code 1, the code the original tool
// used when its external query engine was not installed.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("sqlite engine unavailable: %v", e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// ExitCode implements the coded-error convention used by the CLI.
func (e *EngineError) ExitCode() int { return ExitMissingDep }
