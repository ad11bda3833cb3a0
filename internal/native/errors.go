package native

import (
	"errors"
	"fmt"
)

// ErrClosed indicates an operation on an engine handle that has already
// been released.
var ErrClosed = errors.New("native: engine library already closed")

// MissingProcError reports a procedure absent from the loaded library.
// This is a compatibility condition, not a bug: one binding works across
// multiple engine builds, and older builds lack newer entry points.
type MissingProcError struct {
	Proc       ProcID
	Symbol     string
	MinVersion string
	LibVersion string
}

func (e *MissingProcError) Error() string {
	return fmt.Sprintf(
		"native: procedure %s (%s) is not exported by the loaded engine library (version %s); "+
			"it requires engine %s or newer - the binding is likely newer than the library",
		e.Symbol, e.Proc, e.LibVersion, e.MinVersion)
}

// EngineError reports a nonzero status written back by an engine
// procedure, together with the engine's own diagnostic message when one
// could be retrieved.
type EngineError struct {
	Proc    string
	Status  int
	Message string
}

func (e *EngineError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("native: %s failed with status %d", e.Proc, e.Status)
	}
	return fmt.Sprintf("native: %s failed with status %d: %s", e.Proc, e.Status, e.Message)
}
