package iwfm

import "errors"

// Argument-validation errors, raised host-side before any engine call.
var (
	// ErrClosed indicates an operation on a facade after Close.
	ErrClosed = errors.New("iwfm: facade already closed")

	// ErrUnknownID indicates an identifier absent from the relevant id list.
	ErrUnknownID = errors.New("iwfm: unknown identifier")

	// ErrIntervalTooFine indicates an output interval finer than the
	// data's native interval.
	ErrIntervalTooFine = errors.New("iwfm: output interval finer than the data interval")

	// ErrDateOrder indicates a begin date after the end date.
	ErrDateOrder = errors.New("iwfm: begin date is after end date")

	// ErrEmptySelection indicates an empty column or zone selection.
	ErrEmptySelection = errors.New("iwfm: empty selection")
)
