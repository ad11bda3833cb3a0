// Package iwfm exposes the IWFM hydrology engine's simulation, budget and
// zone-budget procedures through three facades: Model, Budget and ZBudget.
//
// Every operation is a thin marshaling shim over one or more engine
// procedures: host values are converted to fixed-width by-reference cells,
// the procedure is invoked, and the written-through buffers are converted
// back to Go values. No hydrologic computation happens on the host side.
//
// Facades are constructed over a native.Engine (one loaded shared
// library), are not safe for concurrent use, and must be released with
// Close - or through the WithModel/WithBudget/WithZBudget helpers, which
// guarantee release on all exit paths. Operations on a closed facade fail
// with ErrClosed.
//
// Identifiers (node ids, element ids, zone ids) are user-facing values;
// the engine addresses everything by one-based position. The facades
// translate in both directions through cached reverse lookup tables, so
// callers never see positional indices.
package iwfm
