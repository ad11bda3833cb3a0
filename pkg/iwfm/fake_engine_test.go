package iwfm_test

import (
	"hydrobind/internal/calendar"
	"hydrobind/internal/native"
)

// fakeEngine scripts engine procedures as Go functions that write through
// the argument cells, so facade tests exercise the full marshal/unmarshal
// path without a binary. A scripted function returns the status code the
// real procedure would have written.
type fakeEngine struct {
	version string
	procs   map[native.ProcID]func(args []native.Cell) int
	calls   map[native.ProcID]int
	closed  bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		version: "2015.0.1273",
		procs:   make(map[native.ProcID]func(args []native.Cell) int),
		calls:   make(map[native.ProcID]int),
	}
}

func (f *fakeEngine) on(p native.ProcID, fn func(args []native.Cell) int) { f.procs[p] = fn }

func (f *fakeEngine) Has(p native.ProcID) bool {
	if f.closed {
		return false
	}
	_, ok := f.procs[p]
	return ok
}

func (f *fakeEngine) Call(p native.ProcID, args ...native.Cell) error {
	if f.closed {
		return native.ErrClosed
	}
	fn, ok := f.procs[p]
	if !ok {
		spec := native.Procs[p]
		return &native.MissingProcError{
			Proc:       p,
			Symbol:     spec.Symbol,
			MinVersion: spec.MinVersion,
			LibVersion: f.version,
		}
	}
	f.calls[p]++
	if st := fn(args); st != 0 {
		return &native.EngineError{Proc: native.Procs[p].Symbol, Status: st, Message: "engine rejected the call"}
	}
	return nil
}

func (f *fakeEngine) Version() string { return f.version }

func (f *fakeEngine) Close() error {
	if f.closed {
		return native.ErrClosed
	}
	f.closed = true
	return nil
}

// succeed scripts a procedure that succeeds without writing anything.
func succeed(args []native.Cell) int { return 0 }

// setCount scripts a "get count" procedure.
func setCount(n int) func(args []native.Cell) int {
	return func(args []native.Cell) int {
		args[0].(*native.Int).Set(n)
		return 0
	}
}

// setIDs scripts a "get ids" procedure: (n, ids, status).
func setIDs(ids []int) func(args []native.Cell) int {
	return func(args []native.Cell) int {
		arr := args[1].(native.IntArray)
		for i, id := range ids {
			arr[i] = int32(id)
		}
		return 0
	}
}

// writePacked fills a packed string block and its one-based offset array
// the way the engine does.
func writePacked(buf *native.CharBuffer, offsets native.IntArray, items []string) {
	raw := buf.Raw()
	pos := 0
	for i, s := range items {
		offsets[i] = int32(pos + 1)
		copy(raw[pos:], s)
		pos += len(s)
	}
}

// timeCompare scripts the engine's chronological comparison using host
// parsing; the fake only needs to be consistent with the convention.
func timeCompare(args []native.Cell) int {
	a := args[0].(*native.CharBuffer).String()
	b := args[2].(*native.CharBuffer).String()
	ta, err := calendar.Parse(a)
	if err != nil {
		return -1
	}
	tb, err := calendar.Parse(b)
	if err != nil {
		return -1
	}
	res := args[4].(*native.Int)
	if ta.After(tb) {
		res.Set(1)
	} else {
		res.Set(0)
	}
	return 0
}
