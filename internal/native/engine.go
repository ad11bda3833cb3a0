package native

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Engine is the loaded IWFM library. All calls are synchronous and
// blocking; the engine holds process-wide simulation state, so one Engine
// serves one facade at a time (no locking discipline is provided, matching
// the engine's own single-instance assumption).
type Engine interface {
	// Has reports whether the capability is exported by the loaded build.
	Has(proc ProcID) bool

	// Call invokes the procedure with the given argument cells in order.
	// The final cell must be the *Int status cell every engine procedure
	// writes through; a nonzero status is returned as an *EngineError.
	Call(proc ProcID, args ...Cell) error

	// Version is the engine build string reported by the library.
	Version() string

	Close() error
}

const diagWidth = 500 // engine diagnostic/version buffer width

type library struct {
	path    string
	handle  uintptr
	procs   map[ProcID]uintptr
	version string
	closed  bool
	log     *zap.Logger
}

// Load opens the shared library at path and resolves the capability table
// against its exports. Missing symbols are not an error here; they surface
// per call as MissingProcError.
func Load(path string, log *zap.Logger) (Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	h, err := dlopen(path)
	if err != nil {
		return nil, fmt.Errorf("native: loading engine library %s: %w", path, err)
	}
	lib := &library{
		path:   path,
		handle: h,
		procs:  make(map[ProcID]uintptr, len(Procs)),
		log:    log,
	}
	for id, spec := range Procs {
		if addr, err := dlsym(h, spec.Symbol); err == nil && addr != 0 {
			lib.procs[id] = addr
		}
	}
	lib.version = lib.queryVersion()
	log.Info("engine library loaded",
		zap.String("path", path),
		zap.String("version", lib.version),
		zap.Int("procedures", len(lib.procs)),
		zap.Int("table", len(Procs)))
	return lib, nil
}

func (l *library) Has(proc ProcID) bool {
	if l.closed {
		return false
	}
	_, ok := l.procs[proc]
	return ok
}

func (l *library) Version() string { return l.version }

func (l *library) Call(proc ProcID, args ...Cell) error {
	if l.closed {
		return ErrClosed
	}
	spec, known := Procs[proc]
	if !known {
		return fmt.Errorf("native: procedure %q is not in the capability table", proc)
	}
	addr, ok := l.procs[proc]
	if !ok {
		return &MissingProcError{
			Proc:       proc,
			Symbol:     spec.Symbol,
			MinVersion: spec.MinVersion,
			LibVersion: l.version,
		}
	}

	ptrs := make([]uintptr, len(args))
	for i, c := range args {
		ptrs[i] = uintptr(c.ptr())
	}
	syscallN(addr, ptrs...)
	runtime.KeepAlive(args)

	if n := len(args); n > 0 {
		if st, ok := args[n-1].(*Int); ok && st.Value() != 0 {
			err := &EngineError{Proc: spec.Symbol, Status: st.Value(), Message: l.lastMessage()}
			l.log.Warn("engine procedure failed",
				zap.String("proc", spec.Symbol),
				zap.Int("status", st.Value()),
				zap.String("message", err.Message))
			return err
		}
	}
	return nil
}

func (l *library) Close() error {
	if l.closed {
		return ErrClosed
	}
	l.closed = true
	l.procs = nil
	if err := dlclose(l.handle); err != nil {
		return fmt.Errorf("native: releasing engine library: %w", err)
	}
	return nil
}

// queryVersion asks the library for its build string. Builds old enough to
// lack the version procedure report "unknown".
func (l *library) queryVersion() string {
	addr, ok := l.procs[ProcGetVersion]
	if !ok {
		return "unknown"
	}
	buf := EmptyCharBuffer(diagWidth)
	length := NewInt(buf.Len())
	status := NewInt(0)
	syscallN(addr, uintptr(buf.ptr()), uintptr(length.ptr()), uintptr(status.ptr()))
	runtime.KeepAlive(buf)
	if status.Value() != 0 {
		return "unknown"
	}
	return buf.String()
}

// lastMessage fetches the engine's last diagnostic line, best effort.
func (l *library) lastMessage() string {
	addr, ok := l.procs[ProcGetLastMessage]
	if !ok {
		return ""
	}
	buf := EmptyCharBuffer(diagWidth)
	length := NewInt(buf.Len())
	status := NewInt(0)
	syscallN(addr, uintptr(buf.ptr()), uintptr(length.ptr()), uintptr(status.ptr()))
	runtime.KeepAlive(buf)
	if status.Value() != 0 {
		return ""
	}
	return buf.String()
}
