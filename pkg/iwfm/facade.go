package iwfm

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hydrobind/internal/native"
)

// handle is the state every facade shares: the engine reference (nil once
// closed) and a correlation-tagged logger.
type handle struct {
	eng native.Engine
	log *zap.Logger
}

func newHandle(eng native.Engine, log *zap.Logger, kind string) handle {
	if log == nil {
		log = zap.NewNop()
	}
	return handle{
		eng: eng,
		log: log.With(zap.String("facade", kind), zap.String("handle", uuid.NewString())),
	}
}

// engine returns the engine, or ErrClosed after release.
func (h *handle) engine() (native.Engine, error) {
	if h.eng == nil {
		return nil, ErrClosed
	}
	return h.eng, nil
}

// release poisons the handle; every later operation fails fast.
func (h *handle) release() {
	h.eng = nil
}
