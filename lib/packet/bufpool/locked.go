package bufpool

import (
	"sync"

	"gfx.cafe/gfx/pktio/lib/packet"
)

// Locked makes any pool safe to share between goroutines.
type Locked struct {
	inner packet.Pool
	mu    sync.Mutex
}

func NewLocked(inner packet.Pool) *Locked {
	return &Locked{
		inner: inner,
	}
}

func (T *Locked) Borrow() *packet.Window {
	T.mu.Lock()
	defer T.mu.Unlock()
	return T.inner.Borrow()
}

func (T *Locked) Recycle(w *packet.Window) {
	T.mu.Lock()
	defer T.mu.Unlock()
	T.inner.Recycle(w)
}

var _ packet.Pool = (*Locked)(nil)
