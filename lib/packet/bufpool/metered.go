package bufpool

import (
	"gfx.cafe/gfx/pktio/lib/instrumentation/prom"
	"gfx.cafe/gfx/pktio/lib/packet"
)

// Metered reports borrow and recycle traffic to prometheus, labeled by pool
// name.
type Metered struct {
	inner  packet.Pool
	labels prom.BufPoolLabels
}

func NewMetered(inner packet.Pool, name string) *Metered {
	return &Metered{
		inner: inner,
		labels: prom.BufPoolLabels{
			Pool: name,
		},
	}
}

func (T *Metered) Borrow() *packet.Window {
	prom.BufPool.Borrows(T.labels).Inc()
	prom.BufPool.InUse(T.labels).Inc()
	return T.inner.Borrow()
}

func (T *Metered) Recycle(w *packet.Window) {
	if w == nil {
		return
	}
	prom.BufPool.Recycles(T.labels).Inc()
	prom.BufPool.InUse(T.labels).Dec()
	T.inner.Recycle(w)
}

var _ packet.Pool = (*Metered)(nil)
