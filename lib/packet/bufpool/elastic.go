package bufpool

import (
	"sync"

	"github.com/valyala/bytebufferpool"

	"gfx.cafe/gfx/pktio/lib/packet"
	"gfx.cafe/gfx/pktio/lib/util/slices"
)

// Elastic borrows window storage from bytebufferpool, letting the process
// wide buffer pool absorb bursts instead of holding a private freelist.
// Windows still have fixed capacity; only the backing store is elastic.
type Elastic struct {
	capacity int

	mu      sync.Mutex
	backing map[*packet.Window]*bytebufferpool.ByteBuffer
}

func NewElastic(capacity int) *Elastic {
	return &Elastic{
		capacity: capacity,
		backing:  make(map[*packet.Window]*bytebufferpool.ByteBuffer),
	}
}

func (T *Elastic) Capacity() int {
	return T.capacity
}

func (T *Elastic) Borrow() *packet.Window {
	b := bytebufferpool.Get()
	b.B = slices.Resize(b.B, T.capacity)
	w := packet.Wrap(b.B)
	w.Reset()

	T.mu.Lock()
	T.backing[w] = b
	T.mu.Unlock()
	return w
}

func (T *Elastic) Recycle(w *packet.Window) {
	if w == nil {
		return
	}
	T.mu.Lock()
	b := T.backing[w]
	delete(T.backing, w)
	T.mu.Unlock()

	if b != nil {
		bytebufferpool.Put(b)
	}
}

var _ packet.Pool = (*Elastic)(nil)
