package bufpool

import (
	"encoding/binary"

	"gfx.cafe/gfx/pktio/lib/packet"
)

// Fixed is a freelist of same-capacity windows. Borrowing from an empty
// freelist allocates. Not safe for concurrent use; wrap in Locked to share.
type Fixed struct {
	capacity int
	order    binary.ByteOrder
	free     []*packet.Window
}

func NewFixed(capacity int) *Fixed {
	return NewFixedOrder(capacity, binary.BigEndian)
}

func NewFixedOrder(capacity int, order binary.ByteOrder) *Fixed {
	return &Fixed{
		capacity: capacity,
		order:    order,
	}
}

func (T *Fixed) Capacity() int {
	return T.capacity
}

// Free reports how many windows are parked in the freelist.
func (T *Fixed) Free() int {
	return len(T.free)
}

func (T *Fixed) Borrow() *packet.Window {
	if n := len(T.free); n > 0 {
		w := T.free[n-1]
		T.free = T.free[:n-1]
		w.Reset()
		return w
	}
	return packet.NewWindowOrder(T.capacity, T.order)
}

func (T *Fixed) Recycle(w *packet.Window) {
	if w == nil {
		return
	}
	T.free = append(T.free, w)
}

var _ packet.Pool = (*Fixed)(nil)
