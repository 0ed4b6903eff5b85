package packet

import (
	"encoding/binary"
	"math"

	"gfx.cafe/gfx/pktio/lib/util/decorator"
)

// Window is a bounded byte region with a movable read cursor and a fixed end
// limit. The producer fills it through the write methods, which grow the
// limit toward the capacity. Consumers walk the cursor toward the limit.
// Capacity never changes after construction.
//
// The byte order is chosen by the producer and inherited by every typed
// extraction, so reader and writer sides stay wire compatible.
type Window struct {
	noCopy decorator.NoCopy

	buf   []byte
	pos   int
	limit int
	order binary.ByteOrder
}

// NewWindow returns an empty big-endian window of the given capacity.
func NewWindow(capacity int) *Window {
	return NewWindowOrder(capacity, binary.BigEndian)
}

// NewWindowOrder returns an empty window of the given capacity with a
// producer-chosen byte order.
func NewWindowOrder(capacity int, order binary.ByteOrder) *Window {
	return &Window{
		buf:   make([]byte, capacity),
		order: order,
	}
}

// Wrap returns a big-endian window over b, positioned at the start with the
// limit at len(b). The window aliases b.
func Wrap(b []byte) *Window {
	return &Window{
		buf:   b,
		limit: len(b),
		order: binary.BigEndian,
	}
}

func (T *Window) Capacity() int {
	return len(T.buf)
}

// Remaining is the count of bytes between the cursor and the limit.
func (T *Window) Remaining() int {
	return T.limit - T.pos
}

func (T *Window) Position() int {
	return T.pos
}

// SetPosition moves the cursor to an absolute offset within [0, limit].
func (T *Window) SetPosition(pos int) {
	if pos < 0 || pos > T.limit {
		panic("window position out of range")
	}
	T.pos = pos
}

func (T *Window) Limit() int {
	return T.limit
}

// SetLimit moves the end of valid data within [position, capacity].
func (T *Window) SetLimit(limit int) {
	if limit < T.pos || limit > len(T.buf) {
		panic("window limit out of range")
	}
	T.limit = limit
}

func (T *Window) Order() binary.ByteOrder {
	return T.order
}

// Reset empties the window for refilling: cursor and limit return to zero.
func (T *Window) Reset() {
	T.pos = 0
	T.limit = 0
}

// Bytes is a view of the unconsumed region. It aliases the window's storage
// and is invalidated by any write or reset.
func (T *Window) Bytes() []byte {
	return T.buf[T.pos:T.limit]
}

// Discard advances the cursor by up to n bytes and reports how many were
// actually skipped.
func (T *Window) Discard(n int) int {
	if n < 0 {
		return 0
	}
	n = min(n, T.Remaining())
	T.pos += n
	return n
}

// Rewind moves the cursor back by up to n bytes and reports how many it
// actually moved.
func (T *Window) Rewind(n int) int {
	if n < 0 {
		return 0
	}
	n = min(n, T.pos)
	T.pos -= n
	return n
}

// Room is the number of bytes the producer can still write before hitting
// the capacity.
func (T *Window) Room() int {
	return len(T.buf) - T.limit
}

// typed extraction. each advances the cursor by the value's width on success
// and leaves the cursor untouched when too few bytes remain.

func (T *Window) Uint8() (uint8, bool) {
	rem := T.Bytes()
	if len(rem) < 1 {
		return 0, false
	}
	T.pos += 1
	return rem[0], true
}

func (T *Window) Uint16() (uint16, bool) {
	rem := T.Bytes()
	if len(rem) < 2 {
		return 0, false
	}
	T.pos += 2
	return T.order.Uint16(rem), true
}

func (T *Window) Uint32() (uint32, bool) {
	rem := T.Bytes()
	if len(rem) < 4 {
		return 0, false
	}
	T.pos += 4
	return T.order.Uint32(rem), true
}

func (T *Window) Uint64() (uint64, bool) {
	rem := T.Bytes()
	if len(rem) < 8 {
		return 0, false
	}
	T.pos += 8
	return T.order.Uint64(rem), true
}

// write methods

// WriteBytes copies as much of b as fits and reports the count written.
func (T *Window) WriteBytes(b []byte) int {
	n := copy(T.buf[T.limit:], b)
	T.limit += n
	return n
}

func (T *Window) WriteUint8(v uint8) bool {
	if T.Room() < 1 {
		return false
	}
	T.buf[T.limit] = v
	T.limit += 1
	return true
}

func (T *Window) WriteUint16(v uint16) bool {
	if T.Room() < 2 {
		return false
	}
	T.order.PutUint16(T.buf[T.limit:], v)
	T.limit += 2
	return true
}

func (T *Window) WriteUint32(v uint32) bool {
	if T.Room() < 4 {
		return false
	}
	T.order.PutUint32(T.buf[T.limit:], v)
	T.limit += 4
	return true
}

func (T *Window) WriteUint64(v uint64) bool {
	if T.Room() < 8 {
		return false
	}
	T.order.PutUint64(T.buf[T.limit:], v)
	T.limit += 8
	return true
}

func (T *Window) WriteFloat32(v float32) bool {
	return T.WriteUint32(math.Float32bits(v))
}

func (T *Window) WriteFloat64(v float64) bool {
	return T.WriteUint64(math.Float64bits(v))
}
