package packet

import "math"

// Fixed-width reads require the full width within the held window: on a
// short window they fail with ErrEndOfPacket and leave the cursor where it
// was. Byte order is whatever the window's producer configured, typically
// network order.

func (T *Reader) Uint8() (uint8, error) {
	var v uint8
	var ok bool
	if !T.access(func(w *Window) { v, ok = w.Uint8() }) || !ok {
		return 0, ErrEndOfPacket
	}
	return v, nil
}

func (T *Reader) Uint16() (uint16, error) {
	var v uint16
	var ok bool
	if !T.access(func(w *Window) { v, ok = w.Uint16() }) || !ok {
		return 0, ErrEndOfPacket
	}
	return v, nil
}

func (T *Reader) Uint32() (uint32, error) {
	var v uint32
	var ok bool
	if !T.access(func(w *Window) { v, ok = w.Uint32() }) || !ok {
		return 0, ErrEndOfPacket
	}
	return v, nil
}

func (T *Reader) Uint64() (uint64, error) {
	var v uint64
	var ok bool
	if !T.access(func(w *Window) { v, ok = w.Uint64() }) || !ok {
		return 0, ErrEndOfPacket
	}
	return v, nil
}

func (T *Reader) Int8() (int8, error) {
	v, err := T.Uint8()
	return int8(v), err
}

func (T *Reader) Int16() (int16, error) {
	v, err := T.Uint16()
	return int16(v), err
}

func (T *Reader) Int32() (int32, error) {
	v, err := T.Uint32()
	return int32(v), err
}

func (T *Reader) Int64() (int64, error) {
	v, err := T.Uint64()
	return int64(v), err
}

func (T *Reader) Float32() (float32, error) {
	v, err := T.Uint32()
	return math.Float32frombits(v), err
}

func (T *Reader) Float64() (float64, error) {
	v, err := T.Uint64()
	return math.Float64frombits(v), err
}

// ReadAvailable copies up to len(dst) bytes into dst and reports how many
// were copied. The return is -1 exactly when the reader was already
// exhausted before any byte could move; a short count always means the
// window ran out mid-copy.
func (T *Reader) ReadAvailable(dst []byte) int {
	var n int
	if !T.access(func(w *Window) {
		n = copy(dst, w.Bytes())
		w.Discard(n)
	}) {
		return -1
	}
	return n
}

// ReadAvailableWindow is ReadAvailable with a window destination: it moves
// bytes until either the source is drained or the destination is full.
func (T *Reader) ReadAvailableWindow(dst *Window) int {
	var n int
	if !T.access(func(w *Window) {
		n = dst.WriteBytes(w.Bytes())
		w.Discard(n)
	}) {
		return -1
	}
	return n
}

// ReadFull fills dst completely or fails with ErrEndOfPacket. Bytes copied
// before a shortfall stay in dst; there is no rollback.
func (T *Reader) ReadFull(dst []byte) error {
	if len(dst) == 0 {
		return nil
	}
	if T.ReadAvailable(dst) < len(dst) {
		return ErrEndOfPacket
	}
	return nil
}

// ReadFullWindow fills all of dst's room or fails with ErrEndOfPacket. Like
// ReadFull, partial progress is kept on failure.
func (T *Reader) ReadFullWindow(dst *Window) error {
	want := dst.Room()
	if want == 0 {
		return nil
	}
	if T.ReadAvailableWindow(dst) < want {
		return ErrEndOfPacket
	}
	return nil
}

// Skip advances past up to n bytes and reports how many were skipped. It
// never fails; on an exhausted reader it returns 0.
func (T *Reader) Skip(n int) int {
	var skipped int
	if !T.access(func(w *Window) {
		skipped = w.Discard(n)
	}) {
		return 0
	}
	return skipped
}
