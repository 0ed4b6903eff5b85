package packet

import (
	"gfx.cafe/gfx/pktio/lib/util/decorator"
)

// Reader is a sequential decoder over exactly one pooled window. It owns the
// window exclusively while held and hands it back to the pool the instant the
// last byte is consumed, inside the same call that drained it.
//
// A Reader is either live (holding a window) or exhausted (holding none).
// Once exhausted, every read produces the EOF-shaped result for its category
// without touching buffer state. A single Reader must not be shared between
// goroutines.
type Reader struct {
	noCopy decorator.NoCopy

	pool   Pool
	window *Window
	decode DecodeFunc
}

// Empty is the shared exhausted reader. Every read on it reports EOF,
// Release is a no-op, and Clone returns it unchanged. Use it instead of
// allocating a fresh reader for an empty result.
var Empty = &Reader{}

// MakeReader wraps a borrowed, positioned window. The pool reference is only
// used to recycle the window (and to borrow for Clone).
func MakeReader(pool Pool, window *Window) Reader {
	return Reader{
		pool:   pool,
		window: window,
		decode: DecodeUTF8,
	}
}

func NewReader(pool Pool, window *Window) *Reader {
	reader := MakeReader(pool, window)
	return &reader
}

// SetDecode replaces the UTF-8 decode primitive. Intended for tests and
// alternate decoders; the zero value falls back to DecodeUTF8.
func (T *Reader) SetDecode(decode DecodeFunc) {
	T.decode = decode
}

func (T *Reader) decodeFn() DecodeFunc {
	if T.decode == nil {
		return DecodeUTF8
	}
	return T.decode
}

// access is the one place the live/exhausted transition happens. It runs fn
// against the held window, then reclaims the window if no bytes remain. The
// return reports whether fn ran at all: false only when the reader was
// already exhausted on entry (including a held window observed at zero
// remaining, which is reclaimed on the spot).
func (T *Reader) access(fn func(w *Window)) bool {
	w := T.window
	if w == nil {
		return false
	}
	if w.Remaining() == 0 {
		T.reclaim()
		return false
	}
	fn(w)
	if w.Remaining() == 0 {
		T.reclaim()
	}
	return true
}

func (T *Reader) reclaim() {
	w := T.window
	if w == nil {
		return
	}
	T.window = nil
	if T.pool != nil {
		T.pool.Recycle(w)
	}
}

// Remaining reports the unconsumed byte count. Observing zero on a held
// window reclaims it immediately.
func (T *Reader) Remaining() int {
	w := T.window
	if w == nil {
		return 0
	}
	if rem := w.Remaining(); rem > 0 {
		return rem
	}
	T.reclaim()
	return 0
}

// Release recycles the held window, if any. Safe to call any number of
// times; the reference is cleared before the window is handed back.
func (T *Reader) Release() {
	T.reclaim()
}

// Clone returns an independent reader over a copy of the remaining bytes.
// The source cursor is untouched and the two readers share no mutable state.
// When nothing remains, Clone returns the shared Empty reader instead of
// allocating.
func (T *Reader) Clone() *Reader {
	if T.Remaining() == 0 {
		return Empty
	}
	rem := T.window.Bytes()
	var w *Window
	if T.pool != nil {
		w = T.pool.Borrow()
		w.Reset()
		if w.Capacity() < len(rem) {
			// the pool's windows cannot hold this content; give it back
			// and allocate a one-off instead of truncating the clone
			T.pool.Recycle(w)
			w = nil
		}
	}
	if w == nil {
		w = NewWindowOrder(len(rem), T.window.Order())
	}
	w.WriteBytes(rem)
	clone := NewReader(T.pool, w)
	clone.decode = T.decode
	return clone
}

// Steal moves ownership of the held window to the caller without recycling
// it. The reader is left exhausted. Meant for collaborators that chain or
// compose windows, not for general use.
func (T *Reader) Steal() (*Window, error) {
	w := T.window
	if w == nil {
		return nil, ErrInvalidState
	}
	T.window = nil
	return w, nil
}
