package packet

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWindow_Positioning(t *testing.T) {
	w := Wrap([]byte("abcdef"))

	if w.Capacity() != 6 || w.Remaining() != 6 || w.Limit() != 6 {
		t.Error("bad initial state")
	}
	if n := w.Discard(2); n != 2 || w.Position() != 2 {
		t.Error("got", n, w.Position())
	}
	if n := w.Rewind(1); n != 1 || w.Position() != 1 {
		t.Error("got", n, w.Position())
	}
	if n := w.Rewind(10); n != 1 || w.Position() != 0 {
		t.Error("rewind must clamp at zero, got", n, w.Position())
	}
	if n := w.Discard(100); n != 6 || w.Remaining() != 0 {
		t.Error("discard must clamp at the limit, got", n)
	}
	w.SetPosition(3)
	if !bytes.Equal(w.Bytes(), []byte("def")) {
		t.Error("got", string(w.Bytes()))
	}
}

func TestWindow_WriteBounds(t *testing.T) {
	w := NewWindow(4)

	if n := w.WriteBytes([]byte("abcdef")); n != 4 {
		t.Error("overfull write must be clamped, got", n)
	}
	if w.Room() != 0 {
		t.Error("expected no room, got", w.Room())
	}
	if w.WriteUint8(1) {
		t.Error("write into a full window must fail")
	}
	if _, ok := w.Uint32(); !ok {
		t.Error("expected 4 readable bytes")
	}
}

func TestWindow_Order(t *testing.T) {
	w := NewWindowOrder(8, binary.LittleEndian)
	w.WriteUint16(0x1234)

	if w.Bytes()[0] != 0x34 {
		t.Error("expected little-endian layout")
	}
	if v, ok := w.Uint16(); !ok || v != 0x1234 {
		t.Error("got", v, ok)
	}
}

func TestWindow_FailedExtractionKeepsCursor(t *testing.T) {
	w := Wrap([]byte{1, 2, 3})
	w.Discard(1)

	if _, ok := w.Uint32(); ok {
		t.Error("expected failure with 2 bytes remaining")
	}
	if w.Position() != 1 {
		t.Error("failed extraction must not advance, position =", w.Position())
	}
	if v, ok := w.Uint16(); !ok || v != 0x0203 {
		t.Error("got", v, ok)
	}
}

func TestWindow_Reset(t *testing.T) {
	w := NewWindow(8)
	w.WriteUint32(7)
	w.Discard(2)
	w.Reset()

	if w.Position() != 0 || w.Limit() != 0 || w.Remaining() != 0 {
		t.Error("reset must empty the window")
	}
	if w.Room() != 8 {
		t.Error("reset must restore the full capacity for writing")
	}
}
