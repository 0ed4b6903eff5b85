package packet

import (
	"errors"
	"fmt"
	"io"
)

// ByteStream adapts a Reader to the stdlib byte-oriented pull interfaces.
// Closing the stream releases the underlying reader.
type ByteStream struct {
	reader *Reader
}

func MakeByteStream(reader *Reader) ByteStream {
	return ByteStream{
		reader: reader,
	}
}

func (T ByteStream) Read(p []byte) (int, error) {
	n := T.reader.ReadAvailable(p)
	if n < 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (T ByteStream) ReadByte() (byte, error) {
	v, err := T.reader.Uint8()
	if err != nil {
		if errors.Is(err, ErrEndOfPacket) {
			return 0, io.EOF
		}
		return 0, err
	}
	return v, nil
}

// Skip advances past up to n bytes and reports how many were skipped.
func (T ByteStream) Skip(n int) int {
	return T.reader.Skip(n)
}

// Available reports the unconsumed byte count.
func (T ByteStream) Available() int {
	return T.reader.Remaining()
}

func (T ByteStream) Close() error {
	T.reader.Release()
	return nil
}

var (
	_ io.ReadCloser = ByteStream{}
	_ io.ByteReader = ByteStream{}
)

// RuneStream adapts a Reader to a character-oriented pull interface using
// the reader's decode primitive.
type RuneStream struct {
	reader *Reader
}

func MakeRuneStream(reader *Reader) RuneStream {
	return RuneStream{
		reader: reader,
	}
}

// Read fills p with decoded characters and reports how many were written.
// A zero-length p returns 0 immediately without consulting EOF state. An
// exhausted reader returns io.EOF. Invalid or incomplete UTF-8 fails with
// ErrMalformedText after any complete characters already decoded.
func (T RuneStream) Read(p []rune) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	var n, status int
	if !T.reader.access(func(w *Window) {
		status = T.reader.decodeFn()(w, func(r rune) bool {
			p[n] = r
			n++
			return n < len(p)
		})
	}) {
		return 0, io.EOF
	}
	if status > 0 {
		return n, fmt.Errorf("%w: %d more bytes needed", ErrMalformedText, status)
	}
	return n, nil
}

func (T RuneStream) Close() error {
	T.reader.Release()
	return nil
}
