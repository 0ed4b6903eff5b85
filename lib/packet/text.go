package packet

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LineResult is the three-way outcome of ReadLine.
type LineResult int

const (
	// LineEOF means the reader was already exhausted on entry; nothing was
	// scanned.
	LineEOF LineResult = iota
	// LinePartial means the window ran out before any terminator; the
	// accumulated characters are the start of a line that was never closed.
	LinePartial
	// LineComplete means a terminator was found and consumed.
	LineComplete
)

// scanAction is the per-character verdict of the line scanner.
type scanAction int

const (
	scanContinue scanAction = iota
	// scanStopConsumed ends the scan with the current character consumed
	// (it was part of the terminator).
	scanStopConsumed
	// scanStopUnconsumed ends the scan and pushes the current character
	// back; it belongs to the next line.
	scanStopUnconsumed
)

// ReadLine decodes one text line into dst, consuming the terminator.
// CRLF, lone LF, and lone CR all terminate a line; a character following a
// lone CR is pushed back for the next call. Accumulating more than limit
// characters before a terminator fails with ErrLineTooLong (the offending
// character stays consumed, per the no-rollback rule). Invalid or
// incomplete UTF-8 fails with ErrMalformedText.
func (T *Reader) ReadLine(dst *strings.Builder, limit int) (LineResult, error) {
	var (
		sawCR  bool
		count  int
		result = LinePartial
		err    error
	)

	attempted := T.access(func(w *Window) {
		status := T.decodeFn()(w, func(r rune) bool {
			action := scanContinue
			switch {
			case r == '\r':
				if sawCR {
					// prior lone \r was itself the terminator
					action = scanStopUnconsumed
				} else {
					sawCR = true
				}
			case r == '\n':
				action = scanStopConsumed
			case sawCR:
				// lone \r terminator; r starts the next line
				action = scanStopUnconsumed
			default:
				if count == limit {
					err = ErrLineTooLong
					action = scanStopConsumed
				} else {
					dst.WriteRune(r)
					count++
				}
			}

			switch action {
			case scanStopConsumed:
				if err == nil {
					result = LineComplete
				}
				return false
			case scanStopUnconsumed:
				w.Rewind(utf8.RuneLen(r))
				result = LineComplete
				return false
			}
			return true
		})

		switch {
		case status > 0:
			err = fmt.Errorf("%w: %d more bytes needed", ErrMalformedText, status)
		case status == DecodeExhausted && sawCR:
			// the window ended on a lone \r; nothing can follow it, so it
			// was the terminator
			result = LineComplete
		}
	})
	if !attempted {
		return LineEOF, nil
	}
	if err != nil {
		return LinePartial, err
	}
	return result, nil
}

// Text decodes every remaining character into a string. The result is
// pre-sized to the remaining byte count as a hint. An exhausted reader
// yields the empty string.
func (T *Reader) Text() (string, error) {
	var b strings.Builder
	var status int
	if !T.access(func(w *Window) {
		b.Grow(w.Remaining())
		status = T.decodeFn()(w, func(r rune) bool {
			b.WriteRune(r)
			return true
		})
	}) {
		return "", nil
	}
	if status > 0 {
		return "", fmt.Errorf("%w: %d more bytes needed", ErrMalformedText, status)
	}
	return b.String(), nil
}
