package packet

import "unicode/utf8"

// Decode statuses. A positive status is the number of bytes missing to
// complete the trailing sequence (or 1 for a flatly invalid byte).
const (
	DecodeStopped   = 0
	DecodeExhausted = -1
)

// DecodeFunc decodes codepoints at the window cursor one at a time,
// advancing past each and calling emit once per decoded character. It stops
// when emit returns false (DecodeStopped), when the cursor reaches the limit
// on a codepoint boundary (DecodeExhausted), or on a malformed or incomplete
// sequence (positive byte deficit), which is left unconsumed.
type DecodeFunc func(w *Window, emit func(r rune) bool) int

// DecodeUTF8 is the default DecodeFunc.
func DecodeUTF8(w *Window, emit func(r rune) bool) int {
	for {
		rem := w.Bytes()
		if len(rem) == 0 {
			return DecodeExhausted
		}
		r, size := utf8.DecodeRune(rem)
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(rem) {
				return leadWidth(rem[0]) - len(rem)
			}
			return 1
		}
		w.Discard(size)
		if !emit(r) {
			return DecodeStopped
		}
	}
}

// leadWidth is the encoded width implied by a UTF-8 lead byte. Only called
// for incomplete sequences, so the lead is known to be a valid multi-byte
// lead.
func leadWidth(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	default:
		return 4
	}
}
