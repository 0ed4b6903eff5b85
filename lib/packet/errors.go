package packet

import "errors"

var (
	// ErrEndOfPacket reports a fixed-size or must-fully-succeed read that
	// found fewer bytes than it required.
	ErrEndOfPacket = errors.New("end of packet")

	// ErrLineTooLong reports a line that hit the caller-supplied character
	// limit before any terminator.
	ErrLineTooLong = errors.New("line too long")

	// ErrMalformedText reports an invalid or terminally incomplete UTF-8
	// sequence.
	ErrMalformedText = errors.New("malformed text")

	// ErrInvalidState reports an operation that requires a held window when
	// none exists.
	ErrInvalidState = errors.New("no window held")
)
