// Package message implements the PFCP message header codec, the
// polymorphic Message abstraction, and every concrete message type this
// module understands. Like package ie, it is a pure, I/O-free, stateless
// transform between wire bytes and Go values.
package message

import (
	"fmt"

	"github.com/your-org/pfcp/internal/wire"
)

// Version is the only PFCP protocol version this module speaks.
const Version uint8 = 1

// Header carries the fixed fields of a PFCP message header (§4.1): the
// version, the flag octet's individual bits, the message type, the
// declared body length, and the optional SEID/sequence-number pair.
type Header struct {
	Version        uint8
	MP             bool // message priority present (spare in this module; carried through)
	FO             bool // follow-on, reserved
	HasSEID        bool
	MessageType    uint8
	Length         uint16 // octets following the length field itself
	SEID           uint64
	SequenceNumber uint32 // low 24 bits significant
}

// headerLenShort is the header size when no SEID is present (octets 0-7).
const headerLenShort = 8

// headerLenLong is the header size when an SEID is present (octets 0-15).
const headerLenLong = 16

// FramingError reports a malformed message header or an unrecognized
// message type at the dispatch layer.
type FramingError struct {
	Reason string
}

func (e *FramingError) Error() string { return "message: " + e.Reason }

// errTruncated and errBadVersion build the *FramingError values for a
// short buffer and an unsupported version; tests and callers match them
// with errors.As on *FramingError.
func errTruncated(need, have int) *FramingError {
	return &FramingError{Reason: fmt.Sprintf("truncated header: need %d bytes, have %d", need, have)}
}

func errBadVersion(v uint8) *FramingError {
	return &FramingError{Reason: fmt.Sprintf("unsupported version %d", v)}
}

// Marshal encodes h as an 8 or 16 octet header, depending on HasSEID.
func (h Header) Marshal() []byte {
	var buf []byte
	if h.HasSEID {
		buf = make([]byte, headerLenLong)
	} else {
		buf = make([]byte, headerLenShort)
	}
	flags := h.Version << 5
	if h.MP {
		flags |= 1 << 2
	}
	if h.FO {
		flags |= 1 << 1
	}
	if h.HasSEID {
		flags |= 1
	}
	buf[0] = flags
	buf[1] = h.MessageType
	buf[2] = byte(h.Length >> 8)
	buf[3] = byte(h.Length)
	if h.HasSEID {
		for i := 0; i < 8; i++ {
			buf[4+i] = byte(h.SEID >> uint(8*(7-i)))
		}
		wire.PutUint24(buf[12:15], h.SequenceNumber)
		buf[15] = 0
	} else {
		wire.PutUint24(buf[4:7], h.SequenceNumber)
		buf[7] = 0
	}
	return buf
}

// UnmarshalHeader decodes a Header from the front of b and returns it
// along with the offset of the message body. It never trusts the
// declared Length beyond reporting it; callers validate body size against
// it (§4.1's "decoders never trust the declared length beyond using it to
// bound the body").
func UnmarshalHeader(b []byte) (Header, int, error) {
	if len(b) < headerLenShort {
		return Header{}, 0, errTruncated(headerLenShort, len(b))
	}
	flags := b[0]
	h := Header{
		Version:     flags >> 5,
		MP:          flags&(1<<2) != 0,
		FO:          flags&(1<<1) != 0,
		HasSEID:     flags&1 != 0,
		MessageType: b[1],
		Length:      uint16(b[2])<<8 | uint16(b[3]),
	}
	if h.Version != Version {
		return Header{}, 0, errBadVersion(h.Version)
	}
	if h.HasSEID {
		if len(b) < headerLenLong {
			return Header{}, 0, errTruncated(headerLenLong, len(b))
		}
		var seid uint64
		for i := 0; i < 8; i++ {
			seid = seid<<8 | uint64(b[4+i])
		}
		h.SEID = seid
		h.SequenceNumber = wire.Uint24(b[12:15])
		return h, headerLenLong, nil
	}
	h.SequenceNumber = wire.Uint24(b[4:7])
	return h, headerLenShort, nil
}
