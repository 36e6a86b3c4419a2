// Package ie implements the PFCP Information Element framework: the
// generic TLV container, a bounds-checked iterator over a buffer of
// concatenated IEs, and the concrete codecs for every IE this module
// understands. The framework is deliberately I/O-free and holds no
// mutable package state — every function here is a pure transform
// between wire bytes and Go values.
package ie

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// headerLen is the size of the Type+Length prefix shared by every IE
// (the optional Enterprise ID extension for vendor-specific type codes
// above 32768 is out of scope; see SPEC_FULL.md Non-goals).
const headerLen = 4

// Ie is a single decoded Information Element: a type code and its raw
// payload bytes. Concrete codecs (Cause, NodeID, FTEID, ...) convert a
// domain struct to/from an Ie; Ie itself knows nothing about what the
// payload means.
type Ie struct {
	Type    IeType
	Payload []byte
}

// New builds an Ie directly from a type and payload.
func New(t IeType, payload []byte) Ie {
	return Ie{Type: t, Payload: payload}
}

// Marshal encodes the IE as Type(2)+Length(2)+Payload, big-endian.
func (i Ie) Marshal() []byte {
	buf := make([]byte, headerLen+len(i.Payload))
	binary.BigEndian.PutUint16(buf[0:2], uint16(i.Type))
	binary.BigEndian.PutUint16(buf[2:4], uint16(len(i.Payload)))
	copy(buf[headerLen:], i.Payload)
	return buf
}

// Len returns the total wire size of the IE, header included.
func (i Ie) Len() int {
	return headerLen + len(i.Payload)
}

// ErrShortBuffer is returned when a buffer ends mid-IE: a header claims
// more payload bytes than remain, or fewer than headerLen bytes are left
// to even read a header.
var ErrShortBuffer = errors.New("ie: buffer too short for IE header or payload")

// Unmarshal decodes a single IE from the front of b and returns it along
// with the number of bytes consumed. It performs no semantic validation
// beyond the zero-length allow-list (§4.2): callers that need a typed
// value call the matching concrete codec's Unmarshal on the returned
// Payload.
func Unmarshal(b []byte) (Ie, int, error) {
	if len(b) < headerLen {
		return Ie{}, 0, ErrShortBuffer
	}
	t := IeType(binary.BigEndian.Uint16(b[0:2]))
	l := int(binary.BigEndian.Uint16(b[2:4]))
	if len(b) < headerLen+l {
		return Ie{}, 0, fmt.Errorf("%w: type %s declares length %d, %d bytes available", ErrShortBuffer, t, l, len(b)-headerLen)
	}
	if l == 0 && !ZeroLengthAllowed(t) {
		return Ie{}, 0, &InvalidLengthError{Type: t, Length: 0, Reason: "zero length not permitted for this IE type"}
	}
	payload := make([]byte, l)
	copy(payload, b[headerLen:headerLen+l])
	return Ie{Type: t, Payload: payload}, headerLen + l, nil
}

// InvalidLengthError reports an IE whose payload length does not match
// what its type requires, whether too short, too long, or a forbidden
// zero.
type InvalidLengthError struct {
	Type   IeType
	Length int
	Reason string
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("ie: %s: invalid length %d: %s", e.Type, e.Length, e.Reason)
}

// InvalidValueError reports a payload of acceptable length whose content
// violates the IE's value constraints (an out-of-range enum byte, a
// malformed flag combination, and similar).
type InvalidValueError struct {
	Type   IeType
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("ie: %s: invalid value: %s", e.Type, e.Reason)
}

// Iterator walks a buffer of concatenated IEs forward-only, one IE at a
// time. It never allocates beyond copying each IE's payload out of the
// shared buffer, and it never looks ahead: a malformed trailing IE does
// not prevent the well-formed IEs before it from being visited, matching
// the single-pass decode loops in grouped-IE unmarshal code throughout
// this module.
type Iterator struct {
	buf []byte
	off int
}

// NewIterator returns an Iterator over the full contents of buf.
func NewIterator(buf []byte) *Iterator {
	return &Iterator{buf: buf}
}

// Next returns the next IE in the buffer. ok is false once the buffer is
// fully consumed; err is non-nil if the next IE is malformed, in which
// case the iterator does not advance further (a second call to Next
// keeps returning the same error).
func (it *Iterator) Next() (i Ie, ok bool, err error) {
	if it.off >= len(it.buf) {
		return Ie{}, false, nil
	}
	i, n, err := Unmarshal(it.buf[it.off:])
	if err != nil {
		return Ie{}, false, err
	}
	it.off += n
	return i, true, nil
}

// All drains the iterator into a slice, stopping at the first error.
// Unknown IE types are never an error here — only malformed framing is;
// callers that need to ignore unrecognized types do so by type-switching
// on the returned IEs, not by filtering at this layer.
func All(buf []byte) ([]Ie, error) {
	it := NewIterator(buf)
	var out []Ie
	for {
		i, ok, err := it.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, i)
	}
}

// Find returns the first IE of type t in buf, if any.
func Find(buf []byte, t IeType) (Ie, bool, error) {
	it := NewIterator(buf)
	for {
		i, ok, err := it.Next()
		if err != nil {
			return Ie{}, false, err
		}
		if !ok {
			return Ie{}, false, nil
		}
		if i.Type == t {
			return i, true, nil
		}
	}
}

// FindAll returns every IE of type t in buf, preserving order. Used by
// grouped IEs that permit repeated child types (e.g. multiple URR IDs
// inside a usage report).
func FindAll(buf []byte, t IeType) ([]Ie, error) {
	it := NewIterator(buf)
	var out []Ie
	for {
		i, ok, err := it.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		if i.Type == t {
			out = append(out, i)
		}
	}
}

// MissingMandatoryIeError reports a grouped IE or message whose payload
// lacks a required child IE.
type MissingMandatoryIeError struct {
	Container string
	Missing   IeType
}

func (e *MissingMandatoryIeError) Error() string {
	return fmt.Sprintf("ie: %s: missing mandatory IE %s", e.Container, e.Missing)
}
