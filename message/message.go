package message

import (
	"fmt"

	"github.com/your-org/pfcp/ie"
)

// Message is the polymorphic abstraction over every concrete PFCP
// message this module decodes: a message type, a sequence number, an
// optional SEID, and a uniform way to encode the full wire message or
// look up one of its IEs.
type Message interface {
	MessageType() MessageType
	SequenceNumber() uint32
	// SEID returns the session endpoint identifier and whether one is
	// present; node-scoped messages (Heartbeat, Association Setup, ...)
	// report ok=false.
	SEID() (seid uint64, ok bool)
	// MarshalBody encodes only the IE payload, excluding the header.
	MarshalBody() []byte
	// Marshal encodes the full wire message: header plus body.
	Marshal() []byte
}

// FindIE returns the first top-level IE of type t in m's body, if any.
// It re-walks the marshaled body rather than reaching into the typed
// struct fields, so it works uniformly across every message type
// including those carrying IEs this module has no dedicated slot for.
func FindIE(m Message, t ie.IeType) (ie.Ie, bool, error) {
	return ie.Find(m.MarshalBody(), t)
}

// MissingMandatoryIeError reports a message whose body lacks a required
// top-level IE.
type MissingMandatoryIeError struct {
	MessageType MessageType
	Missing     ie.IeType
}

func (e *MissingMandatoryIeError) Error() string {
	return fmt.Sprintf("message: %s: missing mandatory IE %s", e.MessageType, e.Missing)
}

func marshalHeader(t MessageType, seq uint32, seid *uint64, body []byte) []byte {
	h := Header{
		Version:     Version,
		MessageType: uint8(t),
		Length:      uint16(len(body)),
	}
	if seid != nil {
		h.HasSEID = true
		h.SEID = *seid
		h.Length += 8 + 4 // SEID + sequence-number-and-spare octets
	} else {
		h.Length += 4 // sequence-number-and-spare octets
	}
	h.SequenceNumber = seq
	return append(h.Marshal(), body...)
}
