package ie

import (
	"encoding/binary"
	"net"
)

// F-SEID flag bits, low two bits of the first payload octet: bit 0 is
// V4 present, bit 1 is V6 present (29.244 §8.2.37).
const (
	fseidFlagV4 = 1 << 0
	fseidFlagV6 = 1 << 1
)

// FSEID is a Fully Qualified SEID: the 64-bit Session Endpoint
// Identifier plus the IP address of the node that allocated it. At
// least one of IPv4/IPv6 must be set; both may be present.
type FSEID struct {
	SEID uint64
	IPv4 net.IP
	IPv6 net.IP
}

func (f FSEID) Marshal() Ie {
	var flags byte
	if f.IPv6 != nil {
		flags |= fseidFlagV6
	}
	if f.IPv4 != nil {
		flags |= fseidFlagV4
	}

	payload := []byte{flags}
	seid := make([]byte, 8)
	binary.BigEndian.PutUint64(seid, f.SEID)
	payload = append(payload, seid...)
	if f.IPv4 != nil {
		payload = append(payload, f.IPv4.To4()...)
	}
	if f.IPv6 != nil {
		payload = append(payload, f.IPv6.To16()...)
	}
	return New(TypeFSEID, payload)
}

func UnmarshalFSEID(payload []byte) (FSEID, error) {
	if len(payload) < 9 {
		return FSEID{}, &InvalidLengthError{Type: TypeFSEID, Length: len(payload), Reason: "F-SEID requires at least flags + 8-byte SEID"}
	}
	flags := payload[0]
	if flags&(fseidFlagV4|fseidFlagV6) == 0 {
		return FSEID{}, &InvalidValueError{Type: TypeFSEID, Reason: "F-SEID must set at least one of the V4/V6 flags"}
	}
	out := FSEID{SEID: binary.BigEndian.Uint64(payload[1:9])}
	off := 9
	if flags&fseidFlagV4 != 0 {
		if len(payload) < off+4 {
			return FSEID{}, &InvalidLengthError{Type: TypeFSEID, Length: len(payload), Reason: "V4 flag set but IPv4 octets missing"}
		}
		out.IPv4 = net.IP(append([]byte(nil), payload[off:off+4]...))
		off += 4
	}
	if flags&fseidFlagV6 != 0 {
		if len(payload) < off+16 {
			return FSEID{}, &InvalidLengthError{Type: TypeFSEID, Length: len(payload), Reason: "V6 flag set but IPv6 octets missing"}
		}
		out.IPv6 = net.IP(append([]byte(nil), payload[off:off+16]...))
	}
	return out, nil
}
