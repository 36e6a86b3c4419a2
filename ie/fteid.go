package ie

import (
	"encoding/binary"
	"net"
)

// F-TEID flag bits, low four bits of the first payload octet (29.244
// §8.2.3). CH requests the peer allocate the TEID instead of supplying
// one; CHID additionally asks the peer to tag that choice with an ID so
// multiple F-TEIDs can share one allocation decision. When CH is set,
// V4/V6 stop meaning "an address of this family follows" and instead
// mean "I would prefer an address of this family" — no address octets
// are present at all in that case.
const (
	fteidFlagV6   = 1 << 0
	fteidFlagV4   = 1 << 1
	fteidFlagCH   = 1 << 2
	fteidFlagCHID = 1 << 3
)

// FTEID is a Fully Qualified TEID: a GTP-U tunnel endpoint identifier
// plus the IP address(es) it is reachable on, or a request that the
// peer choose one. Flags are never stored directly — Marshal derives
// them from which optional fields are set, matching the Source IP
// Address IE's flag-derivation rule.
//
// ChooseV4/ChooseV6 only apply when Choose is true: they carry the V4/V6
// preference bits with no address payload following. IPv4/IPv6 carry an
// actual address and are mutually exclusive with Choose.
type FTEID struct {
	TEID     uint32
	IPv4     net.IP // nil if not present
	IPv6     net.IP // nil if not present
	Choose   bool   // CH: ask the peer to allocate
	ChooseV4 bool   // preferred family is IPv4, valid only when Choose
	ChooseV6 bool   // preferred family is IPv6, valid only when Choose
	ChooseID *uint8 // CHID: present iff non-nil
}

func (f FTEID) Marshal() Ie {
	var flags byte
	if f.Choose {
		flags |= fteidFlagCH
		if f.ChooseV4 {
			flags |= fteidFlagV4
		}
		if f.ChooseV6 {
			flags |= fteidFlagV6
		}
	} else {
		if f.IPv4 != nil {
			flags |= fteidFlagV4
		}
		if f.IPv6 != nil {
			flags |= fteidFlagV6
		}
	}
	if f.ChooseID != nil {
		flags |= fteidFlagCHID
	}

	payload := []byte{flags}
	teid := make([]byte, 4)
	binary.BigEndian.PutUint32(teid, f.TEID)
	payload = append(payload, teid...)
	if !f.Choose {
		if f.IPv4 != nil {
			payload = append(payload, f.IPv4.To4()...)
		}
		if f.IPv6 != nil {
			payload = append(payload, f.IPv6.To16()...)
		}
	}
	if f.ChooseID != nil {
		payload = append(payload, *f.ChooseID)
	}
	return New(TypeFTEID, payload)
}

func UnmarshalFTEID(payload []byte) (FTEID, error) {
	if len(payload) < 5 {
		return FTEID{}, &InvalidLengthError{Type: TypeFTEID, Length: len(payload), Reason: "F-TEID requires at least flags + 4-byte TEID"}
	}
	flags := payload[0]
	out := FTEID{
		TEID:   binary.BigEndian.Uint32(payload[1:5]),
		Choose: flags&fteidFlagCH != 0,
	}
	off := 5
	if out.Choose {
		out.ChooseV4 = flags&fteidFlagV4 != 0
		out.ChooseV6 = flags&fteidFlagV6 != 0
	} else {
		if flags&fteidFlagV4 != 0 {
			if len(payload) < off+4 {
				return FTEID{}, &InvalidLengthError{Type: TypeFTEID, Length: len(payload), Reason: "V4 flag set but IPv4 octets missing"}
			}
			out.IPv4 = net.IP(append([]byte(nil), payload[off:off+4]...))
			off += 4
		}
		if flags&fteidFlagV6 != 0 {
			if len(payload) < off+16 {
				return FTEID{}, &InvalidLengthError{Type: TypeFTEID, Length: len(payload), Reason: "V6 flag set but IPv6 octets missing"}
			}
			out.IPv6 = net.IP(append([]byte(nil), payload[off:off+16]...))
			off += 16
		}
	}
	if flags&fteidFlagCHID != 0 {
		if len(payload) < off+1 {
			return FTEID{}, &InvalidLengthError{Type: TypeFTEID, Length: len(payload), Reason: "CHID flag set but choose-ID octet missing"}
		}
		id := payload[off]
		out.ChooseID = &id
	}
	return out, nil
}
