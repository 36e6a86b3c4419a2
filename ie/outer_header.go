package ie

import (
	"encoding/binary"
	"net"
)

// Outer Header Creation description flags (first two octets, bits used
// out of the 16-bit description field; only the combinations this
// module's FAR builders emit are modeled).
const (
	ohcGTPUv4 = 1 << 0
	ohcGTPUv6 = 1 << 1
	ohcUDPv4  = 1 << 2
	ohcUDPv6  = 1 << 3
)

// OuterHeaderCreation tells the UPF what encapsulation to apply when
// forwarding on the far side of a FAR: a GTP-U/UDP header carrying the
// given TEID and peer address.
type OuterHeaderCreation struct {
	GTPUv4 bool
	GTPUv6 bool
	TEID   uint32
	IPv4   net.IP
	IPv6   net.IP
	Port   uint16
}

func (o OuterHeaderCreation) Marshal() Ie {
	var desc uint16
	if o.GTPUv4 {
		desc |= ohcGTPUv4
	}
	if o.GTPUv6 {
		desc |= ohcGTPUv6
	}
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, desc)
	payload := b

	if o.GTPUv4 || o.GTPUv6 {
		teid := make([]byte, 4)
		binary.BigEndian.PutUint32(teid, o.TEID)
		payload = append(payload, teid...)
	}
	if o.IPv4 != nil {
		payload = append(payload, o.IPv4.To4()...)
	}
	if o.IPv6 != nil {
		payload = append(payload, o.IPv6.To16()...)
	}
	if o.Port != 0 {
		p := make([]byte, 2)
		binary.BigEndian.PutUint16(p, o.Port)
		payload = append(payload, p...)
	}
	return New(TypeOuterHeaderCreation, payload)
}

func UnmarshalOuterHeaderCreation(payload []byte) (OuterHeaderCreation, error) {
	if len(payload) < 2 {
		return OuterHeaderCreation{}, &InvalidLengthError{Type: TypeOuterHeaderCreation, Length: len(payload), Reason: "missing description field"}
	}
	desc := binary.BigEndian.Uint16(payload[0:2])
	out := OuterHeaderCreation{
		GTPUv4: desc&ohcGTPUv4 != 0,
		GTPUv6: desc&ohcGTPUv6 != 0,
	}
	off := 2
	if out.GTPUv4 || out.GTPUv6 {
		if len(payload) < off+4 {
			return OuterHeaderCreation{}, &InvalidLengthError{Type: TypeOuterHeaderCreation, Length: len(payload), Reason: "GTP-U flag set but TEID missing"}
		}
		out.TEID = binary.BigEndian.Uint32(payload[off : off+4])
		off += 4
	}
	if desc&ohcUDPv4 != 0 || out.GTPUv4 {
		if len(payload) >= off+4 {
			out.IPv4 = net.IP(append([]byte(nil), payload[off:off+4]...))
			off += 4
		}
	}
	if desc&ohcUDPv6 != 0 || out.GTPUv6 {
		if len(payload) >= off+16 {
			out.IPv6 = net.IP(append([]byte(nil), payload[off:off+16]...))
			off += 16
		}
	}
	if len(payload) >= off+2 {
		out.Port = binary.BigEndian.Uint16(payload[off : off+2])
	}
	return out, nil
}

// OuterHeaderRemoval tells the UPF which encapsulation header to strip
// when receiving on the near side of a PDR.
type OuterHeaderRemovalDescription uint8

const (
	OuterHeaderRemovalGTPUUDPIPv4 OuterHeaderRemovalDescription = 0
	OuterHeaderRemovalGTPUUDPIPv6 OuterHeaderRemovalDescription = 1
	OuterHeaderRemovalUDPIPv4     OuterHeaderRemovalDescription = 2
	OuterHeaderRemovalUDPIPv6     OuterHeaderRemovalDescription = 3
)

type OuterHeaderRemoval struct {
	Description OuterHeaderRemovalDescription
}

func (o OuterHeaderRemoval) Marshal() Ie {
	return New(TypeOuterHeaderRemoval, []byte{byte(o.Description)})
}

func UnmarshalOuterHeaderRemoval(payload []byte) (OuterHeaderRemoval, error) {
	if len(payload) < 1 {
		return OuterHeaderRemoval{}, &InvalidLengthError{Type: TypeOuterHeaderRemoval, Length: len(payload), Reason: "missing description octet"}
	}
	return OuterHeaderRemoval{Description: OuterHeaderRemovalDescription(payload[0])}, nil
}

// RemoteGTPUPeer identifies a neighboring GTP-U peer for path-failure
// monitoring, carried in User Plane Path Failure Report.
type RemoteGTPUPeer struct {
	IPv4 net.IP
	IPv6 net.IP
}

func (r RemoteGTPUPeer) Marshal() Ie {
	var flags byte
	if r.IPv6 != nil {
		flags |= addrFlagV6
	}
	if r.IPv4 != nil {
		flags |= addrFlagV4
	}
	payload := []byte{flags}
	if r.IPv4 != nil {
		payload = append(payload, r.IPv4.To4()...)
	}
	if r.IPv6 != nil {
		payload = append(payload, r.IPv6.To16()...)
	}
	return New(TypeRemoteGTPUPeer, payload)
}

func UnmarshalRemoteGTPUPeer(payload []byte) (RemoteGTPUPeer, error) {
	if len(payload) < 1 {
		return RemoteGTPUPeer{}, &InvalidLengthError{Type: TypeRemoteGTPUPeer, Length: len(payload), Reason: "missing flags octet"}
	}
	flags := payload[0]
	var out RemoteGTPUPeer
	off := 1
	if flags&addrFlagV4 != 0 {
		if len(payload) < off+4 {
			return RemoteGTPUPeer{}, &InvalidLengthError{Type: TypeRemoteGTPUPeer, Length: len(payload), Reason: "V4 flag set but IPv4 octets missing"}
		}
		out.IPv4 = net.IP(append([]byte(nil), payload[off:off+4]...))
		off += 4
	}
	if flags&addrFlagV6 != 0 {
		if len(payload) < off+16 {
			return RemoteGTPUPeer{}, &InvalidLengthError{Type: TypeRemoteGTPUPeer, Length: len(payload), Reason: "V6 flag set but IPv6 octets missing"}
		}
		out.IPv6 = net.IP(append([]byte(nil), payload[off:off+16]...))
	}
	return out, nil
}
