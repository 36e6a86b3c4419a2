package ie

import "net"

// Flag bits shared by the address+prefix-length IE family (Source IP
// Address, UE IP Address, IP Multicast Address): V4 in bit 0, V6 in bit
// 1, and an address-family-specific bit 2. Field order on the wire is
// always V4 octets, then V6 octets, then the mask/prefix-length octet
// if present — grounded on the Rust reference's explicit flag-derived
// (never heuristic-length) decode.
const (
	addrFlagV4 = 1 << 0
	addrFlagV6 = 1 << 1
)

// SourceIPAddress carries the source IP address and optional prefix
// length used to match a PDI's SDF filter against an IP flow (bit 2,
// MPL, marks the prefix-length octet present).
type SourceIPAddress struct {
	IPv4         net.IP
	IPv6         net.IP
	MaskedPrefixLen *uint8
}

const srcAddrFlagMPL = 1 << 2

func (s SourceIPAddress) Marshal() Ie {
	var flags byte
	if s.IPv6 != nil {
		flags |= addrFlagV6
	}
	if s.IPv4 != nil {
		flags |= addrFlagV4
	}
	if s.MaskedPrefixLen != nil {
		flags |= srcAddrFlagMPL
	}
	payload := []byte{flags}
	if s.IPv4 != nil {
		payload = append(payload, s.IPv4.To4()...)
	}
	if s.IPv6 != nil {
		payload = append(payload, s.IPv6.To16()...)
	}
	if s.MaskedPrefixLen != nil {
		payload = append(payload, *s.MaskedPrefixLen)
	}
	return New(TypeSourceIPAddress, payload)
}

func UnmarshalSourceIPAddress(payload []byte) (SourceIPAddress, error) {
	if len(payload) < 1 {
		return SourceIPAddress{}, &InvalidLengthError{Type: TypeSourceIPAddress, Length: len(payload), Reason: "missing flags octet"}
	}
	flags := payload[0]
	var out SourceIPAddress
	off := 1
	if flags&addrFlagV4 != 0 {
		if len(payload) < off+4 {
			return SourceIPAddress{}, &InvalidLengthError{Type: TypeSourceIPAddress, Length: len(payload), Reason: "V4 flag set but IPv4 octets missing"}
		}
		out.IPv4 = net.IP(append([]byte(nil), payload[off:off+4]...))
		off += 4
	}
	if flags&addrFlagV6 != 0 {
		if len(payload) < off+16 {
			return SourceIPAddress{}, &InvalidLengthError{Type: TypeSourceIPAddress, Length: len(payload), Reason: "V6 flag set but IPv6 octets missing"}
		}
		out.IPv6 = net.IP(append([]byte(nil), payload[off:off+16]...))
		off += 16
	}
	if flags&srcAddrFlagMPL != 0 {
		if len(payload) < off+1 {
			return SourceIPAddress{}, &InvalidLengthError{Type: TypeSourceIPAddress, Length: len(payload), Reason: "MPL flag set but prefix-length octet missing"}
		}
		v := payload[off]
		out.MaskedPrefixLen = &v
	}
	return out, nil
}

// UEIPAddress carries the UE's IP address as seen by the UPF, with
// source/destination and IPv6 prefix-delegation flags alongside the
// address-family flags.
const (
	ueIPFlagSD   = 1 << 2 // 0 = source, 1 = destination
	ueIPFlagIPv6D = 1 << 3
)

type UEIPAddress struct {
	IPv4              net.IP
	IPv6              net.IP
	IsDestination     bool
	IPv6PrefixDelegate bool
}

func (u UEIPAddress) Marshal() Ie {
	var flags byte
	if u.IPv6 != nil {
		flags |= addrFlagV6
	}
	if u.IPv4 != nil {
		flags |= addrFlagV4
	}
	if u.IsDestination {
		flags |= ueIPFlagSD
	}
	if u.IPv6PrefixDelegate {
		flags |= ueIPFlagIPv6D
	}
	payload := []byte{flags}
	if u.IPv4 != nil {
		payload = append(payload, u.IPv4.To4()...)
	}
	if u.IPv6 != nil {
		payload = append(payload, u.IPv6.To16()...)
	}
	return New(TypeUEIPAddress, payload)
}

func UnmarshalUEIPAddress(payload []byte) (UEIPAddress, error) {
	if len(payload) < 1 {
		return UEIPAddress{}, &InvalidLengthError{Type: TypeUEIPAddress, Length: len(payload), Reason: "missing flags octet"}
	}
	flags := payload[0]
	out := UEIPAddress{
		IsDestination:      flags&ueIPFlagSD != 0,
		IPv6PrefixDelegate: flags&ueIPFlagIPv6D != 0,
	}
	off := 1
	if flags&addrFlagV4 != 0 {
		if len(payload) < off+4 {
			return UEIPAddress{}, &InvalidLengthError{Type: TypeUEIPAddress, Length: len(payload), Reason: "V4 flag set but IPv4 octets missing"}
		}
		out.IPv4 = net.IP(append([]byte(nil), payload[off:off+4]...))
		off += 4
	}
	if flags&addrFlagV6 != 0 {
		if len(payload) < off+16 {
			return UEIPAddress{}, &InvalidLengthError{Type: TypeUEIPAddress, Length: len(payload), Reason: "V6 flag set but IPv6 octets missing"}
		}
		out.IPv6 = net.IP(append([]byte(nil), payload[off:off+16]...))
	}
	return out, nil
}

// IPMulticastAddress carries a multicast group address, optionally a
// range (start/end), for Ethernet PDU session multicast forwarding.
type IPMulticastAddress struct {
	StartIPv4 net.IP
	EndIPv4   net.IP
	StartIPv6 net.IP
	EndIPv6   net.IP
}

const ipMcastFlagRange = 1 << 2

func (m IPMulticastAddress) Marshal() Ie {
	isRange := m.EndIPv4 != nil || m.EndIPv6 != nil
	var flags byte
	if m.StartIPv6 != nil {
		flags |= addrFlagV6
	}
	if m.StartIPv4 != nil {
		flags |= addrFlagV4
	}
	if isRange {
		flags |= ipMcastFlagRange
	}
	payload := []byte{flags}
	if m.StartIPv4 != nil {
		payload = append(payload, m.StartIPv4.To4()...)
		if isRange {
			payload = append(payload, m.EndIPv4.To4()...)
		}
	}
	if m.StartIPv6 != nil {
		payload = append(payload, m.StartIPv6.To16()...)
		if isRange {
			payload = append(payload, m.EndIPv6.To16()...)
		}
	}
	return New(TypeIPMulticastAddress, payload)
}

func UnmarshalIPMulticastAddress(payload []byte) (IPMulticastAddress, error) {
	if len(payload) < 1 {
		return IPMulticastAddress{}, &InvalidLengthError{Type: TypeIPMulticastAddress, Length: len(payload), Reason: "missing flags octet"}
	}
	flags := payload[0]
	isRange := flags&ipMcastFlagRange != 0
	var out IPMulticastAddress
	off := 1
	if flags&addrFlagV4 != 0 {
		need := 4
		if isRange {
			need = 8
		}
		if len(payload) < off+need {
			return IPMulticastAddress{}, &InvalidLengthError{Type: TypeIPMulticastAddress, Length: len(payload), Reason: "V4 flag set but address octets missing"}
		}
		out.StartIPv4 = net.IP(append([]byte(nil), payload[off:off+4]...))
		off += 4
		if isRange {
			out.EndIPv4 = net.IP(append([]byte(nil), payload[off:off+4]...))
			off += 4
		}
	}
	if flags&addrFlagV6 != 0 {
		need := 16
		if isRange {
			need = 32
		}
		if len(payload) < off+need {
			return IPMulticastAddress{}, &InvalidLengthError{Type: TypeIPMulticastAddress, Length: len(payload), Reason: "V6 flag set but address octets missing"}
		}
		out.StartIPv6 = net.IP(append([]byte(nil), payload[off:off+16]...))
		off += 16
		if isRange {
			out.EndIPv6 = net.IP(append([]byte(nil), payload[off:off+16]...))
		}
	}
	return out, nil
}
