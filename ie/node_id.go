package ie

import (
	"fmt"
	"net"
)

// NodeIDType is the one-octet discriminator at the front of a Node ID
// payload selecting which of the three following formats the rest of
// the payload takes.
type NodeIDType uint8

const (
	NodeIDTypeIPv4   NodeIDType = 0
	NodeIDTypeIPv6   NodeIDType = 1
	NodeIDTypeFQDN   NodeIDType = 2
)

// NodeID identifies a PFCP node by IPv4 address, IPv6 address, or FQDN
// (§8 scenario 2). Exactly one of IPv4/IPv6/FQDN is meaningful,
// selected by Type. A Type octet outside the three known values is not
// a decode error — matching Cause, Source/Destination Interface, and
// PDN Type's forward-compatibility policy — and the bytes following it
// are kept verbatim in Raw so Marshal can re-emit them unchanged.
type NodeID struct {
	Type NodeIDType
	IPv4 net.IP
	IPv6 net.IP
	FQDN string
	Raw  []byte // payload after the type octet, set only when Type is unrecognized
}

func (n NodeID) Marshal() Ie {
	var payload []byte
	switch n.Type {
	case NodeIDTypeIPv4:
		payload = append([]byte{byte(NodeIDTypeIPv4)}, n.IPv4.To4()...)
	case NodeIDTypeIPv6:
		payload = append([]byte{byte(NodeIDTypeIPv6)}, n.IPv6.To16()...)
	case NodeIDTypeFQDN:
		payload = append([]byte{byte(NodeIDTypeFQDN)}, []byte(n.FQDN)...)
	default:
		payload = append([]byte{byte(n.Type)}, n.Raw...)
	}
	return New(TypeNodeID, payload)
}

func UnmarshalNodeID(payload []byte) (NodeID, error) {
	if len(payload) < 1 {
		return NodeID{}, &InvalidLengthError{Type: TypeNodeID, Length: len(payload), Reason: "missing type octet"}
	}
	t := NodeIDType(payload[0])
	rest := payload[1:]
	switch t {
	case NodeIDTypeIPv4:
		if len(rest) != 4 {
			return NodeID{}, &InvalidLengthError{Type: TypeNodeID, Length: len(payload), Reason: "IPv4 node ID requires 4 address bytes"}
		}
		return NodeID{Type: t, IPv4: net.IP(append([]byte(nil), rest...))}, nil
	case NodeIDTypeIPv6:
		if len(rest) != 16 {
			return NodeID{}, &InvalidLengthError{Type: TypeNodeID, Length: len(payload), Reason: "IPv6 node ID requires 16 address bytes"}
		}
		return NodeID{Type: t, IPv6: net.IP(append([]byte(nil), rest...))}, nil
	case NodeIDTypeFQDN:
		return NodeID{Type: t, FQDN: string(rest)}, nil
	default:
		return NodeID{Type: t, Raw: append([]byte(nil), rest...)}, nil
	}
}

func (n NodeID) String() string {
	switch n.Type {
	case NodeIDTypeIPv4:
		return n.IPv4.String()
	case NodeIDTypeIPv6:
		return n.IPv6.String()
	case NodeIDTypeFQDN:
		return n.FQDN
	default:
		return fmt.Sprintf("NodeID(type=%d)", uint8(n.Type))
	}
}
