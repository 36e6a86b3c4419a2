package ie

// NetworkInstance names the routing/forwarding domain a PDI matches
// traffic within, or a FAR forwards into. It is the canonical example
// of an IE where zero length is a valid, meaningful value — "match any
// network instance" / "clear the configured instance" — rather than a
// malformed encoding (§8 scenario 6; see ZeroLengthAllowed).
type NetworkInstance struct {
	Name string
}

func (n NetworkInstance) Marshal() Ie {
	return New(TypeNetworkInstance, []byte(n.Name))
}

func UnmarshalNetworkInstance(payload []byte) (NetworkInstance, error) {
	return NetworkInstance{Name: string(payload)}, nil
}

// ForwardingPolicy carries an opaque, operator-defined routing policy
// identifier for a FAR to apply. Zero length clears a previously set
// policy, so it is also allow-listed in ZeroLengthAllowed.
type ForwardingPolicy struct {
	Identifier string
}

func (f ForwardingPolicy) Marshal() Ie {
	payload := make([]byte, 1+len(f.Identifier))
	payload[0] = byte(len(f.Identifier))
	copy(payload[1:], f.Identifier)
	return New(TypeForwardingPolicy, payload)
}

func UnmarshalForwardingPolicy(payload []byte) (ForwardingPolicy, error) {
	if len(payload) == 0 {
		return ForwardingPolicy{}, nil
	}
	n := int(payload[0])
	if len(payload) < 1+n {
		return ForwardingPolicy{}, &InvalidLengthError{Type: TypeForwardingPolicy, Length: len(payload), Reason: "declared identifier length exceeds payload"}
	}
	return ForwardingPolicy{Identifier: string(payload[1 : 1+n])}, nil
}

// PDNTypeValue enumerates the session's PDN/PDU session type.
type PDNTypeValue uint8

const (
	PDNTypeIPv4   PDNTypeValue = 1
	PDNTypeIPv6   PDNTypeValue = 2
	PDNTypeIPv4v6 PDNTypeValue = 3
	PDNTypeNonIP  PDNTypeValue = 4
	PDNTypeEthernet PDNTypeValue = 5
)

type PDNType struct{ Value PDNTypeValue }

func (p PDNType) Marshal() Ie { return New(TypePDNType, []byte{byte(p.Value)}) }
func UnmarshalPDNType(payload []byte) (PDNType, error) {
	if len(payload) != 1 {
		return PDNType{}, &InvalidLengthError{Type: TypePDNType, Length: len(payload), Reason: "PDN Type must be exactly 1 byte"}
	}
	return PDNType{Value: PDNTypeValue(payload[0] & 0x07)}, nil
}
