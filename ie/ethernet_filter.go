package ie

// EthernetFilterID identifies one Ethernet Packet Filter within a PDI,
// referenced by EthernetFilterProperties and rule updates.
type EthernetFilterID struct{ Value uint32 }

func (e EthernetFilterID) Marshal() Ie { return marshalRuleID32(TypeEthernetFilterID, e.Value) }
func UnmarshalEthernetFilterID(payload []byte) (EthernetFilterID, error) {
	v, err := unmarshalRuleID32(TypeEthernetFilterID, payload)
	return EthernetFilterID{Value: v}, err
}

// EthernetFilterProperties flags whether an Ethernet filter should
// match traffic in both directions (bidirectional).
type EthernetFilterProperties struct {
	Bidirectional bool
}

func (e EthernetFilterProperties) Marshal() Ie {
	var b byte
	if e.Bidirectional {
		b = 1
	}
	return New(TypeEthernetFilterProperties, []byte{b})
}

func UnmarshalEthernetFilterProperties(payload []byte) (EthernetFilterProperties, error) {
	if len(payload) != 1 {
		return EthernetFilterProperties{}, &InvalidLengthError{Type: TypeEthernetFilterProperties, Length: len(payload), Reason: "must be exactly 1 byte"}
	}
	return EthernetFilterProperties{Bidirectional: payload[0]&0x01 != 0}, nil
}

// Proxying flags whether the UPF performs ARP/IPv6 Neighbor Solicitation
// proxying (ARP) and/or DHCP relay (INS) on an Ethernet PDU session.
type Proxying struct {
	ARP bool
	INS bool
}

const (
	proxyFlagARP = 1 << 0
	proxyFlagINS = 1 << 1
)

func (p Proxying) Marshal() Ie {
	var b byte
	if p.ARP {
		b |= proxyFlagARP
	}
	if p.INS {
		b |= proxyFlagINS
	}
	return New(TypeProxying, []byte{b})
}

func UnmarshalProxying(payload []byte) (Proxying, error) {
	if len(payload) != 1 {
		return Proxying{}, &InvalidLengthError{Type: TypeProxying, Length: len(payload), Reason: "must be exactly 1 byte"}
	}
	return Proxying{
		ARP: payload[0]&proxyFlagARP != 0,
		INS: payload[0]&proxyFlagINS != 0,
	}, nil
}

// EthernetPDUSessionInformation flags an Ethernet PDU session as
// carrying all Ethernet frames for the session (not filtered per-PDR).
type EthernetPDUSessionInformation struct {
	EtherSessionInformation bool
}

func (e EthernetPDUSessionInformation) Marshal() Ie {
	var b byte
	if e.EtherSessionInformation {
		b = 1
	}
	return New(TypeEthernetPDUSessionInformation, []byte{b})
}

func UnmarshalEthernetPDUSessionInformation(payload []byte) (EthernetPDUSessionInformation, error) {
	if len(payload) != 1 {
		return EthernetPDUSessionInformation{}, &InvalidLengthError{Type: TypeEthernetPDUSessionInformation, Length: len(payload), Reason: "must be exactly 1 byte"}
	}
	return EthernetPDUSessionInformation{EtherSessionInformation: payload[0]&0x01 != 0}, nil
}

// EthernetInactivityTimer bounds how long an Ethernet PDU session may
// go without observed traffic before the UPF reports inactivity.
type EthernetInactivityTimer struct {
	Seconds uint32
}

func (e EthernetInactivityTimer) Marshal() Ie {
	return marshalSeconds32(TypeEthernetInactivityTimer, e.Seconds)
}

func UnmarshalEthernetInactivityTimer(payload []byte) (EthernetInactivityTimer, error) {
	v, err := unmarshalSeconds32(TypeEthernetInactivityTimer, payload)
	return EthernetInactivityTimer{Seconds: v}, err
}
