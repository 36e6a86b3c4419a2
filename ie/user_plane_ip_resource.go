package ie

import "net"

// UserPlaneIPResourceInformation advertises one IP resource (an address
// pool plus an optional TEID range) a UPF serves, carried repeated in
// Association Setup/Update so an SMF can pick an F-TEID allocation
// scheme per resource.
type UserPlaneIPResourceInformation struct {
	TEIDRangeIndication *uint8 // number of TEID prefix bits assigned to this resource, if TEIDRI present
	TEIDRange           *uint8
	IPv4                net.IP
	IPv6                net.IP
	NetworkInstance     *NetworkInstance
	SourceInterface     *SourceInterface
}

const (
	upiriFlagV6     = 1 << 0
	upiriFlagV4     = 1 << 1
	upiriFlagTEIDRI = 1 << 2
	upiriFlagASSONI = 1 << 3
	upiriFlagASSOSI = 1 << 4
)

func (u UserPlaneIPResourceInformation) Marshal() Ie {
	var flags byte
	if u.IPv6 != nil {
		flags |= upiriFlagV6
	}
	if u.IPv4 != nil {
		flags |= upiriFlagV4
	}
	if u.TEIDRangeIndication != nil {
		flags |= upiriFlagTEIDRI
	}
	if u.NetworkInstance != nil {
		flags |= upiriFlagASSONI
	}
	if u.SourceInterface != nil {
		flags |= upiriFlagASSOSI
	}
	payload := []byte{flags}
	if u.TEIDRangeIndication != nil {
		teidRange := byte(0)
		if u.TEIDRange != nil {
			teidRange = *u.TEIDRange
		}
		payload = append(payload, *u.TEIDRangeIndication<<5|teidRange)
	}
	if u.IPv4 != nil {
		payload = append(payload, u.IPv4.To4()...)
	}
	if u.IPv6 != nil {
		payload = append(payload, u.IPv6.To16()...)
	}
	if u.NetworkInstance != nil {
		payload = append(payload, byte(len(u.NetworkInstance.Name)))
		payload = append(payload, []byte(u.NetworkInstance.Name)...)
	}
	if u.SourceInterface != nil {
		payload = append(payload, byte(u.SourceInterface.Value)&0x0F)
	}
	return New(TypeUserPlaneIPResourceInformation, payload)
}

func UnmarshalUserPlaneIPResourceInformation(payload []byte) (UserPlaneIPResourceInformation, error) {
	if len(payload) < 1 {
		return UserPlaneIPResourceInformation{}, &InvalidLengthError{Type: TypeUserPlaneIPResourceInformation, Length: len(payload), Reason: "missing flags octet"}
	}
	flags := payload[0]
	var out UserPlaneIPResourceInformation
	off := 1
	if flags&upiriFlagTEIDRI != 0 {
		if len(payload) < off+1 {
			return UserPlaneIPResourceInformation{}, &InvalidLengthError{Type: TypeUserPlaneIPResourceInformation, Length: len(payload), Reason: "TEIDRI flag set but range octet missing"}
		}
		ri := payload[off] >> 5
		tr := payload[off] & 0x1F
		out.TEIDRangeIndication = &ri
		out.TEIDRange = &tr
		off++
	}
	if flags&upiriFlagV4 != 0 {
		if len(payload) < off+4 {
			return UserPlaneIPResourceInformation{}, &InvalidLengthError{Type: TypeUserPlaneIPResourceInformation, Length: len(payload), Reason: "V4 flag set but IPv4 octets missing"}
		}
		out.IPv4 = net.IP(append([]byte(nil), payload[off:off+4]...))
		off += 4
	}
	if flags&upiriFlagV6 != 0 {
		if len(payload) < off+16 {
			return UserPlaneIPResourceInformation{}, &InvalidLengthError{Type: TypeUserPlaneIPResourceInformation, Length: len(payload), Reason: "V6 flag set but IPv6 octets missing"}
		}
		out.IPv6 = net.IP(append([]byte(nil), payload[off:off+16]...))
		off += 16
	}
	if flags&upiriFlagASSONI != 0 {
		if len(payload) < off+1 {
			return UserPlaneIPResourceInformation{}, &InvalidLengthError{Type: TypeUserPlaneIPResourceInformation, Length: len(payload), Reason: "ASSONI flag set but network instance length octet missing"}
		}
		n := int(payload[off])
		off++
		if len(payload) < off+n {
			return UserPlaneIPResourceInformation{}, &InvalidLengthError{Type: TypeUserPlaneIPResourceInformation, Length: len(payload), Reason: "declared network instance length exceeds payload"}
		}
		ni := NetworkInstance{Name: string(payload[off : off+n])}
		out.NetworkInstance = &ni
		off += n
	}
	if flags&upiriFlagASSOSI != 0 {
		if len(payload) < off+1 {
			return UserPlaneIPResourceInformation{}, &InvalidLengthError{Type: TypeUserPlaneIPResourceInformation, Length: len(payload), Reason: "ASSOSI flag set but source interface octet missing"}
		}
		si := SourceInterface{Value: InterfaceValue(payload[off] & 0x0F)}
		out.SourceInterface = &si
	}
	return out, nil
}
