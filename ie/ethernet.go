package ie

import "encoding/binary"

// MACAddress carries one or two source/destination MAC pairs for
// Ethernet PDU session filtering.
type MACAddress struct {
	SourceMAC      []byte // 6 bytes if present
	DestinationMAC []byte // 6 bytes if present
	UpperSourceMAC      []byte
	UpperDestinationMAC []byte
}

const (
	macFlagSOUR  = 1 << 0
	macFlagDEST  = 1 << 1
	macFlagUSOU  = 1 << 2
	macFlagUDES  = 1 << 3
)

func (m MACAddress) Marshal() Ie {
	var flags byte
	if m.SourceMAC != nil {
		flags |= macFlagSOUR
	}
	if m.DestinationMAC != nil {
		flags |= macFlagDEST
	}
	if m.UpperSourceMAC != nil {
		flags |= macFlagUSOU
	}
	if m.UpperDestinationMAC != nil {
		flags |= macFlagUDES
	}
	payload := []byte{flags}
	payload = append(payload, m.SourceMAC...)
	payload = append(payload, m.DestinationMAC...)
	payload = append(payload, m.UpperSourceMAC...)
	payload = append(payload, m.UpperDestinationMAC...)
	return New(TypeMACAddress, payload)
}

func UnmarshalMACAddress(payload []byte) (MACAddress, error) {
	if len(payload) < 1 {
		return MACAddress{}, &InvalidLengthError{Type: TypeMACAddress, Length: len(payload), Reason: "missing flags octet"}
	}
	flags := payload[0]
	var out MACAddress
	off := 1
	read := func(present bool, dst *[]byte) error {
		if !present {
			return nil
		}
		if len(payload) < off+6 {
			return &InvalidLengthError{Type: TypeMACAddress, Length: len(payload), Reason: "flag set but 6-byte MAC missing"}
		}
		*dst = append([]byte(nil), payload[off:off+6]...)
		off += 6
		return nil
	}
	if err := read(flags&macFlagSOUR != 0, &out.SourceMAC); err != nil {
		return MACAddress{}, err
	}
	if err := read(flags&macFlagDEST != 0, &out.DestinationMAC); err != nil {
		return MACAddress{}, err
	}
	if err := read(flags&macFlagUSOU != 0, &out.UpperSourceMAC); err != nil {
		return MACAddress{}, err
	}
	if err := read(flags&macFlagUDES != 0, &out.UpperDestinationMAC); err != nil {
		return MACAddress{}, err
	}
	return out, nil
}

// EthernetPacketFilter is the grouped IE describing one Ethernet-layer
// match filter (MAC addresses, C-TAG/S-TAG, Ethertype), nested inside
// an Ethernet PDI.
type EthernetPacketFilter struct {
	MACAddress *MACAddress
	Ethertype  *uint16
	CTag       *uint16
	STag       *uint16
}

func (e EthernetPacketFilter) Marshal() Ie {
	var payload []byte
	if e.MACAddress != nil {
		payload = append(payload, e.MACAddress.Marshal().Marshal()...)
	}
	if e.Ethertype != nil {
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, *e.Ethertype)
		payload = append(payload, New(TypeEthertype, b).Marshal()...)
	}
	if e.CTag != nil {
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, *e.CTag)
		payload = append(payload, New(TypeCTag, b).Marshal()...)
	}
	if e.STag != nil {
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, *e.STag)
		payload = append(payload, New(TypeSTag, b).Marshal()...)
	}
	return New(TypeEthernetPacketFilter, payload)
}

func UnmarshalEthernetPacketFilter(payload []byte) (EthernetPacketFilter, error) {
	ies, err := All(payload)
	if err != nil {
		return EthernetPacketFilter{}, err
	}
	var out EthernetPacketFilter
	for _, i := range ies {
		switch i.Type {
		case TypeMACAddress:
			v, err := UnmarshalMACAddress(i.Payload)
			if err != nil {
				return EthernetPacketFilter{}, err
			}
			out.MACAddress = &v
		case TypeEthertype:
			if len(i.Payload) != 2 {
				return EthernetPacketFilter{}, &InvalidLengthError{Type: TypeEthertype, Length: len(i.Payload), Reason: "Ethertype must be exactly 2 bytes"}
			}
			v := binary.BigEndian.Uint16(i.Payload)
			out.Ethertype = &v
		case TypeCTag:
			if len(i.Payload) != 2 {
				return EthernetPacketFilter{}, &InvalidLengthError{Type: TypeCTag, Length: len(i.Payload), Reason: "C-TAG must be exactly 2 bytes"}
			}
			v := binary.BigEndian.Uint16(i.Payload)
			out.CTag = &v
		case TypeSTag:
			if len(i.Payload) != 2 {
				return EthernetPacketFilter{}, &InvalidLengthError{Type: TypeSTag, Length: len(i.Payload), Reason: "S-TAG must be exactly 2 bytes"}
			}
			v := binary.BigEndian.Uint16(i.Payload)
			out.STag = &v
		}
	}
	return out, nil
}

// EthernetTrafficInformation is the grouped IE reporting detected and
// removed MAC addresses for an Ethernet PDU session, nested inside a
// usage report.
type EthernetTrafficInformation struct {
	MACAddressesDetected []MACAddressesDetected
	MACAddressesRemoved  []MACAddressesRemoved
}

func (e EthernetTrafficInformation) Marshal() Ie {
	var payload []byte
	for _, d := range e.MACAddressesDetected {
		payload = append(payload, d.Marshal().Marshal()...)
	}
	for _, r := range e.MACAddressesRemoved {
		payload = append(payload, r.Marshal().Marshal()...)
	}
	return New(TypeEthernetTrafficInformation, payload)
}

func UnmarshalEthernetTrafficInformation(payload []byte) (EthernetTrafficInformation, error) {
	ies, err := All(payload)
	if err != nil {
		return EthernetTrafficInformation{}, err
	}
	var out EthernetTrafficInformation
	for _, i := range ies {
		switch i.Type {
		case TypeMACAddressesDetected:
			v, err := UnmarshalMACAddressesDetected(i.Payload)
			if err != nil {
				return EthernetTrafficInformation{}, err
			}
			out.MACAddressesDetected = append(out.MACAddressesDetected, v)
		case TypeMACAddressesRemoved:
			v, err := UnmarshalMACAddressesRemoved(i.Payload)
			if err != nil {
				return EthernetTrafficInformation{}, err
			}
			out.MACAddressesRemoved = append(out.MACAddressesRemoved, v)
		}
	}
	return out, nil
}

// MACAddressesDetected and MACAddressesRemoved each carry one newly
// seen / newly absent MAC address on an Ethernet PDU session.
type MACAddressesDetected struct{ MAC []byte }

func (m MACAddressesDetected) Marshal() Ie { return New(TypeMACAddressesDetected, m.MAC) }
func UnmarshalMACAddressesDetected(payload []byte) (MACAddressesDetected, error) {
	if len(payload) != 6 {
		return MACAddressesDetected{}, &InvalidLengthError{Type: TypeMACAddressesDetected, Length: len(payload), Reason: "MAC address must be exactly 6 bytes"}
	}
	return MACAddressesDetected{MAC: append([]byte(nil), payload...)}, nil
}

type MACAddressesRemoved struct{ MAC []byte }

func (m MACAddressesRemoved) Marshal() Ie { return New(TypeMACAddressesRemoved, m.MAC) }
func UnmarshalMACAddressesRemoved(payload []byte) (MACAddressesRemoved, error) {
	if len(payload) != 6 {
		return MACAddressesRemoved{}, &InvalidLengthError{Type: TypeMACAddressesRemoved, Length: len(payload), Reason: "MAC address must be exactly 6 bytes"}
	}
	return MACAddressesRemoved{MAC: append([]byte(nil), payload...)}, nil
}
