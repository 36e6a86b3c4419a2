package ie

import "net"

// IPMulticastAddressingInfo is the grouped IE pairing a multicast group
// address with the source address that joined it, carried inside a PDI
// for Ethernet multicast forwarding.
type IPMulticastAddressingInfo struct {
	IPMulticastAddress IPMulticastAddress
	SourceIPAddress    *SourceIPAddress
}

func (m IPMulticastAddressingInfo) Marshal() Ie {
	var payload []byte
	payload = append(payload, m.IPMulticastAddress.Marshal().Marshal()...)
	if m.SourceIPAddress != nil {
		payload = append(payload, m.SourceIPAddress.Marshal().Marshal()...)
	}
	return New(TypeIPMulticastAddressingInfo, payload)
}

func UnmarshalIPMulticastAddressingInfo(payload []byte) (IPMulticastAddressingInfo, error) {
	ies, err := All(payload)
	if err != nil {
		return IPMulticastAddressingInfo{}, err
	}
	var out IPMulticastAddressingInfo
	haveAddr := false
	for _, i := range ies {
		switch i.Type {
		case TypeIPMulticastAddress:
			v, err := UnmarshalIPMulticastAddress(i.Payload)
			if err != nil {
				return IPMulticastAddressingInfo{}, err
			}
			out.IPMulticastAddress = v
			haveAddr = true
		case TypeSourceIPAddress:
			v, err := UnmarshalSourceIPAddress(i.Payload)
			if err != nil {
				return IPMulticastAddressingInfo{}, err
			}
			out.SourceIPAddress = &v
		}
	}
	if !haveAddr {
		return IPMulticastAddressingInfo{}, &MissingMandatoryIeError{Container: "IPMulticastAddressingInfo", Missing: TypeIPMulticastAddress}
	}
	return out, nil
}

// UEIPAddressPoolIdentity names a UE IP address pool by an opaque
// operator-defined string, used to request an address from a specific
// pool.
type UEIPAddressPoolIdentity struct {
	Identity string
}

func (u UEIPAddressPoolIdentity) Marshal() Ie {
	return New(TypeUEIPAddressPoolIdentity, []byte(u.Identity))
}

func UnmarshalUEIPAddressPoolIdentity(payload []byte) (UEIPAddressPoolIdentity, error) {
	return UEIPAddressPoolIdentity{Identity: string(payload)}, nil
}

// UEIPAddressPoolInformation is the grouped IE a UPF uses in an
// Association Setup/Update to advertise which UE IP address pools and
// network instance it serves.
type UEIPAddressPoolInformation struct {
	UEIPAddressPoolIdentity UEIPAddressPoolIdentity
	NetworkInstance         *NetworkInstance
}

func (u UEIPAddressPoolInformation) Marshal() Ie {
	var payload []byte
	payload = append(payload, u.UEIPAddressPoolIdentity.Marshal().Marshal()...)
	if u.NetworkInstance != nil {
		payload = append(payload, u.NetworkInstance.Marshal().Marshal()...)
	}
	return New(TypeUEIPAddressPoolInformation, payload)
}

func UnmarshalUEIPAddressPoolInformation(payload []byte) (UEIPAddressPoolInformation, error) {
	ies, err := All(payload)
	if err != nil {
		return UEIPAddressPoolInformation{}, err
	}
	var out UEIPAddressPoolInformation
	havePool := false
	for _, i := range ies {
		switch i.Type {
		case TypeUEIPAddressPoolIdentity:
			v, err := UnmarshalUEIPAddressPoolIdentity(i.Payload)
			if err != nil {
				return UEIPAddressPoolInformation{}, err
			}
			out.UEIPAddressPoolIdentity = v
			havePool = true
		case TypeNetworkInstance:
			v, err := UnmarshalNetworkInstance(i.Payload)
			if err != nil {
				return UEIPAddressPoolInformation{}, err
			}
			out.NetworkInstance = &v
		}
	}
	if !havePool {
		return UEIPAddressPoolInformation{}, &MissingMandatoryIeError{Container: "UEIPAddressPoolInformation", Missing: TypeUEIPAddressPoolIdentity}
	}
	return out, nil
}

// AlternateSMFIPAddress lets an SMF advertise a backup address to which
// a UPF should send unsolicited reports if the primary SMF is
// unreachable.
type AlternateSMFIPAddress struct {
	IPv4 net.IP
	IPv6 net.IP
}

func (a AlternateSMFIPAddress) Marshal() Ie {
	var flags byte
	if a.IPv6 != nil {
		flags |= addrFlagV6
	}
	if a.IPv4 != nil {
		flags |= addrFlagV4
	}
	payload := []byte{flags}
	if a.IPv4 != nil {
		payload = append(payload, a.IPv4.To4()...)
	}
	if a.IPv6 != nil {
		payload = append(payload, a.IPv6.To16()...)
	}
	return New(TypeAlternateSMFIPAddress, payload)
}

func UnmarshalAlternateSMFIPAddress(payload []byte) (AlternateSMFIPAddress, error) {
	if len(payload) < 1 {
		return AlternateSMFIPAddress{}, &InvalidLengthError{Type: TypeAlternateSMFIPAddress, Length: len(payload), Reason: "missing flags octet"}
	}
	flags := payload[0]
	var out AlternateSMFIPAddress
	off := 1
	if flags&addrFlagV4 != 0 {
		if len(payload) < off+4 {
			return AlternateSMFIPAddress{}, &InvalidLengthError{Type: TypeAlternateSMFIPAddress, Length: len(payload), Reason: "V4 flag set but IPv4 octets missing"}
		}
		out.IPv4 = net.IP(append([]byte(nil), payload[off:off+4]...))
		off += 4
	}
	if flags&addrFlagV6 != 0 {
		if len(payload) < off+16 {
			return AlternateSMFIPAddress{}, &InvalidLengthError{Type: TypeAlternateSMFIPAddress, Length: len(payload), Reason: "V6 flag set but IPv6 octets missing"}
		}
		out.IPv6 = net.IP(append([]byte(nil), payload[off:off+16]...))
	}
	return out, nil
}
