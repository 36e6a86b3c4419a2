package ie

// PDI (Packet Detection Information) is the grouped IE inside a
// CreatePDR/UpdatePDR describing which traffic a PDR matches: the
// interface it arrives on plus any combination of local F-TEID,
// network instance, UE IP address, SDF filters, and application ID.
// Source Interface is the only mandatory child (§4.5 rule table).
type PDI struct {
	SourceInterface SourceInterface
	LocalFTEID      *FTEID
	NetworkInstance *NetworkInstance
	UEIPAddress     *UEIPAddress
	SDFFilters      []SDFFilter
	ApplicationID   *ApplicationID
}

func (p PDI) Marshal() Ie {
	var payload []byte
	payload = append(payload, p.SourceInterface.Marshal().Marshal()...)
	if p.LocalFTEID != nil {
		payload = append(payload, p.LocalFTEID.Marshal().Marshal()...)
	}
	if p.NetworkInstance != nil {
		payload = append(payload, p.NetworkInstance.Marshal().Marshal()...)
	}
	if p.UEIPAddress != nil {
		payload = append(payload, p.UEIPAddress.Marshal().Marshal()...)
	}
	for _, f := range p.SDFFilters {
		payload = append(payload, f.Marshal().Marshal()...)
	}
	if p.ApplicationID != nil {
		payload = append(payload, p.ApplicationID.Marshal().Marshal()...)
	}
	return New(TypePDI, payload)
}

func UnmarshalPDI(payload []byte) (PDI, error) {
	ies, err := All(payload)
	if err != nil {
		return PDI{}, err
	}
	var out PDI
	haveSourceInterface := false
	for _, i := range ies {
		switch i.Type {
		case TypeSourceInterface:
			v, err := UnmarshalSourceInterface(i.Payload)
			if err != nil {
				return PDI{}, err
			}
			out.SourceInterface = v
			haveSourceInterface = true
		case TypeFTEID:
			v, err := UnmarshalFTEID(i.Payload)
			if err != nil {
				return PDI{}, err
			}
			out.LocalFTEID = &v
		case TypeNetworkInstance:
			v, err := UnmarshalNetworkInstance(i.Payload)
			if err != nil {
				return PDI{}, err
			}
			out.NetworkInstance = &v
		case TypeUEIPAddress:
			v, err := UnmarshalUEIPAddress(i.Payload)
			if err != nil {
				return PDI{}, err
			}
			out.UEIPAddress = &v
		case TypeSDFFilter:
			v, err := UnmarshalSDFFilter(i.Payload)
			if err != nil {
				return PDI{}, err
			}
			out.SDFFilters = append(out.SDFFilters, v)
		case TypeApplicationID:
			v, err := UnmarshalApplicationID(i.Payload)
			if err != nil {
				return PDI{}, err
			}
			out.ApplicationID = &v
		}
		// unrecognized child IE types are ignored, not an error
	}
	if !haveSourceInterface {
		return PDI{}, &MissingMandatoryIeError{Container: "PDI", Missing: TypeSourceInterface}
	}
	return out, nil
}
