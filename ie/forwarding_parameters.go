package ie

// ForwardingParameters is the grouped IE inside a CreateFAR/UpdateFAR
// describing how to forward traffic when Apply Action includes FORW:
// destination interface plus optional network instance, outer header
// creation, and forwarding policy. Destination Interface is the only
// mandatory child.
type ForwardingParameters struct {
	DestinationInterface DestinationInterface
	NetworkInstance      *NetworkInstance
	OuterHeaderCreation  *OuterHeaderCreation
	ForwardingPolicy     *ForwardingPolicy
}

func (f ForwardingParameters) Marshal() Ie {
	var payload []byte
	payload = append(payload, f.DestinationInterface.Marshal().Marshal()...)
	if f.NetworkInstance != nil {
		payload = append(payload, f.NetworkInstance.Marshal().Marshal()...)
	}
	if f.OuterHeaderCreation != nil {
		payload = append(payload, f.OuterHeaderCreation.Marshal().Marshal()...)
	}
	if f.ForwardingPolicy != nil {
		payload = append(payload, f.ForwardingPolicy.Marshal().Marshal()...)
	}
	return New(TypeForwardingParameters, payload)
}

func UnmarshalForwardingParameters(payload []byte) (ForwardingParameters, error) {
	ies, err := All(payload)
	if err != nil {
		return ForwardingParameters{}, err
	}
	var out ForwardingParameters
	haveDestInterface := false
	for _, i := range ies {
		switch i.Type {
		case TypeDestinationInterface:
			v, err := UnmarshalDestinationInterface(i.Payload)
			if err != nil {
				return ForwardingParameters{}, err
			}
			out.DestinationInterface = v
			haveDestInterface = true
		case TypeNetworkInstance:
			v, err := UnmarshalNetworkInstance(i.Payload)
			if err != nil {
				return ForwardingParameters{}, err
			}
			out.NetworkInstance = &v
		case TypeOuterHeaderCreation:
			v, err := UnmarshalOuterHeaderCreation(i.Payload)
			if err != nil {
				return ForwardingParameters{}, err
			}
			out.OuterHeaderCreation = &v
		case TypeForwardingPolicy:
			v, err := UnmarshalForwardingPolicy(i.Payload)
			if err != nil {
				return ForwardingParameters{}, err
			}
			out.ForwardingPolicy = &v
		}
	}
	if !haveDestInterface {
		return ForwardingParameters{}, &MissingMandatoryIeError{Container: "ForwardingParameters", Missing: TypeDestinationInterface}
	}
	return out, nil
}

// UpdateForwardingParameters is the UpdateFAR counterpart of
// ForwardingParameters: every child is optional since it expresses a
// partial update over the FAR's existing forwarding parameters.
type UpdateForwardingParameters struct {
	DestinationInterface *DestinationInterface
	NetworkInstance      *NetworkInstance
	OuterHeaderCreation  *OuterHeaderCreation
	ForwardingPolicy     *ForwardingPolicy
}

func (u UpdateForwardingParameters) Marshal() Ie {
	var payload []byte
	if u.DestinationInterface != nil {
		payload = append(payload, u.DestinationInterface.Marshal().Marshal()...)
	}
	if u.NetworkInstance != nil {
		payload = append(payload, u.NetworkInstance.Marshal().Marshal()...)
	}
	if u.OuterHeaderCreation != nil {
		payload = append(payload, u.OuterHeaderCreation.Marshal().Marshal()...)
	}
	if u.ForwardingPolicy != nil {
		payload = append(payload, u.ForwardingPolicy.Marshal().Marshal()...)
	}
	return New(TypeUpdateForwardingParameters, payload)
}

func UnmarshalUpdateForwardingParameters(payload []byte) (UpdateForwardingParameters, error) {
	ies, err := All(payload)
	if err != nil {
		return UpdateForwardingParameters{}, err
	}
	var out UpdateForwardingParameters
	for _, i := range ies {
		switch i.Type {
		case TypeDestinationInterface:
			v, err := UnmarshalDestinationInterface(i.Payload)
			if err != nil {
				return UpdateForwardingParameters{}, err
			}
			out.DestinationInterface = &v
		case TypeNetworkInstance:
			v, err := UnmarshalNetworkInstance(i.Payload)
			if err != nil {
				return UpdateForwardingParameters{}, err
			}
			out.NetworkInstance = &v
		case TypeOuterHeaderCreation:
			v, err := UnmarshalOuterHeaderCreation(i.Payload)
			if err != nil {
				return UpdateForwardingParameters{}, err
			}
			out.OuterHeaderCreation = &v
		case TypeForwardingPolicy:
			v, err := UnmarshalForwardingPolicy(i.Payload)
			if err != nil {
				return UpdateForwardingParameters{}, err
			}
			out.ForwardingPolicy = &v
		}
	}
	return out, nil
}

// DuplicatingParameters is the grouped IE inside a CreateFAR describing
// where to send a duplicate copy of matched traffic when Apply Action
// includes DUPL.
type DuplicatingParameters struct {
	DestinationInterface DestinationInterface
	OuterHeaderCreation  *OuterHeaderCreation
	ForwardingPolicy     *ForwardingPolicy
}

func (d DuplicatingParameters) Marshal() Ie {
	var payload []byte
	payload = append(payload, d.DestinationInterface.Marshal().Marshal()...)
	if d.OuterHeaderCreation != nil {
		payload = append(payload, d.OuterHeaderCreation.Marshal().Marshal()...)
	}
	if d.ForwardingPolicy != nil {
		payload = append(payload, d.ForwardingPolicy.Marshal().Marshal()...)
	}
	return New(TypeDuplicatingParameters, payload)
}

func UnmarshalDuplicatingParameters(payload []byte) (DuplicatingParameters, error) {
	ies, err := All(payload)
	if err != nil {
		return DuplicatingParameters{}, err
	}
	var out DuplicatingParameters
	haveDestInterface := false
	for _, i := range ies {
		switch i.Type {
		case TypeDestinationInterface:
			v, err := UnmarshalDestinationInterface(i.Payload)
			if err != nil {
				return DuplicatingParameters{}, err
			}
			out.DestinationInterface = v
			haveDestInterface = true
		case TypeOuterHeaderCreation:
			v, err := UnmarshalOuterHeaderCreation(i.Payload)
			if err != nil {
				return DuplicatingParameters{}, err
			}
			out.OuterHeaderCreation = &v
		case TypeForwardingPolicy:
			v, err := UnmarshalForwardingPolicy(i.Payload)
			if err != nil {
				return DuplicatingParameters{}, err
			}
			out.ForwardingPolicy = &v
		}
	}
	if !haveDestInterface {
		return DuplicatingParameters{}, &MissingMandatoryIeError{Container: "DuplicatingParameters", Missing: TypeDestinationInterface}
	}
	return out, nil
}
