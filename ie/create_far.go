package ie

// CreateFAR is the grouped IE inside a Session Establishment/
// Modification Request that installs one Forwarding Action Rule: its
// ID, the actions to apply, and (when FORW/DUPL apply) the forwarding/
// duplicating parameters. FARID and ApplyAction are mandatory. BARID is
// conditionally mandatory: present whenever ApplyAction requests
// buffering, so the UP function knows which Buffering Action Rule
// governs the buffered packets.
type CreateFAR struct {
	FARID                 FARID
	ApplyAction           ApplyAction
	ForwardingParameters  *ForwardingParameters
	DuplicatingParameters []DuplicatingParameters
	BARID                 *BARID
}

func (c CreateFAR) Marshal() Ie {
	var payload []byte
	payload = append(payload, c.FARID.Marshal().Marshal()...)
	payload = append(payload, c.ApplyAction.Marshal().Marshal()...)
	if c.ForwardingParameters != nil {
		payload = append(payload, c.ForwardingParameters.Marshal().Marshal()...)
	}
	for _, d := range c.DuplicatingParameters {
		payload = append(payload, d.Marshal().Marshal()...)
	}
	if c.BARID != nil {
		payload = append(payload, c.BARID.Marshal().Marshal()...)
	}
	return New(TypeCreateFAR, payload)
}

func UnmarshalCreateFAR(payload []byte) (CreateFAR, error) {
	ies, err := All(payload)
	if err != nil {
		return CreateFAR{}, err
	}
	var out CreateFAR
	var haveFARID, haveApplyAction bool
	for _, i := range ies {
		switch i.Type {
		case TypeFARID:
			v, err := UnmarshalFARID(i.Payload)
			if err != nil {
				return CreateFAR{}, err
			}
			out.FARID = v
			haveFARID = true
		case TypeApplyAction:
			v, err := UnmarshalApplyAction(i.Payload)
			if err != nil {
				return CreateFAR{}, err
			}
			out.ApplyAction = v
			haveApplyAction = true
		case TypeForwardingParameters:
			v, err := UnmarshalForwardingParameters(i.Payload)
			if err != nil {
				return CreateFAR{}, err
			}
			out.ForwardingParameters = &v
		case TypeDuplicatingParameters:
			v, err := UnmarshalDuplicatingParameters(i.Payload)
			if err != nil {
				return CreateFAR{}, err
			}
			out.DuplicatingParameters = append(out.DuplicatingParameters, v)
		case TypeBARID:
			v, err := UnmarshalBARID(i.Payload)
			if err != nil {
				return CreateFAR{}, err
			}
			out.BARID = &v
		}
	}
	if !haveFARID {
		return CreateFAR{}, &MissingMandatoryIeError{Container: "CreateFAR", Missing: TypeFARID}
	}
	if !haveApplyAction {
		return CreateFAR{}, &MissingMandatoryIeError{Container: "CreateFAR", Missing: TypeApplyAction}
	}
	return out, nil
}

// UpdateFAR is the grouped IE inside a Session Modification Request
// that partially updates an existing FAR; only FARID is mandatory.
type UpdateFAR struct {
	FARID                      FARID
	ApplyAction                *ApplyAction
	UpdateForwardingParameters *UpdateForwardingParameters
}

func (u UpdateFAR) Marshal() Ie {
	var payload []byte
	payload = append(payload, u.FARID.Marshal().Marshal()...)
	if u.ApplyAction != nil {
		payload = append(payload, u.ApplyAction.Marshal().Marshal()...)
	}
	if u.UpdateForwardingParameters != nil {
		payload = append(payload, u.UpdateForwardingParameters.Marshal().Marshal()...)
	}
	return New(TypeUpdateFAR, payload)
}

func UnmarshalUpdateFAR(payload []byte) (UpdateFAR, error) {
	ies, err := All(payload)
	if err != nil {
		return UpdateFAR{}, err
	}
	var out UpdateFAR
	haveFARID := false
	for _, i := range ies {
		switch i.Type {
		case TypeFARID:
			v, err := UnmarshalFARID(i.Payload)
			if err != nil {
				return UpdateFAR{}, err
			}
			out.FARID = v
			haveFARID = true
		case TypeApplyAction:
			v, err := UnmarshalApplyAction(i.Payload)
			if err != nil {
				return UpdateFAR{}, err
			}
			out.ApplyAction = &v
		case TypeUpdateForwardingParameters:
			v, err := UnmarshalUpdateForwardingParameters(i.Payload)
			if err != nil {
				return UpdateFAR{}, err
			}
			out.UpdateForwardingParameters = &v
		}
	}
	if !haveFARID {
		return UpdateFAR{}, &MissingMandatoryIeError{Container: "UpdateFAR", Missing: TypeFARID}
	}
	return out, nil
}
