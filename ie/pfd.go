package ie

// ApplicationIDsPFDs is the grouped IE inside a PFD Management Request
// binding an application identifier to one or more PFD contexts, each
// describing a traffic signature the UPF should recognize as that
// application.
type ApplicationIDsPFDs struct {
	ApplicationID ApplicationID
	PFDContexts   []PFDContext
}

func (a ApplicationIDsPFDs) Marshal() Ie {
	var payload []byte
	payload = append(payload, a.ApplicationID.Marshal().Marshal()...)
	for _, c := range a.PFDContexts {
		payload = append(payload, c.Marshal().Marshal()...)
	}
	return New(TypeApplicationIDsPFDs, payload)
}

func UnmarshalApplicationIDsPFDs(payload []byte) (ApplicationIDsPFDs, error) {
	ies, err := All(payload)
	if err != nil {
		return ApplicationIDsPFDs{}, err
	}
	var out ApplicationIDsPFDs
	haveAppID := false
	for _, i := range ies {
		switch i.Type {
		case TypeApplicationID:
			out.ApplicationID = ApplicationID{Value: string(i.Payload)}
			haveAppID = true
		case TypePFDContext:
			v, err := UnmarshalPFDContext(i.Payload)
			if err != nil {
				return ApplicationIDsPFDs{}, err
			}
			out.PFDContexts = append(out.PFDContexts, v)
		}
	}
	if !haveAppID {
		return ApplicationIDsPFDs{}, &MissingMandatoryIeError{Container: "ApplicationIDsPFDs", Missing: TypeApplicationID}
	}
	return out, nil
}

// PFDContext is the grouped IE wrapping one or more PFD Contents
// entries for an application's Packet Flow Description.
type PFDContext struct {
	PFDContents []PFDContents
}

func (p PFDContext) Marshal() Ie {
	var payload []byte
	for _, c := range p.PFDContents {
		payload = append(payload, c.Marshal().Marshal()...)
	}
	return New(TypePFDContext, payload)
}

func UnmarshalPFDContext(payload []byte) (PFDContext, error) {
	ies, err := FindAll(payload, TypePFDContents)
	if err != nil {
		return PFDContext{}, err
	}
	var out PFDContext
	for _, i := range ies {
		out.PFDContents = append(out.PFDContents, PFDContents{FlowDescription: string(i.Payload)})
	}
	return out, nil
}

// PFDContents holds a single flow-description string matching traffic
// for one application signature. 29.244 defines several optional
// sub-fields (URL, domain name, custom protocol) gated by a flags
// octet; this module implements the flow-description form used by the
// worked examples and leaves the rest for a future extension.
type PFDContents struct {
	FlowDescription string
}

func (p PFDContents) Marshal() Ie {
	return New(TypePFDContents, []byte(p.FlowDescription))
}

func UnmarshalPFDContents(payload []byte) (PFDContents, error) {
	return PFDContents{FlowDescription: string(payload)}, nil
}
