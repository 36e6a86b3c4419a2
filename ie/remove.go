package ie

// RemovePDR, RemoveFAR, RemoveQER, RemoveURR, and RemoveBAR are the
// grouped IEs inside a Session Modification Request that delete an
// existing rule; each wraps only the matching rule ID.

type RemovePDR struct{ PDRID PDRID }

func (r RemovePDR) Marshal() Ie {
	return New(TypeRemovePDR, r.PDRID.Marshal().Marshal())
}

func UnmarshalRemovePDR(payload []byte) (RemovePDR, error) {
	id, ok, err := Find(payload, TypePDRID)
	if err != nil {
		return RemovePDR{}, err
	}
	if !ok {
		return RemovePDR{}, &MissingMandatoryIeError{Container: "RemovePDR", Missing: TypePDRID}
	}
	v, err := UnmarshalPDRID(id.Payload)
	return RemovePDR{PDRID: v}, err
}

type RemoveFAR struct{ FARID FARID }

func (r RemoveFAR) Marshal() Ie {
	return New(TypeRemoveFAR, r.FARID.Marshal().Marshal())
}

func UnmarshalRemoveFAR(payload []byte) (RemoveFAR, error) {
	id, ok, err := Find(payload, TypeFARID)
	if err != nil {
		return RemoveFAR{}, err
	}
	if !ok {
		return RemoveFAR{}, &MissingMandatoryIeError{Container: "RemoveFAR", Missing: TypeFARID}
	}
	v, err := UnmarshalFARID(id.Payload)
	return RemoveFAR{FARID: v}, err
}

type RemoveQER struct{ QERID QERID }

func (r RemoveQER) Marshal() Ie {
	return New(TypeRemoveQER, r.QERID.Marshal().Marshal())
}

func UnmarshalRemoveQER(payload []byte) (RemoveQER, error) {
	id, ok, err := Find(payload, TypeQERID)
	if err != nil {
		return RemoveQER{}, err
	}
	if !ok {
		return RemoveQER{}, &MissingMandatoryIeError{Container: "RemoveQER", Missing: TypeQERID}
	}
	v, err := UnmarshalQERID(id.Payload)
	return RemoveQER{QERID: v}, err
}

type RemoveURR struct{ URRID URRID }

func (r RemoveURR) Marshal() Ie {
	return New(TypeRemoveURR, r.URRID.Marshal().Marshal())
}

func UnmarshalRemoveURR(payload []byte) (RemoveURR, error) {
	id, ok, err := Find(payload, TypeURRID)
	if err != nil {
		return RemoveURR{}, err
	}
	if !ok {
		return RemoveURR{}, &MissingMandatoryIeError{Container: "RemoveURR", Missing: TypeURRID}
	}
	v, err := UnmarshalURRID(id.Payload)
	return RemoveURR{URRID: v}, err
}

type RemoveBAR struct{ BARID BARID }

func (r RemoveBAR) Marshal() Ie {
	return New(TypeRemoveBAR, r.BARID.Marshal().Marshal())
}

func UnmarshalRemoveBAR(payload []byte) (RemoveBAR, error) {
	id, ok, err := Find(payload, TypeBARID)
	if err != nil {
		return RemoveBAR{}, err
	}
	if !ok {
		return RemoveBAR{}, &MissingMandatoryIeError{Container: "RemoveBAR", Missing: TypeBARID}
	}
	v, err := UnmarshalBARID(id.Payload)
	return RemoveBAR{BARID: v}, err
}
