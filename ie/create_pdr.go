package ie

// CreatePDR is the grouped IE inside a Session Establishment/
// Modification Request that installs one Packet Detection Rule: its ID,
// precedence, matching PDI, and the FAR/QERs/URRs it associates with.
// PDRID, Precedence, and PDI are the mandatory children (§4.5).
type CreatePDR struct {
	PDRID           PDRID
	Precedence      Precedence
	PDI             PDI
	OuterHeaderRemoval *OuterHeaderRemoval
	FARID           *FARID
	URRIDs          []URRID
	QERIDs          []QERID
}

func (c CreatePDR) Marshal() Ie {
	var payload []byte
	payload = append(payload, c.PDRID.Marshal().Marshal()...)
	payload = append(payload, c.Precedence.Marshal().Marshal()...)
	payload = append(payload, c.PDI.Marshal().Marshal()...)
	if c.OuterHeaderRemoval != nil {
		payload = append(payload, c.OuterHeaderRemoval.Marshal().Marshal()...)
	}
	if c.FARID != nil {
		payload = append(payload, c.FARID.Marshal().Marshal()...)
	}
	for _, u := range c.URRIDs {
		payload = append(payload, u.Marshal().Marshal()...)
	}
	for _, q := range c.QERIDs {
		payload = append(payload, q.Marshal().Marshal()...)
	}
	return New(TypeCreatePDR, payload)
}

func UnmarshalCreatePDR(payload []byte) (CreatePDR, error) {
	ies, err := All(payload)
	if err != nil {
		return CreatePDR{}, err
	}
	var out CreatePDR
	var havePDRID, havePrecedence, havePDI bool
	for _, i := range ies {
		switch i.Type {
		case TypePDRID:
			v, err := UnmarshalPDRID(i.Payload)
			if err != nil {
				return CreatePDR{}, err
			}
			out.PDRID = v
			havePDRID = true
		case TypePrecedence:
			v, err := UnmarshalPrecedence(i.Payload)
			if err != nil {
				return CreatePDR{}, err
			}
			out.Precedence = v
			havePrecedence = true
		case TypePDI:
			v, err := UnmarshalPDI(i.Payload)
			if err != nil {
				return CreatePDR{}, err
			}
			out.PDI = v
			havePDI = true
		case TypeOuterHeaderRemoval:
			v, err := UnmarshalOuterHeaderRemoval(i.Payload)
			if err != nil {
				return CreatePDR{}, err
			}
			out.OuterHeaderRemoval = &v
		case TypeFARID:
			v, err := UnmarshalFARID(i.Payload)
			if err != nil {
				return CreatePDR{}, err
			}
			out.FARID = &v
		case TypeURRID:
			v, err := UnmarshalURRID(i.Payload)
			if err != nil {
				return CreatePDR{}, err
			}
			out.URRIDs = append(out.URRIDs, v)
		case TypeQERID:
			v, err := UnmarshalQERID(i.Payload)
			if err != nil {
				return CreatePDR{}, err
			}
			out.QERIDs = append(out.QERIDs, v)
		}
	}
	if !havePDRID {
		return CreatePDR{}, &MissingMandatoryIeError{Container: "CreatePDR", Missing: TypePDRID}
	}
	if !havePrecedence {
		return CreatePDR{}, &MissingMandatoryIeError{Container: "CreatePDR", Missing: TypePrecedence}
	}
	if !havePDI {
		return CreatePDR{}, &MissingMandatoryIeError{Container: "CreatePDR", Missing: TypePDI}
	}
	return out, nil
}

// CreatedPDR is the grouped IE inside a Session Establishment/
// Modification Response reporting the F-TEID the UPF actually chose
// when a CreatePDR's local F-TEID asked the UPF to allocate one (CH).
type CreatedPDR struct {
	PDRID      PDRID
	LocalFTEID *FTEID
}

func (c CreatedPDR) Marshal() Ie {
	var payload []byte
	payload = append(payload, c.PDRID.Marshal().Marshal()...)
	if c.LocalFTEID != nil {
		payload = append(payload, c.LocalFTEID.Marshal().Marshal()...)
	}
	return New(TypeCreatedPDR, payload)
}

func UnmarshalCreatedPDR(payload []byte) (CreatedPDR, error) {
	ies, err := All(payload)
	if err != nil {
		return CreatedPDR{}, err
	}
	var out CreatedPDR
	havePDRID := false
	for _, i := range ies {
		switch i.Type {
		case TypePDRID:
			v, err := UnmarshalPDRID(i.Payload)
			if err != nil {
				return CreatedPDR{}, err
			}
			out.PDRID = v
			havePDRID = true
		case TypeFTEID:
			v, err := UnmarshalFTEID(i.Payload)
			if err != nil {
				return CreatedPDR{}, err
			}
			out.LocalFTEID = &v
		}
	}
	if !havePDRID {
		return CreatedPDR{}, &MissingMandatoryIeError{Container: "CreatedPDR", Missing: TypePDRID}
	}
	return out, nil
}

// UpdatePDR is the grouped IE inside a Session Modification Request
// that partially updates an existing PDR; only PDRID is mandatory.
type UpdatePDR struct {
	PDRID              PDRID
	OuterHeaderRemoval *OuterHeaderRemoval
	Precedence         *Precedence
	PDI                *PDI
	FARID              *FARID
	URRIDs             []URRID
	QERIDs             []QERID
}

func (u UpdatePDR) Marshal() Ie {
	var payload []byte
	payload = append(payload, u.PDRID.Marshal().Marshal()...)
	if u.OuterHeaderRemoval != nil {
		payload = append(payload, u.OuterHeaderRemoval.Marshal().Marshal()...)
	}
	if u.Precedence != nil {
		payload = append(payload, u.Precedence.Marshal().Marshal()...)
	}
	if u.PDI != nil {
		payload = append(payload, u.PDI.Marshal().Marshal()...)
	}
	if u.FARID != nil {
		payload = append(payload, u.FARID.Marshal().Marshal()...)
	}
	for _, id := range u.URRIDs {
		payload = append(payload, id.Marshal().Marshal()...)
	}
	for _, id := range u.QERIDs {
		payload = append(payload, id.Marshal().Marshal()...)
	}
	return New(TypeUpdatePDR, payload)
}

func UnmarshalUpdatePDR(payload []byte) (UpdatePDR, error) {
	ies, err := All(payload)
	if err != nil {
		return UpdatePDR{}, err
	}
	var out UpdatePDR
	havePDRID := false
	for _, i := range ies {
		switch i.Type {
		case TypePDRID:
			v, err := UnmarshalPDRID(i.Payload)
			if err != nil {
				return UpdatePDR{}, err
			}
			out.PDRID = v
			havePDRID = true
		case TypeOuterHeaderRemoval:
			v, err := UnmarshalOuterHeaderRemoval(i.Payload)
			if err != nil {
				return UpdatePDR{}, err
			}
			out.OuterHeaderRemoval = &v
		case TypePrecedence:
			v, err := UnmarshalPrecedence(i.Payload)
			if err != nil {
				return UpdatePDR{}, err
			}
			out.Precedence = &v
		case TypePDI:
			v, err := UnmarshalPDI(i.Payload)
			if err != nil {
				return UpdatePDR{}, err
			}
			out.PDI = &v
		case TypeFARID:
			v, err := UnmarshalFARID(i.Payload)
			if err != nil {
				return UpdatePDR{}, err
			}
			out.FARID = &v
		case TypeURRID:
			v, err := UnmarshalURRID(i.Payload)
			if err != nil {
				return UpdatePDR{}, err
			}
			out.URRIDs = append(out.URRIDs, v)
		case TypeQERID:
			v, err := UnmarshalQERID(i.Payload)
			if err != nil {
				return UpdatePDR{}, err
			}
			out.QERIDs = append(out.QERIDs, v)
		}
	}
	if !havePDRID {
		return UpdatePDR{}, &MissingMandatoryIeError{Container: "UpdatePDR", Missing: TypePDRID}
	}
	return out, nil
}
