package ie

// CreateQER is the grouped IE inside a Session Establishment/
// Modification Request that installs one QoS Enforcement Rule. QERID
// and GateStatus are mandatory; MBR/GBR/QFI/RQI shape the enforcement.
type CreateQER struct {
	QERID      QERID
	GateStatus GateStatus
	MBR        *MBR
	GBR        *GBR
	QFI        *QFI
	RQI        *RQI
}

func (c CreateQER) Marshal() Ie {
	var payload []byte
	payload = append(payload, c.QERID.Marshal().Marshal()...)
	payload = append(payload, c.GateStatus.Marshal().Marshal()...)
	if c.MBR != nil {
		payload = append(payload, c.MBR.Marshal().Marshal()...)
	}
	if c.GBR != nil {
		payload = append(payload, c.GBR.Marshal().Marshal()...)
	}
	if c.QFI != nil {
		payload = append(payload, c.QFI.Marshal().Marshal()...)
	}
	if c.RQI != nil {
		payload = append(payload, c.RQI.Marshal().Marshal()...)
	}
	return New(TypeCreateQER, payload)
}

func UnmarshalCreateQER(payload []byte) (CreateQER, error) {
	ies, err := All(payload)
	if err != nil {
		return CreateQER{}, err
	}
	var out CreateQER
	var haveQERID, haveGateStatus bool
	for _, i := range ies {
		switch i.Type {
		case TypeQERID:
			v, err := UnmarshalQERID(i.Payload)
			if err != nil {
				return CreateQER{}, err
			}
			out.QERID = v
			haveQERID = true
		case TypeGateStatus:
			v, err := UnmarshalGateStatus(i.Payload)
			if err != nil {
				return CreateQER{}, err
			}
			out.GateStatus = v
			haveGateStatus = true
		case TypeMBR:
			v, err := UnmarshalMBR(i.Payload)
			if err != nil {
				return CreateQER{}, err
			}
			out.MBR = &v
		case TypeGBR:
			v, err := UnmarshalGBR(i.Payload)
			if err != nil {
				return CreateQER{}, err
			}
			out.GBR = &v
		case TypeQFI:
			v, err := UnmarshalQFI(i.Payload)
			if err != nil {
				return CreateQER{}, err
			}
			out.QFI = &v
		case TypeRQI:
			v, err := UnmarshalRQI(i.Payload)
			if err != nil {
				return CreateQER{}, err
			}
			out.RQI = &v
		}
	}
	if !haveQERID {
		return CreateQER{}, &MissingMandatoryIeError{Container: "CreateQER", Missing: TypeQERID}
	}
	if !haveGateStatus {
		return CreateQER{}, &MissingMandatoryIeError{Container: "CreateQER", Missing: TypeGateStatus}
	}
	return out, nil
}

// UpdateQER partially updates an existing QER; only QERID is mandatory.
type UpdateQER struct {
	QERID      QERID
	GateStatus *GateStatus
	MBR        *MBR
	GBR        *GBR
}

func (u UpdateQER) Marshal() Ie {
	var payload []byte
	payload = append(payload, u.QERID.Marshal().Marshal()...)
	if u.GateStatus != nil {
		payload = append(payload, u.GateStatus.Marshal().Marshal()...)
	}
	if u.MBR != nil {
		payload = append(payload, u.MBR.Marshal().Marshal()...)
	}
	if u.GBR != nil {
		payload = append(payload, u.GBR.Marshal().Marshal()...)
	}
	return New(TypeUpdateQER, payload)
}

func UnmarshalUpdateQER(payload []byte) (UpdateQER, error) {
	ies, err := All(payload)
	if err != nil {
		return UpdateQER{}, err
	}
	var out UpdateQER
	haveQERID := false
	for _, i := range ies {
		switch i.Type {
		case TypeQERID:
			v, err := UnmarshalQERID(i.Payload)
			if err != nil {
				return UpdateQER{}, err
			}
			out.QERID = v
			haveQERID = true
		case TypeGateStatus:
			v, err := UnmarshalGateStatus(i.Payload)
			if err != nil {
				return UpdateQER{}, err
			}
			out.GateStatus = &v
		case TypeMBR:
			v, err := UnmarshalMBR(i.Payload)
			if err != nil {
				return UpdateQER{}, err
			}
			out.MBR = &v
		case TypeGBR:
			v, err := UnmarshalGBR(i.Payload)
			if err != nil {
				return UpdateQER{}, err
			}
			out.GBR = &v
		}
	}
	if !haveQERID {
		return UpdateQER{}, &MissingMandatoryIeError{Container: "UpdateQER", Missing: TypeQERID}
	}
	return out, nil
}

// QFI is the 5G QoS Flow Identifier applied by a QER.
type QFI struct{ Value uint8 }

func (q QFI) Marshal() Ie { return New(TypeQFI, []byte{q.Value & 0x3F}) }
func UnmarshalQFI(payload []byte) (QFI, error) {
	if len(payload) != 1 {
		return QFI{}, &InvalidLengthError{Type: TypeQFI, Length: len(payload), Reason: "QFI must be exactly 1 byte"}
	}
	return QFI{Value: payload[0] & 0x3F}, nil
}

// RQI (Reflective QoS Indication) tells the UE to mirror the QFI onto
// its uplink traffic.
type RQI struct{}

func (r RQI) Marshal() Ie { return New(TypeRQI, []byte{0x01}) }
func UnmarshalRQI(payload []byte) (RQI, error) {
	if len(payload) != 1 {
		return RQI{}, &InvalidLengthError{Type: TypeRQI, Length: len(payload), Reason: "RQI must be exactly 1 byte"}
	}
	return RQI{}, nil
}
