package message

import "github.com/your-org/pfcp/ie"

// SessionEstablishmentRequest installs a new PFCP session's full rule
// set: the CP function's F-SEID and every PDR/FAR/QER/URR/BAR the
// session needs. NodeID, FSEID, and at least one CreatePDR/CreateFAR are
// mandatory.
type SessionEstablishmentRequest struct {
	SeqNum     uint32
	Seid       uint64 // header SEID: 0 for the first request of a session (§9)
	NodeID     ie.NodeID
	FSEID      ie.FSEID
	CreatePDRs []ie.CreatePDR
	CreateFARs []ie.CreateFAR
	CreateQERs []ie.CreateQER
	CreateURRs []ie.CreateURR
	CreateBARs []ie.CreateBAR
	PDNType    *ie.PDNType
}

func (m *SessionEstablishmentRequest) MessageType() MessageType {
	return TypeSessionEstablishmentRequest
}
func (m *SessionEstablishmentRequest) SequenceNumber() uint32 { return m.SeqNum }
func (m *SessionEstablishmentRequest) SEID() (uint64, bool)   { return m.Seid, true }
func (m *SessionEstablishmentRequest) MarshalBody() []byte {
	body := m.NodeID.Marshal().Marshal()
	body = append(body, m.FSEID.Marshal().Marshal()...)
	for _, p := range m.CreatePDRs {
		body = append(body, p.Marshal().Marshal()...)
	}
	for _, f := range m.CreateFARs {
		body = append(body, f.Marshal().Marshal()...)
	}
	for _, q := range m.CreateQERs {
		body = append(body, q.Marshal().Marshal()...)
	}
	for _, u := range m.CreateURRs {
		body = append(body, u.Marshal().Marshal()...)
	}
	for _, b := range m.CreateBARs {
		body = append(body, b.Marshal().Marshal()...)
	}
	if m.PDNType != nil {
		body = append(body, m.PDNType.Marshal().Marshal()...)
	}
	return body
}
func (m *SessionEstablishmentRequest) Marshal() []byte {
	seid := m.Seid
	return marshalHeader(TypeSessionEstablishmentRequest, m.SeqNum, &seid, m.MarshalBody())
}

func UnmarshalSessionEstablishmentRequest(seq uint32, seid uint64, body []byte) (*SessionEstablishmentRequest, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &SessionEstablishmentRequest{SeqNum: seq, Seid: seid}
	haveNodeID, haveFSEID := false, false
	for _, i := range ies {
		switch i.Type {
		case ie.TypeNodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return nil, err
			}
			out.NodeID = v
			haveNodeID = true
		case ie.TypeFSEID:
			v, err := ie.UnmarshalFSEID(i.Payload)
			if err != nil {
				return nil, err
			}
			out.FSEID = v
			haveFSEID = true
		case ie.TypeCreatePDR:
			v, err := ie.UnmarshalCreatePDR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.CreatePDRs = append(out.CreatePDRs, v)
		case ie.TypeCreateFAR:
			v, err := ie.UnmarshalCreateFAR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.CreateFARs = append(out.CreateFARs, v)
		case ie.TypeCreateQER:
			v, err := ie.UnmarshalCreateQER(i.Payload)
			if err != nil {
				return nil, err
			}
			out.CreateQERs = append(out.CreateQERs, v)
		case ie.TypeCreateURR:
			v, err := ie.UnmarshalCreateURR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.CreateURRs = append(out.CreateURRs, v)
		case ie.TypeCreateBAR:
			v, err := ie.UnmarshalCreateBAR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.CreateBARs = append(out.CreateBARs, v)
		case ie.TypePDNType:
			v, err := ie.UnmarshalPDNType(i.Payload)
			if err != nil {
				return nil, err
			}
			out.PDNType = &v
		}
	}
	if !haveNodeID {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionEstablishmentRequest, Missing: ie.TypeNodeID}
	}
	if !haveFSEID {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionEstablishmentRequest, Missing: ie.TypeFSEID}
	}
	if len(out.CreatePDRs) == 0 {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionEstablishmentRequest, Missing: ie.TypeCreatePDR}
	}
	if len(out.CreateFARs) == 0 {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionEstablishmentRequest, Missing: ie.TypeCreateFAR}
	}
	return out, nil
}

// SessionEstablishmentResponse confirms session creation, reporting the
// UPF's own F-SEID and the F-TEIDs it allocated for any CH-flagged PDRs.
type SessionEstablishmentResponse struct {
	SeqNum      uint32
	Seid        uint64
	NodeID      ie.NodeID
	Cause       ie.Cause
	FSEID       *ie.FSEID
	CreatedPDRs []ie.CreatedPDR
	OffendingIE *ie.OffendingIE
}

func (m *SessionEstablishmentResponse) MessageType() MessageType {
	return TypeSessionEstablishmentResponse
}
func (m *SessionEstablishmentResponse) SequenceNumber() uint32 { return m.SeqNum }
func (m *SessionEstablishmentResponse) SEID() (uint64, bool)   { return m.Seid, true }
func (m *SessionEstablishmentResponse) MarshalBody() []byte {
	body := m.NodeID.Marshal().Marshal()
	body = append(body, m.Cause.Marshal().Marshal()...)
	if m.FSEID != nil {
		body = append(body, m.FSEID.Marshal().Marshal()...)
	}
	for _, p := range m.CreatedPDRs {
		body = append(body, p.Marshal().Marshal()...)
	}
	if m.OffendingIE != nil {
		body = append(body, m.OffendingIE.Marshal().Marshal()...)
	}
	return body
}
func (m *SessionEstablishmentResponse) Marshal() []byte {
	seid := m.Seid
	return marshalHeader(TypeSessionEstablishmentResponse, m.SeqNum, &seid, m.MarshalBody())
}

func UnmarshalSessionEstablishmentResponse(seq uint32, seid uint64, body []byte) (*SessionEstablishmentResponse, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &SessionEstablishmentResponse{SeqNum: seq, Seid: seid}
	haveNodeID, haveCause := false, false
	for _, i := range ies {
		switch i.Type {
		case ie.TypeNodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return nil, err
			}
			out.NodeID = v
			haveNodeID = true
		case ie.TypeCause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return nil, err
			}
			out.Cause = v
			haveCause = true
		case ie.TypeFSEID:
			v, err := ie.UnmarshalFSEID(i.Payload)
			if err != nil {
				return nil, err
			}
			out.FSEID = &v
		case ie.TypeCreatedPDR:
			v, err := ie.UnmarshalCreatedPDR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.CreatedPDRs = append(out.CreatedPDRs, v)
		case ie.TypeOffendingIE:
			v, err := ie.UnmarshalOffendingIE(i.Payload)
			if err != nil {
				return nil, err
			}
			out.OffendingIE = &v
		}
	}
	if !haveNodeID {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionEstablishmentResponse, Missing: ie.TypeNodeID}
	}
	if !haveCause {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionEstablishmentResponse, Missing: ie.TypeCause}
	}
	return out, nil
}
