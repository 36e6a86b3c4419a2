package message

import "github.com/your-org/pfcp/ie"

// SessionModificationRequest incrementally changes an existing session's
// rule set: new rules to create, existing rules to update or remove. No
// single field is mandatory — an empty request is a legal (if useless)
// no-op, matching 29.244's "any subset of Create/Update/Remove groups".
type SessionModificationRequest struct {
	SeqNum     uint32
	Seid       uint64
	FSEID      *ie.FSEID
	CreatePDRs []ie.CreatePDR
	CreateFARs []ie.CreateFAR
	CreateQERs []ie.CreateQER
	CreateURRs []ie.CreateURR
	CreateBARs []ie.CreateBAR
	UpdatePDRs []ie.UpdatePDR
	UpdateFARs []ie.UpdateFAR
	UpdateQERs []ie.UpdateQER
	UpdateURRs []ie.UpdateURR
	UpdateBARs []ie.UpdateBAR
	RemovePDRs []ie.RemovePDR
	RemoveFARs []ie.RemoveFAR
	RemoveQERs []ie.RemoveQER
	RemoveURRs []ie.RemoveURR
	RemoveBARs []ie.RemoveBAR
}

func (m *SessionModificationRequest) MessageType() MessageType {
	return TypeSessionModificationRequest
}
func (m *SessionModificationRequest) SequenceNumber() uint32 { return m.SeqNum }
func (m *SessionModificationRequest) SEID() (uint64, bool)   { return m.Seid, true }
func (m *SessionModificationRequest) MarshalBody() []byte {
	var body []byte
	if m.FSEID != nil {
		body = append(body, m.FSEID.Marshal().Marshal()...)
	}
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
	for _, p := range m.UpdatePDRs {
		body = append(body, p.Marshal().Marshal()...)
	}
	for _, f := range m.UpdateFARs {
		body = append(body, f.Marshal().Marshal()...)
	}
	for _, q := range m.UpdateQERs {
		body = append(body, q.Marshal().Marshal()...)
	}
	for _, u := range m.UpdateURRs {
		body = append(body, u.Marshal().Marshal()...)
	}
	for _, b := range m.UpdateBARs {
		body = append(body, b.Marshal().Marshal()...)
	}
	for _, p := range m.RemovePDRs {
		body = append(body, p.Marshal().Marshal()...)
	}
	for _, f := range m.RemoveFARs {
		body = append(body, f.Marshal().Marshal()...)
	}
	for _, q := range m.RemoveQERs {
		body = append(body, q.Marshal().Marshal()...)
	}
	for _, u := range m.RemoveURRs {
		body = append(body, u.Marshal().Marshal()...)
	}
	for _, b := range m.RemoveBARs {
		body = append(body, b.Marshal().Marshal()...)
	}
	return body
}
func (m *SessionModificationRequest) Marshal() []byte {
	seid := m.Seid
	return marshalHeader(TypeSessionModificationRequest, m.SeqNum, &seid, m.MarshalBody())
}

func UnmarshalSessionModificationRequest(seq uint32, seid uint64, body []byte) (*SessionModificationRequest, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &SessionModificationRequest{SeqNum: seq, Seid: seid}
	for _, i := range ies {
		switch i.Type {
		case ie.TypeFSEID:
			v, err := ie.UnmarshalFSEID(i.Payload)
			if err != nil {
				return nil, err
			}
			out.FSEID = &v
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
		case ie.TypeUpdatePDR:
			v, err := ie.UnmarshalUpdatePDR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UpdatePDRs = append(out.UpdatePDRs, v)
		case ie.TypeUpdateFAR:
			v, err := ie.UnmarshalUpdateFAR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UpdateFARs = append(out.UpdateFARs, v)
		case ie.TypeUpdateQER:
			v, err := ie.UnmarshalUpdateQER(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UpdateQERs = append(out.UpdateQERs, v)
		case ie.TypeUpdateURR:
			v, err := ie.UnmarshalUpdateURR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UpdateURRs = append(out.UpdateURRs, v)
		case ie.TypeUpdateBARSessionModification:
			v, err := ie.UnmarshalUpdateBAR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UpdateBARs = append(out.UpdateBARs, v)
		case ie.TypeRemovePDR:
			v, err := ie.UnmarshalRemovePDR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.RemovePDRs = append(out.RemovePDRs, v)
		case ie.TypeRemoveFAR:
			v, err := ie.UnmarshalRemoveFAR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.RemoveFARs = append(out.RemoveFARs, v)
		case ie.TypeRemoveQER:
			v, err := ie.UnmarshalRemoveQER(i.Payload)
			if err != nil {
				return nil, err
			}
			out.RemoveQERs = append(out.RemoveQERs, v)
		case ie.TypeRemoveURR:
			v, err := ie.UnmarshalRemoveURR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.RemoveURRs = append(out.RemoveURRs, v)
		case ie.TypeRemoveBAR:
			v, err := ie.UnmarshalRemoveBAR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.RemoveBARs = append(out.RemoveBARs, v)
		}
	}
	return out, nil
}

// SessionModificationResponse reports whether the modification succeeded
// and carries any usage reports generated as a side effect (e.g. a
// removed URR's final accumulated usage).
type SessionModificationResponse struct {
	SeqNum       uint32
	Seid         uint64
	Cause        ie.Cause
	CreatedPDRs  []ie.CreatedPDR
	UsageReports []ie.UsageReport
	OffendingIE  *ie.OffendingIE
}

func (m *SessionModificationResponse) MessageType() MessageType {
	return TypeSessionModificationResponse
}
func (m *SessionModificationResponse) SequenceNumber() uint32 { return m.SeqNum }
func (m *SessionModificationResponse) SEID() (uint64, bool)   { return m.Seid, true }
func (m *SessionModificationResponse) MarshalBody() []byte {
	body := m.Cause.Marshal().Marshal()
	for _, p := range m.CreatedPDRs {
		body = append(body, p.Marshal().Marshal()...)
	}
	for _, u := range m.UsageReports {
		body = append(body, u.MarshalForSessionModificationResponse().Marshal()...)
	}
	if m.OffendingIE != nil {
		body = append(body, m.OffendingIE.Marshal().Marshal()...)
	}
	return body
}
func (m *SessionModificationResponse) Marshal() []byte {
	seid := m.Seid
	return marshalHeader(TypeSessionModificationResponse, m.SeqNum, &seid, m.MarshalBody())
}

func UnmarshalSessionModificationResponse(seq uint32, seid uint64, body []byte) (*SessionModificationResponse, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &SessionModificationResponse{SeqNum: seq, Seid: seid}
	haveCause := false
	for _, i := range ies {
		switch i.Type {
		case ie.TypeCause:
			v, err := ie.UnmarshalCause(i.Payload)
			if err != nil {
				return nil, err
			}
			out.Cause = v
			haveCause = true
		case ie.TypeCreatedPDR:
			v, err := ie.UnmarshalCreatedPDR(i.Payload)
			if err != nil {
				return nil, err
			}
			out.CreatedPDRs = append(out.CreatedPDRs, v)
		case ie.TypeUsageReportSessionModification:
			v, err := ie.UnmarshalUsageReport(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UsageReports = append(out.UsageReports, v)
		case ie.TypeOffendingIE:
			v, err := ie.UnmarshalOffendingIE(i.Payload)
			if err != nil {
				return nil, err
			}
			out.OffendingIE = &v
		}
	}
	if !haveCause {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionModificationResponse, Missing: ie.TypeCause}
	}
	return out, nil
}
