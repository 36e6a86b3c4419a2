package message

import "github.com/your-org/pfcp/ie"

// SessionDeletionRequest tears down an existing session. The body carries
// no IEs of its own; the session is identified entirely by the header SEID.
type SessionDeletionRequest struct {
	SeqNum uint32
	Seid   uint64
}

func (m *SessionDeletionRequest) MessageType() MessageType { return TypeSessionDeletionRequest }
func (m *SessionDeletionRequest) SequenceNumber() uint32   { return m.SeqNum }
func (m *SessionDeletionRequest) SEID() (uint64, bool)     { return m.Seid, true }
func (m *SessionDeletionRequest) MarshalBody() []byte      { return nil }
func (m *SessionDeletionRequest) Marshal() []byte {
	seid := m.Seid
	return marshalHeader(TypeSessionDeletionRequest, m.SeqNum, &seid, nil)
}

func UnmarshalSessionDeletionRequest(seq uint32, seid uint64, _ []byte) (*SessionDeletionRequest, error) {
	return &SessionDeletionRequest{SeqNum: seq, Seid: seid}, nil
}

// SessionDeletionResponse reports the outcome of a deletion and returns the
// session's final accumulated usage for every URR it held.
type SessionDeletionResponse struct {
	SeqNum       uint32
	Seid         uint64
	Cause        ie.Cause
	UsageReports []ie.UsageReport
	OffendingIE  *ie.OffendingIE
}

func (m *SessionDeletionResponse) MessageType() MessageType { return TypeSessionDeletionResponse }
func (m *SessionDeletionResponse) SequenceNumber() uint32   { return m.SeqNum }
func (m *SessionDeletionResponse) SEID() (uint64, bool)     { return m.Seid, true }
func (m *SessionDeletionResponse) MarshalBody() []byte {
	body := m.Cause.Marshal().Marshal()
	for _, u := range m.UsageReports {
		body = append(body, u.MarshalForSessionDeletionResponse().Marshal()...)
	}
	if m.OffendingIE != nil {
		body = append(body, m.OffendingIE.Marshal().Marshal()...)
	}
	return body
}
func (m *SessionDeletionResponse) Marshal() []byte {
	seid := m.Seid
	return marshalHeader(TypeSessionDeletionResponse, m.SeqNum, &seid, m.MarshalBody())
}

func UnmarshalSessionDeletionResponse(seq uint32, seid uint64, body []byte) (*SessionDeletionResponse, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &SessionDeletionResponse{SeqNum: seq, Seid: seid}
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
		case ie.TypeUsageReportSessionDeletion:
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
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionDeletionResponse, Missing: ie.TypeCause}
	}
	return out, nil
}
