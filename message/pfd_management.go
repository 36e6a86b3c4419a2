package message

import "github.com/your-org/pfcp/ie"

// PFDManagementRequest carries one or more application PFD bindings the
// CP function wants the UPF to learn.
type PFDManagementRequest struct {
	SeqNum              uint32
	ApplicationIDsPFDs []ie.ApplicationIDsPFDs
}

func (m *PFDManagementRequest) MessageType() MessageType { return TypePFDManagementRequest }
func (m *PFDManagementRequest) SequenceNumber() uint32   { return m.SeqNum }
func (m *PFDManagementRequest) SEID() (uint64, bool)     { return 0, false }
func (m *PFDManagementRequest) MarshalBody() []byte {
	var body []byte
	for _, a := range m.ApplicationIDsPFDs {
		body = append(body, a.Marshal().Marshal()...)
	}
	return body
}
func (m *PFDManagementRequest) Marshal() []byte {
	return marshalHeader(TypePFDManagementRequest, m.SeqNum, nil, m.MarshalBody())
}

// UnmarshalPFDManagementRequest decodes a PFD Management Request body.
func UnmarshalPFDManagementRequest(seq uint32, body []byte) (*PFDManagementRequest, error) {
	ies, err := ie.FindAll(body, ie.TypeApplicationIDsPFDs)
	if err != nil {
		return nil, err
	}
	if len(ies) == 0 {
		return nil, &MissingMandatoryIeError{MessageType: TypePFDManagementRequest, Missing: ie.TypeApplicationIDsPFDs}
	}
	out := &PFDManagementRequest{SeqNum: seq}
	for _, i := range ies {
		v, err := ie.UnmarshalApplicationIDsPFDs(i.Payload)
		if err != nil {
			return nil, err
		}
		out.ApplicationIDsPFDs = append(out.ApplicationIDsPFDs, v)
	}
	return out, nil
}

// PFDManagementResponse reports whether the bindings were accepted.
type PFDManagementResponse struct {
	SeqNum      uint32
	Cause       ie.Cause
	OffendingIE *ie.OffendingIE
}

func (m *PFDManagementResponse) MessageType() MessageType { return TypePFDManagementResponse }
func (m *PFDManagementResponse) SequenceNumber() uint32   { return m.SeqNum }
func (m *PFDManagementResponse) SEID() (uint64, bool)     { return 0, false }
func (m *PFDManagementResponse) MarshalBody() []byte {
	body := m.Cause.Marshal().Marshal()
	if m.OffendingIE != nil {
		body = append(body, m.OffendingIE.Marshal().Marshal()...)
	}
	return body
}
func (m *PFDManagementResponse) Marshal() []byte {
	return marshalHeader(TypePFDManagementResponse, m.SeqNum, nil, m.MarshalBody())
}

// UnmarshalPFDManagementResponse decodes a PFD Management Response body.
func UnmarshalPFDManagementResponse(seq uint32, body []byte) (*PFDManagementResponse, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &PFDManagementResponse{SeqNum: seq}
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
		case ie.TypeOffendingIE:
			v, err := ie.UnmarshalOffendingIE(i.Payload)
			if err != nil {
				return nil, err
			}
			out.OffendingIE = &v
		}
	}
	if !haveCause {
		return nil, &MissingMandatoryIeError{MessageType: TypePFDManagementResponse, Missing: ie.TypeCause}
	}
	return out, nil
}
