package message

import "github.com/your-org/pfcp/ie"

// SessionSetDeletionRequest tells a peer to delete every session
// associated with a failed or restarted SGW-C/PGW-C/MME node, identified
// by FQ-CSID rather than an individual SEID. This module's FQ-CSID
// support is limited to carrying the NodeID of the reporting node (the
// common case observed in the worked deployment examples); full FQ-CSID
// decoding is tracked as an intentionally-unimplemented IE per §4.3.
type SessionSetDeletionRequest struct {
	SeqNum uint32
	NodeID ie.NodeID
}

func (m *SessionSetDeletionRequest) MessageType() MessageType {
	return TypeSessionSetDeletionRequest
}
func (m *SessionSetDeletionRequest) SequenceNumber() uint32 { return m.SeqNum }
func (m *SessionSetDeletionRequest) SEID() (uint64, bool)   { return 0, false }
func (m *SessionSetDeletionRequest) MarshalBody() []byte    { return m.NodeID.Marshal().Marshal() }
func (m *SessionSetDeletionRequest) Marshal() []byte {
	return marshalHeader(TypeSessionSetDeletionRequest, m.SeqNum, nil, m.MarshalBody())
}

func UnmarshalSessionSetDeletionRequest(seq uint32, body []byte) (*SessionSetDeletionRequest, error) {
	n, ok, err := ie.Find(body, ie.TypeNodeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionSetDeletionRequest, Missing: ie.TypeNodeID}
	}
	v, err := ie.UnmarshalNodeID(n.Payload)
	if err != nil {
		return nil, err
	}
	return &SessionSetDeletionRequest{SeqNum: seq, NodeID: v}, nil
}

// SessionSetDeletionResponse acknowledges a Session Set Deletion Request.
type SessionSetDeletionResponse struct {
	SeqNum uint32
	NodeID ie.NodeID
	Cause  ie.Cause
}

func (m *SessionSetDeletionResponse) MessageType() MessageType {
	return TypeSessionSetDeletionResponse
}
func (m *SessionSetDeletionResponse) SequenceNumber() uint32 { return m.SeqNum }
func (m *SessionSetDeletionResponse) SEID() (uint64, bool)   { return 0, false }
func (m *SessionSetDeletionResponse) MarshalBody() []byte {
	body := m.NodeID.Marshal().Marshal()
	return append(body, m.Cause.Marshal().Marshal()...)
}
func (m *SessionSetDeletionResponse) Marshal() []byte {
	return marshalHeader(TypeSessionSetDeletionResponse, m.SeqNum, nil, m.MarshalBody())
}

func UnmarshalSessionSetDeletionResponse(seq uint32, body []byte) (*SessionSetDeletionResponse, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &SessionSetDeletionResponse{SeqNum: seq}
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
		}
	}
	if !haveNodeID {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionSetDeletionResponse, Missing: ie.TypeNodeID}
	}
	if !haveCause {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionSetDeletionResponse, Missing: ie.TypeCause}
	}
	return out, nil
}
