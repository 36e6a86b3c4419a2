package message

import "github.com/your-org/pfcp/ie"

// HeartbeatRequest carries the sender's Recovery Time Stamp so the peer
// can detect a restart.
type HeartbeatRequest struct {
	SeqNum            uint32
	RecoveryTimeStamp ie.RecoveryTimeStamp
}

func (m *HeartbeatRequest) MessageType() MessageType   { return TypeHeartbeatRequest }
func (m *HeartbeatRequest) SequenceNumber() uint32     { return m.SeqNum }
func (m *HeartbeatRequest) SEID() (uint64, bool)       { return 0, false }
func (m *HeartbeatRequest) MarshalBody() []byte {
	return m.RecoveryTimeStamp.Marshal().Marshal()
}
func (m *HeartbeatRequest) Marshal() []byte {
	return marshalHeader(TypeHeartbeatRequest, m.SeqNum, nil, m.MarshalBody())
}

// UnmarshalHeartbeatRequest decodes a Heartbeat Request body.
func UnmarshalHeartbeatRequest(seq uint32, body []byte) (*HeartbeatRequest, error) {
	rt, ok, err := ie.Find(body, ie.TypeRecoveryTimeStamp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &MissingMandatoryIeError{MessageType: TypeHeartbeatRequest, Missing: ie.TypeRecoveryTimeStamp}
	}
	v, err := ie.UnmarshalRecoveryTimeStamp(rt.Payload)
	if err != nil {
		return nil, err
	}
	return &HeartbeatRequest{SeqNum: seq, RecoveryTimeStamp: v}, nil
}

// HeartbeatResponse echoes the responder's Recovery Time Stamp.
type HeartbeatResponse struct {
	SeqNum            uint32
	RecoveryTimeStamp ie.RecoveryTimeStamp
}

func (m *HeartbeatResponse) MessageType() MessageType { return TypeHeartbeatResponse }
func (m *HeartbeatResponse) SequenceNumber() uint32   { return m.SeqNum }
func (m *HeartbeatResponse) SEID() (uint64, bool)     { return 0, false }
func (m *HeartbeatResponse) MarshalBody() []byte {
	return m.RecoveryTimeStamp.Marshal().Marshal()
}
func (m *HeartbeatResponse) Marshal() []byte {
	return marshalHeader(TypeHeartbeatResponse, m.SeqNum, nil, m.MarshalBody())
}

// UnmarshalHeartbeatResponse decodes a Heartbeat Response body.
func UnmarshalHeartbeatResponse(seq uint32, body []byte) (*HeartbeatResponse, error) {
	rt, ok, err := ie.Find(body, ie.TypeRecoveryTimeStamp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &MissingMandatoryIeError{MessageType: TypeHeartbeatResponse, Missing: ie.TypeRecoveryTimeStamp}
	}
	v, err := ie.UnmarshalRecoveryTimeStamp(rt.Payload)
	if err != nil {
		return nil, err
	}
	return &HeartbeatResponse{SeqNum: seq, RecoveryTimeStamp: v}, nil
}
