package message

import "github.com/your-org/pfcp/ie"

// NodeReportRequest lets a UPF report node-level events (user plane path
// failure/recovery) to its CP function, outside any session context.
type NodeReportRequest struct {
	SeqNum                     uint32
	NodeID                     ie.NodeID
	NodeReportType              ie.NodeReportType
	UserPlanePathFailureReport *ie.UserPlanePathFailureReport
}

func (m *NodeReportRequest) MessageType() MessageType { return TypeNodeReportRequest }
func (m *NodeReportRequest) SequenceNumber() uint32   { return m.SeqNum }
func (m *NodeReportRequest) SEID() (uint64, bool)     { return 0, false }
func (m *NodeReportRequest) MarshalBody() []byte {
	body := m.NodeID.Marshal().Marshal()
	body = append(body, m.NodeReportType.Marshal().Marshal()...)
	if m.UserPlanePathFailureReport != nil {
		body = append(body, m.UserPlanePathFailureReport.Marshal().Marshal()...)
	}
	return body
}
func (m *NodeReportRequest) Marshal() []byte {
	return marshalHeader(TypeNodeReportRequest, m.SeqNum, nil, m.MarshalBody())
}

func UnmarshalNodeReportRequest(seq uint32, body []byte) (*NodeReportRequest, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &NodeReportRequest{SeqNum: seq}
	haveNodeID, haveType := false, false
	for _, i := range ies {
		switch i.Type {
		case ie.TypeNodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return nil, err
			}
			out.NodeID = v
			haveNodeID = true
		case ie.TypeNodeReportType:
			v, err := ie.UnmarshalNodeReportType(i.Payload)
			if err != nil {
				return nil, err
			}
			out.NodeReportType = v
			haveType = true
		case ie.TypeUserPlanePathFailureReport:
			v, err := ie.UnmarshalUserPlanePathFailureReport(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UserPlanePathFailureReport = &v
		}
	}
	if !haveNodeID {
		return nil, &MissingMandatoryIeError{MessageType: TypeNodeReportRequest, Missing: ie.TypeNodeID}
	}
	if !haveType {
		return nil, &MissingMandatoryIeError{MessageType: TypeNodeReportRequest, Missing: ie.TypeNodeReportType}
	}
	return out, nil
}

// NodeReportResponse acknowledges a Node Report Request.
type NodeReportResponse struct {
	SeqNum uint32
	NodeID ie.NodeID
	Cause  ie.Cause
}

func (m *NodeReportResponse) MessageType() MessageType { return TypeNodeReportResponse }
func (m *NodeReportResponse) SequenceNumber() uint32   { return m.SeqNum }
func (m *NodeReportResponse) SEID() (uint64, bool)     { return 0, false }
func (m *NodeReportResponse) MarshalBody() []byte {
	body := m.NodeID.Marshal().Marshal()
	return append(body, m.Cause.Marshal().Marshal()...)
}
func (m *NodeReportResponse) Marshal() []byte {
	return marshalHeader(TypeNodeReportResponse, m.SeqNum, nil, m.MarshalBody())
}

func UnmarshalNodeReportResponse(seq uint32, body []byte) (*NodeReportResponse, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &NodeReportResponse{SeqNum: seq}
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
		return nil, &MissingMandatoryIeError{MessageType: TypeNodeReportResponse, Missing: ie.TypeNodeID}
	}
	if !haveCause {
		return nil, &MissingMandatoryIeError{MessageType: TypeNodeReportResponse, Missing: ie.TypeCause}
	}
	return out, nil
}
