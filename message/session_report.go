package message

import "github.com/your-org/pfcp/ie"

// SessionReportRequest carries usage reports, a downlink data notification,
// or an error indication from the UPF to the CP function for one session.
// At least one of UsageReports/DownlinkDataReport/ErrorIndicationReport is
// expected in practice, but none is individually mandatory at the wire
// level — a node may legitimately send an empty ReportType-only report.
type SessionReportRequest struct {
	SeqNum                uint32
	Seid                  uint64
	ReportType            ie.ReportType
	UsageReports          []ie.UsageReport
	DownlinkDataReport    *ie.DownlinkDataReport
	ErrorIndicationReport *ie.ErrorIndicationReport
}

func (m *SessionReportRequest) MessageType() MessageType { return TypeSessionReportRequest }
func (m *SessionReportRequest) SequenceNumber() uint32   { return m.SeqNum }
func (m *SessionReportRequest) SEID() (uint64, bool)     { return m.Seid, true }
func (m *SessionReportRequest) MarshalBody() []byte {
	body := m.ReportType.Marshal().Marshal()
	for _, u := range m.UsageReports {
		body = append(body, u.MarshalForSessionReport().Marshal()...)
	}
	if m.DownlinkDataReport != nil {
		body = append(body, m.DownlinkDataReport.Marshal().Marshal()...)
	}
	if m.ErrorIndicationReport != nil {
		body = append(body, m.ErrorIndicationReport.Marshal().Marshal()...)
	}
	return body
}
func (m *SessionReportRequest) Marshal() []byte {
	seid := m.Seid
	return marshalHeader(TypeSessionReportRequest, m.SeqNum, &seid, m.MarshalBody())
}

func UnmarshalSessionReportRequest(seq uint32, seid uint64, body []byte) (*SessionReportRequest, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &SessionReportRequest{SeqNum: seq, Seid: seid}
	haveType := false
	for _, i := range ies {
		switch i.Type {
		case ie.TypeReportType:
			v, err := ie.UnmarshalReportType(i.Payload)
			if err != nil {
				return nil, err
			}
			out.ReportType = v
			haveType = true
		case ie.TypeUsageReportSessionReport:
			v, err := ie.UnmarshalUsageReport(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UsageReports = append(out.UsageReports, v)
		case ie.TypeDownlinkDataReport:
			v, err := ie.UnmarshalDownlinkDataReport(i.Payload)
			if err != nil {
				return nil, err
			}
			out.DownlinkDataReport = &v
		case ie.TypeErrorIndicationReport:
			v, err := ie.UnmarshalErrorIndicationReport(i.Payload)
			if err != nil {
				return nil, err
			}
			out.ErrorIndicationReport = &v
		}
	}
	if !haveType {
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionReportRequest, Missing: ie.TypeReportType}
	}
	return out, nil
}

// SessionReportResponse acknowledges a Session Report Request. A CP
// function rejecting a downlink data notification (e.g. no paging
// resources) reports that via Cause, not a separate message.
type SessionReportResponse struct {
	SeqNum      uint32
	Seid        uint64
	Cause       ie.Cause
	OffendingIE *ie.OffendingIE
}

func (m *SessionReportResponse) MessageType() MessageType { return TypeSessionReportResponse }
func (m *SessionReportResponse) SequenceNumber() uint32   { return m.SeqNum }
func (m *SessionReportResponse) SEID() (uint64, bool)     { return m.Seid, true }
func (m *SessionReportResponse) MarshalBody() []byte {
	body := m.Cause.Marshal().Marshal()
	if m.OffendingIE != nil {
		body = append(body, m.OffendingIE.Marshal().Marshal()...)
	}
	return body
}
func (m *SessionReportResponse) Marshal() []byte {
	seid := m.Seid
	return marshalHeader(TypeSessionReportResponse, m.SeqNum, &seid, m.MarshalBody())
}

func UnmarshalSessionReportResponse(seq uint32, seid uint64, body []byte) (*SessionReportResponse, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &SessionReportResponse{SeqNum: seq, Seid: seid}
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
		return nil, &MissingMandatoryIeError{MessageType: TypeSessionReportResponse, Missing: ie.TypeCause}
	}
	return out, nil
}
