package message

// MessageType identifies the kind of PFCP message a Header carries (3GPP
// TS 29.244 Table 7.2-1).
type MessageType uint8

const (
	TypeHeartbeatRequest           MessageType = 1
	TypeHeartbeatResponse          MessageType = 2
	TypePFDManagementRequest       MessageType = 3
	TypePFDManagementResponse      MessageType = 4
	TypeAssociationSetupRequest    MessageType = 5
	TypeAssociationSetupResponse   MessageType = 6
	TypeAssociationUpdateRequest   MessageType = 7
	TypeAssociationUpdateResponse  MessageType = 8
	TypeAssociationReleaseRequest  MessageType = 9
	TypeAssociationReleaseResponse MessageType = 10
	TypeVersionNotSupportedResponse MessageType = 11
	TypeNodeReportRequest          MessageType = 12
	TypeNodeReportResponse         MessageType = 13
	TypeSessionSetDeletionRequest  MessageType = 14
	TypeSessionSetDeletionResponse MessageType = 15

	TypeSessionEstablishmentRequest  MessageType = 50
	TypeSessionEstablishmentResponse MessageType = 51
	TypeSessionModificationRequest   MessageType = 52
	TypeSessionModificationResponse  MessageType = 53
	TypeSessionDeletionRequest       MessageType = 54
	TypeSessionDeletionResponse      MessageType = 55
	TypeSessionReportRequest         MessageType = 56
	TypeSessionReportResponse        MessageType = 57
)

var messageTypeNames = map[MessageType]string{
	TypeHeartbeatRequest:            "HeartbeatRequest",
	TypeHeartbeatResponse:           "HeartbeatResponse",
	TypePFDManagementRequest:        "PFDManagementRequest",
	TypePFDManagementResponse:       "PFDManagementResponse",
	TypeAssociationSetupRequest:     "AssociationSetupRequest",
	TypeAssociationSetupResponse:    "AssociationSetupResponse",
	TypeAssociationUpdateRequest:    "AssociationUpdateRequest",
	TypeAssociationUpdateResponse:   "AssociationUpdateResponse",
	TypeAssociationReleaseRequest:   "AssociationReleaseRequest",
	TypeAssociationReleaseResponse:  "AssociationReleaseResponse",
	TypeVersionNotSupportedResponse: "VersionNotSupportedResponse",
	TypeNodeReportRequest:           "NodeReportRequest",
	TypeNodeReportResponse:          "NodeReportResponse",
	TypeSessionSetDeletionRequest:   "SessionSetDeletionRequest",
	TypeSessionSetDeletionResponse:  "SessionSetDeletionResponse",

	TypeSessionEstablishmentRequest:  "SessionEstablishmentRequest",
	TypeSessionEstablishmentResponse: "SessionEstablishmentResponse",
	TypeSessionModificationRequest:   "SessionModificationRequest",
	TypeSessionModificationResponse:  "SessionModificationResponse",
	TypeSessionDeletionRequest:       "SessionDeletionRequest",
	TypeSessionDeletionResponse:      "SessionDeletionResponse",
	TypeSessionReportRequest:         "SessionReportRequest",
	TypeSessionReportResponse:        "SessionReportResponse",
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return "MessageType(" + itoa(uint8(t)) + ")"
}

func itoa(v uint8) string {
	if v == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
