package message

import "fmt"

// Parse decodes a complete wire message: header plus body. It validates
// the PFCP version and dispatches on message type, returning a
// *FramingError for anything that fails before a concrete message's own
// IE decoding takes over.
func Parse(b []byte) (Message, error) {
	hdr, offset, err := UnmarshalHeader(b)
	if err != nil {
		return nil, err
	}
	// Length counts the octets after the first four, so the message ends
	// at 4+Length; bytes past that point are not part of its body.
	end := 4 + int(hdr.Length)
	if end > len(b) {
		return nil, &FramingError{Reason: fmt.Sprintf("truncated message: declared length needs %d bytes, have %d", end, len(b))}
	}
	body := b[offset:]
	if end >= offset {
		body = b[offset:end]
	}

	switch MessageType(hdr.MessageType) {
	case TypeHeartbeatRequest:
		return UnmarshalHeartbeatRequest(hdr.SequenceNumber, body)
	case TypeHeartbeatResponse:
		return UnmarshalHeartbeatResponse(hdr.SequenceNumber, body)
	case TypePFDManagementRequest:
		return UnmarshalPFDManagementRequest(hdr.SequenceNumber, body)
	case TypePFDManagementResponse:
		return UnmarshalPFDManagementResponse(hdr.SequenceNumber, body)
	case TypeAssociationSetupRequest:
		return UnmarshalAssociationSetupRequest(hdr.SequenceNumber, body)
	case TypeAssociationSetupResponse:
		return UnmarshalAssociationSetupResponse(hdr.SequenceNumber, body)
	case TypeAssociationUpdateRequest:
		return UnmarshalAssociationUpdateRequest(hdr.SequenceNumber, body)
	case TypeAssociationUpdateResponse:
		return UnmarshalAssociationUpdateResponse(hdr.SequenceNumber, body)
	case TypeAssociationReleaseRequest:
		return UnmarshalAssociationReleaseRequest(hdr.SequenceNumber, body)
	case TypeAssociationReleaseResponse:
		return UnmarshalAssociationReleaseResponse(hdr.SequenceNumber, body)
	case TypeVersionNotSupportedResponse:
		return UnmarshalVersionNotSupportedResponse(hdr.SequenceNumber, body)
	case TypeNodeReportRequest:
		return UnmarshalNodeReportRequest(hdr.SequenceNumber, body)
	case TypeNodeReportResponse:
		return UnmarshalNodeReportResponse(hdr.SequenceNumber, body)
	case TypeSessionSetDeletionRequest:
		return UnmarshalSessionSetDeletionRequest(hdr.SequenceNumber, body)
	case TypeSessionSetDeletionResponse:
		return UnmarshalSessionSetDeletionResponse(hdr.SequenceNumber, body)
	case TypeSessionEstablishmentRequest:
		return UnmarshalSessionEstablishmentRequest(hdr.SequenceNumber, hdr.SEID, body)
	case TypeSessionEstablishmentResponse:
		return UnmarshalSessionEstablishmentResponse(hdr.SequenceNumber, hdr.SEID, body)
	case TypeSessionModificationRequest:
		return UnmarshalSessionModificationRequest(hdr.SequenceNumber, hdr.SEID, body)
	case TypeSessionModificationResponse:
		return UnmarshalSessionModificationResponse(hdr.SequenceNumber, hdr.SEID, body)
	case TypeSessionDeletionRequest:
		return UnmarshalSessionDeletionRequest(hdr.SequenceNumber, hdr.SEID, body)
	case TypeSessionDeletionResponse:
		return UnmarshalSessionDeletionResponse(hdr.SequenceNumber, hdr.SEID, body)
	case TypeSessionReportRequest:
		return UnmarshalSessionReportRequest(hdr.SequenceNumber, hdr.SEID, body)
	case TypeSessionReportResponse:
		return UnmarshalSessionReportResponse(hdr.SequenceNumber, hdr.SEID, body)
	default:
		return nil, &FramingError{Reason: "unknown message type " + MessageType(hdr.MessageType).String()}
	}
}
