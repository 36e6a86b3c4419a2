package message

import "github.com/your-org/pfcp/ie"

// AssociationSetupRequest establishes a PFCP association between a CP
// and UP function, exchanging node identity, restart recovery time, and
// optional feature/resource advertisements.
type AssociationSetupRequest struct {
	SeqNum                          uint32
	NodeID                          ie.NodeID
	RecoveryTimeStamp               ie.RecoveryTimeStamp
	UPFunctionFeatures              *ie.UPFunctionFeatures
	CPFunctionFeatures              *ie.CPFunctionFeatures
	UserPlaneIPResourceInformation []ie.UserPlaneIPResourceInformation
}

func (m *AssociationSetupRequest) MessageType() MessageType { return TypeAssociationSetupRequest }
func (m *AssociationSetupRequest) SequenceNumber() uint32   { return m.SeqNum }
func (m *AssociationSetupRequest) SEID() (uint64, bool)     { return 0, false }
func (m *AssociationSetupRequest) MarshalBody() []byte {
	body := m.NodeID.Marshal().Marshal()
	body = append(body, m.RecoveryTimeStamp.Marshal().Marshal()...)
	if m.UPFunctionFeatures != nil {
		body = append(body, m.UPFunctionFeatures.Marshal().Marshal()...)
	}
	if m.CPFunctionFeatures != nil {
		body = append(body, m.CPFunctionFeatures.Marshal().Marshal()...)
	}
	for _, r := range m.UserPlaneIPResourceInformation {
		body = append(body, r.Marshal().Marshal()...)
	}
	return body
}
func (m *AssociationSetupRequest) Marshal() []byte {
	return marshalHeader(TypeAssociationSetupRequest, m.SeqNum, nil, m.MarshalBody())
}

func UnmarshalAssociationSetupRequest(seq uint32, body []byte) (*AssociationSetupRequest, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &AssociationSetupRequest{SeqNum: seq}
	haveNodeID, haveRecovery := false, false
	for _, i := range ies {
		switch i.Type {
		case ie.TypeNodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return nil, err
			}
			out.NodeID = v
			haveNodeID = true
		case ie.TypeRecoveryTimeStamp:
			v, err := ie.UnmarshalRecoveryTimeStamp(i.Payload)
			if err != nil {
				return nil, err
			}
			out.RecoveryTimeStamp = v
			haveRecovery = true
		case ie.TypeUPFunctionFeatures:
			v, err := ie.UnmarshalUPFunctionFeatures(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UPFunctionFeatures = &v
		case ie.TypeCPFunctionFeatures:
			v, err := ie.UnmarshalCPFunctionFeatures(i.Payload)
			if err != nil {
				return nil, err
			}
			out.CPFunctionFeatures = &v
		case ie.TypeUserPlaneIPResourceInformation:
			v, err := ie.UnmarshalUserPlaneIPResourceInformation(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UserPlaneIPResourceInformation = append(out.UserPlaneIPResourceInformation, v)
		}
	}
	if !haveNodeID {
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationSetupRequest, Missing: ie.TypeNodeID}
	}
	if !haveRecovery {
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationSetupRequest, Missing: ie.TypeRecoveryTimeStamp}
	}
	return out, nil
}

// AssociationSetupResponse confirms (or rejects) an association.
type AssociationSetupResponse struct {
	SeqNum                          uint32
	NodeID                          ie.NodeID
	Cause                           ie.Cause
	RecoveryTimeStamp               ie.RecoveryTimeStamp
	UPFunctionFeatures              *ie.UPFunctionFeatures
	CPFunctionFeatures              *ie.CPFunctionFeatures
	UserPlaneIPResourceInformation []ie.UserPlaneIPResourceInformation
}

func (m *AssociationSetupResponse) MessageType() MessageType { return TypeAssociationSetupResponse }
func (m *AssociationSetupResponse) SequenceNumber() uint32   { return m.SeqNum }
func (m *AssociationSetupResponse) SEID() (uint64, bool)     { return 0, false }
func (m *AssociationSetupResponse) MarshalBody() []byte {
	body := m.NodeID.Marshal().Marshal()
	body = append(body, m.Cause.Marshal().Marshal()...)
	body = append(body, m.RecoveryTimeStamp.Marshal().Marshal()...)
	if m.UPFunctionFeatures != nil {
		body = append(body, m.UPFunctionFeatures.Marshal().Marshal()...)
	}
	if m.CPFunctionFeatures != nil {
		body = append(body, m.CPFunctionFeatures.Marshal().Marshal()...)
	}
	for _, r := range m.UserPlaneIPResourceInformation {
		body = append(body, r.Marshal().Marshal()...)
	}
	return body
}
func (m *AssociationSetupResponse) Marshal() []byte {
	return marshalHeader(TypeAssociationSetupResponse, m.SeqNum, nil, m.MarshalBody())
}

func UnmarshalAssociationSetupResponse(seq uint32, body []byte) (*AssociationSetupResponse, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &AssociationSetupResponse{SeqNum: seq}
	haveNodeID, haveCause, haveRecovery := false, false, false
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
		case ie.TypeRecoveryTimeStamp:
			v, err := ie.UnmarshalRecoveryTimeStamp(i.Payload)
			if err != nil {
				return nil, err
			}
			out.RecoveryTimeStamp = v
			haveRecovery = true
		case ie.TypeUPFunctionFeatures:
			v, err := ie.UnmarshalUPFunctionFeatures(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UPFunctionFeatures = &v
		case ie.TypeCPFunctionFeatures:
			v, err := ie.UnmarshalCPFunctionFeatures(i.Payload)
			if err != nil {
				return nil, err
			}
			out.CPFunctionFeatures = &v
		case ie.TypeUserPlaneIPResourceInformation:
			v, err := ie.UnmarshalUserPlaneIPResourceInformation(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UserPlaneIPResourceInformation = append(out.UserPlaneIPResourceInformation, v)
		}
	}
	if !haveNodeID {
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationSetupResponse, Missing: ie.TypeNodeID}
	}
	if !haveCause {
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationSetupResponse, Missing: ie.TypeCause}
	}
	if !haveRecovery {
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationSetupResponse, Missing: ie.TypeRecoveryTimeStamp}
	}
	return out, nil
}

// AssociationUpdateRequest and AssociationUpdateResponse refresh an
// existing association's feature/resource advertisements; only NodeID
// (request) / NodeID+Cause (response) are mandatory.
type AssociationUpdateRequest struct {
	SeqNum              uint32
	NodeID              ie.NodeID
	UPFunctionFeatures *ie.UPFunctionFeatures
	CPFunctionFeatures *ie.CPFunctionFeatures
}

func (m *AssociationUpdateRequest) MessageType() MessageType { return TypeAssociationUpdateRequest }
func (m *AssociationUpdateRequest) SequenceNumber() uint32   { return m.SeqNum }
func (m *AssociationUpdateRequest) SEID() (uint64, bool)     { return 0, false }
func (m *AssociationUpdateRequest) MarshalBody() []byte {
	body := m.NodeID.Marshal().Marshal()
	if m.UPFunctionFeatures != nil {
		body = append(body, m.UPFunctionFeatures.Marshal().Marshal()...)
	}
	if m.CPFunctionFeatures != nil {
		body = append(body, m.CPFunctionFeatures.Marshal().Marshal()...)
	}
	return body
}
func (m *AssociationUpdateRequest) Marshal() []byte {
	return marshalHeader(TypeAssociationUpdateRequest, m.SeqNum, nil, m.MarshalBody())
}

func UnmarshalAssociationUpdateRequest(seq uint32, body []byte) (*AssociationUpdateRequest, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &AssociationUpdateRequest{SeqNum: seq}
	haveNodeID := false
	for _, i := range ies {
		switch i.Type {
		case ie.TypeNodeID:
			v, err := ie.UnmarshalNodeID(i.Payload)
			if err != nil {
				return nil, err
			}
			out.NodeID = v
			haveNodeID = true
		case ie.TypeUPFunctionFeatures:
			v, err := ie.UnmarshalUPFunctionFeatures(i.Payload)
			if err != nil {
				return nil, err
			}
			out.UPFunctionFeatures = &v
		case ie.TypeCPFunctionFeatures:
			v, err := ie.UnmarshalCPFunctionFeatures(i.Payload)
			if err != nil {
				return nil, err
			}
			out.CPFunctionFeatures = &v
		}
	}
	if !haveNodeID {
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationUpdateRequest, Missing: ie.TypeNodeID}
	}
	return out, nil
}

type AssociationUpdateResponse struct {
	SeqNum uint32
	NodeID ie.NodeID
	Cause  ie.Cause
}

func (m *AssociationUpdateResponse) MessageType() MessageType { return TypeAssociationUpdateResponse }
func (m *AssociationUpdateResponse) SequenceNumber() uint32   { return m.SeqNum }
func (m *AssociationUpdateResponse) SEID() (uint64, bool)     { return 0, false }
func (m *AssociationUpdateResponse) MarshalBody() []byte {
	body := m.NodeID.Marshal().Marshal()
	return append(body, m.Cause.Marshal().Marshal()...)
}
func (m *AssociationUpdateResponse) Marshal() []byte {
	return marshalHeader(TypeAssociationUpdateResponse, m.SeqNum, nil, m.MarshalBody())
}

func UnmarshalAssociationUpdateResponse(seq uint32, body []byte) (*AssociationUpdateResponse, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &AssociationUpdateResponse{SeqNum: seq}
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
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationUpdateResponse, Missing: ie.TypeNodeID}
	}
	if !haveCause {
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationUpdateResponse, Missing: ie.TypeCause}
	}
	return out, nil
}

// AssociationReleaseRequest and AssociationReleaseResponse tear down an
// association; NodeID is mandatory in both directions, and the response
// also requires Cause.
type AssociationReleaseRequest struct {
	SeqNum uint32
	NodeID ie.NodeID
}

func (m *AssociationReleaseRequest) MessageType() MessageType {
	return TypeAssociationReleaseRequest
}
func (m *AssociationReleaseRequest) SequenceNumber() uint32 { return m.SeqNum }
func (m *AssociationReleaseRequest) SEID() (uint64, bool)   { return 0, false }
func (m *AssociationReleaseRequest) MarshalBody() []byte    { return m.NodeID.Marshal().Marshal() }
func (m *AssociationReleaseRequest) Marshal() []byte {
	return marshalHeader(TypeAssociationReleaseRequest, m.SeqNum, nil, m.MarshalBody())
}

func UnmarshalAssociationReleaseRequest(seq uint32, body []byte) (*AssociationReleaseRequest, error) {
	n, ok, err := ie.Find(body, ie.TypeNodeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationReleaseRequest, Missing: ie.TypeNodeID}
	}
	v, err := ie.UnmarshalNodeID(n.Payload)
	if err != nil {
		return nil, err
	}
	return &AssociationReleaseRequest{SeqNum: seq, NodeID: v}, nil
}

type AssociationReleaseResponse struct {
	SeqNum uint32
	NodeID ie.NodeID
	Cause  ie.Cause
}

func (m *AssociationReleaseResponse) MessageType() MessageType {
	return TypeAssociationReleaseResponse
}
func (m *AssociationReleaseResponse) SequenceNumber() uint32 { return m.SeqNum }
func (m *AssociationReleaseResponse) SEID() (uint64, bool)   { return 0, false }
func (m *AssociationReleaseResponse) MarshalBody() []byte {
	body := m.NodeID.Marshal().Marshal()
	return append(body, m.Cause.Marshal().Marshal()...)
}
func (m *AssociationReleaseResponse) Marshal() []byte {
	return marshalHeader(TypeAssociationReleaseResponse, m.SeqNum, nil, m.MarshalBody())
}

func UnmarshalAssociationReleaseResponse(seq uint32, body []byte) (*AssociationReleaseResponse, error) {
	ies, err := ie.All(body)
	if err != nil {
		return nil, err
	}
	out := &AssociationReleaseResponse{SeqNum: seq}
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
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationReleaseResponse, Missing: ie.TypeNodeID}
	}
	if !haveCause {
		return nil, &MissingMandatoryIeError{MessageType: TypeAssociationReleaseResponse, Missing: ie.TypeCause}
	}
	return out, nil
}

// VersionNotSupportedResponse is the empty-body reply a node sends when
// it receives a header declaring a PFCP version it does not speak.
type VersionNotSupportedResponse struct {
	SeqNum uint32
}

func (m *VersionNotSupportedResponse) MessageType() MessageType {
	return TypeVersionNotSupportedResponse
}
func (m *VersionNotSupportedResponse) SequenceNumber() uint32 { return m.SeqNum }
func (m *VersionNotSupportedResponse) SEID() (uint64, bool)   { return 0, false }
func (m *VersionNotSupportedResponse) MarshalBody() []byte    { return nil }
func (m *VersionNotSupportedResponse) Marshal() []byte {
	return marshalHeader(TypeVersionNotSupportedResponse, m.SeqNum, nil, nil)
}

func UnmarshalVersionNotSupportedResponse(seq uint32, _ []byte) (*VersionNotSupportedResponse, error) {
	return &VersionNotSupportedResponse{SeqNum: seq}, nil
}
