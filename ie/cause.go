package ie

import "fmt"

// CauseValue is the one-octet result code carried by the Cause IE,
// returned in every PFCP response to indicate whether the request
// succeeded and, if not, broadly why.
type CauseValue uint8

const (
	CauseRequestAccepted                 CauseValue = 1
	CauseRequestRejected                 CauseValue = 64
	CauseSessionContextNotFound          CauseValue = 65
	CauseMandatoryIEMissing              CauseValue = 66
	CauseConditionalIEMissing            CauseValue = 67
	CauseInvalidLength                   CauseValue = 68
	CauseMandatoryIEIncorrect            CauseValue = 69
	CauseInvalidForwardingPolicy         CauseValue = 70
	CauseInvalidFTEIDAllocationOption    CauseValue = 71
	CauseNoEstablishedPFCPAssociation    CauseValue = 72
	CauseRuleCreationModificationFailure CauseValue = 73
	CausePFCPEntityInCongestion          CauseValue = 74
	CauseNoResourcesAvailable            CauseValue = 75
	CauseServiceNotSupported             CauseValue = 76
	CauseSystemFailure                   CauseValue = 77
)

var causeNames = map[CauseValue]string{
	CauseRequestAccepted:                 "RequestAccepted",
	CauseRequestRejected:                 "RequestRejected",
	CauseSessionContextNotFound:          "SessionContextNotFound",
	CauseMandatoryIEMissing:              "MandatoryIEMissing",
	CauseConditionalIEMissing:            "ConditionalIEMissing",
	CauseInvalidLength:                   "InvalidLength",
	CauseMandatoryIEIncorrect:            "MandatoryIEIncorrect",
	CauseInvalidForwardingPolicy:         "InvalidForwardingPolicy",
	CauseInvalidFTEIDAllocationOption:    "InvalidFTEIDAllocationOption",
	CauseNoEstablishedPFCPAssociation:    "NoEstablishedPFCPAssociation",
	CauseRuleCreationModificationFailure: "RuleCreationModificationFailure",
	CausePFCPEntityInCongestion:          "PFCPEntityInCongestion",
	CauseNoResourcesAvailable:            "NoResourcesAvailable",
	CauseServiceNotSupported:             "ServiceNotSupported",
	CauseSystemFailure:                   "SystemFailure",
}

func (c CauseValue) String() string {
	if name, ok := causeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Cause(%d)", uint8(c))
}

// IsSuccess reports whether c indicates the request succeeded.
func (c CauseValue) IsSuccess() bool {
	return c == CauseRequestAccepted
}

// Cause wraps the single-octet Cause IE value (§8 scenario 1: bytes
// `00 13 00 01 01` decode to CauseRequestAccepted).
type Cause struct {
	Value CauseValue
}

// Marshal encodes the Cause as an Ie.
func (c Cause) Marshal() Ie {
	return New(TypeCause, []byte{byte(c.Value)})
}

// UnmarshalCause decodes a Cause IE payload.
func UnmarshalCause(payload []byte) (Cause, error) {
	if len(payload) != 1 {
		return Cause{}, &InvalidLengthError{Type: TypeCause, Length: len(payload), Reason: "Cause must be exactly 1 byte"}
	}
	return Cause{Value: CauseValue(payload[0])}, nil
}
