package ie

// OffendingIE names the IE type that caused a decode or validation
// failure, carried in rejection responses alongside a Cause.
type OffendingIE struct {
	Type IeType
}

func (o OffendingIE) Marshal() Ie {
	b := []byte{byte(uint16(o.Type) >> 8), byte(uint16(o.Type))}
	return New(TypeOffendingIE, b)
}

func UnmarshalOffendingIE(payload []byte) (OffendingIE, error) {
	if len(payload) != 2 {
		return OffendingIE{}, &InvalidLengthError{Type: TypeOffendingIE, Length: len(payload), Reason: "Offending IE must be exactly 2 bytes"}
	}
	return OffendingIE{Type: IeType(uint16(payload[0])<<8 | uint16(payload[1]))}, nil
}

// FailedRuleID names the rule ID (of the given kind) that a UPF could
// not install, carried alongside a Cause in a rejection response.
type FailedRuleIDType uint8

const (
	FailedRuleIDPDR FailedRuleIDType = 1
	FailedRuleIDFAR FailedRuleIDType = 2
	FailedRuleIDQER FailedRuleIDType = 3
	FailedRuleIDURR FailedRuleIDType = 4
	FailedRuleIDBAR FailedRuleIDType = 5
)

type FailedRuleID struct {
	RuleIDType FailedRuleIDType
	RuleID     uint32
}

func (f FailedRuleID) Marshal() Ie {
	payload := []byte{byte(f.RuleIDType)}
	if f.RuleIDType == FailedRuleIDBAR {
		payload = append(payload, byte(f.RuleID))
	} else {
		b := make([]byte, 4)
		b[0] = byte(f.RuleID >> 24)
		b[1] = byte(f.RuleID >> 16)
		b[2] = byte(f.RuleID >> 8)
		b[3] = byte(f.RuleID)
		payload = append(payload, b...)
	}
	return New(TypeFailedRuleID, payload)
}

func UnmarshalFailedRuleID(payload []byte) (FailedRuleID, error) {
	if len(payload) < 2 {
		return FailedRuleID{}, &InvalidLengthError{Type: TypeFailedRuleID, Length: len(payload), Reason: "Failed Rule ID requires at least 2 bytes"}
	}
	t := FailedRuleIDType(payload[0])
	if t == FailedRuleIDBAR {
		return FailedRuleID{RuleIDType: t, RuleID: uint32(payload[1])}, nil
	}
	if len(payload) != 5 {
		return FailedRuleID{}, &InvalidLengthError{Type: TypeFailedRuleID, Length: len(payload), Reason: "non-BAR Failed Rule ID must be exactly 5 bytes"}
	}
	v := uint32(payload[1])<<24 | uint32(payload[2])<<16 | uint32(payload[3])<<8 | uint32(payload[4])
	return FailedRuleID{RuleIDType: t, RuleID: v}, nil
}
