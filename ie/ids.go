package ie

import "encoding/binary"

// PDRID identifies a Packet Detection Rule, a 2-octet rule index.
type PDRID struct{ Value uint16 }

func (v PDRID) Marshal() Ie {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v.Value)
	return New(TypePDRID, b)
}

func UnmarshalPDRID(payload []byte) (PDRID, error) {
	if len(payload) != 2 {
		return PDRID{}, &InvalidLengthError{Type: TypePDRID, Length: len(payload), Reason: "PDR ID must be exactly 2 bytes"}
	}
	return PDRID{Value: binary.BigEndian.Uint16(payload)}, nil
}

// marshalRuleID32/unmarshalRuleID32 are the shared codec for the
// 4-octet rule IDs (FAR, QER, URR, aggregated-URR, linked-URR); each
// gets a distinct exported type so builders and message fields stay
// self-documenting, but they all marshal identically.
func marshalRuleID32(t IeType, v uint32) Ie {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return New(t, b)
}

func unmarshalRuleID32(t IeType, payload []byte) (uint32, error) {
	if len(payload) != 4 {
		return 0, &InvalidLengthError{Type: t, Length: len(payload), Reason: "rule ID must be exactly 4 bytes"}
	}
	return binary.BigEndian.Uint32(payload), nil
}

// FARID identifies a Forwarding Action Rule.
type FARID struct{ Value uint32 }

func (v FARID) Marshal() Ie                           { return marshalRuleID32(TypeFARID, v.Value) }
func UnmarshalFARID(payload []byte) (FARID, error) {
	v, err := unmarshalRuleID32(TypeFARID, payload)
	return FARID{Value: v}, err
}

// QERID identifies a QoS Enforcement Rule.
type QERID struct{ Value uint32 }

func (v QERID) Marshal() Ie { return marshalRuleID32(TypeQERID, v.Value) }
func UnmarshalQERID(payload []byte) (QERID, error) {
	v, err := unmarshalRuleID32(TypeQERID, payload)
	return QERID{Value: v}, err
}

// URRID identifies a Usage Reporting Rule.
type URRID struct{ Value uint32 }

func (v URRID) Marshal() Ie { return marshalRuleID32(TypeURRID, v.Value) }
func UnmarshalURRID(payload []byte) (URRID, error) {
	v, err := unmarshalRuleID32(TypeURRID, payload)
	return URRID{Value: v}, err
}

// BARID identifies a Buffering Action Rule. Per 29.244 this field is a
// single octet, unlike the other rule IDs.
type BARID struct{ Value uint8 }

func (v BARID) Marshal() Ie { return New(TypeBARID, []byte{v.Value}) }
func UnmarshalBARID(payload []byte) (BARID, error) {
	if len(payload) != 1 {
		return BARID{}, &InvalidLengthError{Type: TypeBARID, Length: len(payload), Reason: "BAR ID must be exactly 1 byte"}
	}
	return BARID{Value: payload[0]}, nil
}

// LinkedURRID references another URR from within a URR definition (the
// "linked usage reporting rule" scenario for multi-URR accounting).
type LinkedURRID struct{ Value uint32 }

func (v LinkedURRID) Marshal() Ie { return marshalRuleID32(TypeLinkedURRID, v.Value) }
func UnmarshalLinkedURRID(payload []byte) (LinkedURRID, error) {
	v, err := unmarshalRuleID32(TypeLinkedURRID, payload)
	return LinkedURRID{Value: v}, err
}

// AggregatedURRID references a URR aggregating several others' usage.
type AggregatedURRID struct{ Value uint32 }

func (v AggregatedURRID) Marshal() Ie { return marshalRuleID32(TypeAggregatedURRID, v.Value) }
func UnmarshalAggregatedURRID(payload []byte) (AggregatedURRID, error) {
	v, err := unmarshalRuleID32(TypeAggregatedURRID, payload)
	return AggregatedURRID{Value: v}, err
}

// TrafficEndpointID identifies a traffic endpoint, a single-octet index.
type TrafficEndpointID struct{ Value uint8 }

func (v TrafficEndpointID) Marshal() Ie { return New(TypeTrafficEndpointID, []byte{v.Value}) }
func UnmarshalTrafficEndpointID(payload []byte) (TrafficEndpointID, error) {
	if len(payload) != 1 {
		return TrafficEndpointID{}, &InvalidLengthError{Type: TypeTrafficEndpointID, Length: len(payload), Reason: "Traffic Endpoint ID must be exactly 1 byte"}
	}
	return TrafficEndpointID{Value: payload[0]}, nil
}
