package ie

import "encoding/binary"

// Precedence orders PDR matching: lower values are evaluated first.
type Precedence struct{ Value uint32 }

func (p Precedence) Marshal() Ie {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, p.Value)
	return New(TypePrecedence, b)
}

func UnmarshalPrecedence(payload []byte) (Precedence, error) {
	if len(payload) != 4 {
		return Precedence{}, &InvalidLengthError{Type: TypePrecedence, Length: len(payload), Reason: "Precedence must be exactly 4 bytes"}
	}
	return Precedence{Value: binary.BigEndian.Uint32(payload)}, nil
}

// GateStatusValue is the 2-bit open/closed state of one direction
// (uplink or downlink) of a QER's gate.
type GateStatusValue uint8

const (
	GateOpen   GateStatusValue = 0
	GateClosed GateStatusValue = 1
)

// GateStatus carries the uplink and downlink gate state for a QER,
// packed into the low nibble of a single octet (UL in bits 0-1, DL in
// bits 2-3).
type GateStatus struct {
	Uplink   GateStatusValue
	Downlink GateStatusValue
}

func (g GateStatus) Marshal() Ie {
	v := byte(g.Uplink) | byte(g.Downlink)<<2
	return New(TypeGateStatus, []byte{v})
}

func UnmarshalGateStatus(payload []byte) (GateStatus, error) {
	if len(payload) != 1 {
		return GateStatus{}, &InvalidLengthError{Type: TypeGateStatus, Length: len(payload), Reason: "Gate Status must be exactly 1 byte"}
	}
	uplink := GateStatusValue(payload[0] & 0x03)
	downlink := GateStatusValue((payload[0] >> 2) & 0x03)
	if uplink != GateOpen && uplink != GateClosed {
		return GateStatus{}, &InvalidValueError{Type: TypeGateStatus, Reason: "uplink gate status must be OPEN or CLOSED"}
	}
	if downlink != GateOpen && downlink != GateClosed {
		return GateStatus{}, &InvalidValueError{Type: TypeGateStatus, Reason: "downlink gate status must be OPEN or CLOSED"}
	}
	return GateStatus{Uplink: uplink, Downlink: downlink}, nil
}

// bitrate encodes/decodes the 5-octet-pair UL/DL bitrate pair shared by
// MBR (Maximum Bit Rate) and GBR (Guaranteed Bit Rate): two 40-bit
// (5-byte) big-endian values in kbps.
type bitrate struct {
	UplinkKbps   uint64
	DownlinkKbps uint64
}

func marshalBitrate(t IeType, r bitrate) Ie {
	payload := make([]byte, 10)
	putUint40(payload[0:5], r.UplinkKbps)
	putUint40(payload[5:10], r.DownlinkKbps)
	return New(t, payload)
}

func unmarshalBitrate(t IeType, payload []byte) (bitrate, error) {
	if len(payload) != 10 {
		return bitrate{}, &InvalidLengthError{Type: t, Length: len(payload), Reason: "bit rate pair must be exactly 10 bytes"}
	}
	return bitrate{
		UplinkKbps:   uint40(payload[0:5]),
		DownlinkKbps: uint40(payload[5:10]),
	}, nil
}

func putUint40(b []byte, v uint64) {
	b[0] = byte(v >> 32)
	b[1] = byte(v >> 24)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 8)
	b[4] = byte(v)
}

func uint40(b []byte) uint64 {
	return uint64(b[0])<<32 | uint64(b[1])<<24 | uint64(b[2])<<16 | uint64(b[3])<<8 | uint64(b[4])
}

// MBR is a QER's Maximum Bit Rate, uplink and downlink in kbps.
type MBR struct {
	UplinkKbps   uint64
	DownlinkKbps uint64
}

func (m MBR) Marshal() Ie {
	return marshalBitrate(TypeMBR, bitrate{UplinkKbps: m.UplinkKbps, DownlinkKbps: m.DownlinkKbps})
}

func UnmarshalMBR(payload []byte) (MBR, error) {
	r, err := unmarshalBitrate(TypeMBR, payload)
	return MBR{UplinkKbps: r.UplinkKbps, DownlinkKbps: r.DownlinkKbps}, err
}

// GBR is a QER's Guaranteed Bit Rate, uplink and downlink in kbps.
type GBR struct {
	UplinkKbps   uint64
	DownlinkKbps uint64
}

func (g GBR) Marshal() Ie {
	return marshalBitrate(TypeGBR, bitrate{UplinkKbps: g.UplinkKbps, DownlinkKbps: g.DownlinkKbps})
}

func UnmarshalGBR(payload []byte) (GBR, error) {
	r, err := unmarshalBitrate(TypeGBR, payload)
	return GBR{UplinkKbps: r.UplinkKbps, DownlinkKbps: r.DownlinkKbps}, err
}

// TransportLevelMarking carries a DSCP value to stamp onto the outer IP
// header, encoded as DSCP << 2 in a 16-bit big-endian ToS/Traffic Class
// field, i.e. in the top 6 bits of its second octet.
type TransportLevelMarking struct {
	DSCP uint8
}

func (t TransportLevelMarking) Marshal() Ie {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(t.DSCP)<<2)
	return New(TypeTransportLevelMarking, b)
}

func UnmarshalTransportLevelMarking(payload []byte) (TransportLevelMarking, error) {
	if len(payload) != 2 {
		return TransportLevelMarking{}, &InvalidLengthError{Type: TypeTransportLevelMarking, Length: len(payload), Reason: "Transport Level Marking must be exactly 2 bytes"}
	}
	return TransportLevelMarking{DSCP: uint8(binary.BigEndian.Uint16(payload) >> 2)}, nil
}
