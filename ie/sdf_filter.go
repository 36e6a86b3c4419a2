package ie

import "encoding/binary"

// The SDF Filter flag bits select which optional fields follow the flags octet.
const (
	sdfFlagFD   = 1 << 0 // flow description present
	sdfFlagTTC  = 1 << 1 // ToS/traffic class present
	sdfFlagSPI  = 1 << 2 // security parameter index present
	sdfFlagFL   = 1 << 3 // flow label present
	sdfFlagBID  = 1 << 4 // SDF filter ID present
)

// SDFFilter carries an IPFilterRule-syntax flow description plus
// optional ToS/traffic-class, SPI, flow-label, and filter-ID fields.
type SDFFilter struct {
	FlowDescription string
	ToSTrafficClass *uint16
	SecurityParameterIndex *uint32
	FlowLabel       *uint32 // low 24 bits significant
	FilterID        *uint32
}

func (s SDFFilter) Marshal() Ie {
	var flags byte
	if s.FlowDescription != "" {
		flags |= sdfFlagFD
	}
	if s.ToSTrafficClass != nil {
		flags |= sdfFlagTTC
	}
	if s.SecurityParameterIndex != nil {
		flags |= sdfFlagSPI
	}
	if s.FlowLabel != nil {
		flags |= sdfFlagFL
	}
	if s.FilterID != nil {
		flags |= sdfFlagBID
	}
	payload := []byte{flags, 0} // second octet reserved/spare
	if s.FlowDescription != "" {
		l := make([]byte, 2)
		binary.BigEndian.PutUint16(l, uint16(len(s.FlowDescription)))
		payload = append(payload, l...)
		payload = append(payload, []byte(s.FlowDescription)...)
	}
	if s.ToSTrafficClass != nil {
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, *s.ToSTrafficClass)
		payload = append(payload, b...)
	}
	if s.SecurityParameterIndex != nil {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, *s.SecurityParameterIndex)
		payload = append(payload, b...)
	}
	if s.FlowLabel != nil {
		payload = append(payload, byte(*s.FlowLabel>>16), byte(*s.FlowLabel>>8), byte(*s.FlowLabel))
	}
	if s.FilterID != nil {
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, *s.FilterID)
		payload = append(payload, b...)
	}
	return New(TypeSDFFilter, payload)
}

func UnmarshalSDFFilter(payload []byte) (SDFFilter, error) {
	if len(payload) < 2 {
		return SDFFilter{}, &InvalidLengthError{Type: TypeSDFFilter, Length: len(payload), Reason: "SDF Filter requires at least a 2-byte flags field"}
	}
	flags := payload[0]
	var out SDFFilter
	off := 2
	if flags&sdfFlagFD != 0 {
		if len(payload) < off+2 {
			return SDFFilter{}, &InvalidLengthError{Type: TypeSDFFilter, Length: len(payload), Reason: "FD flag set but length prefix missing"}
		}
		l := int(binary.BigEndian.Uint16(payload[off : off+2]))
		off += 2
		if len(payload) < off+l {
			return SDFFilter{}, &InvalidLengthError{Type: TypeSDFFilter, Length: len(payload), Reason: "flow description length exceeds payload"}
		}
		out.FlowDescription = string(payload[off : off+l])
		off += l
	}
	if flags&sdfFlagTTC != 0 {
		if len(payload) < off+2 {
			return SDFFilter{}, &InvalidLengthError{Type: TypeSDFFilter, Length: len(payload), Reason: "TTC flag set but octets missing"}
		}
		v := binary.BigEndian.Uint16(payload[off : off+2])
		out.ToSTrafficClass = &v
		off += 2
	}
	if flags&sdfFlagSPI != 0 {
		if len(payload) < off+4 {
			return SDFFilter{}, &InvalidLengthError{Type: TypeSDFFilter, Length: len(payload), Reason: "SPI flag set but octets missing"}
		}
		v := binary.BigEndian.Uint32(payload[off : off+4])
		out.SecurityParameterIndex = &v
		off += 4
	}
	if flags&sdfFlagFL != 0 {
		if len(payload) < off+3 {
			return SDFFilter{}, &InvalidLengthError{Type: TypeSDFFilter, Length: len(payload), Reason: "FL flag set but octets missing"}
		}
		v := uint32(payload[off])<<16 | uint32(payload[off+1])<<8 | uint32(payload[off+2])
		out.FlowLabel = &v
		off += 3
	}
	if flags&sdfFlagBID != 0 {
		if len(payload) < off+4 {
			return SDFFilter{}, &InvalidLengthError{Type: TypeSDFFilter, Length: len(payload), Reason: "BID flag set but octets missing"}
		}
		v := binary.BigEndian.Uint32(payload[off : off+4])
		out.FilterID = &v
	}
	return out, nil
}
