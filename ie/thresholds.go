package ie

import "encoding/binary"

// Volume threshold/quota IEs share one wire shape: a flags octet
// selecting which of total/uplink/downlink octet counts follow, each a
// big-endian uint64.
const (
	volFlagTOVOL = 1 << 0
	volFlagULVOL = 1 << 1
	volFlagDLVOL = 1 << 2
)

type volumeFields struct {
	TotalOctets    *uint64
	UplinkOctets   *uint64
	DownlinkOctets *uint64
}

func marshalVolume(t IeType, v volumeFields) Ie {
	var flags byte
	if v.TotalOctets != nil {
		flags |= volFlagTOVOL
	}
	if v.UplinkOctets != nil {
		flags |= volFlagULVOL
	}
	if v.DownlinkOctets != nil {
		flags |= volFlagDLVOL
	}
	payload := []byte{flags}
	appendU64 := func(p *uint64) {
		if p == nil {
			return
		}
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, *p)
		payload = append(payload, b...)
	}
	appendU64(v.TotalOctets)
	appendU64(v.UplinkOctets)
	appendU64(v.DownlinkOctets)
	return New(t, payload)
}

func unmarshalVolume(t IeType, payload []byte) (volumeFields, error) {
	if len(payload) < 1 {
		return volumeFields{}, &InvalidLengthError{Type: t, Length: len(payload), Reason: "missing flags octet"}
	}
	flags := payload[0]
	var out volumeFields
	off := 1
	readU64 := func(set **uint64) error {
		if len(payload) < off+8 {
			return &InvalidLengthError{Type: t, Length: len(payload), Reason: "flag set but octet count missing"}
		}
		v := binary.BigEndian.Uint64(payload[off : off+8])
		*set = &v
		off += 8
		return nil
	}
	if flags&volFlagTOVOL != 0 {
		if err := readU64(&out.TotalOctets); err != nil {
			return volumeFields{}, err
		}
	}
	if flags&volFlagULVOL != 0 {
		if err := readU64(&out.UplinkOctets); err != nil {
			return volumeFields{}, err
		}
	}
	if flags&volFlagDLVOL != 0 {
		if err := readU64(&out.DownlinkOctets); err != nil {
			return volumeFields{}, err
		}
	}
	return out, nil
}

// VolumeThreshold sets the usage-reporting volume trigger level for a URR.
type VolumeThreshold struct {
	TotalOctets    *uint64
	UplinkOctets   *uint64
	DownlinkOctets *uint64
}

func (v VolumeThreshold) Marshal() Ie {
	return marshalVolume(TypeVolumeThreshold, volumeFields(v))
}
func UnmarshalVolumeThreshold(payload []byte) (VolumeThreshold, error) {
	f, err := unmarshalVolume(TypeVolumeThreshold, payload)
	return VolumeThreshold(f), err
}

// SubsequentVolumeThreshold applies after the first VolumeThreshold
// report, letting a URR re-arm with a different level.
type SubsequentVolumeThreshold struct {
	TotalOctets    *uint64
	UplinkOctets   *uint64
	DownlinkOctets *uint64
}

func (v SubsequentVolumeThreshold) Marshal() Ie {
	return marshalVolume(TypeSubsequentVolumeThreshold, volumeFields(v))
}
func UnmarshalSubsequentVolumeThreshold(payload []byte) (SubsequentVolumeThreshold, error) {
	f, err := unmarshalVolume(TypeSubsequentVolumeThreshold, payload)
	return SubsequentVolumeThreshold(f), err
}

// VolumeQuota sets the usage-accounting volume allowance for a URR.
type VolumeQuota struct {
	TotalOctets    *uint64
	UplinkOctets   *uint64
	DownlinkOctets *uint64
}

func (v VolumeQuota) Marshal() Ie {
	return marshalVolume(TypeVolumeQuota, volumeFields(v))
}
func UnmarshalVolumeQuota(payload []byte) (VolumeQuota, error) {
	f, err := unmarshalVolume(TypeVolumeQuota, payload)
	return VolumeQuota(f), err
}

// SubsequentVolumeQuota re-arms VolumeQuota after it is exhausted.
type SubsequentVolumeQuota struct {
	TotalOctets    *uint64
	UplinkOctets   *uint64
	DownlinkOctets *uint64
}

func (v SubsequentVolumeQuota) Marshal() Ie {
	return marshalVolume(TypeSubsequentVolumeQuota, volumeFields(v))
}
func UnmarshalSubsequentVolumeQuota(payload []byte) (SubsequentVolumeQuota, error) {
	f, err := unmarshalVolume(TypeSubsequentVolumeQuota, payload)
	return SubsequentVolumeQuota(f), err
}

// seconds32 is the shared 4-byte-uint32-seconds wire shape for the time
// threshold/quota/duration family.
func marshalSeconds32(t IeType, seconds uint32) Ie {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, seconds)
	return New(t, b)
}

func unmarshalSeconds32(t IeType, payload []byte) (uint32, error) {
	if len(payload) != 4 {
		return 0, &InvalidLengthError{Type: t, Length: len(payload), Reason: "must be exactly 4 bytes"}
	}
	return binary.BigEndian.Uint32(payload), nil
}

type TimeThreshold struct{ Seconds uint32 }

func (t TimeThreshold) Marshal() Ie { return marshalSeconds32(TypeTimeThreshold, t.Seconds) }
func UnmarshalTimeThreshold(payload []byte) (TimeThreshold, error) {
	v, err := unmarshalSeconds32(TypeTimeThreshold, payload)
	return TimeThreshold{Seconds: v}, err
}

type SubsequentTimeThreshold struct{ Seconds uint32 }

func (t SubsequentTimeThreshold) Marshal() Ie {
	return marshalSeconds32(TypeSubsequentTimeThreshold, t.Seconds)
}
func UnmarshalSubsequentTimeThreshold(payload []byte) (SubsequentTimeThreshold, error) {
	v, err := unmarshalSeconds32(TypeSubsequentTimeThreshold, payload)
	return SubsequentTimeThreshold{Seconds: v}, err
}

type TimeQuota struct{ Seconds uint32 }

func (t TimeQuota) Marshal() Ie { return marshalSeconds32(TypeTimeQuota, t.Seconds) }
func UnmarshalTimeQuota(payload []byte) (TimeQuota, error) {
	v, err := unmarshalSeconds32(TypeTimeQuota, payload)
	return TimeQuota{Seconds: v}, err
}

type SubsequentTimeQuota struct{ Seconds uint32 }

func (t SubsequentTimeQuota) Marshal() Ie { return marshalSeconds32(TypeSubsequentTimeQuota, t.Seconds) }
func UnmarshalSubsequentTimeQuota(payload []byte) (SubsequentTimeQuota, error) {
	v, err := unmarshalSeconds32(TypeSubsequentTimeQuota, payload)
	return SubsequentTimeQuota{Seconds: v}, err
}

type QuotaHoldingTime struct{ Seconds uint32 }

func (t QuotaHoldingTime) Marshal() Ie { return marshalSeconds32(TypeQuotaHoldingTime, t.Seconds) }
func UnmarshalQuotaHoldingTime(payload []byte) (QuotaHoldingTime, error) {
	v, err := unmarshalSeconds32(TypeQuotaHoldingTime, payload)
	return QuotaHoldingTime{Seconds: v}, err
}

type InactivityDetectionTime struct{ Seconds uint32 }

func (t InactivityDetectionTime) Marshal() Ie {
	return marshalSeconds32(TypeInactivityDetectionTime, t.Seconds)
}
func UnmarshalInactivityDetectionTime(payload []byte) (InactivityDetectionTime, error) {
	v, err := unmarshalSeconds32(TypeInactivityDetectionTime, payload)
	return InactivityDetectionTime{Seconds: v}, err
}
