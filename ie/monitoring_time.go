package ie

import (
	"github.com/your-org/pfcp/internal/wire"
)

// MonitoringTime marks when a URR should switch to its "subsequent"
// threshold/quota values, encoded as an NTP-epoch-seconds timestamp
// (§4 wire encoding rules; NTP offset 2208988800).
type MonitoringTime struct {
	UnixSeconds uint32
}

func (m MonitoringTime) Marshal() Ie {
	b := wire.EncodeNTP(m.UnixSeconds)
	return New(TypeMonitoringTime, b[:])
}

func UnmarshalMonitoringTime(payload []byte) (MonitoringTime, error) {
	v, err := wire.DecodeNTP(payload)
	if err != nil {
		return MonitoringTime{}, &InvalidValueError{Type: TypeMonitoringTime, Reason: err.Error()}
	}
	return MonitoringTime{UnixSeconds: v}, nil
}

// AdditionalMonitoringTime is a supplementary Monitoring Time entry
// carried inside a grouped Additional Monitoring Time IE, sharing the
// same NTP encoding.
type AdditionalMonitoringTime struct {
	UnixSeconds uint32
}

func (m AdditionalMonitoringTime) Marshal() Ie {
	b := wire.EncodeNTP(m.UnixSeconds)
	return New(TypeAdditionalMonitoringTime, b[:])
}

func UnmarshalAdditionalMonitoringTime(payload []byte) (AdditionalMonitoringTime, error) {
	v, err := wire.DecodeNTP(payload)
	if err != nil {
		return AdditionalMonitoringTime{}, &InvalidValueError{Type: TypeAdditionalMonitoringTime, Reason: err.Error()}
	}
	return AdditionalMonitoringTime{UnixSeconds: v}, nil
}

// RecoveryTimeStamp records the NTP-epoch time a PFCP entity last
// restarted (§8 scenario: Heartbeat and Association Setup messages).
type RecoveryTimeStamp struct {
	UnixSeconds uint32
}

func (r RecoveryTimeStamp) Marshal() Ie {
	b := wire.EncodeNTP(r.UnixSeconds)
	return New(TypeRecoveryTimeStamp, b[:])
}

func UnmarshalRecoveryTimeStamp(payload []byte) (RecoveryTimeStamp, error) {
	v, err := wire.DecodeNTP(payload)
	if err != nil {
		return RecoveryTimeStamp{}, &InvalidValueError{Type: TypeRecoveryTimeStamp, Reason: err.Error()}
	}
	return RecoveryTimeStamp{UnixSeconds: v}, nil
}

// StartTime and EndTime bound a usage report's measurement interval,
// also NTP-epoch timestamps.
type StartTime struct{ UnixSeconds uint32 }

func (s StartTime) Marshal() Ie {
	b := wire.EncodeNTP(s.UnixSeconds)
	return New(TypeStartTime, b[:])
}

func UnmarshalStartTime(payload []byte) (StartTime, error) {
	v, err := wire.DecodeNTP(payload)
	if err != nil {
		return StartTime{}, &InvalidValueError{Type: TypeStartTime, Reason: err.Error()}
	}
	return StartTime{UnixSeconds: v}, nil
}

type EndTime struct{ UnixSeconds uint32 }

func (e EndTime) Marshal() Ie {
	b := wire.EncodeNTP(e.UnixSeconds)
	return New(TypeEndTime, b[:])
}

func UnmarshalEndTime(payload []byte) (EndTime, error) {
	v, err := wire.DecodeNTP(payload)
	if err != nil {
		return EndTime{}, &InvalidValueError{Type: TypeEndTime, Reason: err.Error()}
	}
	return EndTime{UnixSeconds: v}, nil
}
