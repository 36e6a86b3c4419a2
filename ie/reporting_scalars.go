package ie

import "encoding/binary"

// ReportTypeFlags selects which kind(s) of report a Usage Report/Node
// Report message carries: downlink data, usage, error indication, or
// user-plane path failure.
type ReportTypeFlags uint8

const (
	ReportTypeDLDR ReportTypeFlags = 1 << 0
	ReportTypeUSAR ReportTypeFlags = 1 << 1
	ReportTypeERIR ReportTypeFlags = 1 << 2
	ReportTypeUPIR ReportTypeFlags = 1 << 3
)

func (f ReportTypeFlags) Has(mask ReportTypeFlags) bool { return f&mask == mask }

type ReportType struct{ Flags ReportTypeFlags }

func (r ReportType) Marshal() Ie { return New(TypeReportType, []byte{byte(r.Flags)}) }
func UnmarshalReportType(payload []byte) (ReportType, error) {
	if len(payload) < 1 {
		return ReportType{}, &InvalidLengthError{Type: TypeReportType, Length: len(payload), Reason: "Report Type requires at least 1 byte"}
	}
	return ReportType{Flags: ReportTypeFlags(payload[0])}, nil
}

// MeasurementMethodFlags selects what a URR measures: duration,
// volume, or event count.
type MeasurementMethodFlags uint8

const (
	MeasurementDURAT MeasurementMethodFlags = 1 << 0
	MeasurementVOLUM MeasurementMethodFlags = 1 << 1
	MeasurementEVENT MeasurementMethodFlags = 1 << 2
)

func (f MeasurementMethodFlags) Has(mask MeasurementMethodFlags) bool { return f&mask == mask }

type MeasurementMethod struct{ Flags MeasurementMethodFlags }

func (m MeasurementMethod) Marshal() Ie { return New(TypeMeasurementMethod, []byte{byte(m.Flags)}) }
func UnmarshalMeasurementMethod(payload []byte) (MeasurementMethod, error) {
	if len(payload) < 1 {
		return MeasurementMethod{}, &InvalidLengthError{Type: TypeMeasurementMethod, Length: len(payload), Reason: "Measurement Method requires at least 1 byte"}
	}
	return MeasurementMethod{Flags: MeasurementMethodFlags(payload[0])}, nil
}

// UsageReportTriggerFlags records why a URR generated a usage report;
// values are a 24-bit-ish bitmask in the real spec, modeled here as the
// low two octets this module actually distinguishes (periodic reporting,
// volume/time threshold, volume/time quota exhaustion, start/stop of
// traffic, and session termination).
type UsageReportTriggerFlags uint16

const (
	TriggerPERIO UsageReportTriggerFlags = 1 << 0 // periodic reporting
	TriggerVOLTH UsageReportTriggerFlags = 1 << 1 // volume threshold
	TriggerTIMTH UsageReportTriggerFlags = 1 << 2 // time threshold
	TriggerVOLQU UsageReportTriggerFlags = 1 << 3 // volume quota exhausted
	TriggerTIMQU UsageReportTriggerFlags = 1 << 4 // time quota exhausted
	TriggerSTART UsageReportTriggerFlags = 1 << 5 // start of traffic
	TriggerSTOP  UsageReportTriggerFlags = 1 << 6 // stop of traffic
	TriggerTERMR UsageReportTriggerFlags = 1 << 7 // session termination
)

func (f UsageReportTriggerFlags) Has(mask UsageReportTriggerFlags) bool { return f&mask == mask }

type UsageReportTrigger struct{ Flags UsageReportTriggerFlags }

func (u UsageReportTrigger) Marshal() Ie {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(u.Flags))
	return New(TypeUsageReportTrigger, b)
}

func UnmarshalUsageReportTrigger(payload []byte) (UsageReportTrigger, error) {
	if len(payload) < 2 {
		return UsageReportTrigger{}, &InvalidLengthError{Type: TypeUsageReportTrigger, Length: len(payload), Reason: "Usage Report Trigger requires at least 2 bytes"}
	}
	return UsageReportTrigger{Flags: UsageReportTriggerFlags(binary.BigEndian.Uint16(payload[0:2]))}, nil
}

// VolumeMeasurement reports the octet counts actually observed, the
// measured counterpart of VolumeThreshold/VolumeQuota; same flag-gated
// total/uplink/downlink shape.
type VolumeMeasurement struct {
	TotalOctets    *uint64
	UplinkOctets   *uint64
	DownlinkOctets *uint64
}

func (v VolumeMeasurement) Marshal() Ie {
	return marshalVolume(TypeVolumeMeasurement, volumeFields(v))
}
func UnmarshalVolumeMeasurement(payload []byte) (VolumeMeasurement, error) {
	f, err := unmarshalVolume(TypeVolumeMeasurement, payload)
	return VolumeMeasurement(f), err
}

// DurationMeasurement reports the elapsed seconds of a URR's
// measurement period.
type DurationMeasurement struct{ Seconds uint32 }

func (d DurationMeasurement) Marshal() Ie {
	return marshalSeconds32(TypeDurationMeasurement, d.Seconds)
}
func UnmarshalDurationMeasurement(payload []byte) (DurationMeasurement, error) {
	v, err := unmarshalSeconds32(TypeDurationMeasurement, payload)
	return DurationMeasurement{Seconds: v}, err
}

// URSEQN is the per-URR sequence number that lets the CP function
// detect lost or reordered usage reports.
type URSEQN struct{ Value uint32 }

func (u URSEQN) Marshal() Ie {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, u.Value)
	return New(TypeURSEQN, b)
}

func UnmarshalURSEQN(payload []byte) (URSEQN, error) {
	if len(payload) != 4 {
		return URSEQN{}, &InvalidLengthError{Type: TypeURSEQN, Length: len(payload), Reason: "URSEQN must be exactly 4 bytes"}
	}
	return URSEQN{Value: binary.BigEndian.Uint32(payload)}, nil
}

// ReportingTriggersFlags configures which events should cause a URR to
// generate a usage report, the request-side counterpart of
// UsageReportTriggerFlags.
type ReportingTriggersFlags uint16

const (
	ReportingPERIO ReportingTriggersFlags = 1 << 0
	ReportingVOLTH ReportingTriggersFlags = 1 << 1
	ReportingTIMTH ReportingTriggersFlags = 1 << 2
	ReportingSTART ReportingTriggersFlags = 1 << 3
	ReportingSTOPT ReportingTriggersFlags = 1 << 4
)

func (f ReportingTriggersFlags) Has(mask ReportingTriggersFlags) bool { return f&mask == mask }

type ReportingTriggers struct{ Flags ReportingTriggersFlags }

func (r ReportingTriggers) Marshal() Ie {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(r.Flags))
	return New(TypeReportingTriggers, b)
}

func UnmarshalReportingTriggers(payload []byte) (ReportingTriggers, error) {
	if len(payload) < 2 {
		return ReportingTriggers{}, &InvalidLengthError{Type: TypeReportingTriggers, Length: len(payload), Reason: "Reporting Triggers requires at least 2 bytes"}
	}
	return ReportingTriggers{Flags: ReportingTriggersFlags(binary.BigEndian.Uint16(payload[0:2]))}, nil
}
