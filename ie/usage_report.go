package ie

// UsageReport is the grouped IE reporting one URR's accumulated usage.
// The same struct is reused across the three contexts 29.244 assigns
// distinct type codes to (Session Modification/Deletion Response,
// Session Report Request) — UnmarshalUsageReport takes the wire type so
// callers can round-trip whichever variant they decoded.
type UsageReport struct {
	URRID                URRID
	URSEQN               URSEQN
	UsageReportTrigger   UsageReportTrigger
	StartTime            *StartTime
	EndTime              *EndTime
	VolumeMeasurement    *VolumeMeasurement
	DurationMeasurement  *DurationMeasurement
}

func (u UsageReport) marshalAs(t IeType) Ie {
	var payload []byte
	payload = append(payload, u.URRID.Marshal().Marshal()...)
	payload = append(payload, u.URSEQN.Marshal().Marshal()...)
	payload = append(payload, u.UsageReportTrigger.Marshal().Marshal()...)
	if u.StartTime != nil {
		payload = append(payload, u.StartTime.Marshal().Marshal()...)
	}
	if u.EndTime != nil {
		payload = append(payload, u.EndTime.Marshal().Marshal()...)
	}
	if u.VolumeMeasurement != nil {
		payload = append(payload, u.VolumeMeasurement.Marshal().Marshal()...)
	}
	if u.DurationMeasurement != nil {
		payload = append(payload, u.DurationMeasurement.Marshal().Marshal()...)
	}
	return New(t, payload)
}

// MarshalForSessionModificationResponse encodes u with the type code
// used inside a Session Modification Response.
func (u UsageReport) MarshalForSessionModificationResponse() Ie {
	return u.marshalAs(TypeUsageReportSessionModification)
}

// MarshalForSessionDeletionResponse encodes u with the type code used
// inside a Session Deletion Response.
func (u UsageReport) MarshalForSessionDeletionResponse() Ie {
	return u.marshalAs(TypeUsageReportSessionDeletion)
}

// MarshalForSessionReport encodes u with the type code used inside a
// Session Report Request.
func (u UsageReport) MarshalForSessionReport() Ie {
	return u.marshalAs(TypeUsageReportSessionReport)
}

func UnmarshalUsageReport(payload []byte) (UsageReport, error) {
	ies, err := All(payload)
	if err != nil {
		return UsageReport{}, err
	}
	var out UsageReport
	var haveURRID, haveSeqn, haveTrigger bool
	for _, i := range ies {
		switch i.Type {
		case TypeURRID:
			v, err := UnmarshalURRID(i.Payload)
			if err != nil {
				return UsageReport{}, err
			}
			out.URRID = v
			haveURRID = true
		case TypeURSEQN:
			v, err := UnmarshalURSEQN(i.Payload)
			if err != nil {
				return UsageReport{}, err
			}
			out.URSEQN = v
			haveSeqn = true
		case TypeUsageReportTrigger:
			v, err := UnmarshalUsageReportTrigger(i.Payload)
			if err != nil {
				return UsageReport{}, err
			}
			out.UsageReportTrigger = v
			haveTrigger = true
		case TypeStartTime:
			v, err := UnmarshalStartTime(i.Payload)
			if err != nil {
				return UsageReport{}, err
			}
			out.StartTime = &v
		case TypeEndTime:
			v, err := UnmarshalEndTime(i.Payload)
			if err != nil {
				return UsageReport{}, err
			}
			out.EndTime = &v
		case TypeVolumeMeasurement:
			v, err := UnmarshalVolumeMeasurement(i.Payload)
			if err != nil {
				return UsageReport{}, err
			}
			out.VolumeMeasurement = &v
		case TypeDurationMeasurement:
			v, err := UnmarshalDurationMeasurement(i.Payload)
			if err != nil {
				return UsageReport{}, err
			}
			out.DurationMeasurement = &v
		}
	}
	if !haveURRID {
		return UsageReport{}, &MissingMandatoryIeError{Container: "UsageReport", Missing: TypeURRID}
	}
	if !haveSeqn {
		return UsageReport{}, &MissingMandatoryIeError{Container: "UsageReport", Missing: TypeURSEQN}
	}
	if !haveTrigger {
		return UsageReport{}, &MissingMandatoryIeError{Container: "UsageReport", Missing: TypeUsageReportTrigger}
	}
	return out, nil
}

// DownlinkDataReport is the grouped IE reporting buffered downlink data
// arrival for a PDR, carried in a Session Report Request.
type DownlinkDataReport struct {
	PDRID PDRID
}

func (d DownlinkDataReport) Marshal() Ie {
	return New(TypeDownlinkDataReport, d.PDRID.Marshal().Marshal())
}

func UnmarshalDownlinkDataReport(payload []byte) (DownlinkDataReport, error) {
	id, ok, err := Find(payload, TypePDRID)
	if err != nil {
		return DownlinkDataReport{}, err
	}
	if !ok {
		return DownlinkDataReport{}, &MissingMandatoryIeError{Container: "DownlinkDataReport", Missing: TypePDRID}
	}
	v, err := UnmarshalPDRID(id.Payload)
	return DownlinkDataReport{PDRID: v}, err
}

// ErrorIndicationReport is the grouped IE reporting a GTP-U error
// indication received from a remote peer, carried in a Session Report
// Request.
type ErrorIndicationReport struct {
	RemoteFTEID FTEID
}

func (e ErrorIndicationReport) Marshal() Ie {
	return New(TypeErrorIndicationReport, e.RemoteFTEID.Marshal().Marshal())
}

func UnmarshalErrorIndicationReport(payload []byte) (ErrorIndicationReport, error) {
	id, ok, err := Find(payload, TypeFTEID)
	if err != nil {
		return ErrorIndicationReport{}, err
	}
	if !ok {
		return ErrorIndicationReport{}, &MissingMandatoryIeError{Container: "ErrorIndicationReport", Missing: TypeFTEID}
	}
	v, err := UnmarshalFTEID(id.Payload)
	return ErrorIndicationReport{RemoteFTEID: v}, err
}
