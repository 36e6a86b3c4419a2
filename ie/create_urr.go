package ie

// CreateURR is the grouped IE inside a Session Establishment/
// Modification Request that installs one Usage Reporting Rule. URRID,
// MeasurementMethod and ReportingTriggers are mandatory; the threshold/quota/monitoring
// fields configure when and what it reports.
type CreateURR struct {
	URRID                     URRID
	MeasurementMethod         MeasurementMethod
	ReportingTriggers         ReportingTriggers
	VolumeThreshold           *VolumeThreshold
	VolumeQuota               *VolumeQuota
	TimeThreshold             *TimeThreshold
	TimeQuota                 *TimeQuota
	MonitoringTime            *MonitoringTime
	SubsequentVolumeThreshold *SubsequentVolumeThreshold
	SubsequentTimeThreshold   *SubsequentTimeThreshold
	QuotaHoldingTime          *QuotaHoldingTime
	InactivityDetectionTime   *InactivityDetectionTime
	LinkedURRID               *LinkedURRID
}

func (c CreateURR) Marshal() Ie {
	var payload []byte
	payload = append(payload, c.URRID.Marshal().Marshal()...)
	payload = append(payload, c.MeasurementMethod.Marshal().Marshal()...)
	payload = append(payload, c.ReportingTriggers.Marshal().Marshal()...)
	appendOpt := func(m interface{ Marshal() Ie }) {
		if m != nil {
			payload = append(payload, m.Marshal().Marshal()...)
		}
	}
	if c.VolumeThreshold != nil {
		appendOpt(c.VolumeThreshold)
	}
	if c.VolumeQuota != nil {
		appendOpt(c.VolumeQuota)
	}
	if c.TimeThreshold != nil {
		appendOpt(c.TimeThreshold)
	}
	if c.TimeQuota != nil {
		appendOpt(c.TimeQuota)
	}
	if c.MonitoringTime != nil {
		appendOpt(c.MonitoringTime)
	}
	if c.SubsequentVolumeThreshold != nil {
		appendOpt(c.SubsequentVolumeThreshold)
	}
	if c.SubsequentTimeThreshold != nil {
		appendOpt(c.SubsequentTimeThreshold)
	}
	if c.QuotaHoldingTime != nil {
		appendOpt(c.QuotaHoldingTime)
	}
	if c.InactivityDetectionTime != nil {
		appendOpt(c.InactivityDetectionTime)
	}
	if c.LinkedURRID != nil {
		appendOpt(c.LinkedURRID)
	}
	return New(TypeCreateURR, payload)
}

func UnmarshalCreateURR(payload []byte) (CreateURR, error) {
	ies, err := All(payload)
	if err != nil {
		return CreateURR{}, err
	}
	var out CreateURR
	var haveURRID, haveMethod, haveTriggers bool
	for _, i := range ies {
		switch i.Type {
		case TypeURRID:
			v, err := UnmarshalURRID(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.URRID = v
			haveURRID = true
		case TypeMeasurementMethod:
			v, err := UnmarshalMeasurementMethod(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.MeasurementMethod = v
			haveMethod = true
		case TypeReportingTriggers:
			v, err := UnmarshalReportingTriggers(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.ReportingTriggers = v
			haveTriggers = true
		case TypeVolumeThreshold:
			v, err := UnmarshalVolumeThreshold(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.VolumeThreshold = &v
		case TypeVolumeQuota:
			v, err := UnmarshalVolumeQuota(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.VolumeQuota = &v
		case TypeTimeThreshold:
			v, err := UnmarshalTimeThreshold(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.TimeThreshold = &v
		case TypeTimeQuota:
			v, err := UnmarshalTimeQuota(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.TimeQuota = &v
		case TypeMonitoringTime:
			v, err := UnmarshalMonitoringTime(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.MonitoringTime = &v
		case TypeSubsequentVolumeThreshold:
			v, err := UnmarshalSubsequentVolumeThreshold(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.SubsequentVolumeThreshold = &v
		case TypeSubsequentTimeThreshold:
			v, err := UnmarshalSubsequentTimeThreshold(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.SubsequentTimeThreshold = &v
		case TypeQuotaHoldingTime:
			v, err := UnmarshalQuotaHoldingTime(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.QuotaHoldingTime = &v
		case TypeInactivityDetectionTime:
			v, err := UnmarshalInactivityDetectionTime(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.InactivityDetectionTime = &v
		case TypeLinkedURRID:
			v, err := UnmarshalLinkedURRID(i.Payload)
			if err != nil {
				return CreateURR{}, err
			}
			out.LinkedURRID = &v
		}
	}
	if !haveURRID {
		return CreateURR{}, &MissingMandatoryIeError{Container: "CreateURR", Missing: TypeURRID}
	}
	if !haveMethod {
		return CreateURR{}, &MissingMandatoryIeError{Container: "CreateURR", Missing: TypeMeasurementMethod}
	}
	if !haveTriggers {
		return CreateURR{}, &MissingMandatoryIeError{Container: "CreateURR", Missing: TypeReportingTriggers}
	}
	return out, nil
}

// UpdateURR partially updates an existing URR; only URRID is mandatory.
type UpdateURR struct {
	URRID             URRID
	MeasurementMethod *MeasurementMethod
	ReportingTriggers *ReportingTriggers
	VolumeThreshold   *VolumeThreshold
	VolumeQuota       *VolumeQuota
	TimeThreshold     *TimeThreshold
	TimeQuota         *TimeQuota
}

func (u UpdateURR) Marshal() Ie {
	var payload []byte
	payload = append(payload, u.URRID.Marshal().Marshal()...)
	if u.MeasurementMethod != nil {
		payload = append(payload, u.MeasurementMethod.Marshal().Marshal()...)
	}
	if u.ReportingTriggers != nil {
		payload = append(payload, u.ReportingTriggers.Marshal().Marshal()...)
	}
	if u.VolumeThreshold != nil {
		payload = append(payload, u.VolumeThreshold.Marshal().Marshal()...)
	}
	if u.VolumeQuota != nil {
		payload = append(payload, u.VolumeQuota.Marshal().Marshal()...)
	}
	if u.TimeThreshold != nil {
		payload = append(payload, u.TimeThreshold.Marshal().Marshal()...)
	}
	if u.TimeQuota != nil {
		payload = append(payload, u.TimeQuota.Marshal().Marshal()...)
	}
	return New(TypeUpdateURR, payload)
}

func UnmarshalUpdateURR(payload []byte) (UpdateURR, error) {
	ies, err := All(payload)
	if err != nil {
		return UpdateURR{}, err
	}
	var out UpdateURR
	haveURRID := false
	for _, i := range ies {
		switch i.Type {
		case TypeURRID:
			v, err := UnmarshalURRID(i.Payload)
			if err != nil {
				return UpdateURR{}, err
			}
			out.URRID = v
			haveURRID = true
		case TypeMeasurementMethod:
			v, err := UnmarshalMeasurementMethod(i.Payload)
			if err != nil {
				return UpdateURR{}, err
			}
			out.MeasurementMethod = &v
		case TypeReportingTriggers:
			v, err := UnmarshalReportingTriggers(i.Payload)
			if err != nil {
				return UpdateURR{}, err
			}
			out.ReportingTriggers = &v
		case TypeVolumeThreshold:
			v, err := UnmarshalVolumeThreshold(i.Payload)
			if err != nil {
				return UpdateURR{}, err
			}
			out.VolumeThreshold = &v
		case TypeVolumeQuota:
			v, err := UnmarshalVolumeQuota(i.Payload)
			if err != nil {
				return UpdateURR{}, err
			}
			out.VolumeQuota = &v
		case TypeTimeThreshold:
			v, err := UnmarshalTimeThreshold(i.Payload)
			if err != nil {
				return UpdateURR{}, err
			}
			out.TimeThreshold = &v
		case TypeTimeQuota:
			v, err := UnmarshalTimeQuota(i.Payload)
			if err != nil {
				return UpdateURR{}, err
			}
			out.TimeQuota = &v
		}
	}
	if !haveURRID {
		return UpdateURR{}, &MissingMandatoryIeError{Container: "UpdateURR", Missing: TypeURRID}
	}
	return out, nil
}
