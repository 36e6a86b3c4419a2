package ie

// CreateBAR is the grouped IE inside a Session Establishment Request
// that installs one Buffering Action Rule: its ID plus optional
// downlink-data-notification delay and suggested buffering packet
// count. BARID is the only mandatory child.
type CreateBAR struct {
	BARID                          BARID
	DownlinkDataNotificationDelay  *DownlinkDataNotificationDelay
	SuggestedBufferingPacketsCount *SuggestedBufferingPacketsCount
}

func (c CreateBAR) Marshal() Ie {
	var payload []byte
	payload = append(payload, c.BARID.Marshal().Marshal()...)
	if c.DownlinkDataNotificationDelay != nil {
		payload = append(payload, c.DownlinkDataNotificationDelay.Marshal().Marshal()...)
	}
	if c.SuggestedBufferingPacketsCount != nil {
		payload = append(payload, c.SuggestedBufferingPacketsCount.Marshal().Marshal()...)
	}
	return New(TypeCreateBAR, payload)
}

func UnmarshalCreateBAR(payload []byte) (CreateBAR, error) {
	ies, err := All(payload)
	if err != nil {
		return CreateBAR{}, err
	}
	var out CreateBAR
	haveBARID := false
	for _, i := range ies {
		switch i.Type {
		case TypeBARID:
			v, err := UnmarshalBARID(i.Payload)
			if err != nil {
				return CreateBAR{}, err
			}
			out.BARID = v
			haveBARID = true
		case TypeDownlinkDataNotificationDelay:
			v, err := UnmarshalDownlinkDataNotificationDelay(i.Payload)
			if err != nil {
				return CreateBAR{}, err
			}
			out.DownlinkDataNotificationDelay = &v
		case TypeSuggestedBufferingPacketsCount:
			v, err := UnmarshalSuggestedBufferingPacketsCount(i.Payload)
			if err != nil {
				return CreateBAR{}, err
			}
			out.SuggestedBufferingPacketsCount = &v
		}
	}
	if !haveBARID {
		return CreateBAR{}, &MissingMandatoryIeError{Container: "CreateBAR", Missing: TypeBARID}
	}
	return out, nil
}

// UpdateBAR partially updates an existing BAR; only BARID is mandatory.
type UpdateBAR struct {
	BARID                          BARID
	DownlinkDataNotificationDelay  *DownlinkDataNotificationDelay
	SuggestedBufferingPacketsCount *SuggestedBufferingPacketsCount
}

func (u UpdateBAR) Marshal() Ie {
	var payload []byte
	payload = append(payload, u.BARID.Marshal().Marshal()...)
	if u.DownlinkDataNotificationDelay != nil {
		payload = append(payload, u.DownlinkDataNotificationDelay.Marshal().Marshal()...)
	}
	if u.SuggestedBufferingPacketsCount != nil {
		payload = append(payload, u.SuggestedBufferingPacketsCount.Marshal().Marshal()...)
	}
	return New(TypeUpdateBARSessionModification, payload)
}

func UnmarshalUpdateBAR(payload []byte) (UpdateBAR, error) {
	ies, err := All(payload)
	if err != nil {
		return UpdateBAR{}, err
	}
	var out UpdateBAR
	haveBARID := false
	for _, i := range ies {
		switch i.Type {
		case TypeBARID:
			v, err := UnmarshalBARID(i.Payload)
			if err != nil {
				return UpdateBAR{}, err
			}
			out.BARID = v
			haveBARID = true
		case TypeDownlinkDataNotificationDelay:
			v, err := UnmarshalDownlinkDataNotificationDelay(i.Payload)
			if err != nil {
				return UpdateBAR{}, err
			}
			out.DownlinkDataNotificationDelay = &v
		case TypeSuggestedBufferingPacketsCount:
			v, err := UnmarshalSuggestedBufferingPacketsCount(i.Payload)
			if err != nil {
				return UpdateBAR{}, err
			}
			out.SuggestedBufferingPacketsCount = &v
		}
	}
	if !haveBARID {
		return UpdateBAR{}, &MissingMandatoryIeError{Container: "UpdateBAR", Missing: TypeBARID}
	}
	return out, nil
}

// DownlinkDataNotificationDelay tells the UPF how long to delay before
// notifying the CP function of buffered downlink data.
type DownlinkDataNotificationDelay struct {
	DelayMillis uint16 // encoded on the wire as 50ms units in a single octet
}

func (d DownlinkDataNotificationDelay) Marshal() Ie {
	units := d.DelayMillis / 50
	if units > 255 {
		units = 255
	}
	return New(TypeDownlinkDataNotificationDelay, []byte{byte(units)})
}

func UnmarshalDownlinkDataNotificationDelay(payload []byte) (DownlinkDataNotificationDelay, error) {
	if len(payload) != 1 {
		return DownlinkDataNotificationDelay{}, &InvalidLengthError{Type: TypeDownlinkDataNotificationDelay, Length: len(payload), Reason: "must be exactly 1 byte"}
	}
	return DownlinkDataNotificationDelay{DelayMillis: uint16(payload[0]) * 50}, nil
}

// SuggestedBufferingPacketsCount caps how many downlink packets the UPF
// should buffer per PDR while the UE is paged.
type SuggestedBufferingPacketsCount struct {
	Count uint8
}

func (s SuggestedBufferingPacketsCount) Marshal() Ie {
	return New(TypeSuggestedBufferingPacketsCount, []byte{s.Count})
}

func UnmarshalSuggestedBufferingPacketsCount(payload []byte) (SuggestedBufferingPacketsCount, error) {
	if len(payload) != 1 {
		return SuggestedBufferingPacketsCount{}, &InvalidLengthError{Type: TypeSuggestedBufferingPacketsCount, Length: len(payload), Reason: "must be exactly 1 byte"}
	}
	return SuggestedBufferingPacketsCount{Count: payload[0]}, nil
}
