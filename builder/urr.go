package builder

import "github.com/your-org/pfcp/ie"

// URRBuilder assembles a CreateURR: a URR ID, measurement method, and
// reporting triggers, plus the optional threshold/quota/monitoring
// fields that shape when it fires.
type URRBuilder struct {
	e                 errs
	urrID             *uint32
	measurementMethod *ie.MeasurementMethodFlags
	reportingTriggers *ie.ReportingTriggersFlags
	volumeThreshold   *ie.VolumeThreshold
	volumeQuota       *ie.VolumeQuota
	timeThreshold     *ie.TimeThreshold
	timeQuota         *ie.TimeQuota
	linkedURRID       *uint32
}

// NewURR starts a URR builder.
func NewURR() *URRBuilder {
	return &URRBuilder{e: errs{builder: "URR"}}
}

func (b *URRBuilder) ID(id uint32) *URRBuilder { b.urrID = &id; return b }

func (b *URRBuilder) Measures(m ie.MeasurementMethodFlags) *URRBuilder {
	b.measurementMethod = &m
	return b
}

func (b *URRBuilder) TriggersOn(t ie.ReportingTriggersFlags) *URRBuilder {
	b.reportingTriggers = &t
	return b
}

func (b *URRBuilder) WithVolumeThreshold(v ie.VolumeThreshold) *URRBuilder {
	b.volumeThreshold = &v
	return b
}

func (b *URRBuilder) WithVolumeQuota(v ie.VolumeQuota) *URRBuilder {
	b.volumeQuota = &v
	return b
}

func (b *URRBuilder) WithTimeThreshold(t ie.TimeThreshold) *URRBuilder {
	b.timeThreshold = &t
	return b
}

func (b *URRBuilder) WithTimeQuota(t ie.TimeQuota) *URRBuilder {
	b.timeQuota = &t
	return b
}

func (b *URRBuilder) LinkedTo(urrID uint32) *URRBuilder { b.linkedURRID = &urrID; return b }

// Build validates the accumulated fields and returns a CreateURR.
func (b *URRBuilder) Build() (ie.CreateURR, error) {
	if b.urrID == nil {
		b.e.add("ID", "URR ID is mandatory")
	}
	if b.measurementMethod == nil {
		b.e.add("Measures", "Measurement Method is mandatory")
	}
	if b.reportingTriggers == nil {
		b.e.add("TriggersOn", "Reporting Triggers is mandatory")
	}
	if err := b.e.err(); err != nil {
		return ie.CreateURR{}, err
	}

	out := ie.CreateURR{
		URRID:             ie.URRID{Value: *b.urrID},
		MeasurementMethod: ie.MeasurementMethod{Flags: *b.measurementMethod},
		ReportingTriggers: ie.ReportingTriggers{Flags: *b.reportingTriggers},
		VolumeThreshold:   b.volumeThreshold,
		VolumeQuota:       b.volumeQuota,
		TimeThreshold:     b.timeThreshold,
		TimeQuota:         b.timeQuota,
	}
	if b.linkedURRID != nil {
		out.LinkedURRID = &ie.LinkedURRID{Value: *b.linkedURRID}
	}
	return out, nil
}
