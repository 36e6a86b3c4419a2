package builder

import "github.com/your-org/pfcp/ie"

// QERBuilder assembles a CreateQER: a QER ID and gate status, plus the
// optional rate limits and QoS flow identifier.
type QERBuilder struct {
	e        errs
	qerID    *uint32
	uplink   *ie.GateStatusValue
	downlink *ie.GateStatusValue
	mbr      *ie.MBR
	gbr      *ie.GBR
	qfi      *uint8
	rqi      bool
}

// NewQER starts a QER builder.
func NewQER() *QERBuilder {
	return &QERBuilder{e: errs{builder: "QER"}}
}

func (b *QERBuilder) ID(id uint32) *QERBuilder { b.qerID = &id; return b }

// Gate sets both directions' gate state in one call.
func (b *QERBuilder) Gate(uplink, downlink ie.GateStatusValue) *QERBuilder {
	b.uplink = &uplink
	b.downlink = &downlink
	return b
}

func (b *QERBuilder) WithMBR(m ie.MBR) *QERBuilder { b.mbr = &m; return b }

func (b *QERBuilder) WithGBR(g ie.GBR) *QERBuilder { b.gbr = &g; return b }

func (b *QERBuilder) WithQFI(qfi uint8) *QERBuilder { b.qfi = &qfi; return b }

func (b *QERBuilder) WithRQI() *QERBuilder { b.rqi = true; return b }

// Build validates the accumulated fields and returns a CreateQER.
func (b *QERBuilder) Build() (ie.CreateQER, error) {
	if b.qerID == nil {
		b.e.add("ID", "QER ID is mandatory")
	}
	if b.uplink == nil || b.downlink == nil {
		b.e.add("Gate", "Gate Status is mandatory")
	}
	if b.uplink != nil && *b.uplink != ie.GateOpen && *b.uplink != ie.GateClosed {
		b.e.add("Gate", "uplink gate status must be OPEN or CLOSED")
	}
	if b.downlink != nil && *b.downlink != ie.GateOpen && *b.downlink != ie.GateClosed {
		b.e.add("Gate", "downlink gate status must be OPEN or CLOSED")
	}
	if err := b.e.err(); err != nil {
		return ie.CreateQER{}, err
	}

	out := ie.CreateQER{
		QERID:      ie.QERID{Value: *b.qerID},
		GateStatus: ie.GateStatus{Uplink: *b.uplink, Downlink: *b.downlink},
		MBR:        b.mbr,
		GBR:        b.gbr,
	}
	if b.qfi != nil {
		out.QFI = &ie.QFI{Value: *b.qfi}
	}
	if b.rqi {
		out.RQI = &ie.RQI{}
	}
	return out, nil
}
