package builder

import "github.com/your-org/pfcp/ie"

// PDRBuilder assembles a CreatePDR: a PDR ID, precedence, and the PDI
// describing what traffic it matches, plus the optional FAR/QER/URR
// associations and outer-header-removal flag.
type PDRBuilder struct {
	e                  errs
	pdrID              *uint16
	precedence         *uint32
	sourceInterface    *ie.InterfaceValue
	localFTEID         *ie.FTEID
	networkInstance    *ie.NetworkInstance
	ueIPAddress        *ie.UEIPAddress
	outerHeaderRemoval *ie.OuterHeaderRemoval
	farID              *uint32
	qerIDs             []uint32
	urrIDs             []uint32
}

// NewPDR starts a PDR builder.
func NewPDR() *PDRBuilder {
	return &PDRBuilder{e: errs{builder: "PDR"}}
}

func (b *PDRBuilder) ID(id uint16) *PDRBuilder { b.pdrID = &id; return b }

func (b *PDRBuilder) Precedence(p uint32) *PDRBuilder { b.precedence = &p; return b }

// FromInterface sets the PDI's Source Interface, the only mandatory PDI
// field.
func (b *PDRBuilder) FromInterface(v ie.InterfaceValue) *PDRBuilder {
	b.sourceInterface = &v
	return b
}

// LocalFTEID sets the PDI's local F-TEID. When f.Choose is set, f must
// not also carry a literal IPv4/IPv6 address — Build rejects that
// combination rather than silently dropping the address at marshal time.
func (b *PDRBuilder) LocalFTEID(f ie.FTEID) *PDRBuilder { b.localFTEID = &f; return b }

func (b *PDRBuilder) NetworkInstance(n ie.NetworkInstance) *PDRBuilder {
	b.networkInstance = &n
	return b
}

func (b *PDRBuilder) UEIPAddress(u ie.UEIPAddress) *PDRBuilder { b.ueIPAddress = &u; return b }

func (b *PDRBuilder) RemoveOuterHeader(o ie.OuterHeaderRemoval) *PDRBuilder {
	b.outerHeaderRemoval = &o
	return b
}

func (b *PDRBuilder) ForwardsTo(farID uint32) *PDRBuilder { b.farID = &farID; return b }

func (b *PDRBuilder) MeasuresWith(urrID uint32) *PDRBuilder {
	b.urrIDs = append(b.urrIDs, urrID)
	return b
}

func (b *PDRBuilder) EnforcesWith(qerID uint32) *PDRBuilder {
	b.qerIDs = append(b.qerIDs, qerID)
	return b
}

// Build validates the accumulated fields and returns a CreatePDR, or an
// error if a mandatory field is missing or a CHOOSE F-TEID also carries an
// address: the *ValidationError itself when there is one problem, or one
// combined error listing every message when there are several.
func (b *PDRBuilder) Build() (ie.CreatePDR, error) {
	if b.pdrID == nil {
		b.e.add("ID", "PDR ID is mandatory")
	}
	if b.precedence == nil {
		b.e.add("Precedence", "Precedence is mandatory")
	}
	if b.sourceInterface == nil {
		b.e.add("FromInterface", "PDI Source Interface is mandatory")
	}
	if b.localFTEID != nil && b.localFTEID.Choose && (b.localFTEID.IPv4 != nil || b.localFTEID.IPv6 != nil) {
		b.e.add("LocalFTEID", "F-TEID with CHOOSE set must not also carry a literal IPv4/IPv6 address")
	}
	if err := b.e.err(); err != nil {
		return ie.CreatePDR{}, err
	}

	pdi := ie.PDI{
		SourceInterface: ie.SourceInterface{Value: *b.sourceInterface},
		LocalFTEID:      b.localFTEID,
		NetworkInstance: b.networkInstance,
		UEIPAddress:     b.ueIPAddress,
	}
	out := ie.CreatePDR{
		PDRID:              ie.PDRID{Value: *b.pdrID},
		Precedence:         ie.Precedence{Value: *b.precedence},
		PDI:                pdi,
		OuterHeaderRemoval: b.outerHeaderRemoval,
	}
	if b.farID != nil {
		farID := ie.FARID{Value: *b.farID}
		out.FARID = &farID
	}
	for _, q := range b.qerIDs {
		out.QERIDs = append(out.QERIDs, ie.QERID{Value: q})
	}
	for _, u := range b.urrIDs {
		out.URRIDs = append(out.URRIDs, ie.URRID{Value: u})
	}
	return out, nil
}
