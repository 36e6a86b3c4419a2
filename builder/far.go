package builder

import "github.com/your-org/pfcp/ie"

// FARBuilder assembles a CreateFAR: a FAR ID, the actions to apply, and
// (when Apply Action includes FORW) the forwarding parameters.
type FARBuilder struct {
	e                    errs
	farID                *uint32
	actions              ie.ApplyActionFlags
	destinationInterface *ie.InterfaceValue
	outerHeaderCreation  *ie.OuterHeaderCreation
	forwardingPolicy     *ie.ForwardingPolicy
	barID                *uint8
}

// NewFAR starts a FAR builder.
func NewFAR() *FARBuilder {
	return &FARBuilder{e: errs{builder: "FAR"}}
}

func (b *FARBuilder) ID(id uint32) *FARBuilder { b.farID = &id; return b }

func (b *FARBuilder) Apply(action ie.ApplyActionFlags) *FARBuilder {
	b.actions |= action
	return b
}

func (b *FARBuilder) ForwardTo(v ie.InterfaceValue) *FARBuilder {
	b.destinationInterface = &v
	return b
}

func (b *FARBuilder) WithOuterHeaderCreation(o ie.OuterHeaderCreation) *FARBuilder {
	b.outerHeaderCreation = &o
	return b
}

func (b *FARBuilder) WithForwardingPolicy(p ie.ForwardingPolicy) *FARBuilder {
	b.forwardingPolicy = &p
	return b
}

// WithBAR attaches the Buffering Action Rule ID governing packets this
// FAR buffers. Required whenever Apply includes ApplyActionBuffer.
func (b *FARBuilder) WithBAR(id uint8) *FARBuilder {
	b.barID = &id
	return b
}

// Build validates the accumulated fields and returns a CreateFAR.
// ForwardTo is required whenever Apply includes ApplyActionForward,
// matching the forwarding-parameters-require-destination-interface rule.
// WithBAR is required whenever Apply includes ApplyActionBuffer.
func (b *FARBuilder) Build() (ie.CreateFAR, error) {
	if b.farID == nil {
		b.e.add("ID", "FAR ID is mandatory")
	}
	if b.actions == 0 {
		b.e.add("Apply", "at least one action is mandatory")
	}
	if b.actions.Has(ie.ApplyActionForward) && b.destinationInterface == nil {
		b.e.add("ForwardTo", "Apply Action FORW requires a destination interface")
	}
	if b.actions.Has(ie.ApplyActionBuffer) && b.barID == nil {
		b.e.add("WithBAR", "Apply Action BUFF requires a BAR ID")
	}
	if err := b.e.err(); err != nil {
		return ie.CreateFAR{}, err
	}

	out := ie.CreateFAR{
		FARID:       ie.FARID{Value: *b.farID},
		ApplyAction: ie.ApplyAction{Flags: b.actions},
	}
	if b.destinationInterface != nil {
		out.ForwardingParameters = &ie.ForwardingParameters{
			DestinationInterface: ie.DestinationInterface{Value: *b.destinationInterface},
			OuterHeaderCreation:   b.outerHeaderCreation,
			ForwardingPolicy:      b.forwardingPolicy,
		}
	}
	if b.barID != nil {
		out.BARID = &ie.BARID{Value: *b.barID}
	}
	return out, nil
}
