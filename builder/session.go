package builder

import (
	"net"

	"github.com/your-org/pfcp/ie"
	"github.com/your-org/pfcp/message"
)

// SessionEstablishmentBuilder assembles a SessionEstablishmentRequest:
// the CP function's NodeID and F-SEID, plus every rule the session
// starts with.
type SessionEstablishmentBuilder struct {
	e          errs
	seqNum     uint32
	nodeID     *ie.NodeID
	fseid      *ie.FSEID
	createPDRs []ie.CreatePDR
	createFARs []ie.CreateFAR
	createQERs []ie.CreateQER
	createURRs []ie.CreateURR
}

// NewSessionEstablishment starts a session establishment builder for
// sequence number seq.
func NewSessionEstablishment(seq uint32) *SessionEstablishmentBuilder {
	return &SessionEstablishmentBuilder{e: errs{builder: "SessionEstablishment"}, seqNum: seq}
}

// FromNodeIPv4 identifies the requesting CP function by IPv4 address.
func (b *SessionEstablishmentBuilder) FromNodeIPv4(addr net.IP) *SessionEstablishmentBuilder {
	n := ie.NodeID{Type: ie.NodeIDTypeIPv4, IPv4: addr}
	b.nodeID = &n
	return b
}

// FromNodeFQDN identifies the requesting CP function by FQDN. The value
// must be at most 255 octets, the label-sequence limit a Node ID of
// type FQDN carries on the wire.
func (b *SessionEstablishmentBuilder) FromNodeFQDN(fqdn string) *SessionEstablishmentBuilder {
	if len(fqdn) > 255 {
		b.e.add("FromNodeFQDN", "FQDN node ID must be at most 255 octets")
	}
	n := ie.NodeID{Type: ie.NodeIDTypeFQDN, FQDN: fqdn}
	b.nodeID = &n
	return b
}

// WithFSEID sets the CP function's F-SEID for this session.
func (b *SessionEstablishmentBuilder) WithFSEID(seid uint64, addr net.IP) *SessionEstablishmentBuilder {
	f := ie.FSEID{SEID: seid}
	if v4 := addr.To4(); v4 != nil {
		f.IPv4 = v4
	} else {
		f.IPv6 = addr
	}
	b.fseid = &f
	return b
}

func (b *SessionEstablishmentBuilder) AddPDR(p ie.CreatePDR) *SessionEstablishmentBuilder {
	b.createPDRs = append(b.createPDRs, p)
	return b
}

func (b *SessionEstablishmentBuilder) AddFAR(f ie.CreateFAR) *SessionEstablishmentBuilder {
	b.createFARs = append(b.createFARs, f)
	return b
}

func (b *SessionEstablishmentBuilder) AddQER(q ie.CreateQER) *SessionEstablishmentBuilder {
	b.createQERs = append(b.createQERs, q)
	return b
}

func (b *SessionEstablishmentBuilder) AddURR(u ie.CreateURR) *SessionEstablishmentBuilder {
	b.createURRs = append(b.createURRs, u)
	return b
}

// Build validates that a NodeID, F-SEID, and at least one PDR/FAR pair
// are present, per §4.5's "a session is useless without at least one
// detection-and-forwarding pair" rule.
func (b *SessionEstablishmentBuilder) Build() (*message.SessionEstablishmentRequest, error) {
	if b.nodeID == nil {
		b.e.add("FromNodeIPv4/FromNodeFQDN", "Node ID is mandatory")
	}
	if b.fseid == nil {
		b.e.add("WithFSEID", "F-SEID is mandatory")
	}
	if len(b.createPDRs) == 0 {
		b.e.add("AddPDR", "at least one PDR is required to establish a session")
	}
	if len(b.createFARs) == 0 {
		b.e.add("AddFAR", "at least one FAR is required to establish a session")
	}
	if err := b.e.err(); err != nil {
		return nil, err
	}

	return &message.SessionEstablishmentRequest{
		SeqNum:     b.seqNum,
		NodeID:     *b.nodeID,
		FSEID:      *b.fseid,
		CreatePDRs: b.createPDRs,
		CreateFARs: b.createFARs,
		CreateQERs: b.createQERs,
		CreateURRs: b.createURRs,
	}, nil
}
