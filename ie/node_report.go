package ie

// NodeReportTypeFlags selects what a Node Report Request carries: a
// user-plane path failure or restoration.
type NodeReportTypeFlags uint8

const (
	NodeReportUPFR NodeReportTypeFlags = 1 << 0 // user plane path failure report
	NodeReportUPRR NodeReportTypeFlags = 1 << 1 // user plane path recovery report
)

func (f NodeReportTypeFlags) Has(mask NodeReportTypeFlags) bool { return f&mask == mask }

type NodeReportType struct{ Flags NodeReportTypeFlags }

func (n NodeReportType) Marshal() Ie { return New(TypeNodeReportType, []byte{byte(n.Flags)}) }
func UnmarshalNodeReportType(payload []byte) (NodeReportType, error) {
	if len(payload) < 1 {
		return NodeReportType{}, &InvalidLengthError{Type: TypeNodeReportType, Length: len(payload), Reason: "Node Report Type requires at least 1 byte"}
	}
	return NodeReportType{Flags: NodeReportTypeFlags(payload[0])}, nil
}

// UserPlanePathFailureReport names the remote GTP-U peer(s) a UPF has
// lost its path to, carried in a Node Report Request.
type UserPlanePathFailureReport struct {
	RemoteGTPUPeers []RemoteGTPUPeer
}

func (u UserPlanePathFailureReport) Marshal() Ie {
	var payload []byte
	for _, p := range u.RemoteGTPUPeers {
		payload = append(payload, p.Marshal().Marshal()...)
	}
	return New(TypeUserPlanePathFailureReport, payload)
}

func UnmarshalUserPlanePathFailureReport(payload []byte) (UserPlanePathFailureReport, error) {
	ies, err := FindAll(payload, TypeRemoteGTPUPeer)
	if err != nil {
		return UserPlanePathFailureReport{}, err
	}
	var out UserPlanePathFailureReport
	for _, i := range ies {
		v, err := UnmarshalRemoteGTPUPeer(i.Payload)
		if err != nil {
			return UserPlanePathFailureReport{}, err
		}
		out.RemoteGTPUPeers = append(out.RemoteGTPUPeers, v)
	}
	return out, nil
}

// GracefulReleasePeriod tells a peer how long to keep serving an
// association before releasing it, encoded as a timer value (units in
// the high 3 bits, value in the low 5, per the GPRS Timer format).
type GracefulReleasePeriod struct {
	Seconds uint32
}

func (g GracefulReleasePeriod) Marshal() Ie {
	// Unit 0 = 2 seconds, capped to what a single octet can express.
	units := g.Seconds / 2
	if units > 0x1F {
		units = 0x1F
	}
	return New(TypeGracefulReleasePeriod, []byte{byte(units)})
}

func UnmarshalGracefulReleasePeriod(payload []byte) (GracefulReleasePeriod, error) {
	if len(payload) != 1 {
		return GracefulReleasePeriod{}, &InvalidLengthError{Type: TypeGracefulReleasePeriod, Length: len(payload), Reason: "must be exactly 1 byte"}
	}
	unit := payload[0] >> 5
	value := payload[0] & 0x1F
	var seconds uint32
	switch unit {
	case 0:
		seconds = uint32(value) * 2
	case 1:
		seconds = uint32(value) * 60
	case 2:
		seconds = uint32(value) * 600
	default:
		seconds = uint32(value) * 2
	}
	return GracefulReleasePeriod{Seconds: seconds}, nil
}

// AssociationReleaseRequest asks the peer to release the PFCP
// association, a single-flag IE.
type AssociationReleaseRequest struct {
	SARR bool // graceful release requested
}

func (a AssociationReleaseRequest) Marshal() Ie {
	var b byte
	if a.SARR {
		b = 1
	}
	return New(TypeAssociationReleaseRequest, []byte{b})
}

func UnmarshalAssociationReleaseRequest(payload []byte) (AssociationReleaseRequest, error) {
	if len(payload) != 1 {
		return AssociationReleaseRequest{}, &InvalidLengthError{Type: TypeAssociationReleaseRequest, Length: len(payload), Reason: "must be exactly 1 byte"}
	}
	return AssociationReleaseRequest{SARR: payload[0]&0x01 != 0}, nil
}
