package message

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp/ie"
)

func TestSessionEstablishmentRequestRoundTrip(t *testing.T) {
	req := &SessionEstablishmentRequest{
		SeqNum: 1,
		Seid:   0,
		NodeID: ie.NodeID{Type: ie.NodeIDTypeIPv4, IPv4: net.ParseIP("10.0.0.1")},
		FSEID:  ie.FSEID{SEID: 0x1122334455667788, IPv4: net.ParseIP("10.0.0.1")},
		CreatePDRs: []ie.CreatePDR{{
			PDRID:      ie.PDRID{Value: 1},
			Precedence: ie.Precedence{Value: 100},
			PDI:        ie.PDI{SourceInterface: ie.SourceInterface{Value: ie.InterfaceAccess}},
		}},
		CreateFARs: []ie.CreateFAR{{
			FARID:       ie.FARID{Value: 1},
			ApplyAction: ie.ApplyAction{Flags: ie.ApplyActionForward},
		}},
	}

	b := req.Marshal()
	parsed, err := Parse(b)
	require.NoError(t, err)

	got, ok := parsed.(*SessionEstablishmentRequest)
	require.True(t, ok)
	assert.Equal(t, req.NodeID, got.NodeID)
	assert.Equal(t, req.FSEID, got.FSEID)
	require.Len(t, got.CreatePDRs, 1)
	assert.Equal(t, req.CreatePDRs[0].PDRID, got.CreatePDRs[0].PDRID)
	seid, ok := got.SEID()
	assert.True(t, ok)
	assert.Zero(t, seid)
}

func TestSessionEstablishmentRequestMissingFSEID(t *testing.T) {
	nodeID := ie.NodeID{Type: ie.NodeIDTypeIPv4, IPv4: net.ParseIP("10.0.0.1")}
	body := nodeID.Marshal().Marshal()
	_, err := UnmarshalSessionEstablishmentRequest(1, 0, body)
	var missing *MissingMandatoryIeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ie.TypeFSEID, missing.Missing)
}

func TestSessionModificationRequestEmptyBodyRoundTrips(t *testing.T) {
	req := &SessionModificationRequest{SeqNum: 2, Seid: 0xCAFEBABE}
	b := req.Marshal()

	parsed, err := Parse(b)
	require.NoError(t, err)
	got, ok := parsed.(*SessionModificationRequest)
	require.True(t, ok)
	seid, ok := got.SEID()
	require.True(t, ok)
	assert.Equal(t, uint64(0xCAFEBABE), seid)
}

func TestSessionDeletionRequestResponseRoundTrip(t *testing.T) {
	req := &SessionDeletionRequest{SeqNum: 3, Seid: 0x42}
	parsed, err := Parse(req.Marshal())
	require.NoError(t, err)
	gotReq, ok := parsed.(*SessionDeletionRequest)
	require.True(t, ok)
	assert.Equal(t, req.Seid, func() uint64 { s, _ := gotReq.SEID(); return s }())

	resp := &SessionDeletionResponse{
		SeqNum: 3,
		Seid:   0x42,
		Cause:  ie.Cause{Value: ie.CauseRequestAccepted},
		UsageReports: []ie.UsageReport{{
			URRID: ie.URRID{Value: 1},
		}},
	}
	parsedResp, err := Parse(resp.Marshal())
	require.NoError(t, err)
	gotResp, ok := parsedResp.(*SessionDeletionResponse)
	require.True(t, ok)
	assert.Equal(t, resp.Cause, gotResp.Cause)
	require.Len(t, gotResp.UsageReports, 1)
}

func TestSessionReportRequestMissingReportType(t *testing.T) {
	_, err := UnmarshalSessionReportRequest(1, 1, nil)
	var missing *MissingMandatoryIeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ie.TypeReportType, missing.Missing)
}
