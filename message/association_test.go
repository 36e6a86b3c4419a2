package message

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp/ie"
)

func TestAssociationSetupRequestResponseRoundTrip(t *testing.T) {
	req := &AssociationSetupRequest{
		SeqNum:            9,
		NodeID:            ie.NodeID{Type: ie.NodeIDTypeFQDN, FQDN: "upf1.example.test"},
		RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 1_700_000_001},
	}
	parsed, err := Parse(req.Marshal())
	require.NoError(t, err)
	got, ok := parsed.(*AssociationSetupRequest)
	require.True(t, ok)
	assert.Equal(t, req.NodeID, got.NodeID)
	assert.Equal(t, req.RecoveryTimeStamp, got.RecoveryTimeStamp)

	resp := &AssociationSetupResponse{
		SeqNum:            9,
		NodeID:            ie.NodeID{Type: ie.NodeIDTypeIPv4, IPv4: net.ParseIP("172.16.0.1")},
		Cause:             ie.Cause{Value: ie.CauseRequestAccepted},
		RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 1_700_000_002},
	}
	parsedResp, err := Parse(resp.Marshal())
	require.NoError(t, err)
	gotResp, ok := parsedResp.(*AssociationSetupResponse)
	require.True(t, ok)
	assert.Equal(t, resp.Cause, gotResp.Cause)
}

func TestVersionNotSupportedResponseRoundTrip(t *testing.T) {
	resp := &VersionNotSupportedResponse{SeqNum: 3}
	parsed, err := Parse(resp.Marshal())
	require.NoError(t, err)
	got, ok := parsed.(*VersionNotSupportedResponse)
	require.True(t, ok)
	assert.Equal(t, uint32(3), got.SeqNum)
}
