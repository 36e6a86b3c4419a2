package builder

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp/ie"
)

func TestSessionEstablishmentBuilderRequiresPDRAndFAR(t *testing.T) {
	_, err := NewSessionEstablishment(1).
		FromNodeIPv4(net.ParseIP("10.0.0.1")).
		WithFSEID(1, net.ParseIP("10.0.0.1")).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation errors")
}

func TestSessionEstablishmentBuilderBuildsCompleteRequest(t *testing.T) {
	pdr, err := NewPDR().ID(1).Precedence(1).FromInterface(ie.InterfaceAccess).ForwardsTo(1).Build()
	require.NoError(t, err)
	far, err := NewFAR().ID(1).Apply(ie.ApplyActionForward).ForwardTo(ie.InterfaceCore).Build()
	require.NoError(t, err)

	req, err := NewSessionEstablishment(5).
		FromNodeIPv4(net.ParseIP("10.0.0.1")).
		WithFSEID(0x01, net.ParseIP("10.0.0.1")).
		AddPDR(pdr).
		AddFAR(far).
		Build()
	require.NoError(t, err)
	assert.Equal(t, uint32(5), req.SeqNum)
	require.Len(t, req.CreatePDRs, 1)
	require.Len(t, req.CreateFARs, 1)
}
