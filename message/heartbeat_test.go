package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp/ie"
)

func TestHeartbeatRequestMarshalUnmarshalRoundTrip(t *testing.T) {
	req := &HeartbeatRequest{SeqNum: 42, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 1_700_000_000}}
	b := req.Marshal()

	parsed, err := Parse(b)
	require.NoError(t, err)

	got, ok := parsed.(*HeartbeatRequest)
	require.True(t, ok)
	assert.Equal(t, req.SeqNum, got.SeqNum)
	assert.Equal(t, req.RecoveryTimeStamp, got.RecoveryTimeStamp)
	assert.Equal(t, TypeHeartbeatRequest, got.MessageType())
	seid, ok := got.SEID()
	assert.False(t, ok)
	assert.Zero(t, seid)
}

func TestUnmarshalHeartbeatRequestMissingRecoveryTimeStamp(t *testing.T) {
	_, err := UnmarshalHeartbeatRequest(1, nil)
	var missing *MissingMandatoryIeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ie.TypeRecoveryTimeStamp, missing.Missing)
}

func TestParseRejectsUnknownMessageType(t *testing.T) {
	h := Header{Version: 1, MessageType: 200}
	_, err := Parse(h.Marshal())
	var fe *FramingError
	require.ErrorAs(t, err, &fe)
}
