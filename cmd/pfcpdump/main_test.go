package main

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/pfcp/ie"
	"github.com/your-org/pfcp/message"
)

func TestReadInputDecodesHex(t *testing.T) {
	hexInput = true
	defer func() { hexInput = false }()

	req := &message.HeartbeatRequest{SeqNum: 7, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 1234}}
	raw := req.Marshal()

	dir := t.TempDir()
	path := dir + "/heartbeat.hex"
	require.NoError(t, os.WriteFile(path, []byte(hex.EncodeToString(raw)), 0o600))

	decoded, err := readInput([]string{path})
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestReadInputPassesRawBytes(t *testing.T) {
	hexInput = false

	req := &message.HeartbeatRequest{SeqNum: 3, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 99}}
	raw := req.Marshal()

	dir := t.TempDir()
	path := dir + "/heartbeat.bin"
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	decoded, err := readInput([]string{path})
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestPrintIEsWalksTopLevelIEs(t *testing.T) {
	req := &message.AssociationSetupRequest{
		NodeID:            ie.NodeID{Type: ie.NodeIDTypeIPv4, IPv4: []byte{10, 0, 0, 1}},
		RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 42},
	}
	msg, err := message.Parse(req.Marshal())
	require.NoError(t, err)

	ies, err := ie.All(msg.MarshalBody())
	require.NoError(t, err)
	assert.Len(t, ies, 2)
}
