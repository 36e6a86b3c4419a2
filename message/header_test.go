package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderMarshalUnmarshalRoundTripNoSEID(t *testing.T) {
	h := Header{Version: 1, MessageType: 1, Length: 20, SequenceNumber: 0xABCDEF}
	b := h.Marshal()
	assert.Len(t, b, 8)

	got, n, err := UnmarshalHeader(b)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, h.Version, got.Version)
	assert.Equal(t, h.MessageType, got.MessageType)
	assert.Equal(t, h.Length, got.Length)
	assert.Equal(t, h.SequenceNumber, got.SequenceNumber)
	assert.False(t, got.HasSEID)
}

func TestHeaderMarshalUnmarshalRoundTripWithSEID(t *testing.T) {
	h := Header{Version: 1, HasSEID: true, MessageType: 50, Length: 40, SEID: 0x0102030405060708, SequenceNumber: 7}
	b := h.Marshal()
	assert.Len(t, b, 16)

	got, n, err := UnmarshalHeader(b)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.True(t, got.HasSEID)
	assert.Equal(t, h.SEID, got.SEID)
	assert.Equal(t, h.SequenceNumber, got.SequenceNumber)
}

func TestUnmarshalHeaderRejectsBadVersion(t *testing.T) {
	b := Header{Version: 2, MessageType: 1}.Marshal()
	_, _, err := UnmarshalHeader(b)
	var fe *FramingError
	require.ErrorAs(t, err, &fe)
}

func TestUnmarshalHeaderRejectsTruncatedBuffer(t *testing.T) {
	_, _, err := UnmarshalHeader([]byte{0x20, 0x01, 0x00})
	var fe *FramingError
	require.ErrorAs(t, err, &fe)
}

func TestUnmarshalHeaderRejectsTruncatedLongBuffer(t *testing.T) {
	h := Header{Version: 1, HasSEID: true, MessageType: 50}
	b := h.Marshal()
	_, _, err := UnmarshalHeader(b[:10])
	var fe *FramingError
	require.ErrorAs(t, err, &fe)
}
