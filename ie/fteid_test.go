package ie

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFTEIDChooseV4EncodesNoAddress(t *testing.T) {
	id := uint8(42)
	f := FTEID{TEID: 0, Choose: true, ChooseV4: true, ChooseID: &id}

	marshaled := f.Marshal()
	assert.Len(t, marshaled.Payload, 6) // flags(1) + TEID(4) + choose-id(1)
	assert.NotZero(t, marshaled.Payload[0]&fteidFlagCH)
	assert.NotZero(t, marshaled.Payload[0]&fteidFlagV4)
	assert.Zero(t, marshaled.Payload[0]&fteidFlagV6)

	got, err := UnmarshalFTEID(marshaled.Payload)
	require.NoError(t, err)
	assert.True(t, got.Choose)
	assert.True(t, got.ChooseV4)
	assert.False(t, got.ChooseV6)
	require.NotNil(t, got.ChooseID)
	assert.Equal(t, uint8(42), *got.ChooseID)
	assert.Nil(t, got.IPv4)
	assert.Nil(t, got.IPv6)
}

func TestFTEIDWithLiteralAddressRoundTrips(t *testing.T) {
	f := FTEID{TEID: 7, IPv4: net.ParseIP("10.0.0.1")}

	got, err := UnmarshalFTEID(f.Marshal().Payload)
	require.NoError(t, err)
	assert.False(t, got.Choose)
	assert.Equal(t, uint32(7), got.TEID)
	assert.True(t, got.IPv4.Equal(net.ParseIP("10.0.0.1")))
	assert.Nil(t, got.IPv6)
}
