package ie

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSEIDMarshalV4SetsBit0(t *testing.T) {
	f := FSEID{SEID: 1, IPv4: net.ParseIP("10.0.0.1")}
	payload := f.Marshal().Payload
	assert.Equal(t, byte(fseidFlagV4), payload[0]&0x03)
}

func TestFSEIDMarshalV6SetsBit1(t *testing.T) {
	f := FSEID{SEID: 1, IPv6: net.ParseIP("2001:db8::1")}
	payload := f.Marshal().Payload
	assert.Equal(t, byte(fseidFlagV6), payload[0]&0x03)
}

func TestFSEIDRoundTripsBothAddresses(t *testing.T) {
	f := FSEID{SEID: 42, IPv4: net.ParseIP("10.0.0.1"), IPv6: net.ParseIP("2001:db8::1")}
	got, err := UnmarshalFSEID(f.Marshal().Payload)
	require.NoError(t, err)
	assert.Equal(t, f.SEID, got.SEID)
	assert.True(t, f.IPv4.Equal(got.IPv4))
	assert.True(t, f.IPv6.Equal(got.IPv6))
}

func TestFSEIDRejectsNoAddressFlags(t *testing.T) {
	_, err := UnmarshalFSEID(append([]byte{0x00}, make([]byte, 8)...))
	var valErr *InvalidValueError
	require.ErrorAs(t, err, &valErr)
}
