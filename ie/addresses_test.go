package ie

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceIPAddressMarshalV4SetsBit0(t *testing.T) {
	s := SourceIPAddress{IPv4: net.ParseIP("192.0.2.1")}
	payload := s.Marshal().Payload
	assert.Equal(t, byte(addrFlagV4), payload[0]&0x03)
}

func TestSourceIPAddressRoundTripsWithPrefixLen(t *testing.T) {
	mpl := uint8(24)
	s := SourceIPAddress{IPv4: net.ParseIP("192.0.2.1"), MaskedPrefixLen: &mpl}
	got, err := UnmarshalSourceIPAddress(s.Marshal().Payload)
	require.NoError(t, err)
	assert.True(t, s.IPv4.Equal(got.IPv4))
	require.NotNil(t, got.MaskedPrefixLen)
	assert.Equal(t, mpl, *got.MaskedPrefixLen)
}

func TestUEIPAddressMarshalV6SetsBit1(t *testing.T) {
	u := UEIPAddress{IPv6: net.ParseIP("2001:db8::1")}
	payload := u.Marshal().Payload
	assert.Equal(t, byte(addrFlagV6), payload[0]&0x03)
}

func TestIPMulticastAddressRangeRoundTrip(t *testing.T) {
	m := IPMulticastAddress{
		StartIPv4: net.ParseIP("224.0.0.1"),
		EndIPv4:   net.ParseIP("224.0.0.10"),
	}
	got, err := UnmarshalIPMulticastAddress(m.Marshal().Payload)
	require.NoError(t, err)
	assert.True(t, m.StartIPv4.Equal(got.StartIPv4))
	assert.True(t, m.EndIPv4.Equal(got.EndIPv4))
}
