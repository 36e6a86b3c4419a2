package ie

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlternateSMFIPAddressRoundTripIPv4(t *testing.T) {
	a := AlternateSMFIPAddress{IPv4: net.ParseIP("10.1.2.3")}
	i := a.Marshal()
	got, err := UnmarshalAlternateSMFIPAddress(i.Payload)
	require.NoError(t, err)
	assert.True(t, a.IPv4.Equal(got.IPv4))
	assert.Nil(t, got.IPv6)
}

func TestUEIPAddressPoolInformationRequiresIdentity(t *testing.T) {
	payload := NetworkInstance{Name: "internet"}.Marshal().Marshal()
	_, err := UnmarshalUEIPAddressPoolInformation(payload)
	var missing *MissingMandatoryIeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, TypeUEIPAddressPoolIdentity, missing.Missing)
}

func TestIPMulticastAddressingInfoRoundTrip(t *testing.T) {
	info := IPMulticastAddressingInfo{
		IPMulticastAddress: IPMulticastAddress{StartIPv4: net.ParseIP("224.0.0.1")},
	}
	b := info.Marshal().Marshal()
	got, n, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)

	out, err := UnmarshalIPMulticastAddressingInfo(got.Payload)
	require.NoError(t, err)
	assert.True(t, info.IPMulticastAddress.StartIPv4.Equal(out.IPMulticastAddress.StartIPv4))
}
