package ie

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPlaneIPResourceInformationRoundTripWithTEIDRange(t *testing.T) {
	ri := uint8(4)
	tr := uint8(3)
	u := UserPlaneIPResourceInformation{
		TEIDRangeIndication: &ri,
		TEIDRange:           &tr,
		IPv4:                net.ParseIP("192.168.1.1"),
		NetworkInstance:     &NetworkInstance{Name: "internet"},
		SourceInterface:     &SourceInterface{Value: InterfaceAccess},
	}
	b := u.Marshal().Marshal()
	got, n, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)

	out, err := UnmarshalUserPlaneIPResourceInformation(got.Payload)
	require.NoError(t, err)
	require.NotNil(t, out.TEIDRangeIndication)
	assert.Equal(t, ri, *out.TEIDRangeIndication)
	require.NotNil(t, out.TEIDRange)
	assert.Equal(t, tr, *out.TEIDRange)
	assert.True(t, u.IPv4.Equal(out.IPv4))
	require.NotNil(t, out.NetworkInstance)
	assert.Equal(t, "internet", out.NetworkInstance.Name)
	require.NotNil(t, out.SourceInterface)
	assert.Equal(t, InterfaceAccess, out.SourceInterface.Value)
}

func TestUserPlaneIPResourceInformationMinimalRoundTrip(t *testing.T) {
	u := UserPlaneIPResourceInformation{IPv4: net.ParseIP("10.0.0.1")}
	got, err := UnmarshalUserPlaneIPResourceInformation(u.Marshal().Payload)
	require.NoError(t, err)
	assert.True(t, u.IPv4.Equal(got.IPv4))
	assert.Nil(t, got.TEIDRangeIndication)
	assert.Nil(t, got.NetworkInstance)
}

func TestUserPlaneIPResourceInformationRejectsEmptyPayload(t *testing.T) {
	_, err := UnmarshalUserPlaneIPResourceInformation(nil)
	var lenErr *InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
}
