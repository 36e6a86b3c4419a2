package ie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEthernetPacketFilterRoundTrip(t *testing.T) {
	ethertype := uint16(0x0800)
	f := EthernetPacketFilter{
		MACAddress: &MACAddress{SourceMAC: []byte{1, 2, 3, 4, 5, 6}},
		Ethertype:  &ethertype,
	}
	b := f.Marshal().Marshal()
	got, n, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)

	out, err := UnmarshalEthernetPacketFilter(got.Payload)
	require.NoError(t, err)
	require.NotNil(t, out.MACAddress)
	assert.Equal(t, f.MACAddress.SourceMAC, out.MACAddress.SourceMAC)
	require.NotNil(t, out.Ethertype)
	assert.Equal(t, ethertype, *out.Ethertype)
}

func TestMACAddressesDetectedRejectsWrongLength(t *testing.T) {
	_, err := UnmarshalMACAddressesDetected([]byte{1, 2, 3})
	var lenErr *InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
}

func TestEthernetFilterIDRoundTrip(t *testing.T) {
	f := EthernetFilterID{Value: 7}
	i := f.Marshal()
	assert.Equal(t, TypeEthernetFilterID, i.Type)

	got, err := UnmarshalEthernetFilterID(i.Payload)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestEthernetInactivityTimerRoundTrip(t *testing.T) {
	e := EthernetInactivityTimer{Seconds: 3600}
	i := e.Marshal()
	assert.Equal(t, TypeEthernetInactivityTimer, i.Type)

	got, err := UnmarshalEthernetInactivityTimer(i.Payload)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestProxyingRoundTrip(t *testing.T) {
	p := Proxying{ARP: true, INS: false}
	i := p.Marshal()
	got, err := UnmarshalProxying(i.Payload)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
