package ie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateStatusRoundTrips(t *testing.T) {
	g := GateStatus{Uplink: GateOpen, Downlink: GateClosed}
	got, err := UnmarshalGateStatus(g.Marshal().Payload)
	require.NoError(t, err)
	assert.Equal(t, g, got)
}

func TestGateStatusRejectsReservedValues(t *testing.T) {
	_, err := UnmarshalGateStatus([]byte{0x02}) // uplink = 2, reserved
	var valErr *InvalidValueError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, TypeGateStatus, valErr.Type)

	_, err = UnmarshalGateStatus([]byte{0x0c}) // downlink = 3, reserved
	require.ErrorAs(t, err, &valErr)
}
