package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp/ie"
)

func TestFARBuilderForwardRequiresDestination(t *testing.T) {
	_, err := NewFAR().ID(1).Apply(ie.ApplyActionForward).Build()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ForwardTo", verr.Field)
}

func TestFARBuilderBuildsForwardingFAR(t *testing.T) {
	far, err := NewFAR().ID(1).Apply(ie.ApplyActionForward).ForwardTo(ie.InterfaceCore).Build()
	require.NoError(t, err)
	require.NotNil(t, far.ForwardingParameters)
	assert.Equal(t, ie.InterfaceCore, far.ForwardingParameters.DestinationInterface.Value)
}

func TestFARBuilderDropNeedsNoDestination(t *testing.T) {
	far, err := NewFAR().ID(2).Apply(ie.ApplyActionDrop).Build()
	require.NoError(t, err)
	assert.Nil(t, far.ForwardingParameters)
}

func TestFARBuilderBufferRequiresBAR(t *testing.T) {
	_, err := NewFAR().ID(3).Apply(ie.ApplyActionBuffer).Build()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "WithBAR", verr.Field)
}

func TestFARBuilderBuildsBufferingFAR(t *testing.T) {
	far, err := NewFAR().ID(3).Apply(ie.ApplyActionBuffer).WithBAR(9).Build()
	require.NoError(t, err)
	require.NotNil(t, far.BARID)
	assert.Equal(t, uint8(9), far.BARID.Value)
}
