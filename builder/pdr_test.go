package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp/ie"
)

func TestPDRBuilderBuildsValidPDR(t *testing.T) {
	pdr, err := NewPDR().
		ID(1).
		Precedence(100).
		FromInterface(ie.InterfaceAccess).
		ForwardsTo(1).
		MeasuresWith(1).
		EnforcesWith(1).
		Build()
	require.NoError(t, err)
	assert.Equal(t, ie.PDRID{Value: 1}, pdr.PDRID)
	assert.Equal(t, ie.Precedence{Value: 100}, pdr.Precedence)
	require.NotNil(t, pdr.FARID)
	assert.Equal(t, uint32(1), pdr.FARID.Value)
	require.Len(t, pdr.QERIDs, 1)
	require.Len(t, pdr.URRIDs, 1)
}

func TestPDRBuilderRequiresMandatoryFields(t *testing.T) {
	_, err := NewPDR().Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation errors")
}

func TestPDRBuilderSingleMissingFieldReportsValidationError(t *testing.T) {
	_, err := NewPDR().ID(1).Precedence(1).Build()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "FromInterface", verr.Field)
}
