package ie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationIDsPFDsRoundTrip(t *testing.T) {
	a := ApplicationIDsPFDs{
		ApplicationID: ApplicationID{Value: "app1"},
		PFDContexts: []PFDContext{{
			PFDContents: []PFDContents{{FlowDescription: "permit out ip from any to any"}},
		}},
	}
	b := a.Marshal().Marshal()
	got, n, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)

	out, err := UnmarshalApplicationIDsPFDs(got.Payload)
	require.NoError(t, err)
	assert.Equal(t, a.ApplicationID, out.ApplicationID)
	require.Len(t, out.PFDContexts, 1)
	require.Len(t, out.PFDContexts[0].PFDContents, 1)
	assert.Equal(t, "permit out ip from any to any", out.PFDContexts[0].PFDContents[0].FlowDescription)
}

func TestApplicationIDsPFDsMissingApplicationID(t *testing.T) {
	_, err := UnmarshalApplicationIDsPFDs(nil)
	var missing *MissingMandatoryIeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, TypeApplicationID, missing.Missing)
}
