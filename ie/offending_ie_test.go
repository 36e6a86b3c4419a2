package ie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffendingIERoundTrip(t *testing.T) {
	o := OffendingIE{Type: TypeFSEID}
	i := o.Marshal()
	got, err := UnmarshalOffendingIE(i.Payload)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestFailedRuleIDBARVariantIsShorter(t *testing.T) {
	bar := FailedRuleID{RuleIDType: FailedRuleIDBAR, RuleID: 5}
	pdr := FailedRuleID{RuleIDType: FailedRuleIDPDR, RuleID: 5}

	barIe := bar.Marshal()
	pdrIe := pdr.Marshal()
	assert.Less(t, len(barIe.Payload), len(pdrIe.Payload))

	gotBar, err := UnmarshalFailedRuleID(barIe.Payload)
	require.NoError(t, err)
	assert.Equal(t, bar, gotBar)
}
