package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/your-org/pfcp/ie"
	"github.com/your-org/pfcp/message"
)

func TestCauseForMapsMissingMandatoryIe(t *testing.T) {
	err := &message.MissingMandatoryIeError{MessageType: message.TypeSessionEstablishmentRequest, Missing: ie.TypeNodeID}
	assert.Equal(t, ie.CauseMandatoryIEMissing, CauseFor(err))
}

func TestCauseForMapsValidationError(t *testing.T) {
	err := &ValidationError{Builder: "PDR", Field: "ID", Reason: "mandatory"}
	assert.Equal(t, ie.CauseRequestRejected, CauseFor(err))
}

func TestCauseForMapsInvalidValueError(t *testing.T) {
	err := &ie.InvalidValueError{Type: ie.TypeGateStatus, Reason: "out of range"}
	assert.Equal(t, ie.CauseRequestRejected, CauseFor(err))
}

func TestCauseForDefaultsToRequestRejected(t *testing.T) {
	assert.Equal(t, ie.CauseRequestRejected, CauseFor(assert.AnError))
}

func TestCauseForNilIsAccepted(t *testing.T) {
	assert.Equal(t, ie.CauseRequestAccepted, CauseFor(nil))
}
