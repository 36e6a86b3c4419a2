package builder

import (
	"errors"

	"github.com/your-org/pfcp/ie"
	"github.com/your-org/pfcp/message"
)

// CauseFor maps a decode or validation error to the Cause value a
// response should carry back to the peer, per §4.6's error-to-cause
// table. Errors this module has no specific mapping for report
// RequestRejected, the generic catch-all.
func CauseFor(err error) ie.CauseValue {
	if err == nil {
		return ie.CauseRequestAccepted
	}

	var missing *message.MissingMandatoryIeError
	if errors.As(err, &missing) {
		return ie.CauseMandatoryIEMissing
	}
	var missingIe *ie.MissingMandatoryIeError
	if errors.As(err, &missingIe) {
		return ie.CauseMandatoryIEMissing
	}
	var badLen *ie.InvalidLengthError
	if errors.As(err, &badLen) {
		return ie.CauseInvalidLength
	}
	var badVal *ie.InvalidValueError
	if errors.As(err, &badVal) {
		return ie.CauseRequestRejected
	}
	var validation *ValidationError
	if errors.As(err, &validation) {
		return ie.CauseRequestRejected
	}
	return ie.CauseRequestRejected
}
