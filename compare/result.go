package compare

import "github.com/your-org/pfcp/ie"

// MismatchReason names why a particular IE comparison failed.
type MismatchReason int

const (
	MismatchPayload MismatchReason = iota
	MismatchMissingInLeft
	MismatchMissingInRight
	MismatchTimestampOutsideTolerance
)

func (r MismatchReason) String() string {
	switch r {
	case MismatchMissingInLeft:
		return "missing in left"
	case MismatchMissingInRight:
		return "missing in right"
	case MismatchTimestampOutsideTolerance:
		return "timestamp outside tolerance"
	default:
		return "payload differs"
	}
}

// IeMismatch records one IE that failed to match between the two messages.
type IeMismatch struct {
	Type   ie.IeType
	Reason MismatchReason
}

// HeaderMatch reports whether the two messages' headers agreed, field by
// field, after IgnoreSequence is applied.
type HeaderMatch struct {
	TypeMatches   bool
	SeqNumMatches bool
	SEIDMatches   bool
}

// ComparisonStats summarizes how many IEs were compared and how many
// matched exactly.
type ComparisonStats struct {
	TotalIEsCompared int
	ExactMatches     int
	Mismatches       int
}

// MatchRate returns the fraction of compared IEs that matched exactly, or
// 1.0 if nothing was compared.
func (s ComparisonStats) MatchRate() float64 {
	if s.TotalIEsCompared == 0 {
		return 1.0
	}
	return float64(s.ExactMatches) / float64(s.TotalIEsCompared)
}

// Result is the outcome of a Comparator.Compare call.
type Result struct {
	IsMatch      bool
	Header       HeaderMatch
	IeMismatches []IeMismatch
	LeftOnlyIEs  []ie.IeType
	RightOnlyIEs []ie.IeType
	Stats        ComparisonStats
	Diff         *Diff
}
