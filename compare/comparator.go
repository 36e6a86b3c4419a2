package compare

import (
	"bytes"

	"github.com/your-org/pfcp/ie"
	"github.com/your-org/pfcp/internal/wire"
	"github.com/your-org/pfcp/message"
)

// timestampIeTypes are every IE this module encodes as a plain NTP-epoch
// uint32 (§4.3's "Timestamps" rule) — IgnoreTimestamps/
// TimestampToleranceSecs apply to all of them, not just Recovery Time
// Stamp.
var timestampIeTypes = map[ie.IeType]bool{
	ie.TypeRecoveryTimeStamp:        true,
	ie.TypeMonitoringTime:           true,
	ie.TypeAdditionalMonitoringTime: true,
	ie.TypeStartTime:                true,
	ie.TypeEndTime:                  true,
}

// timestampBearingGroupTypes are the grouped IEs this module knows carry
// a timestamp field directly in their payload (CreateURR/UpdateURR's
// MonitoringTime, UsageReport's StartTime/EndTime under any of its three
// message-specific type codes). SemanticMode/IgnoreTimestamps/
// TimestampToleranceSecs need to reach into these, not just top-level
// message IEs, or two UsageReport/SessionReportRequest messages that
// differ only in a reported timestamp never compare as a match.
var timestampBearingGroupTypes = map[ie.IeType]bool{
	ie.TypeCreateURR:                      true,
	ie.TypeUpdateURR:                      true,
	ie.TypeUsageReportSessionModification: true,
	ie.TypeUsageReportSessionDeletion:     true,
	ie.TypeUsageReportSessionReport:       true,
}

// Comparator compares two decoded PFCP messages under a configurable
// Options. Construct with New, adjust with the With* methods (each
// returns the same *Comparator so calls can be chained), then call
// Compare.
type Comparator struct {
	left, right message.Message
	opts        Options
}

// New starts a comparator for left vs right with default (strict,
// byte-exact) options.
func New(left, right message.Message) *Comparator {
	return &Comparator{left: left, right: right}
}

func (c *Comparator) IgnoreSequence() *Comparator { c.opts.IgnoreSequence = true; return c }

func (c *Comparator) IgnoreTimestamps() *Comparator { c.opts.IgnoreTimestamps = true; return c }

func (c *Comparator) TimestampToleranceSecs(secs uint32) *Comparator {
	c.opts.TimestampToleranceSecs = secs
	return c
}

// SemanticMode relaxes byte-exact IE comparison to functional equivalence
// for the IE types this module understands semantically (F-TEID,
// timestamps); every other IE type still compares by raw payload.
func (c *Comparator) SemanticMode() *Comparator { c.opts.SemanticMode = true; return c }

// StrictMode restores byte-exact comparison, undoing SemanticMode.
func (c *Comparator) StrictMode() *Comparator { c.opts.SemanticMode = false; return c }

// TestMode is shorthand for the common test-harness configuration:
// ignore sequence numbers and timestamps, compare everything else
// byte-exact.
func (c *Comparator) TestMode() *Comparator {
	c.opts.IgnoreSequence = true
	c.opts.IgnoreTimestamps = true
	return c
}

func (c *Comparator) FocusOnIeTypes(types ...ie.IeType) *Comparator {
	c.opts.FocusIeTypes = types
	return c
}

func (c *Comparator) OptionalIeMode(mode OptionalIeMode) *Comparator {
	c.opts.OptionalIeMode = mode
	return c
}

func (c *Comparator) WithDetailedDiff() *Comparator { c.opts.WithDetailedDiff = true; return c }

func (c *Comparator) IncludePayloadInDiff() *Comparator {
	c.opts.IncludePayloadInDiff = true
	return c
}

// Compare runs the configured comparison and returns a full Result.
func (c *Comparator) Compare() (Result, error) {
	leftIEs, err := ie.All(c.left.MarshalBody())
	if err != nil {
		return Result{}, err
	}
	rightIEs, err := ie.All(c.right.MarshalBody())
	if err != nil {
		return Result{}, err
	}

	var diff *Diff
	if c.opts.WithDetailedDiff {
		diff = &Diff{}
	}

	header := c.compareHeader(diff)

	leftByType := groupByType(leftIEs)
	rightByType := groupByType(rightIEs)

	var mismatches []IeMismatch
	var leftOnly, rightOnly []ie.IeType
	stats := ComparisonStats{}

	for t, leftGroup := range leftByType {
		if !c.opts.focused(t) {
			continue
		}
		rightGroup, ok := rightByType[t]
		if !ok {
			if c.opts.OptionalIeMode == OptionalIeStrict || c.opts.OptionalIeMode == OptionalIeRequireLeft {
				leftOnly = append(leftOnly, t)
				mismatches = append(mismatches, IeMismatch{Type: t, Reason: MismatchMissingInRight})
				if diff != nil {
					diff.Differences = append(diff.Differences, Difference{Kind: DifferenceIe, IeType: t, Reason: MismatchMissingInRight})
				}
			}
			continue
		}
		stats.TotalIEsCompared++
		if c.compareGroup(t, leftGroup, rightGroup, diff) {
			stats.ExactMatches++
		} else {
			stats.Mismatches++
			mismatches = append(mismatches, IeMismatch{Type: t, Reason: MismatchPayload})
		}
	}

	if c.opts.OptionalIeMode == OptionalIeStrict {
		for t := range rightByType {
			if !c.opts.focused(t) {
				continue
			}
			if _, ok := leftByType[t]; !ok {
				rightOnly = append(rightOnly, t)
				mismatches = append(mismatches, IeMismatch{Type: t, Reason: MismatchMissingInLeft})
				if diff != nil {
					diff.Differences = append(diff.Differences, Difference{Kind: DifferenceIe, IeType: t, Reason: MismatchMissingInLeft})
				}
			}
		}
	}

	isMatch := header.TypeMatches && header.SeqNumMatches && header.SEIDMatches && len(mismatches) == 0

	return Result{
		IsMatch:      isMatch,
		Header:       header,
		IeMismatches: mismatches,
		LeftOnlyIEs:  leftOnly,
		RightOnlyIEs: rightOnly,
		Stats:        stats,
		Diff:         diff,
	}, nil
}

// Matches is a convenience wrapper around Compare that discards the
// detailed result.
func (c *Comparator) Matches() (bool, error) {
	r, err := c.Compare()
	if err != nil {
		return false, err
	}
	return r.IsMatch, nil
}

func (c *Comparator) compareHeader(diff *Diff) HeaderMatch {
	h := HeaderMatch{
		TypeMatches: c.left.MessageType() == c.right.MessageType(),
	}
	if c.opts.IgnoreSequence {
		h.SeqNumMatches = true
	} else {
		h.SeqNumMatches = c.left.SequenceNumber() == c.right.SequenceNumber()
	}
	leftSeid, leftOK := c.left.SEID()
	rightSeid, rightOK := c.right.SEID()
	h.SEIDMatches = leftOK == rightOK && (!leftOK || leftSeid == rightSeid)

	if diff != nil {
		if !h.TypeMatches {
			diff.Differences = append(diff.Differences, Difference{Kind: DifferenceHeaderField, Field: "message_type"})
		}
		if !h.SeqNumMatches {
			diff.Differences = append(diff.Differences, Difference{Kind: DifferenceHeaderField, Field: "sequence_number"})
		}
		if !h.SEIDMatches {
			diff.Differences = append(diff.Differences, Difference{Kind: DifferenceHeaderField, Field: "seid"})
		}
	}
	return h
}

// compareGroup reports whether every IE of type t matches between the
// left and right groups, recording a Diff entry (if any) on mismatch.
func (c *Comparator) compareGroup(t ie.IeType, left, right []ie.Ie, diff *Diff) bool {
	if len(left) != len(right) {
		if diff != nil {
			diff.Differences = append(diff.Differences, Difference{Kind: DifferenceIe, IeType: t, Reason: MismatchPayload})
		}
		return false
	}
	ok := true
	wantsTimestampLeniency := c.opts.IgnoreTimestamps || c.opts.TimestampToleranceSecs > 0
	wantsSemantic := c.opts.SemanticMode ||
		(timestampIeTypes[t] && wantsTimestampLeniency) ||
		(timestampBearingGroupTypes[t] && wantsTimestampLeniency)
	for i := range left {
		if wantsSemantic && c.compareSemantic(t, left[i], right[i]) {
			continue
		}
		if bytes.Equal(left[i].Payload, right[i].Payload) {
			continue
		}
		ok = false
		if diff != nil {
			d := Difference{Kind: DifferenceIe, IeType: t, Reason: MismatchPayload}
			if c.opts.IncludePayloadInDiff {
				d.LeftPayload = left[i].Payload
				d.RightPayload = right[i].Payload
			}
			diff.Differences = append(diff.Differences, d)
		}
	}
	return ok
}

// compareSemantic applies per-type functional equivalence for the IE
// types a semantic comparison cares about: F-TEID (ignore reserved
// encoding bits, compare TEID + addresses), every NTP-epoch timestamp
// IE, and every grouped IE that carries one (apply
// IgnoreTimestamps/TimestampToleranceSecs in both cases).
func (c *Comparator) compareSemantic(t ie.IeType, left, right ie.Ie) bool {
	if t == ie.TypeFTEID {
		l, err1 := ie.UnmarshalFTEID(left.Payload)
		r, err2 := ie.UnmarshalFTEID(right.Payload)
		if err1 != nil || err2 != nil {
			return false
		}
		return l.TEID == r.TEID && l.IPv4.Equal(r.IPv4) && l.IPv6.Equal(r.IPv6)
	}
	if timestampIeTypes[t] {
		return c.compareTimestampPayload(left.Payload, right.Payload)
	}
	if timestampBearingGroupTypes[t] {
		return c.compareGroupedPayload(left.Payload, right.Payload)
	}
	return false
}

// compareTimestampPayload applies IgnoreTimestamps/TimestampToleranceSecs
// to a single NTP-epoch uint32 payload.
func (c *Comparator) compareTimestampPayload(left, right []byte) bool {
	if c.opts.IgnoreTimestamps {
		return true
	}
	if c.opts.TimestampToleranceSecs == 0 {
		return bytes.Equal(left, right)
	}
	l, err1 := wire.DecodeNTP(left)
	r, err2 := wire.DecodeNTP(right)
	if err1 != nil || err2 != nil {
		return false
	}
	diff := int64(l) - int64(r)
	if diff < 0 {
		diff = -diff
	}
	return diff <= int64(c.opts.TimestampToleranceSecs)
}

// compareGroupedPayload compares the child IEs of a grouped IE known to
// carry a timestamp field (see timestampBearingGroupTypes): every
// timestamp-typed child gets the same leniency compareTimestampPayload
// applies at the top level, every other child compares byte-exact.
func (c *Comparator) compareGroupedPayload(left, right []byte) bool {
	leftIEs, err := ie.All(left)
	if err != nil {
		return bytes.Equal(left, right)
	}
	rightIEs, err := ie.All(right)
	if err != nil {
		return bytes.Equal(left, right)
	}
	leftByType := groupByType(leftIEs)
	rightByType := groupByType(rightIEs)
	if len(leftByType) != len(rightByType) {
		return false
	}
	for ct, leftGroup := range leftByType {
		rightGroup, ok := rightByType[ct]
		if !ok || len(leftGroup) != len(rightGroup) {
			return false
		}
		for i := range leftGroup {
			if timestampIeTypes[ct] {
				if !c.compareTimestampPayload(leftGroup[i].Payload, rightGroup[i].Payload) {
					return false
				}
				continue
			}
			if !bytes.Equal(leftGroup[i].Payload, rightGroup[i].Payload) {
				return false
			}
		}
	}
	return true
}

func groupByType(ies []ie.Ie) map[ie.IeType][]ie.Ie {
	out := make(map[ie.IeType][]ie.Ie, len(ies))
	for _, i := range ies {
		out[i.Type] = append(out[i.Type], i)
	}
	return out
}
